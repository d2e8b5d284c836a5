package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-audit-api/infrastructure/report"
	"github.com/vfg2006/ads-audit-api/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-audit-api/internal/api"
	"github.com/vfg2006/ads-audit-api/internal/config"
	"github.com/vfg2006/ads-audit-api/internal/scheduler"
	"github.com/vfg2006/ads-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-audit-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := spreadsheet.NewReader(cfg.Audit.BulkSheet, cfg.Audit.SearchTermSheet)
	auditService := auditing.NewService(cfg.Audit.Rules())

	auditReportService := scheduler.NewAuditReportService(
		reader,
		auditService,
		report.NewWriter(cfg.AuditReport.OutputDir),
		cfg,
	)

	if err := auditReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da auditoria de exports")
	} else {
		logrus.Info("Agendador da auditoria de exports iniciado com sucesso")
	}

	server, err := api.New(cfg, auditService, reader, auditReportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
