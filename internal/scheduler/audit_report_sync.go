package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-audit-api/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-audit-api/internal/config"
	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/vfg2006/ads-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-audit-api/pkg/utils"
)

// ErrReportPathsNotConfigured indica que os caminhos dos exports não foram informados
var ErrReportPathsNotConfigured = errors.New("audit report paths not configured")

// ReportWriter grava o relatório gerado pela auditoria agendada
type ReportWriter interface {
	Write(report *domain.AuditReport) (string, error)
}

// AuditReportConfig representa a configuração da auditoria agendada
type AuditReportConfig struct {
	CronSchedule   string
	BulkPath       string
	SearchTermPath string
	TargetAcos     float64
	SyncEnabled    bool
}

// AuditReportService audita periodicamente os exports salvos em disco e grava um relatório
type AuditReportService struct {
	scheduler          *gocron.Scheduler
	config             AuditReportConfig
	reader             spreadsheet.TableReader
	auditor            auditing.Auditor
	writer             ReportWriter
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastReportPath     string
	lastError          string
}

// NewAuditReportService cria uma nova instância do serviço de auditoria agendada
func NewAuditReportService(
	reader spreadsheet.TableReader,
	auditor auditing.Auditor,
	writer ReportWriter,
	appConfig *config.Config,
) *AuditReportService {
	reportConfig := AuditReportConfig{
		CronSchedule:   appConfig.AuditReport.CronSchedule,
		BulkPath:       appConfig.AuditReport.BulkPath,
		SearchTermPath: appConfig.AuditReport.SearchTermPath,
		TargetAcos:     appConfig.AuditReport.TargetAcos,
		SyncEnabled:    appConfig.AuditReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    reportConfig.CronSchedule,
		"bulk_path":        reportConfig.BulkPath,
		"search_term_path": reportConfig.SearchTermPath,
		"target_acos":      reportConfig.TargetAcos,
		"sync_enabled":     reportConfig.SyncEnabled,
	}).Info("Configuração da auditoria agendada carregada")

	return &AuditReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reportConfig,
		reader:    reader,
		auditor:   auditor,
		writer:    writer,
	}
}

// Start inicia o agendador
func (s *AuditReportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Auditoria agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da auditoria de exports")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.generateReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de exports: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da auditoria de exports")
		s.scheduler.Stop()
	}()

	return nil
}

// generateReport executa uma auditoria completa e grava o relatório.
// Retorna o caminho do arquivo gerado.
func (s *AuditReportService) generateReport(ctx context.Context) (string, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditoria de exports já em andamento, ignorando")
		return "", nil
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastRunStartedAt = startTime
	s.syncMutex.Unlock()

	path, err := s.audit(ctx, startTime)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastReportPath = path
		s.lastRunCompletedAt = time.Now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro na auditoria de exports")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"report":   path,
	}).Info("Auditoria de exports concluída")

	return path, nil
}

func (s *AuditReportService) audit(ctx context.Context, startTime time.Time) (string, error) {
	if s.config.BulkPath == "" || s.config.SearchTermPath == "" {
		return "", ErrReportPathsNotConfigured
	}

	inputs, err := s.reader.ReadFiles(ctx, s.config.BulkPath, s.config.SearchTermPath)
	if err != nil {
		return "", fmt.Errorf("erro ao ler exports: %w", err)
	}

	result, err := s.auditor.Recompute(inputs, s.config.TargetAcos, domain.Reset())
	if err != nil {
		return "", fmt.Errorf("erro ao auditar exports: %w", err)
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}
	result.RunID = runID

	path, err := s.writer.Write(&domain.AuditReport{
		RunID:          runID,
		GeneratedAt:    startTime,
		BulkPath:       s.config.BulkPath,
		SearchTermPath: s.config.SearchTermPath,
		Result:         result,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao gravar relatório: %w", err)
	}

	return path, nil
}

// TriggerManualSync inicia manualmente uma auditoria de exports
func (s *AuditReportService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditoria de exports já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando auditoria manual de exports")
	go s.generateReport(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AuditReportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":          s.config.SyncEnabled,
		"sync_cron":             s.config.CronSchedule,
		"sync_running":          s.syncRunning,
		"target_acos":           s.config.TargetAcos,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_report_path":      s.lastReportPath,
		"last_error":            s.lastError,
	}
}
