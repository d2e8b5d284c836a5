package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-audit-api/infrastructure/report"
	"github.com/vfg2006/ads-audit-api/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-audit-api/internal/config"
	"github.com/vfg2006/ads-audit-api/internal/domain"
	"github.com/vfg2006/ads-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/ads-audit-api/pkg/log"
	"github.com/vfg2006/ads-audit-api/pkg/utils"
)

type runOptions struct {
	bulkPath         string
	searchTermPath   string
	targetAcos       float64
	campaigns        []string
	keywords         []string
	searchTerms      []string
	keywordAction    string
	searchTermAction string
	duplicates       bool
	pretty           bool
	reportDir        string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Audita um bulk export e um search term report",
		Long: `Lê os dois exports (xlsx ou csv), aplica as regras de auditoria e imprime
o resultado em JSON. Filtros de campanha, palavra-chave e termo podem ser repetidos.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log.Setup(cfg.App.LogLevel)

			if !cmd.Flags().Changed("target-acos") {
				opts.targetAcos = cfg.Audit.DefaultTargetAcos
			}

			return runAudit(cmd, cfg, opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.bulkPath, "bulk", "", "caminho do bulk export")
	flags.StringVar(&opts.searchTermPath, "search-term", "", "caminho do search term report")
	flags.Float64Var(&opts.targetAcos, "target-acos", 0, "ACOS alvo em % (padrão: AUDIT_DEFAULT_TARGET_ACOS)")
	flags.StringArrayVar(&opts.campaigns, "campaign", nil, "filtra por campanha (repetível)")
	flags.StringArrayVar(&opts.keywords, "keyword", nil, "filtra por palavra-chave (repetível)")
	flags.StringArrayVar(&opts.searchTerms, "search-term-filter", nil, "filtra por termo de pesquisa (repetível)")
	flags.StringVar(&opts.keywordAction, "keyword-action", "", "detalha palavras-chave por ação (ex.: increase-bid)")
	flags.StringVar(&opts.searchTermAction, "search-term-action", "", "detalha termos por ação (ex.: negate)")
	flags.BoolVar(&opts.duplicates, "duplicates", false, "mostra apenas termos de pesquisa duplicados")
	flags.BoolVar(&opts.pretty, "pretty", false, "indenta o JSON")
	flags.StringVar(&opts.reportDir, "report-dir", "", "também grava o relatório neste diretório")

	return cmd
}

func runAudit(cmd *cobra.Command, cfg *config.Config, opts *runOptions, out io.Writer) error {
	selection, err := opts.selection()
	if err != nil {
		return err
	}

	reader := spreadsheet.NewReader(cfg.Audit.BulkSheet, cfg.Audit.SearchTermSheet)
	inputs, err := reader.ReadFiles(cmd.Context(), opts.bulkPath, opts.searchTermPath)
	if err != nil {
		return err
	}

	result, err := auditing.NewService(cfg.Audit.Rules()).Recompute(inputs, opts.targetAcos, selection)
	if err != nil {
		return err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar ID da execução")
	}
	result.RunID = runID

	if opts.reportDir != "" {
		path, err := report.NewWriter(opts.reportDir).Write(&domain.AuditReport{
			RunID:          runID,
			GeneratedAt:    time.Now(),
			BulkPath:       opts.bulkPath,
			SearchTermPath: opts.searchTermPath,
			Result:         result,
		})
		if err != nil {
			return err
		}
		logrus.WithField("report", path).Info("Relatório gravado")
	}

	return report.Encode(out, result, opts.pretty)
}

func (o *runOptions) selection() (domain.Selection, error) {
	selection := domain.Reset().
		WithCampaigns(o.campaigns...).
		WithKeywords(o.keywords...).
		WithSearchTerms(o.searchTerms...)

	modes := 0

	if o.keywordAction != "" {
		action, ok := domain.ParseAction(o.keywordAction, domain.KeywordActions())
		if !ok {
			return selection, fmt.Errorf("--keyword-action inválida: %s", o.keywordAction)
		}
		selection = selection.WithKeywordAction(action)
		modes++
	}

	if o.searchTermAction != "" {
		action, ok := domain.ParseAction(o.searchTermAction, domain.SearchTermActions())
		if !ok {
			return selection, fmt.Errorf("--search-term-action inválida: %s", o.searchTermAction)
		}
		selection = selection.WithSearchTermAction(action)
		modes++
	}

	if o.duplicates {
		selection = selection.WithDuplicates()
		modes++
	}

	if modes > 1 {
		return selection, errors.New("use apenas um de --keyword-action, --search-term-action ou --duplicates")
	}

	return selection, nil
}
