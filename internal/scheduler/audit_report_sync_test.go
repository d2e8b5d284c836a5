package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-audit-api/infrastructure/report"
	spreadsheetMocks "github.com/vfg2006/ads-audit-api/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/ads-audit-api/internal/config"
	"github.com/vfg2006/ads-audit-api/internal/domain"
	auditingMocks "github.com/vfg2006/ads-audit-api/internal/usecases/auditing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestConfig(outputDir string) *config.Config {
	return &config.Config{
		AuditReport: config.AuditReport{
			CronSchedule:   "0 7 * * 1",
			BulkPath:       "/data/bulk.xlsx",
			SearchTermPath: "/data/terms.xlsx",
			OutputDir:      outputDir,
			TargetAcos:     30,
			Enabled:        true,
		},
	}
}

func TestAuditReportService_GenerateReport(t *testing.T) {
	inputs := domain.AuditInputs{
		Bulk:       &domain.Table{Name: domain.TableBulk},
		SearchTerm: &domain.Table{Name: domain.TableSearchTerm},
	}

	tests := []struct {
		name      string
		mutate    func(cfg *config.Config)
		setup     func(reader *spreadsheetMocks.MockTableReader, auditor *auditingMocks.MockAuditor)
		wantErr   error
		errSubstr string
	}{
		{
			name: "Gera relatório com sucesso",
			setup: func(reader *spreadsheetMocks.MockTableReader, auditor *auditingMocks.MockAuditor) {
				reader.EXPECT().
					ReadFiles(gomock.Any(), "/data/bulk.xlsx", "/data/terms.xlsx").
					Return(inputs, nil)
				auditor.EXPECT().
					Recompute(inputs, 30.0, domain.Reset()).
					Return(&domain.AuditResult{
						TargetAcos: 30,
						Data:       domain.EmptyTriple(),
						Summary:    domain.Summary{TotalCampaigns: 3},
					}, nil)
			},
		},
		{
			name:    "Caminhos não configurados",
			mutate:  func(cfg *config.Config) { cfg.AuditReport.BulkPath = "" },
			setup:   func(*spreadsheetMocks.MockTableReader, *auditingMocks.MockAuditor) {},
			wantErr: ErrReportPathsNotConfigured,
		},
		{
			name: "Erro na leitura dos exports",
			setup: func(reader *spreadsheetMocks.MockTableReader, auditor *auditingMocks.MockAuditor) {
				reader.EXPECT().
					ReadFiles(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.AuditInputs{}, errors.New("arquivo corrompido"))
			},
			errSubstr: "arquivo corrompido",
		},
		{
			name: "Erro na auditoria",
			setup: func(reader *spreadsheetMocks.MockTableReader, auditor *auditingMocks.MockAuditor) {
				reader.EXPECT().
					ReadFiles(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(inputs, nil)
				auditor.EXPECT().
					Recompute(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("schema inválido"))
			},
			errSubstr: "schema inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := spreadsheetMocks.NewMockTableReader(ctrl)
			auditor := auditingMocks.NewMockAuditor(ctrl)
			tt.setup(reader, auditor)

			cfg := newTestConfig(t.TempDir())
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			service := NewAuditReportService(reader, auditor, report.NewWriter(cfg.AuditReport.OutputDir), cfg)
			path, err := service.generateReport(context.Background())
			status := service.GetStatus()

			if tt.wantErr != nil || tt.errSubstr != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.errSubstr != "" {
					assert.ErrorContains(t, err, tt.errSubstr)
				}
				assert.Empty(t, path)
				assert.NotEmpty(t, status["last_error"])
				assert.Equal(t, false, status["sync_running"])
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, status["last_report_path"])
			assert.Equal(t, "", status["last_error"])

			loaded, err := report.Load(path)
			require.NoError(t, err)
			assert.NotEmpty(t, loaded.RunID)
			assert.Equal(t, loaded.RunID, loaded.Result.RunID)
			assert.Equal(t, "/data/bulk.xlsx", loaded.BulkPath)
			assert.Equal(t, 3, loaded.Result.Summary.TotalCampaigns)
		})
	}
}

func TestAuditReportService_GenerateReportEmExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newTestConfig(t.TempDir())
	service := NewAuditReportService(
		spreadsheetMocks.NewMockTableReader(ctrl),
		auditingMocks.NewMockAuditor(ctrl),
		report.NewWriter(cfg.AuditReport.OutputDir),
		cfg,
	)
	service.syncRunning = true

	path, err := service.generateReport(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestAuditReportService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newTestConfig(t.TempDir())
	cfg.AuditReport.Enabled = false

	service := NewAuditReportService(
		spreadsheetMocks.NewMockTableReader(ctrl),
		auditingMocks.NewMockAuditor(ctrl),
		report.NewWriter(cfg.AuditReport.OutputDir),
		cfg,
	)

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestAuditReportService_StartCronInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newTestConfig(t.TempDir())
	cfg.AuditReport.CronSchedule = "not a cron"

	service := NewAuditReportService(
		spreadsheetMocks.NewMockTableReader(ctrl),
		auditingMocks.NewMockAuditor(ctrl),
		report.NewWriter(cfg.AuditReport.OutputDir),
		cfg,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
