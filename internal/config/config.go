package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-audit-api/internal/domain"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Cors        Cors        `mapstructure:",squash"`
	Audit       Audit       `mapstructure:",squash"`
	AuditReport AuditReport `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Audit struct {
	DefaultTargetAcos float64 `mapstructure:"audit_default_target_acos"`
	BidBaseline       string  `mapstructure:"audit_bid_baseline"`
	AcosAggregation   string  `mapstructure:"audit_acos_aggregation"`
	BulkSheet         string  `mapstructure:"audit_bulk_sheet"`
	SearchTermSheet   string  `mapstructure:"audit_search_term_sheet"`
	MaxUploadMB       int64   `mapstructure:"audit_max_upload_mb"`
}

type AuditReport struct {
	CronSchedule   string  `mapstructure:"audit_report_cron"`
	BulkPath       string  `mapstructure:"audit_report_bulk_path"`
	SearchTermPath string  `mapstructure:"audit_report_search_term_path"`
	OutputDir      string  `mapstructure:"audit_report_output_dir"`
	TargetAcos     float64 `mapstructure:"audit_report_target_acos"`
	Enabled        bool    `mapstructure:"audit_report_enabled"`
}

// Rules converte a configuração de auditoria nas regras do motor
func (a Audit) Rules() domain.RuleConfig {
	return domain.RuleConfig{
		BidBaseline:     domain.BidBaseline(a.BidBaseline),
		AcosAggregation: domain.AcosAggregation(a.AcosAggregation),
	}
}

// MaxUploadBytes é o limite de memória usado no parse do multipart
func (a Audit) MaxUploadBytes() int64 {
	return a.MaxUploadMB << 20
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("AUDIT_DEFAULT_TARGET_ACOS", 35)
	viper.SetDefault("AUDIT_BID_BASELINE", string(domain.BaselineCPC))
	viper.SetDefault("AUDIT_ACOS_AGGREGATION", string(domain.AggregationWeighted))
	viper.SetDefault("AUDIT_BULK_SHEET", "Sponsored Products Campaigns")
	viper.SetDefault("AUDIT_SEARCH_TERM_SHEET", "Sponsored_Products_Search_term_")
	viper.SetDefault("AUDIT_MAX_UPLOAD_MB", 32)

	// Defaults para a auditoria agendada
	viper.SetDefault("AUDIT_REPORT_CRON", "0 7 * * 1") // Toda segunda-feira às 7h da manhã
	viper.SetDefault("AUDIT_REPORT_BULK_PATH", "")
	viper.SetDefault("AUDIT_REPORT_SEARCH_TERM_PATH", "")
	viper.SetDefault("AUDIT_REPORT_OUTPUT_DIR", "reports")
	viper.SetDefault("AUDIT_REPORT_TARGET_ACOS", 35)
	viper.SetDefault("AUDIT_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica as regras de auditoria e os percentuais alvo
func (c *Config) Validate() error {
	if err := c.Audit.Rules().Validate(); err != nil {
		return err
	}

	if c.Audit.DefaultTargetAcos < 0 || c.Audit.DefaultTargetAcos > 100 {
		return fmt.Errorf("AUDIT_DEFAULT_TARGET_ACOS deve estar entre 0 e 100: %v", c.Audit.DefaultTargetAcos)
	}

	if c.AuditReport.TargetAcos < 0 || c.AuditReport.TargetAcos > 100 {
		return fmt.Errorf("AUDIT_REPORT_TARGET_ACOS deve estar entre 0 e 100: %v", c.AuditReport.TargetAcos)
	}

	if c.Audit.MaxUploadMB <= 0 {
		return fmt.Errorf("AUDIT_MAX_UPLOAD_MB deve ser positivo: %d", c.Audit.MaxUploadMB)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
