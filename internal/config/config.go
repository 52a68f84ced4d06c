package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Extract            Extract            `mapstructure:",squash"`
	Report             Report             `mapstructure:",squash"`
	ReconciliationSync ReconciliationSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Extract descreve onde e como encontrar os extratos semanais de contas a
// receber. Substitui o singleton de configuração do processo: os valores são
// injetados nos construtores do resolver e do loader.
type Extract struct {
	DataDir        string   `mapstructure:"receivables_data_dir"`
	FilePrefix     string   `mapstructure:"receivables_file_prefix"`
	FileExtension  string   `mapstructure:"receivables_file_extension"`
	EntityMarkers  []string `mapstructure:"receivables_entity_markers"`
	TotalRowMarker string   `mapstructure:"receivables_total_row_marker"`

	// Colunas obrigatórias das planilhas de extrato
	ColumnClientName       string `mapstructure:"receivables_column_client_name"`
	ColumnClientCode       string `mapstructure:"receivables_column_client_code"`
	ColumnTotalReceivable  string `mapstructure:"receivables_column_total"`
	ColumnOverdue90        string `mapstructure:"receivables_column_overdue_90"`
	ColumnOverdueScheduled string `mapstructure:"receivables_column_overdue_scheduled"`
}

type Report struct {
	OutputDir          string  `mapstructure:"report_output_dir"`
	OutputFilename     string  `mapstructure:"report_output_filename"`
	TopClients         int     `mapstructure:"report_top_clients"`
	Overdue90KPITarget float64 `mapstructure:"report_overdue_90_kpi_target"`
}

type ReconciliationSync struct {
	CronSchedule string `mapstructure:"reconciliation_sync_cron"`
	Enabled      bool   `mapstructure:"reconciliation_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/receivables")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("RECEIVABLES_DATA_DIR", "./data/receivables")
	viper.SetDefault("RECEIVABLES_FILE_PREFIX", "ContasReceber")
	viper.SetDefault("RECEIVABLES_FILE_EXTENSION", ".xlsx")
	viper.SetDefault("RECEIVABLES_ENTITY_MARKERS", "DND,DNI")
	viper.SetDefault("RECEIVABLES_TOTAL_ROW_MARKER", "Total")

	viper.SetDefault("RECEIVABLES_COLUMN_CLIENT_NAME", "Cliente")
	viper.SetDefault("RECEIVABLES_COLUMN_CLIENT_CODE", "Codigo Cliente")
	viper.SetDefault("RECEIVABLES_COLUMN_TOTAL", "Total Receber")
	viper.SetDefault("RECEIVABLES_COLUMN_OVERDUE_90", "Vencido 90 Dias")
	viper.SetDefault("RECEIVABLES_COLUMN_OVERDUE_SCHEDULED", "Vencido Programado")

	viper.SetDefault("REPORT_OUTPUT_DIR", "./data/processed")
	viper.SetDefault("REPORT_OUTPUT_FILENAME", "reconciliacao_contas_receber.xlsx")
	viper.SetDefault("REPORT_TOP_CLIENTS", 20)
	viper.SetDefault("REPORT_OVERDUE_90_KPI_TARGET", 5.0) // KPI: % máxima de carteira vencida há 90 dias

	viper.SetDefault("RECONCILIATION_SYNC_CRON", "0 7 * * 1") // Toda segunda-feira às 7h
	viper.SetDefault("RECONCILIATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
