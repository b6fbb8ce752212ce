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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Ingestion        Ingestion        `mapstructure:",squash"`
	ConsistencyCheck ConsistencyCheck `mapstructure:",squash"`
	RollupRebuild    RollupRebuild    `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
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

type Ingestion struct {
	MaxConcurrentJobs int `mapstructure:"ingestion_max_concurrent_jobs"`
	// FinalizationDays é o horizonte além do qual uma revisão de métricas
	// de um dia histórico é classificada como "revised" para auditoria.
	FinalizationDays int `mapstructure:"ingestion_finalization_days"`
}

type ConsistencyCheck struct {
	CronSchedule string `mapstructure:"consistency_check_cron"`
	LookbackDays int    `mapstructure:"consistency_check_lookback_days"`
	Enabled      bool   `mapstructure:"consistency_check_enabled"`
}

type RollupRebuild struct {
	CronSchedule string `mapstructure:"rollup_rebuild_cron"`
	LookbackDays int    `mapstructure:"rollup_rebuild_lookback_days"`
	Enabled      bool   `mapstructure:"rollup_rebuild_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adstats")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("INGESTION_MAX_CONCURRENT_JOBS", 4) // upserts por chave em paralelo
	viper.SetDefault("INGESTION_FINALIZATION_DAYS", 30)  // revisões além disso viram "revised"

	// Defaults para verificação de consistência
	viper.SetDefault("CONSISTENCY_CHECK_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("CONSISTENCY_CHECK_LOOKBACK_DAYS", 7)
	viper.SetDefault("CONSISTENCY_CHECK_ENABLED", false)

	// Defaults para reconstrução completa de rollups
	viper.SetDefault("ROLLUP_REBUILD_CRON", "0 6 * * 0") // Domingos às 6h da manhã
	viper.SetDefault("ROLLUP_REBUILD_LOOKBACK_DAYS", 90)
	viper.SetDefault("ROLLUP_REBUILD_ENABLED", false)

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
