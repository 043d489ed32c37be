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
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Forst         Forst         `mapstructure:",squash"`
	ForstSnapshot ForstSnapshot `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Forst holds the report taxonomy and the row filters used by the FORST queries.
type Forst struct {
	ZoneOrder        []string `mapstructure:"forst_zone_order"`
	ProductTypes     []string `mapstructure:"forst_product_types"`
	ExcludedStatuses []string `mapstructure:"forst_excluded_statuses"`
	OrderStages      []string `mapstructure:"forst_order_stages"`
	LakhDivisor      int64    `mapstructure:"forst_lakh_divisor"`
}

type ForstSnapshot struct {
	CronSchedule string `mapstructure:"forst_snapshot_cron"`
	Enabled      bool   `mapstructure:"forst_snapshot_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/fieldops?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FORST_ZONE_ORDER", "WEST,SOUTH,NORTH,EAST")
	viper.SetDefault("FORST_PRODUCT_TYPES", "RELOCATION,CONTRACT,SPP,UPGRADE_KIT,SOFTWARE,BD_CHARGES,BD_SPARE,MIDLIFE_UPGRADE,RETROFIT_KIT,TRAINING")
	viper.SetDefault("FORST_EXCLUDED_STATUSES", "CANCELLED,LOST")
	viper.SetDefault("FORST_ORDER_STAGES", "PO_RECEIVED,ORDER_BOOKED,WON")
	viper.SetDefault("FORST_LAKH_DIVISOR", 100000)

	viper.SetDefault("FORST_SNAPSHOT_CRON", "30 2 * * *") // todos os dias às 2h30
	viper.SetDefault("FORST_SNAPSHOT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: .env not read by viper, using environment only: ", err)
	}

	if err := decode(config); err != nil {
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

func decode(config *Config) error {
	return viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found")
}
