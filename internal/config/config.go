package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

type Config struct {
	Env               string   `env:"APP_ENV" env-default:"local"`
	AppName           string   `env:"APP_NAME" env-default:"taskmanager"`
	AppVersion        string   `env:"APP_VERSION" env-default:"dev"`
	AppPort           string   `env:"APP_PORT" env-default:"8080"`
	TrustedProxies    []string `env:"TRUSTED_PROXIES" env-separator:","`
	TranslationFolder string   `env:"TRANSLATION_FOLDER"`
	DB                DBConfig
}

type DBConfig struct {
	Driver          string        `env:"DB_DRIVER" env-default:"mysql"`
	Host            string        `env:"DB_HOST" env-default:"db"`
	Port            string        `env:"DB_PORT" env-default:"3306"`
	User            string        `env:"DB_USER" env-default:"taskmanager"`
	Password        string        `env:"DB_PASSWORD" env-default:"taskmanager"`
	Name            string        `env:"DB_NAME" env-default:"taskmanager"`
	Params          string        `env:"DB_PARAMS" env-default:"parseTime=true&loc=UTC"`
	SSLMode         string        `env:"DB_SSL_MODE" env-default:"disable"`
	SQLitePath      string        `env:"SQLITE_PATH" env-default:"taskmanager.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	MigrateOnStart  bool          `env:"DB_MIGRATE_ON_START" env-default:"true"`
}

// LoadConfig reads .env (when present) and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	switch c.DB.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DB.Driver)
	}

	return nil
}
