package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"     validate:"required"`
	Logger     LoggerConfig     `yaml:"logger"     validate:"required"`
	Gin        GinConfig        `yaml:"gin"        validate:"required"`
	Postgres   PostgresConfig   `yaml:"postgres"   validate:"required"`
	Auth       AuthConfig       `yaml:"auth"       validate:"required"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Storage    StorageConfig    `yaml:"storage"    validate:"required"`
	Dispatcher DispatcherConfig `yaml:"dispatcher" validate:"required"`
	Bank       BankConfig       `yaml:"bank"       validate:"required"`
	Letter     LetterConfig     `yaml:"letter"     validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"15s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"15s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured string level to a wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"lodgebooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"      env:"AUTH_JWT_SECRET"      validate:"required"`
	TokenTTL      time.Duration `yaml:"token_ttl"       env:"AUTH_TOKEN_TTL"       env-default:"24h" validate:"gt=0"`
	ResetTokenTTL time.Duration `yaml:"reset_token_ttl" env:"AUTH_RESET_TOKEN_TTL" env-default:"1h"  validate:"gt=0"`
	ResetBaseURL  string        `yaml:"reset_base_url"  env:"AUTH_RESET_BASE_URL"  env-default:"http://localhost:8080/reset-password"`
}

// SMTPConfig may be left empty; the mailer then logs and drops messages,
// which keeps local development working without a mail relay.
type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"     env:"SMTP_FROM" env-default:"no-reply@lodgebooker.local"`
}

type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"        env-default:"localhost:9000" validate:"required"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"      validate:"required"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"      validate:"required"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"payment-receipts" validate:"required"`
	UseSSL        bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"false"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL" env-default:"http://localhost:9000" validate:"required"`
}

type DispatcherConfig struct {
	Interval  time.Duration `yaml:"interval"   env:"DISPATCHER_INTERVAL"   env-default:"15s" validate:"required,gt=0"`
	BatchSize int           `yaml:"batch_size" env:"DISPATCHER_BATCH_SIZE" env-default:"20"  validate:"min=1"`
}

// BankConfig is the transfer destination shown to guests on the payment
// screen.
type BankConfig struct {
	Name          string `yaml:"name"           env:"BANK_NAME"           validate:"required"`
	AccountNumber string `yaml:"account_number" env:"BANK_ACCOUNT_NUMBER" validate:"required"`
	AccountName   string `yaml:"account_name"   env:"BANK_ACCOUNT_NAME"   validate:"required"`
}

type LetterConfig struct {
	Organization string `yaml:"organization" env:"LETTER_ORGANIZATION" env-default:"Crestview Lodge" validate:"required"`
	Chapter      string `yaml:"chapter"      env:"LETTER_CHAPTER"      env-default:"Accommodation Confirmation" validate:"required"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
