package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"station-report/internal/report/model"
)

type Config struct {
	Host         string        `envconfig:"HOST" default:"127.0.0.1"`
	Port         int           `envconfig:"PORT" default:"8082"`
	AllowOrigins []string      `envconfig:"ALLOW_ORIGINS" default:"*"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile      string        `envconfig:"LOG_FILE" default:"logs/station-report.log"`
	MaxUploadMB  int           `envconfig:"MAX_UPLOAD_MB" default:"32"`
	RateRPS      float64       `envconfig:"RATE_RPS" default:"20"`
	RateBurst    int           `envconfig:"RATE_BURST" default:"40"`
	CacheSize    int           `envconfig:"CACHE_SIZE" default:"64"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"2h"`
	BatchWorkers int           `envconfig:"BATCH_WORKERS" default:"4"`

	// раскладка отчёта
	HeaderRow    int    `envconfig:"HEADER_ROW" default:"7"`
	TimeColumn   string `envconfig:"TIME_COLUMN" default:"Giờ"`
	AmountColumn string `envconfig:"AMOUNT_COLUMN" default:"Thành tiền (VNĐ)"`
}

const envPrefix = "REPORT"

// Load читает переменные REPORT_*; .env в рабочем каталоге подхватывается, если есть.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from env: %w", err)
	}
	if cfg.HeaderRow < 0 {
		return Config{}, fmt.Errorf("header row must be >= 0, got %d", cfg.HeaderRow)
	}
	return cfg, nil
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// Layout — раскладка по умолчанию со строкой заголовков из конфига.
func (c Config) Layout() model.Layout {
	l := model.DefaultLayout()
	l.HeaderRow = c.HeaderRow
	return l
}
