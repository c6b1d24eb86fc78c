package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const serviceName = "station-report"

// SetupLogger: консоль для человека, JSON в файл с ротацией (если задан LogFile).
func SetupLogger(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	sinks := []io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}}
	if f := rotatingFile(cfg.LogFile); f != nil {
		sinks = append(sinks, f)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(sinks...)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	log.Logger = logger
	return logger
}

func rotatingFile(path string) io.Writer {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    20, // MB
		MaxBackups: 10,
		MaxAge:     14, // days
		Compress:   true,
	}
}
