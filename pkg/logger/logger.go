package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls where and how dashboard logs are written.
type Config struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

// Logger wraps a zerolog logger so packages share one field-oriented API.
type Logger struct {
	logger zerolog.Logger
}

func New(config Config) *Logger {
	return NewWithWriter(config, openOutput(config.Output))
}

// NewWithWriter builds a logger writing to w regardless of config.Output.
func NewWithWriter(config Config, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(parseLevel(config.Level))

	var zl zerolog.Logger
	if config.Format == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: getTimeFormat(config.TimeFormat),
		}).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(w).With().Timestamp().Logger()
	}

	return &Logger{logger: zl}
}

func openOutput(output string) io.Writer {
	switch output {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return os.Stdout
	}
	return file
}

func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *Logger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *Logger) Fatal(msg string) {
	l.logger.Fatal().Msg(msg)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.logger.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{logger: ctx.Logger()}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func getTimeFormat(format string) string {
	if format != "" {
		return format
	}
	return time.RFC3339
}

// SetGlobalLogger routes zerolog's package-level logger through l as well.
func SetGlobalLogger(l *Logger) {
	log.Logger = l.logger
}
