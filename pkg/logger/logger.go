package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewLogger(cfg config.AppConfig) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{}
	var output io.Writer

	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	if cfg.Silent {
		logFilePath := cfg.LogFilePath
		if logFilePath == "" {
			logFilePath = "/tmp/movie_lens_api.log"
		}

		output = &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    500,
			MaxAge:     30,
			MaxBackups: 3,
			Compress:   true,
			LocalTime:  true,
		}
	} else {
		output = os.Stdout
	}

	return slog.New(slog.NewJSONHandler(output, opts)), nil
}

// GormLogger routes gorm's query and error logs into slog.
// SQL statements are only emitted at debug level.
type GormLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
}

func NewGormLogger(logger *slog.Logger) *GormLogger {
	return &GormLogger{logger: logger, slowThreshold: 200 * time.Millisecond}
}

func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...), "tags", []string{"gorm"})
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...), "tags", []string{"gorm"})
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...), "tags", []string{"gorm"})
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.ErrorContext(ctx, "query failed", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err, "tags", []string{"gorm"})
	case elapsed > l.slowThreshold:
		l.logger.WarnContext(ctx, "slow query", "sql", sql, "rows", rows, "elapsed", elapsed, "tags", []string{"gorm"})
	default:
		l.logger.DebugContext(ctx, "query executed", "sql", sql, "rows", rows, "elapsed", elapsed, "tags", []string{"gorm"})
	}
}
