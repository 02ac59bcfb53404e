package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pagecast/config"
	deliverycontext "pagecast/internal/delivery/context"
	"pagecast/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormSlogLogger routes GORM output through slog. Statements issued while
// serving a request are logged with that request's logger, so they carry its
// request_id and caller.
type gormSlogLogger struct {
	base          *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	l := &gormSlogLogger{
		base:          base.With(slog.String("component", "gorm")),
		level:         gormlogger.Warn,
		slowThreshold: cfg.Env.Log.SlowQuery,
	}
	if cfg.Env.Debug {
		l.level = gormlogger.Info
	}

	return l
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if scoped := deliverycontext.GetLogger(ctx); scoped != nil {
		return scoped.With(slog.String("component", "gorm"))
	}

	return l.base
}

func (l *gormSlogLogger) message(ctx context.Context, atLeast gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < atLeast {
		return
	}
	l.loggerFor(ctx).LogAttrs(ctx, level, "[DB] "+fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

// Trace logs failed statements, then slow ones, then everything at Info.
// Record-not-found is expected on the resolution path and never logged.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	attrs := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := fc()

		return append([]slog.Attr{
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		}, extra...)
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelError, "[DB] Query failed", attrs(slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelWarn, "[DB] Slow query", attrs(slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= gormlogger.Info:
		l.loggerFor(ctx).LogAttrs(ctx, slog.LevelDebug, "[DB] Query", attrs()...)
	}
}
