package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pagecast/config"
	"pagecast/internal/domain/lifecycle"
	"pagecast/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the page database. The connection is verified on start, and the
// schema is migrated first when autoMigrate is enabled.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement writes go through TransactionManager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	logger := params.Logger.With(slog.String("component", "postgres"))
	sampler := &poolSampler{db: sqlDB, logger: logger, interval: poolSampleInterval}
	stopSampler := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				logger.Info("[DB] Schema migrated", slog.Int("models", len(Models())))
			}

			var sampleCtx context.Context
			sampleCtx, stopSampler = context.WithCancel(context.Background())
			go sampler.run(sampleCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampler()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolSampler reports connection pool contention between samples.
type poolSampler struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
}

func (s *poolSampler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	prev := s.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := s.db.Stats()
			s.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (s *poolSampler) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, "[DB] Pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
