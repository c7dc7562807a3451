package pgx

import (
	"context"
	"fmt"

	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Opts holds dependencies for creating a pgx pool.
type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New creates a new pgxpool.Pool and manages its lifecycle.
func New(opts Opts) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), opts.Config.GetPgxURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := pool.Ping(ctx); err != nil {
					return fmt.Errorf("failed to ping postgres: %w", err)
				}
				opts.Logger.Info("Connected to postgres")
				return nil
			},
			OnStop: func(ctx context.Context) error {
				pool.Close()
				return nil
			},
		},
	)

	return pool, nil
}
