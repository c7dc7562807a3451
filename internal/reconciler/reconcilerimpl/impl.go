package reconcilerimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/internal/domain"
	"github.com/fredd/aora/internal/reconciler"
	"github.com/fredd/aora/internal/repositories/orphan"
	"github.com/fredd/aora/pkg/logger"
	"github.com/fredd/aora/pkg/retry"
)

type Opts struct {
	fx.In

	Storage    appwrite.Storage
	OrphanRepo orphan.Repository
	Logger     logger.Logger
	Config     *config.Config
}

type ReconcilerImpl struct {
	Storage    appwrite.Storage
	OrphanRepo orphan.Repository
	Logger     logger.Logger
	Config     *config.Config

	// limiter paces remote deletes so sweeps never hammer the service.
	limiter  *rate.Limiter
	retryCfg retry.Config
}

func New(opts Opts) *ReconcilerImpl {
	return &ReconcilerImpl{
		Storage:    opts.Storage,
		OrphanRepo: opts.OrphanRepo,
		Logger:     opts.Logger.WithComponent("Reconciler"),
		Config:     opts.Config,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		retryCfg:   retry.DefaultConfig(),
	}
}

var _ reconciler.Client = (*ReconcilerImpl)(nil)

func (r *ReconcilerImpl) SweepFileOrphans(ctx context.Context) error {
	orphans, err := r.OrphanRepo.ListUnresolved(ctx, domain.OrphanKindFile, r.Config.Reconciler.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list file orphans: %w", err)
	}

	if len(orphans) == 0 {
		r.Logger.Debug("No file orphans to sweep")
		return nil
	}

	r.Logger.Info("Sweeping file orphans", "count", len(orphans))

	var swept, failed int
	for _, o := range orphans {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}

		err := retry.Do(ctx, r.Logger, "delete orphaned file", func() error {
			return r.Storage.DeleteFile(ctx, o.BucketID, o.RemoteID)
		}, r.retryCfg)
		if err != nil {
			r.Logger.Error("Failed to delete orphaned file", "file_id", o.RemoteID, "error", err)
			failed++
			continue
		}

		if err := r.OrphanRepo.MarkResolved(ctx, o.ID); err != nil {
			r.Logger.Error("Failed to mark orphan resolved", "id", o.ID, "error", err)
			failed++
			continue
		}
		swept++
	}

	r.Logger.Info("File orphan sweep finished", "swept", swept, "failed", failed)
	return nil
}

func (r *ReconcilerImpl) ReportAccountOrphans(ctx context.Context) error {
	orphans, err := r.OrphanRepo.ListUnresolved(ctx, domain.OrphanKindAccount, r.Config.Reconciler.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list account orphans: %w", err)
	}

	for _, o := range orphans {
		r.Logger.Warn("Account orphan awaiting manual review",
			"account_id", o.RemoteID,
			"note", o.Note,
			"since", o.CreatedAt,
		)
	}
	return nil
}

// ScheduleSweeps registers the recurring sweep on the configured cron
// schedule and ties the scheduler's lifetime to ctx.
func (r *ReconcilerImpl) ScheduleSweeps(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create reconciler scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(r.Config.Reconciler.Schedule, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				r.Logger.Info("Context cancelled, skipping orphan sweep")
				return
			}

			sweepCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			if err := r.SweepFileOrphans(sweepCtx); err != nil {
				r.Logger.Error("Orphan sweep failed", "error", err)
			}
			if err := r.ReportAccountOrphans(sweepCtx); err != nil {
				r.Logger.Error("Account orphan report failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule orphan sweep: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		r.Logger.Info("Stopping reconciler scheduler")
		if err := scheduler.Shutdown(); err != nil {
			r.Logger.Error("Failed to shut down reconciler scheduler", "error", err)
		}
	}()

	return nil
}
