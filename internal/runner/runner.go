package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"scamurl/features/lists"
	"scamurl/internal/config"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

var (
	ErrFailedToCreateScheduler = errors.New("failed to create scheduler")
	ErrFailedToCreateJob       = errors.New("failed to create job")

	instance *Runner
	mu       sync.Mutex
)

// Runner schedules the periodic list reload while serving. The reload
// re-reads the config file, rebuilds the list set and swaps it in; scans
// in flight keep the set they started with.
type Runner struct {
	scheduler gocron.Scheduler
	job       gocron.Job
}

// NewRunner creates the scheduler.
func NewRunner() (*Runner, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create scheduler")
		return nil, ErrFailedToCreateScheduler
	}

	return &Runner{scheduler: scheduler}, nil
}

// ScheduleListReload registers the reload job with the given cron
// expression and starts the scheduler.
func (r *Runner) ScheduleListReload(cronSchedule string) error {
	job, err := r.scheduler.NewJob(
		gocron.CronJob(cronSchedule, false),
		gocron.NewTask(reloadLists),
		gocron.WithName("lists_reload"),
		gocron.WithTags("lists"),
	)
	if err != nil {
		log.Error().Err(err).Str("cron", cronSchedule).Msg("Failed to schedule list reload")
		return ErrFailedToCreateJob
	}

	r.job = job
	r.scheduler.Start()

	if nextRun, err := job.NextRun(); err == nil {
		log.Info().
			Str("cron", cronSchedule).
			Time("next_run", nextRun).
			Msg("List reload scheduled")
	}

	return nil
}

func reloadLists() {
	cfg, err := config.ReloadConfig()
	if err != nil {
		log.Error().Err(err).Msg("List reload failed, keeping current lists")
		return
	}

	lists.Swap(lists.NewListSet(cfg.Lists))
	log.Info().Msg("Lists rebuilt from configuration")
}

// Stop halts the scheduler.
func (r *Runner) Stop(ctx context.Context) error {
	return r.scheduler.Shutdown()
}

// InitializeRunner starts the singleton reloader when a cron schedule is
// configured. No schedule means the lists stay static for the lifetime of
// the process.
func InitializeRunner(cronSchedule string) (*Runner, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if cronSchedule == "" {
		log.Info().Msg("List reload disabled, lists are static")
		return nil, nil
	}

	r, err := NewRunner()
	if err != nil {
		return nil, err
	}

	if err := r.ScheduleListReload(cronSchedule); err != nil {
		return nil, err
	}

	instance = r
	return instance, nil
}

// ShutdownRunner stops the singleton reloader if it is running.
func ShutdownRunner(ctx context.Context) {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return
	}

	if err := instance.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to stop scheduler")
	}
	instance = nil
}
