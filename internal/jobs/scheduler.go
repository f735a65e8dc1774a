package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/metrics"
)

// Job is a unit of scheduled maintenance work
type Job interface {
	Name() string
	Process(ctx context.Context) (int64, error)
}

// Scheduler runs jobs on cron schedules. Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron       *cron.Cron
	runTimeout time.Duration
}

// NewScheduler creates a scheduler running in UTC
func NewScheduler() *Scheduler {
	log := cronLogger{slog.Default()}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(log),
			cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
		),
		runTimeout: DefaultRunTimeout,
	}
}

// Schedule registers job under a standard cron spec or descriptor (e.g. "@every 1h")
func (s *Scheduler) Schedule(spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.run(job) }); err != nil {
		return fmt.Errorf(ErrMsgInvalidSchedule, spec, job.Name(), err)
	}
	slog.Info(LogMsgJobScheduled, "job", job.Name(), "schedule", spec)
	return nil
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info(LogMsgSchedulerStarted, "jobs", len(s.cron.Entries()))
}

// Stop prevents new runs and waits for running jobs, up to ctx's deadline
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info(LogMsgSchedulerStopped)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes job once, synchronously, with the same logging and metrics as a scheduled run
func (s *Scheduler) RunNow(job Job) (int64, error) {
	return s.run(job)
}

func (s *Scheduler) run(job Job) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	start := time.Now()
	rows, err := job.Process(ctx)
	if err != nil {
		metrics.JobRuns.WithLabelValues(job.Name(), metrics.ResultError).Inc()
		log.Error(LogMsgJobFailed, "job", job.Name(), "error", err)
		return 0, err
	}

	metrics.JobRuns.WithLabelValues(job.Name(), metrics.ResultSuccess).Inc()
	metrics.JobRowsAffected.WithLabelValues(job.Name()).Add(float64(rows))
	log.Info(LogMsgJobCompleted, "job", job.Name(), "rows", rows, "duration", time.Since(start))
	return rows, nil
}

// cronLogger adapts slog to cron's logger interface
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(LogMsgCronError, append([]interface{}{"msg", msg, "error", err}, keysAndValues...)...)
}
