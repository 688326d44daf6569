package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/scolaris/scolaris/internal/app/services"
)

// Scheduler owns the background cron jobs of the application. Today that is
// the daily session reminder run.
type Scheduler struct {
	cron   *cron.Cron
	logger zerolog.Logger
}

// NewScheduler builds the cron runner and registers the reminder job on the
// given 5-field schedule. Jobs are chained with SkipIfStillRunning so a slow
// run is never stacked on top of itself.
func NewScheduler(reminders services.ReminderService, schedule string, logger zerolog.Logger) (*Scheduler, error) {
	cronLogger := &zerologCronAdapter{logger: logger}

	c := cron.New(
		cron.WithChain(
			cron.SkipIfStillRunning(cronLogger),
			cron.Recover(cronLogger),
		),
	)

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		processed, err := reminders.RunDailyReminders(ctx, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("Scheduled reminder run failed")
			return
		}
		logger.Info().Int("sessionsProcessed", processed).Msg("Scheduled reminder run finished")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Start launches the cron runner in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("Scheduler started")
}

// Stop halts scheduling and waits for any running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Scheduler stopped")
}

// zerologCronAdapter satisfies cron.Logger on top of zerolog
type zerologCronAdapter struct {
	logger zerolog.Logger
}

func (a *zerologCronAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info().Fields(fieldsMap(keysAndValues)).Msg(msg)
}

func (a *zerologCronAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error().Err(err).Fields(fieldsMap(keysAndValues)).Msg(msg)
}

func fieldsMap(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
