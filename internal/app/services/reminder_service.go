package services

import (
	"context"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/repositories"
	"github.com/scolaris/scolaris/internal/pkg/helpers"
	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// sessionScanner is the slice of SessionRepository the reminder trigger
// needs
type sessionScanner interface {
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.Session, error)
}

// sessionNotifier is the slice of NotificationService the reminder trigger
// needs
type sessionNotifier interface {
	NotifySessionEvent(ctx context.Context, session *models.Session, eventKind SessionEventKind, affectedStudentIDs []int64) (int, error)
}

// ReminderService defines the interface for the daily session reminder run
type ReminderService interface {
	RunDailyReminders(ctx context.Context, now time.Time) (int, error)
}

// reminderServiceImpl implements the ReminderService interface
type reminderServiceImpl struct {
	sessions sessionScanner
	notifier sessionNotifier
}

// NewReminderService creates a new reminder service instance
func NewReminderService(sessions *repositories.SessionRepository, notifier NotificationService) ReminderService {
	return &reminderServiceImpl{
		sessions: sessions,
		notifier: notifier,
	}
}

// RunDailyReminders scans the sessions dated tomorrow and fans a reminder
// notification out for each. Tomorrow is the half-open window
// [startOfDay(now)+1d, startOfDay(now)+2d), so a session is picked up
// exactly once no matter what time today the run fires; sessions without a
// date never match.
//
// The run is best-effort: a session whose fan-out fails is logged and
// skipped, it never aborts the scan. Only a failure to scan at all is
// returned. The result counts sessions processed, not notifications
// written.
func (s *reminderServiceImpl) RunDailyReminders(ctx context.Context, now time.Time) (int, error) {
	from := helpers.StartOfDay(now).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	sessions, err := s.sessions.ListByDateRange(ctx, from, to)
	if err != nil {
		logger.Error().Err(err).Time("from", from).Time("to", to).Msg("Reminder run failed to scan sessions")
		return 0, err
	}

	processed := 0
	for _, session := range sessions {
		written, err := s.notifier.NotifySessionEvent(ctx, session, SessionEventReminder, nil)
		if err != nil {
			logger.Error().Err(err).Int64("sessionId", session.ID).Msg("Reminder fan-out failed, continuing with next session")
			continue
		}
		processed++
		logger.Debug().Int64("sessionId", session.ID).Int("written", written).Msg("Session reminder dispatched")
	}

	logger.Info().Int("sessions", processed).Int("matched", len(sessions)).Time("windowStart", from).Msg("Daily reminder run finished")
	return processed, nil
}
