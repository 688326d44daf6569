package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
	"github.com/scolaris/scolaris/internal/pkg/helpers"
	"github.com/scolaris/scolaris/internal/pkg/validation"
)

// ResolveSessionStatus computes a session's lifecycle phase from its stored
// schedule against now. It is pure and never mutates the session.
//
// A session missing its date, start time or end time is NotScheduled. A
// session dated strictly after today is Upcoming, strictly before is
// Completed. On the session's own date the start and end times decide:
// before the start it is Upcoming, after the end Completed, in between
// Ongoing.
func ResolveSessionStatus(session *models.Session, now time.Time) (models.SessionStatus, error) {
	if session == nil {
		return "", apperrors.NewValidationError("session is nil")
	}
	if session.Date == nil || session.StartTime == nil || session.EndTime == nil {
		return models.StatusNotScheduled, nil
	}

	startMinutes, err := minutesOfDay(*session.StartTime)
	if err != nil {
		return "", err
	}
	endMinutes, err := minutesOfDay(*session.EndTime)
	if err != nil {
		return "", err
	}

	today := helpers.StartOfDay(now)
	sessionDay := helpers.CalendarDay(*session.Date, now.Location())

	switch {
	case sessionDay.After(today):
		return models.StatusUpcoming, nil
	case sessionDay.Before(today):
		return models.StatusCompleted, nil
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	switch {
	case nowMinutes < startMinutes:
		return models.StatusUpcoming, nil
	case nowMinutes > endMinutes:
		return models.StatusCompleted, nil
	default:
		return models.StatusOngoing, nil
	}
}

// minutesOfDay parses a zero-padded "HH:MM" string into minutes since
// midnight
func minutesOfDay(hhmm string) (int, error) {
	if !validation.IsTimeOfDay(hhmm) {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrMalformedTime, hhmm)
	}
	parts := strings.SplitN(hhmm, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes, nil
}

// formatSessionSchedule renders a session's date and time range for
// notification text, like "Monday, 11 March 2024 from 09:00 to 11:00".
// Sessions with only a start time render "at START"; sessions with no
// schedule render an empty string.
func formatSessionSchedule(session *models.Session) string {
	if session.Date == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(session.Date.Format("Monday, 2 January 2006"))

	switch {
	case session.StartTime != nil && session.EndTime != nil:
		fmt.Fprintf(&b, " from %s to %s", *session.StartTime, *session.EndTime)
	case session.StartTime != nil:
		fmt.Fprintf(&b, " at %s", *session.StartTime)
	}
	return b.String()
}
