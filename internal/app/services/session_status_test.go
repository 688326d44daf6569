package services

import (
	"errors"
	"testing"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestResolveSessionStatus(t *testing.T) {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *models.Session
		now     time.Time
		want    models.SessionStatus
	}{
		{
			name:    "no date",
			session: &models.Session{StartTime: strPtr("09:00"), EndTime: strPtr("11:00")},
			now:     day,
			want:    models.StatusNotScheduled,
		},
		{
			name:    "date but no start time",
			session: &models.Session{Date: timePtr(day), EndTime: strPtr("11:00")},
			now:     day,
			want:    models.StatusNotScheduled,
		},
		{
			name:    "date but no end time",
			session: &models.Session{Date: timePtr(day), StartTime: strPtr("09:00")},
			now:     day,
			want:    models.StatusNotScheduled,
		},
		{
			name: "date strictly after today",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC),
			want: models.StatusUpcoming,
		},
		{
			name: "date strictly before today",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
			want: models.StatusCompleted,
		},
		{
			name: "same day before start",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 11, 8, 59, 0, 0, time.UTC),
			want: models.StatusUpcoming,
		},
		{
			name: "same day at exact start",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC),
			want: models.StatusOngoing,
		},
		{
			name: "same day mid session",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 11, 10, 30, 0, 0, time.UTC),
			want: models.StatusOngoing,
		},
		{
			name: "same day at exact end",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 11, 11, 0, 0, 0, time.UTC),
			want: models.StatusOngoing,
		},
		{
			name: "same day after end",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 11, 11, 1, 0, 0, time.UTC),
			want: models.StatusCompleted,
		},
		{
			name: "midnight-spanning times clamp to same day",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("00:00"), EndTime: strPtr("23:59"),
			},
			now:  time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
			want: models.StatusOngoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSessionStatus(tt.session, tt.now)
			if err != nil {
				t.Fatalf("ResolveSessionStatus() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveSessionStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Date columns scan back as midnight UTC regardless of the server's clock
// location. The resolver must compare calendar days, not converted
// instants, or every status shifts by a day on servers behind UTC.
func TestResolveSessionStatusUTCDateOnLocalClock(t *testing.T) {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	west := time.FixedZone("UTC-5", -5*60*60)
	east := time.FixedZone("UTC+9", 9*60*60)

	tests := []struct {
		name    string
		session *models.Session
		now     time.Time
		want    models.SessionStatus
	}{
		{
			name: "evening session mid run behind UTC",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("19:00"), EndTime: strPtr("21:00"),
			},
			now:  time.Date(2024, time.March, 11, 20, 0, 0, 0, west),
			want: models.StatusOngoing,
		},
		{
			name: "before start behind UTC",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("19:00"), EndTime: strPtr("21:00"),
			},
			now:  time.Date(2024, time.March, 11, 8, 0, 0, 0, west),
			want: models.StatusUpcoming,
		},
		{
			name: "day before behind UTC",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("19:00"), EndTime: strPtr("21:00"),
			},
			now:  time.Date(2024, time.March, 10, 23, 0, 0, 0, west),
			want: models.StatusUpcoming,
		},
		{
			name: "morning session mid run ahead of UTC",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 11, 10, 0, 0, 0, east),
			want: models.StatusOngoing,
		},
		{
			name: "day after ahead of UTC",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			now:  time.Date(2024, time.March, 12, 1, 0, 0, 0, east),
			want: models.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSessionStatus(tt.session, tt.now)
			if err != nil {
				t.Fatalf("ResolveSessionStatus() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveSessionStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSessionStatusIsPure(t *testing.T) {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	session := &models.Session{
		Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
	}
	now := time.Date(2024, time.March, 11, 10, 0, 0, 0, time.UTC)

	first, err := ResolveSessionStatus(session, now)
	if err != nil {
		t.Fatalf("ResolveSessionStatus() error = %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := ResolveSessionStatus(session, now)
		if err != nil {
			t.Fatalf("ResolveSessionStatus() error = %v", err)
		}
		if again != first {
			t.Errorf("ResolveSessionStatus() not idempotent: %v then %v", first, again)
		}
	}
	if session.Status != "" {
		t.Errorf("session mutated: Status = %q", session.Status)
	}
}

func TestResolveSessionStatusMalformedTime(t *testing.T) {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	for _, bad := range []string{"9:00", "25:00", "09:61", "morning", "09-00", ""} {
		session := &models.Session{
			Date: timePtr(day), StartTime: strPtr(bad), EndTime: strPtr("11:00"),
		}
		_, err := ResolveSessionStatus(session, day)
		if err == nil {
			t.Errorf("ResolveSessionStatus() with start %q: expected error", bad)
			continue
		}
		if !errors.Is(err, apperrors.ErrMalformedTime) {
			t.Errorf("ResolveSessionStatus() with start %q: error = %v, want ErrMalformedTime", bad, err)
		}
	}
}

func TestFormatSessionSchedule(t *testing.T) {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *models.Session
		want    string
	}{
		{
			name:    "no date",
			session: &models.Session{StartTime: strPtr("09:00")},
			want:    "",
		},
		{
			name:    "date only",
			session: &models.Session{Date: timePtr(day)},
			want:    "Monday, 11 March 2024",
		},
		{
			name:    "date and start only",
			session: &models.Session{Date: timePtr(day), StartTime: strPtr("09:00")},
			want:    "Monday, 11 March 2024 at 09:00",
		},
		{
			name: "full range",
			session: &models.Session{
				Date: timePtr(day), StartTime: strPtr("09:00"), EndTime: strPtr("11:00"),
			},
			want: "Monday, 11 March 2024 from 09:00 to 11:00",
		},
		{
			name:    "end without start appends nothing",
			session: &models.Session{Date: timePtr(day), EndTime: strPtr("11:00")},
			want:    "Monday, 11 March 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSessionSchedule(tt.session); got != tt.want {
				t.Errorf("formatSessionSchedule() = %q, want %q", got, tt.want)
			}
		})
	}
}
