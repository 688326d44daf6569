package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeReminderService struct {
	runs int
}

func (f *fakeReminderService) RunDailyReminders(ctx context.Context, now time.Time) (int, error) {
	f.runs++
	return 0, nil
}

func TestNewSchedulerRejectsBadSchedule(t *testing.T) {
	if _, err := NewScheduler(&fakeReminderService{}, "not a cron line", zerolog.Nop()); err == nil {
		t.Fatal("expected an error for a malformed schedule")
	}
}

func TestNewSchedulerAcceptsStandardSchedule(t *testing.T) {
	s, err := NewScheduler(&fakeReminderService{}, "0 8 * * *", zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil {
		t.Fatal("expected a scheduler")
	}
}

func TestFieldsMapPairsKeysWithValues(t *testing.T) {
	fields := fieldsMap([]interface{}{"a", 1, "b", "two", "dangling"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields["a"] != 1 || fields["b"] != "two" {
		t.Fatalf("unexpected fields: %#v", fields)
	}
}
