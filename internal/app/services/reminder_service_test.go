package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
)

// fakeSessionScanner serves a fixed session list filtered by the requested
// window, mimicking the date-range query
type fakeSessionScanner struct {
	sessions []*models.Session
	scanErr  error
	lastFrom time.Time
	lastTo   time.Time
}

func (f *fakeSessionScanner) ListByDateRange(_ context.Context, from, to time.Time) ([]*models.Session, error) {
	f.lastFrom, f.lastTo = from, to
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	var out []*models.Session
	for _, s := range f.sessions {
		if s.Date == nil {
			continue
		}
		if !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	calls   []int64
	failFor map[int64]error
}

func (f *fakeNotifier) NotifySessionEvent(_ context.Context, session *models.Session, eventKind SessionEventKind, _ []int64) (int, error) {
	if eventKind != SessionEventReminder {
		return 0, errors.New("unexpected event kind")
	}
	if err := f.failFor[session.ID]; err != nil {
		return 0, err
	}
	f.calls = append(f.calls, session.ID)
	return 1, nil
}

func dated(id int64, year int, month time.Month, day int) *models.Session {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &models.Session{ID: id, Name: "s", TeacherID: 1, Date: &d}
}

func TestRunDailyRemindersWindow(t *testing.T) {
	scanner := &fakeSessionScanner{sessions: []*models.Session{
		dated(1, 2024, time.March, 10), // today
		dated(2, 2024, time.March, 11), // tomorrow
		dated(3, 2024, time.March, 12), // day after
		{ID: 4, Name: "undated", TeacherID: 1},
	}}
	notifier := &fakeNotifier{}
	svc := &reminderServiceImpl{sessions: scanner, notifier: notifier}

	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	processed, err := svc.RunDailyReminders(context.Background(), now)
	if err != nil {
		t.Fatalf("RunDailyReminders() error = %v", err)
	}
	if processed != 1 {
		t.Fatalf("processed = %d, want 1 (only tomorrow's session)", processed)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != 2 {
		t.Errorf("notified sessions = %v, want [2]", notifier.calls)
	}

	wantFrom := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	if !scanner.lastFrom.Equal(wantFrom) || !scanner.lastTo.Equal(wantTo) {
		t.Errorf("window = [%v, %v), want [%v, %v)", scanner.lastFrom, scanner.lastTo, wantFrom, wantTo)
	}
}

func TestRunDailyRemindersLateFireSameWindow(t *testing.T) {
	scanner := &fakeSessionScanner{sessions: []*models.Session{
		dated(2, 2024, time.March, 11),
	}}
	notifier := &fakeNotifier{}
	svc := &reminderServiceImpl{sessions: scanner, notifier: notifier}

	// Firing at 23:59 still targets the same "tomorrow"
	now := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	processed, err := svc.RunDailyReminders(context.Background(), now)
	if err != nil {
		t.Fatalf("RunDailyReminders() error = %v", err)
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1", processed)
	}
}

func TestRunDailyRemindersFailOpen(t *testing.T) {
	scanner := &fakeSessionScanner{sessions: []*models.Session{
		dated(1, 2024, time.March, 11),
		dated(2, 2024, time.March, 11),
		dated(3, 2024, time.March, 11),
	}}
	notifier := &fakeNotifier{failFor: map[int64]error{2: errors.New("boom")}}
	svc := &reminderServiceImpl{sessions: scanner, notifier: notifier}

	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	processed, err := svc.RunDailyReminders(context.Background(), now)
	if err != nil {
		t.Fatalf("RunDailyReminders() error = %v (one failing session must not abort the run)", err)
	}
	if processed != 2 {
		t.Errorf("processed = %d, want 2", processed)
	}
	if len(notifier.calls) != 2 {
		t.Errorf("notified sessions = %v, want sessions 1 and 3", notifier.calls)
	}
}

func TestRunDailyRemindersScanFailure(t *testing.T) {
	scanErr := errors.New("store unreachable")
	scanner := &fakeSessionScanner{scanErr: scanErr}
	svc := &reminderServiceImpl{sessions: scanner, notifier: &fakeNotifier{}}

	now := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	if _, err := svc.RunDailyReminders(context.Background(), now); !errors.Is(err, scanErr) {
		t.Fatalf("RunDailyReminders() error = %v, want scan error", err)
	}
}
