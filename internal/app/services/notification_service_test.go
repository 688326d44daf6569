package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/repositories"
)

func int64Ptr(v int64) *int64 { return &v }

// fakeNotificationStore records created notifications in memory and can
// simulate duplicate suppression and write failures
type fakeNotificationStore struct {
	created    []*models.Notification
	duplicates map[string]bool
	failFor    map[int64]error
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{
		duplicates: map[string]bool{},
		failFor:    map[int64]error{},
	}
}

func (f *fakeNotificationStore) dedupeKey(n *models.Notification) string {
	if n.TriggerDate == nil {
		return ""
	}
	var entity int64
	if n.RelatedEntityID != nil {
		entity = *n.RelatedEntityID
	}
	return fmt.Sprintf("%d|%d|%s|%s", entity, n.RecipientUserID, n.Category,
		n.TriggerDate.Format("2006-01-02"))
}

func (f *fakeNotificationStore) Create(_ context.Context, n *models.Notification) (bool, error) {
	if err := f.failFor[n.RecipientUserID]; err != nil {
		return false, err
	}
	if key := f.dedupeKey(n); key != "" {
		if f.duplicates[key] {
			return false, nil
		}
		f.duplicates[key] = true
	}
	n.ID = int64(len(f.created) + 1)
	f.created = append(f.created, n)
	return true, nil
}

func (f *fakeNotificationStore) ListByRecipient(_ context.Context, userID int64, _ uint64, _ int) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.created {
		if n.RecipientUserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) CountByRecipient(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, n := range f.created {
		if n.RecipientUserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) CountUnread(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, n := range f.created {
		if n.RecipientUserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, id, userID int64) error {
	for _, n := range f.created {
		if n.ID == id && n.RecipientUserID == userID {
			n.Read = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationStore) MarkAllRead(_ context.Context, userID int64) (int64, error) {
	var flipped int64
	for _, n := range f.created {
		if n.RecipientUserID == userID && !n.Read {
			n.Read = true
			flipped++
		}
	}
	return flipped, nil
}

func (f *fakeNotificationStore) Delete(_ context.Context, id, userID int64) error {
	for i, n := range f.created {
		if n.ID == id && n.RecipientUserID == userID {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

type fakeTeacherDirectory struct {
	teachers map[int64]*models.Teacher
}

func (f *fakeTeacherDirectory) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, repositories.ErrTeacherNotFound
	}
	return t, nil
}

type fakeStudentDirectory struct {
	students map[int64]*models.Student
}

func (f *fakeStudentDirectory) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, repositories.ErrStudentNotFound
	}
	return s, nil
}

func newDispatcherFixture(store *fakeNotificationStore) *notificationServiceImpl {
	return &notificationServiceImpl{
		store: store,
		teachers: &fakeTeacherDirectory{teachers: map[int64]*models.Teacher{
			1: {ID: 1, UserID: int64Ptr(100)},
			2: {ID: 2, UserID: nil}, // profile without linked account
		}},
		students: &fakeStudentDirectory{students: map[int64]*models.Student{
			10: {ID: 10, UserID: int64Ptr(200)},
			11: {ID: 11, UserID: int64Ptr(201)},
			12: {ID: 12, UserID: nil}, // profile without linked account
		}},
	}
}

func scheduledSession(teacherID int64, studentIDs ...int64) *models.Session {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	return &models.Session{
		ID:         42,
		Name:       "Algebra review",
		TeacherID:  teacherID,
		Date:       timePtr(day),
		StartTime:  strPtr("09:00"),
		EndTime:    strPtr("11:00"),
		StudentIDs: studentIDs,
	}
}

func TestNotifySessionEventCreated(t *testing.T) {
	store := newFakeNotificationStore()
	svc := newDispatcherFixture(store)

	count, err := svc.NotifySessionEvent(context.Background(), scheduledSession(1), SessionEventCreated, nil)
	if err != nil {
		t.Fatalf("NotifySessionEvent() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("NotifySessionEvent() count = %d, want 1", count)
	}

	n := store.created[0]
	if n.RecipientUserID != 100 {
		t.Errorf("recipient = %d, want 100 (teacher's linked user)", n.RecipientUserID)
	}
	if n.Category != models.CategorySession {
		t.Errorf("category = %q, want session", n.Category)
	}
	if !strings.Contains(n.Message, "Algebra review") {
		t.Errorf("message %q missing session name", n.Message)
	}
	if !strings.Contains(n.Message, "Monday, 11 March 2024 from 09:00 to 11:00") {
		t.Errorf("message %q missing formatted schedule", n.Message)
	}
	if n.RelatedEntityID == nil || *n.RelatedEntityID != 42 {
		t.Errorf("relatedEntityId = %v, want 42", n.RelatedEntityID)
	}
}

func TestNotifySessionEventTeacherWithoutLinkedUser(t *testing.T) {
	store := newFakeNotificationStore()
	svc := newDispatcherFixture(store)

	count, err := svc.NotifySessionEvent(context.Background(), scheduledSession(2), SessionEventCreated, nil)
	if err != nil {
		t.Fatalf("NotifySessionEvent() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 (unlinked teacher silently skipped)", count)
	}
	if len(store.created) != 0 {
		t.Errorf("store has %d notifications, want 0", len(store.created))
	}
}

func TestNotifySessionEventMissingTeacherProfile(t *testing.T) {
	store := newFakeNotificationStore()
	svc := newDispatcherFixture(store)

	count, err := svc.NotifySessionEvent(context.Background(), scheduledSession(99), SessionEventTeacherReassigned, nil)
	if err != nil {
		t.Fatalf("NotifySessionEvent() error = %v (missing profile must not fail)", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestNotifySessionEventStudentsAdded(t *testing.T) {
	store := newFakeNotificationStore()
	svc := newDispatcherFixture(store)

	// 10 and 11 resolve, 12 has no linked account, 99 has no profile
	count, err := svc.NotifySessionEvent(context.Background(),
		scheduledSession(1, 10, 11, 12), SessionEventStudentsAdded, []int64{10, 11, 12, 99})
	if err != nil {
		t.Fatalf("NotifySessionEvent() error = %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2 (only linked students)", count)
	}

	recipients := map[int64]bool{}
	for _, n := range store.created {
		recipients[n.RecipientUserID] = true
		if !strings.Contains(n.Message, "enrolled") {
			t.Errorf("message %q should use enrollment phrasing", n.Message)
		}
	}
	if !recipients[200] || !recipients[201] {
		t.Errorf("recipients = %v, want users 200 and 201", recipients)
	}
}

func TestNotifySessionEventStudentsAddedEmptyDelta(t *testing.T) {
	store := newFakeNotificationStore()
	svc := newDispatcherFixture(store)

	count, err := svc.NotifySessionEvent(context.Background(),
		scheduledSession(1, 10, 11), SessionEventStudentsAdded, nil)
	if err != nil {
		t.Fatalf("NotifySessionEvent() error = %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 (empty delta notifies nobody)", count)
	}
}

func TestNotifySessionEventReminder(t *testing.T) {
	store := newFakeNotificationStore()
	svc := newDispatcherFixture(store)
	session := scheduledSession(1, 10, 11, 12)

	count, err := svc.NotifySessionEvent(context.Background(), session, SessionEventReminder, nil)
	if err != nil {
		t.Fatalf("NotifySessionEvent() error = %v", err)
	}
	// teacher user 100 plus students 200 and 201
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	for _, n := range store.created {
		if !strings.HasPrefix(n.Message, "Reminder:") {
			t.Errorf("message %q should use reminder phrasing", n.Message)
		}
		if n.TriggerDate == nil {
			t.Errorf("reminder for user %d missing trigger date", n.RecipientUserID)
		}
	}

	// A re-run on the same day writes nothing new
	again, err := svc.NotifySessionEvent(context.Background(), session, SessionEventReminder, nil)
	if err != nil {
		t.Fatalf("NotifySessionEvent() second run error = %v", err)
	}
	if again != 0 {
		t.Errorf("second run count = %d, want 0 (deduplicated)", again)
	}
	if len(store.created) != 3 {
		t.Errorf("store has %d notifications after re-run, want 3", len(store.created))
	}
}

func TestNotifySessionEventPartialWriteFailure(t *testing.T) {
	store := newFakeNotificationStore()
	storeErr := errors.New("write rejected")
	store.failFor[200] = storeErr
	svc := newDispatcherFixture(store)

	count, err := svc.NotifySessionEvent(context.Background(),
		scheduledSession(1, 10, 11), SessionEventStudentsAdded, []int64{10, 11})
	if !errors.Is(err, storeErr) {
		t.Fatalf("NotifySessionEvent() error = %v, want wrapped store error", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 (the write that succeeded)", count)
	}
}

func TestNotifySessionEventNilSession(t *testing.T) {
	svc := newDispatcherFixture(newFakeNotificationStore())
	if _, err := svc.NotifySessionEvent(context.Background(), nil, SessionEventCreated, nil); err == nil {
		t.Fatal("NotifySessionEvent() with nil session: expected error")
	}
}

func TestNotifySessionEventUnknownKind(t *testing.T) {
	svc := newDispatcherFixture(newFakeNotificationStore())
	if _, err := svc.NotifySessionEvent(context.Background(), scheduledSession(1), SessionEventKind("renamed"), nil); err == nil {
		t.Fatal("NotifySessionEvent() with unknown kind: expected error")
	}
}
