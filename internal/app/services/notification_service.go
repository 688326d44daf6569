package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/repositories"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
	"github.com/scolaris/scolaris/internal/pkg/helpers"
	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// SessionEventKind identifies what happened to a session so the dispatcher
// can pick the audience and phrasing
type SessionEventKind string

const (
	SessionEventCreated           SessionEventKind = "created"
	SessionEventUpdated           SessionEventKind = "updated"
	SessionEventTeacherReassigned SessionEventKind = "teacher-reassigned"
	SessionEventStudentsAdded     SessionEventKind = "students-added"
	SessionEventReminder          SessionEventKind = "reminder"
)

// notificationStore is the slice of NotificationRepository the dispatcher
// needs. Create reports whether a row was actually written, since reminder
// rows deduplicate on re-runs.
type notificationStore interface {
	Create(ctx context.Context, n *models.Notification) (written bool, err error)
	ListByRecipient(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Notification, error)
	CountByRecipient(ctx context.Context, userID int64) (int64, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
}

// teacherDirectory resolves teacher profiles to their linked accounts
type teacherDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
}

// studentDirectory resolves student profiles to their linked accounts
type studentDirectory interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// notificationPublisher pushes freshly written notifications to the
// recipient's open realtime connections
type notificationPublisher interface {
	Publish(n *models.Notification)
}

// NotificationService defines the interface for notification operations
type NotificationService interface {
	NotifySessionEvent(ctx context.Context, session *models.Session, eventKind SessionEventKind, affectedStudentIDs []int64) (int, error)
	NotifyStudent(ctx context.Context, studentID int64, n *models.Notification) (bool, error)
	NotifyTeacher(ctx context.Context, teacherID int64, n *models.Notification) (bool, error)
	ListForUser(ctx context.Context, userID int64, page, pageSize int) ([]*models.Notification, int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
}

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	store     notificationStore
	teachers  teacherDirectory
	students  studentDirectory
	publisher notificationPublisher
}

// NewNotificationService creates a new notification service instance.
// publisher may be nil when no realtime hub is running.
func NewNotificationService(
	store *repositories.NotificationRepository,
	teachers *repositories.TeacherRepository,
	students *repositories.StudentRepository,
	publisher notificationPublisher,
) NotificationService {
	return &notificationServiceImpl{
		store:     store,
		teachers:  teachers,
		students:  students,
		publisher: publisher,
	}
}

// NotifySessionEvent fans one session event out to its audience and reports
// how many notifications were actually written.
//
// Recipients that cannot be resolved, either because the profile row is
// gone or because it has no linked user account, are skipped with a log
// line and never fail the call. Store write failures are collected and
// returned after the remaining recipients have been attempted, so one bad
// write does not starve the rest of the audience.
func (s *notificationServiceImpl) NotifySessionEvent(ctx context.Context, session *models.Session, eventKind SessionEventKind, affectedStudentIDs []int64) (int, error) {
	if session == nil {
		return 0, apperrors.NewValidationError("session is nil")
	}

	var written int
	var writeErrs []error

	emit := func(n *models.Notification) {
		ok, err := s.store.Create(ctx, n)
		if err != nil {
			writeErrs = append(writeErrs, err)
			return
		}
		if !ok {
			// Duplicate reminder row, already delivered today
			return
		}
		written++
		if s.publisher != nil {
			s.publisher.Publish(n)
		}
	}

	switch eventKind {
	case SessionEventCreated, SessionEventUpdated, SessionEventTeacherReassigned:
		if userID, ok := s.resolveTeacher(ctx, session.TeacherID); ok {
			emit(s.buildTeacherNotification(session, eventKind, userID))
		}

	case SessionEventStudentsAdded:
		for _, studentID := range affectedStudentIDs {
			if userID, ok := s.resolveStudent(ctx, studentID); ok {
				emit(s.buildStudentNotification(session, userID))
			}
		}

	case SessionEventReminder:
		if userID, ok := s.resolveTeacher(ctx, session.TeacherID); ok {
			emit(s.buildReminderNotification(session, userID))
		}
		for _, studentID := range session.StudentIDs {
			if userID, ok := s.resolveStudent(ctx, studentID); ok {
				emit(s.buildReminderNotification(session, userID))
			}
		}

	default:
		return 0, apperrors.NewValidationError(fmt.Sprintf("unknown session event kind: %s", eventKind))
	}

	return written, errors.Join(writeErrs...)
}

// NotifyStudent delivers one notification to a student's linked account.
// Unresolvable profiles are skipped, reported as written=false, never as an
// error, the same contract as the session fan-out.
func (s *notificationServiceImpl) NotifyStudent(ctx context.Context, studentID int64, n *models.Notification) (bool, error) {
	userID, ok := s.resolveStudent(ctx, studentID)
	if !ok {
		return false, nil
	}
	return s.deliver(ctx, userID, n)
}

// NotifyTeacher delivers one notification to a teacher's linked account,
// same contract as NotifyStudent
func (s *notificationServiceImpl) NotifyTeacher(ctx context.Context, teacherID int64, n *models.Notification) (bool, error) {
	userID, ok := s.resolveTeacher(ctx, teacherID)
	if !ok {
		return false, nil
	}
	return s.deliver(ctx, userID, n)
}

func (s *notificationServiceImpl) deliver(ctx context.Context, userID int64, n *models.Notification) (bool, error) {
	n.RecipientUserID = userID
	written, err := s.store.Create(ctx, n)
	if err != nil {
		return false, err
	}
	if written && s.publisher != nil {
		s.publisher.Publish(n)
	}
	return written, nil
}

// resolveTeacher maps a teacher profile id to its linked user account id.
// Missing profiles and unlinked profiles are skipped, not errored.
func (s *notificationServiceImpl) resolveTeacher(ctx context.Context, teacherID int64) (int64, bool) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		logger.Warn().Err(err).Int64("teacherId", teacherID).Msg("Skipping notification, teacher profile not resolvable")
		return 0, false
	}
	if teacher.UserID == nil {
		logger.Warn().Int64("teacherId", teacherID).Msg("Skipping notification, teacher has no linked user account")
		return 0, false
	}
	return *teacher.UserID, true
}

func (s *notificationServiceImpl) resolveStudent(ctx context.Context, studentID int64) (int64, bool) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		logger.Warn().Err(err).Int64("studentId", studentID).Msg("Skipping notification, student profile not resolvable")
		return 0, false
	}
	if student.UserID == nil {
		logger.Warn().Int64("studentId", studentID).Msg("Skipping notification, student has no linked user account")
		return 0, false
	}
	return *student.UserID, true
}

func (s *notificationServiceImpl) buildTeacherNotification(session *models.Session, eventKind SessionEventKind, userID int64) *models.Notification {
	var title, verb string
	switch eventKind {
	case SessionEventCreated:
		title = "New session scheduled"
		verb = "has been scheduled"
	case SessionEventTeacherReassigned:
		title = "Session assigned to you"
		verb = "has been assigned to you"
	default:
		title = "Session updated"
		verb = "has been updated"
	}

	message := fmt.Sprintf("The session %q %s", session.Name, verb)
	if schedule := formatSessionSchedule(session); schedule != "" {
		message += " on " + schedule
	}
	message += "."

	return s.newSessionNotification(session, userID, title, message)
}

func (s *notificationServiceImpl) buildStudentNotification(session *models.Session, userID int64) *models.Notification {
	message := fmt.Sprintf("You have been enrolled in the session %q", session.Name)
	if schedule := formatSessionSchedule(session); schedule != "" {
		message += " on " + schedule
	}
	message += "."

	return s.newSessionNotification(session, userID, "Added to session", message)
}

func (s *notificationServiceImpl) buildReminderNotification(session *models.Session, userID int64) *models.Notification {
	message := fmt.Sprintf("Reminder: session %q takes place tomorrow", session.Name)
	if schedule := formatSessionSchedule(session); schedule != "" {
		message += ", " + schedule
	}
	message += "."

	n := s.newSessionNotification(session, userID, "Session reminder", message)
	if session.Date != nil {
		triggerDate := helpers.StartOfDay(*session.Date)
		n.TriggerDate = &triggerDate
	}
	return n
}

func (s *notificationServiceImpl) newSessionNotification(session *models.Session, userID int64, title, message string) *models.Notification {
	entityID := session.ID
	entityKind := models.EntitySession
	link := fmt.Sprintf("/sessions/%d", session.ID)
	return &models.Notification{
		RecipientUserID:   userID,
		Title:             title,
		Message:           message,
		Category:          models.CategorySession,
		RelatedEntityID:   &entityID,
		RelatedEntityKind: &entityKind,
		Link:              &link,
	}
}

// ListForUser retrieves one page of the user's notifications with the total
func (s *notificationServiceImpl) ListForUser(ctx context.Context, userID int64, page, pageSize int) ([]*models.Notification, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	notifications, err := s.store.ListByRecipient(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountByRecipient(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// UnreadCount returns how many of the user's notifications are unread
func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.store.CountUnread(ctx, userID)
}

// MarkRead flips one of the user's notifications to read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id, userID int64) error {
	return s.store.MarkRead(ctx, id, userID)
}

// MarkAllRead flips all of the user's notifications to read
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.store.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications
func (s *notificationServiceImpl) Delete(ctx context.Context, id, userID int64) error {
	return s.store.Delete(ctx, id, userID)
}
