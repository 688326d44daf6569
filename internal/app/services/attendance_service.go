package services

import (
	"context"
	"fmt"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/repositories"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	MarkAttendance(ctx context.Context, sessionID, recordedBy int64, req *dto.MarkAttendanceRequest) ([]*models.AttendanceRecord, error)
	GetSessionAttendance(ctx context.Context, sessionID int64) ([]*models.AttendanceRecord, error)
	GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
	sessionRepo    *repositories.SessionRepository
	studentRepo    *repositories.StudentRepository
	notifier       NotificationService
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	sessionRepo *repositories.SessionRepository,
	studentRepo *repositories.StudentRepository,
	notifier NotificationService,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		sessionRepo:    sessionRepo,
		studentRepo:    studentRepo,
		notifier:       notifier,
	}
}

// MarkAttendance records attendance for several students of one session.
// Every student must be enrolled in the session. Students marked absent get
// an attendance notification on their linked account.
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, sessionID, recordedBy int64, req *dto.MarkAttendanceRequest) ([]*models.AttendanceRecord, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	enrolled := make(map[int64]struct{}, len(session.StudentIDs))
	for _, id := range session.StudentIDs {
		enrolled[id] = struct{}{}
	}

	records := make([]*models.AttendanceRecord, 0, len(req.Entries))
	for _, entry := range req.Entries {
		if _, ok := enrolled[entry.StudentID]; !ok {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("student %d is not enrolled in session %d", entry.StudentID, sessionID))
		}

		record := &models.AttendanceRecord{
			SessionID:  sessionID,
			StudentID:  entry.StudentID,
			Status:     models.AttendanceStatus(entry.Status),
			Note:       entry.Note,
			RecordedBy: recordedBy,
		}
		if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
			return nil, err
		}
		records = append(records, record)

		if record.Status == models.AttendanceAbsent {
			s.notifyAbsence(ctx, session, entry.StudentID)
		}
	}
	return records, nil
}

func (s *attendanceServiceImpl) notifyAbsence(ctx context.Context, session *models.Session, studentID int64) {
	entityID := session.ID
	entityKind := models.EntitySession
	message := fmt.Sprintf("You were marked absent from the session %q", session.Name)
	if schedule := formatSessionSchedule(session); schedule != "" {
		message += " on " + schedule
	}
	message += "."

	_, err := s.notifier.NotifyStudent(ctx, studentID, &models.Notification{
		Title:             "Absence recorded",
		Message:           message,
		Category:          models.CategoryAttendance,
		RelatedEntityID:   &entityID,
		RelatedEntityKind: &entityKind,
	})
	if err != nil {
		logger.Error().Err(err).Int64("sessionId", session.ID).Int64("studentId", studentID).Msg("Absence notification failed")
	}
}

// GetSessionAttendance retrieves all attendance records of one session
func (s *attendanceServiceImpl) GetSessionAttendance(ctx context.Context, sessionID int64) ([]*models.AttendanceRecord, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListBySession(ctx, sessionID)
}

// GetStudentAttendance retrieves one student's attendance history
func (s *attendanceServiceImpl) GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByStudent(ctx, studentID)
}

// DeleteRecord removes one attendance record
func (s *attendanceServiceImpl) DeleteRecord(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}
