package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/repositories"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
	"github.com/scolaris/scolaris/internal/pkg/filestorage"
	"github.com/scolaris/scolaris/internal/pkg/helpers"
	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// SessionService defines the interface for session scheduling operations
type SessionService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error)
	GetSessionByID(ctx context.Context, id int64) (*models.Session, error)
	GetAllSessions(ctx context.Context, teacherID int64, page, pageSize int) ([]*models.Session, int64, error)
	UpdateSession(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.Session, error)
	DeleteSession(ctx context.Context, id int64) error
	AttachSupportFile(ctx context.Context, id int64, file *multipart.FileHeader) (*models.Session, error)
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessionRepo *repositories.SessionRepository
	teacherRepo *repositories.TeacherRepository
	studentRepo *repositories.StudentRepository
	notifier    sessionNotifier
	storage     filestorage.FileStorage
	now         func() time.Time
}

// NewSessionService creates a new session service instance
func NewSessionService(
	sessionRepo *repositories.SessionRepository,
	teacherRepo *repositories.TeacherRepository,
	studentRepo *repositories.StudentRepository,
	notifier NotificationService,
	storage filestorage.FileStorage,
) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		notifier:    notifier,
		storage:     storage,
		now:         time.Now,
	}
}

// CreateSession validates and stores a session, then fans out the creation
// notifications. Notification failures are logged, the session itself is
// already committed and the call succeeds.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*models.Session, error) {
	if _, err := s.teacherRepo.GetByID(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	date, err := s.parseSessionDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	session := &models.Session{
		Name:        req.Name,
		TeacherID:   req.TeacherID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Remark:      req.Remark,
		DirectLink:  req.DirectLink,
		SupportLink: req.SupportLink,
		StudentIDs:  req.StudentIDs,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.dispatch(ctx, session, SessionEventCreated, nil)
	if len(session.StudentIDs) > 0 {
		// On first creation the full enrollment is the delta
		s.dispatch(ctx, session, SessionEventStudentsAdded, session.StudentIDs)
	}

	return s.decorate(ctx, session)
}

// GetSessionByID retrieves a session with its teacher relation and the
// status computed against the current clock
func (s *sessionServiceImpl) GetSessionByID(ctx context.Context, id int64) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, session)
}

// GetAllSessions retrieves a page of sessions, optionally filtered by
// teacher, with computed statuses
func (s *sessionServiceImpl) GetAllSessions(ctx context.Context, teacherID int64, page, pageSize int) ([]*models.Session, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sessions, err := s.sessionRepo.GetAll(ctx, teacherID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.sessionRepo.Count(ctx, teacherID)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	for _, session := range sessions {
		status, err := ResolveSessionStatus(session, now)
		if err != nil {
			return nil, 0, err
		}
		session.Status = status
	}
	return sessions, total, nil
}

// UpdateSession applies the requested changes, replaces the enrollment when
// one is given and fans out notifications for the teacher reassignment and
// the newly added students only
func (s *sessionServiceImpl) UpdateSession(ctx context.Context, id int64, req *dto.UpdateSessionRequest) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousTeacherID := session.TeacherID
	previousEnrollment := session.StudentIDs
	scheduleChanged := false

	if req.Name != nil {
		session.Name = *req.Name
	}
	if req.TeacherID != nil {
		if _, err := s.teacherRepo.GetByID(ctx, *req.TeacherID); err != nil {
			return nil, err
		}
		session.TeacherID = *req.TeacherID
	}
	if req.Date != nil {
		date, err := s.parseSessionDate(req.Date)
		if err != nil {
			return nil, err
		}
		session.Date = date
		scheduleChanged = true
	}
	if req.StartTime != nil {
		session.StartTime = req.StartTime
		scheduleChanged = true
	}
	if req.EndTime != nil {
		session.EndTime = req.EndTime
		scheduleChanged = true
	}
	if err := validateTimeRange(session.StartTime, session.EndTime); err != nil {
		return nil, err
	}
	if req.Remark != nil {
		session.Remark = req.Remark
	}
	if req.DirectLink != nil {
		session.DirectLink = req.DirectLink
	}
	if req.SupportLink != nil {
		session.SupportLink = req.SupportLink
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	var addedStudents []int64
	if req.StudentIDs != nil {
		if err := s.sessionRepo.ReplaceEnrollment(ctx, id, *req.StudentIDs); err != nil {
			return nil, err
		}
		session.StudentIDs = *req.StudentIDs
		addedStudents = diffEnrollment(*req.StudentIDs, previousEnrollment)
	}

	if session.TeacherID != previousTeacherID {
		s.dispatch(ctx, session, SessionEventTeacherReassigned, nil)
	} else if scheduleChanged {
		s.dispatch(ctx, session, SessionEventUpdated, nil)
	}
	if len(addedStudents) > 0 {
		s.dispatch(ctx, session, SessionEventStudentsAdded, addedStudents)
	}

	return s.decorate(ctx, session)
}

// DeleteSession removes a session and everything hanging off it
func (s *sessionServiceImpl) DeleteSession(ctx context.Context, id int64) error {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}
	if session.SupportLink != nil {
		if err := s.storage.DeleteFile(*session.SupportLink); err != nil {
			logger.Warn().Err(err).Int64("sessionId", id).Msg("Failed to delete session support file")
		}
	}
	return nil
}

// AttachSupportFile stores an uploaded support document and links it to the
// session, replacing any previous one
func (s *sessionServiceImpl) AttachSupportFile(ctx context.Context, id int64, file *multipart.FileHeader) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.SaveFile(file, "sessions")
	if err != nil {
		return nil, fmt.Errorf("error storing support file: %w", err)
	}

	previous := session.SupportLink
	session.SupportLink = &url
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	if previous != nil {
		if err := s.storage.DeleteFile(*previous); err != nil {
			logger.Warn().Err(err).Int64("sessionId", id).Msg("Failed to delete replaced support file")
		}
	}
	return s.decorate(ctx, session)
}

// decorate loads the teacher relation and computes the session status
func (s *sessionServiceImpl) decorate(ctx context.Context, session *models.Session) (*models.Session, error) {
	status, err := ResolveSessionStatus(session, s.now())
	if err != nil {
		return nil, err
	}
	session.Status = status

	teacher, err := s.teacherRepo.GetByID(ctx, session.TeacherID)
	if err == nil {
		session.Teacher = teacher
	}
	return session, nil
}

// dispatch fans a session event out and only logs failures; the mutation
// that triggered it is already committed
func (s *sessionServiceImpl) dispatch(ctx context.Context, session *models.Session, eventKind SessionEventKind, affected []int64) {
	written, err := s.notifier.NotifySessionEvent(ctx, session, eventKind, affected)
	if err != nil {
		logger.Error().Err(err).Int64("sessionId", session.ID).Str("event", string(eventKind)).Msg("Notification fan-out failed")
		return
	}
	logger.Debug().Int64("sessionId", session.ID).Str("event", string(eventKind)).Int("written", written).Msg("Session event dispatched")
}

// parseSessionDate parses "YYYY-MM-DD" and rejects dates already past. The
// value is kept at midnight UTC, the same representation the date column
// scans back as, and the past check compares calendar days in the server's
// clock location.
func (s *sessionServiceImpl) parseSessionDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date: %s", *raw))
	}
	now := s.now()
	if helpers.CalendarDay(date, now.Location()).Before(helpers.StartOfDay(now)) {
		return nil, apperrors.ErrSessionDateInPast
	}
	return &date, nil
}

// validateTimeRange checks both bounds parse and end is after start
func validateTimeRange(start, end *string) error {
	var startMinutes, endMinutes int
	var err error
	if start != nil {
		if startMinutes, err = minutesOfDay(*start); err != nil {
			return err
		}
	}
	if end != nil {
		if endMinutes, err = minutesOfDay(*end); err != nil {
			return err
		}
	}
	if start != nil && end != nil && endMinutes <= startMinutes {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

// diffEnrollment returns the ids in updated that are not in previous
func diffEnrollment(updated, previous []int64) []int64 {
	seen := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	var added []int64
	for _, id := range updated {
		if _, ok := seen[id]; !ok {
			added = append(added, id)
			seen[id] = struct{}{} // duplicates in the request count once
		}
	}
	return added
}
