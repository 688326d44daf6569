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

// FeedbackService defines the interface for session feedback operations
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, sessionID, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	SubmitFeedbackAsUser(ctx context.Context, sessionID, userID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error)
	GetSessionFeedback(ctx context.Context, sessionID int64) ([]*models.Feedback, float64, int64, error)
	GetStudentFeedback(ctx context.Context, studentID int64) ([]*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo *repositories.FeedbackRepository
	sessionRepo  *repositories.SessionRepository
	studentRepo  *repositories.StudentRepository
	notifier     NotificationService
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(
	feedbackRepo *repositories.FeedbackRepository,
	sessionRepo *repositories.SessionRepository,
	studentRepo *repositories.StudentRepository,
	notifier NotificationService,
) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		sessionRepo:  sessionRepo,
		studentRepo:  studentRepo,
		notifier:     notifier,
	}
}

// SubmitFeedback creates or replaces the student's feedback on a session.
// Only enrolled students may rate a session, and only once it has taken
// place. The session's teacher is notified.
func (s *feedbackServiceImpl) SubmitFeedback(ctx context.Context, sessionID, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	enrolled := false
	for _, id := range session.StudentIDs {
		if id == studentID {
			enrolled = true
			break
		}
	}
	if !enrolled {
		return nil, apperrors.NewForbiddenError("only enrolled students can rate a session")
	}

	feedback := &models.Feedback{
		SessionID: sessionID,
		StudentID: studentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		return nil, err
	}

	s.notifyTeacher(ctx, session, feedback)
	return feedback, nil
}

// SubmitFeedbackAsUser resolves the calling account to its student profile
// and submits on its behalf
func (s *feedbackServiceImpl) SubmitFeedbackAsUser(ctx context.Context, sessionID, userID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.SubmitFeedback(ctx, sessionID, student.ID, req)
}

func (s *feedbackServiceImpl) notifyTeacher(ctx context.Context, session *models.Session, feedback *models.Feedback) {
	entityID := feedback.ID
	entityKind := models.EntityFeedback
	_, err := s.notifier.NotifyTeacher(ctx, session.TeacherID, &models.Notification{
		Title:             "New session feedback",
		Message:           fmt.Sprintf("A student rated the session %q %d/5.", session.Name, feedback.Rating),
		Category:          models.CategoryFeedback,
		RelatedEntityID:   &entityID,
		RelatedEntityKind: &entityKind,
	})
	if err != nil {
		logger.Error().Err(err).Int64("sessionId", session.ID).Msg("Feedback notification failed")
	}
}

// GetSessionFeedback retrieves a session's feedback with its average rating
func (s *feedbackServiceImpl) GetSessionFeedback(ctx context.Context, sessionID int64) ([]*models.Feedback, float64, int64, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, 0, 0, err
	}

	feedbacks, err := s.feedbackRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, 0, 0, err
	}
	avg, count, err := s.feedbackRepo.AverageRating(ctx, sessionID)
	if err != nil {
		return nil, 0, 0, err
	}
	return feedbacks, avg, count, nil
}

// GetStudentFeedback retrieves all feedback one student has left
func (s *feedbackServiceImpl) GetStudentFeedback(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByStudent(ctx, studentID)
}

// DeleteFeedback removes one feedback entry
func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id int64) error {
	return s.feedbackRepo.Delete(ctx, id)
}
