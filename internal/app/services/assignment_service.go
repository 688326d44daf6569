package services

import (
	"context"
	"fmt"
	"time"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/repositories"
	"github.com/scolaris/scolaris/internal/pkg/apperrors"
	"github.com/scolaris/scolaris/internal/pkg/logger"
)

// AssignmentService defines the interface for homework operations
type AssignmentService interface {
	CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error)
	GetSubjectAssignments(ctx context.Context, subjectID int64) ([]*models.Assignment, error)
	UpdateAssignment(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int64) error

	Submit(ctx context.Context, assignmentID, studentID int64, req *dto.SubmitAssignmentRequest) (*models.Submission, error)
	SubmitAsUser(ctx context.Context, assignmentID, userID int64, req *dto.SubmitAssignmentRequest) (*models.Submission, error)
	GetSubmissions(ctx context.Context, assignmentID int64) ([]*models.Submission, error)
	GradeSubmission(ctx context.Context, submissionID, gradedBy int64, req *dto.GradeSubmissionRequest) (*models.Submission, error)
}

// assignmentServiceImpl implements the AssignmentService interface
type assignmentServiceImpl struct {
	assignmentRepo *repositories.AssignmentRepository
	subjectRepo    *repositories.SubjectRepository
	studentRepo    *repositories.StudentRepository
	notifier       NotificationService
	now            func() time.Time
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(
	assignmentRepo *repositories.AssignmentRepository,
	subjectRepo *repositories.SubjectRepository,
	studentRepo *repositories.StudentRepository,
	notifier NotificationService,
) AssignmentService {
	return &assignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

// CreateAssignment creates homework on a subject
func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if _, err := s.subjectRepo.GetByID(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.DueDate, time.Local)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid due date: %s", *req.DueDate))
		}
		dueDate = &parsed
	}

	assignment := &models.Assignment{
		SubjectID:   req.SubjectID,
		SessionID:   req.SessionID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// GetAssignmentByID retrieves one assignment
func (s *assignmentServiceImpl) GetAssignmentByID(ctx context.Context, id int64) (*models.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// GetSubjectAssignments retrieves a subject's assignments
func (s *assignmentServiceImpl) GetSubjectAssignments(ctx context.Context, subjectID int64) ([]*models.Assignment, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetBySubjectID(ctx, subjectID)
}

// UpdateAssignment updates an assignment
func (s *assignmentServiceImpl) UpdateAssignment(ctx context.Context, id int64, req *dto.UpdateAssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Description != nil {
		assignment.Description = req.Description
	}
	if req.DueDate != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *req.DueDate, time.Local)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid due date: %s", *req.DueDate))
		}
		assignment.DueDate = &parsed
	}

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteAssignment removes an assignment and its submissions
func (s *assignmentServiceImpl) DeleteAssignment(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}

// Submit hands in a student's answer; re-submitting replaces the previous
// answer as long as it has not been graded
func (s *assignmentServiceImpl) Submit(ctx context.Context, assignmentID, studentID int64, req *dto.SubmitAssignmentRequest) (*models.Submission, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	if req.Content == nil && req.FileLink == nil {
		return nil, apperrors.NewValidationError("submission needs content or a file link")
	}

	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      req.Content,
		FileLink:     req.FileLink,
	}
	if err := s.assignmentRepo.UpsertSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// SubmitAsUser resolves the calling account to its student profile and
// hands the answer in on its behalf
func (s *assignmentServiceImpl) SubmitAsUser(ctx context.Context, assignmentID, userID int64, req *dto.SubmitAssignmentRequest) (*models.Submission, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, assignmentID, student.ID, req)
}

// GetSubmissions retrieves all submissions of an assignment
func (s *assignmentServiceImpl) GetSubmissions(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.ListSubmissions(ctx, assignmentID)
}

// GradeSubmission sets the grade and notifies the student
func (s *assignmentServiceImpl) GradeSubmission(ctx context.Context, submissionID, gradedBy int64, req *dto.GradeSubmissionRequest) (*models.Submission, error) {
	if req.Grade < 0 || req.Grade > 20 {
		return nil, apperrors.ErrInvalidGrade
	}

	submission, err := s.assignmentRepo.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	assignment, err := s.assignmentRepo.GetByID(ctx, submission.AssignmentID)
	if err != nil {
		return nil, err
	}

	gradedAt := s.now()
	if err := s.assignmentRepo.Grade(ctx, submissionID, req.Grade, req.Comment, gradedBy, gradedAt); err != nil {
		return nil, err
	}
	submission.Grade = &req.Grade
	submission.GradeComment = req.Comment
	submission.GradedBy = &gradedBy
	submission.GradedAt = &gradedAt

	s.notifyGraded(ctx, assignment, submission)
	return submission, nil
}

func (s *assignmentServiceImpl) notifyGraded(ctx context.Context, assignment *models.Assignment, submission *models.Submission) {
	entityID := assignment.ID
	entityKind := models.EntityAssignment
	_, err := s.notifier.NotifyStudent(ctx, submission.StudentID, &models.Notification{
		Title:             "Assignment graded",
		Message:           fmt.Sprintf("Your submission for %q has been graded: %.1f/20.", assignment.Title, *submission.Grade),
		Category:          models.CategoryGeneral,
		RelatedEntityID:   &entityID,
		RelatedEntityKind: &entityKind,
	})
	if err != nil {
		logger.Error().Err(err).Int64("submissionId", submission.ID).Msg("Grade notification failed")
	}
}
