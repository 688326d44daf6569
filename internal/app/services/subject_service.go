package services

import (
	"context"

	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/app/repositories"
)

// SubjectService defines the interface for subject and chapter operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error

	CreateChapter(ctx context.Context, subjectID int64, req *dto.CreateChapterRequest) (*models.Chapter, error)
	GetChapters(ctx context.Context, subjectID int64) ([]*models.Chapter, error)
	UpdateChapter(ctx context.Context, chapterID int64, req *dto.UpdateChapterRequest) (*models.Chapter, error)
	DeleteChapter(ctx context.Context, chapterID int64) error
}

// subjectServiceImpl implements the SubjectService interface
type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
	teacherRepo *repositories.TeacherRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository, teacherRepo *repositories.TeacherRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
		teacherRepo: teacherRepo,
	}
}

// CreateSubject creates a subject after checking the referenced teacher
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if req.TeacherID != nil {
		if _, err := s.teacherRepo.GetByID(ctx, *req.TeacherID); err != nil {
			return nil, err
		}
	}

	subject := &models.Subject{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		TeacherID:   req.TeacherID,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// GetSubjectByID retrieves a subject with its chapters
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	chapters, err := s.subjectRepo.GetChaptersBySubjectID(ctx, id)
	if err != nil {
		return nil, err
	}
	subject.Chapters = chapters
	return subject, nil
}

// GetAllSubjects retrieves all subjects
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

// UpdateSubject updates a subject
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Code != nil {
		subject.Code = *req.Code
	}
	if req.Description != nil {
		subject.Description = req.Description
	}
	if req.TeacherID != nil {
		if _, err := s.teacherRepo.GetByID(ctx, *req.TeacherID); err != nil {
			return nil, err
		}
		subject.TeacherID = req.TeacherID
	}

	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes a subject and its chapters
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}

// CreateChapter adds a content unit under a subject
func (s *subjectServiceImpl) CreateChapter(ctx context.Context, subjectID int64, req *dto.CreateChapterRequest) (*models.Chapter, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	chapter := &models.Chapter{
		SubjectID:   subjectID,
		Position:    req.Position,
		Title:       req.Title,
		ContentLink: req.ContentLink,
	}
	if err := s.subjectRepo.CreateChapter(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

// GetChapters retrieves a subject's chapters in position order
func (s *subjectServiceImpl) GetChapters(ctx context.Context, subjectID int64) ([]*models.Chapter, error) {
	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}
	return s.subjectRepo.GetChaptersBySubjectID(ctx, subjectID)
}

// UpdateChapter updates one chapter
func (s *subjectServiceImpl) UpdateChapter(ctx context.Context, chapterID int64, req *dto.UpdateChapterRequest) (*models.Chapter, error) {
	chapter, err := s.subjectRepo.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	if req.Position != nil {
		chapter.Position = *req.Position
	}
	if req.Title != nil {
		chapter.Title = *req.Title
	}
	if req.ContentLink != nil {
		chapter.ContentLink = req.ContentLink
	}

	if err := s.subjectRepo.UpdateChapter(ctx, chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

// DeleteChapter removes one chapter
func (s *subjectServiceImpl) DeleteChapter(ctx context.Context, chapterID int64) error {
	return s.subjectRepo.DeleteChapter(ctx, chapterID)
}
