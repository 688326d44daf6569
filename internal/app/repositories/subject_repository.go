package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaris/scolaris/internal/app/models"
)

// Subject error types
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectAlreadyExists = errors.New("subject with this name or code already exists")
	ErrChapterNotFound      = errors.New("chapter not found")
)

// SubjectRepository handles database operations for subjects and their
// chapters
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create inserts a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, description, teacher_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, subject.Name, subject.Code, subject.Description, subject.TeacherID).
		Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, code, description, teacher_id, created_at, updated_at
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Code,
		&subject.Description,
		&subject.TeacherID,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}
	return &subject, nil
}

// GetAll retrieves all subjects
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, description, teacher_id, created_at, updated_at
		FROM subjects
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Description,
			&subject.TeacherID,
			&subject.CreatedAt,
			&subject.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}
	return subjects, rows.Err()
}

// Update updates a subject
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, description = $3, teacher_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.Name, subject.Code, subject.Description, subject.TeacherID, subject.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrSubjectAlreadyExists
		}
		return fmt.Errorf("error updating subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// Delete deletes a subject; chapters go with it via FK cascade
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// CreateChapter inserts a chapter under a subject
func (r *SubjectRepository) CreateChapter(ctx context.Context, chapter *models.Chapter) error {
	query := `
		INSERT INTO chapters (subject_id, position, title, content_link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		chapter.SubjectID, chapter.Position, chapter.Title, chapter.ContentLink).
		Scan(&chapter.ID, &chapter.CreatedAt, &chapter.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating chapter: %w", err)
	}
	return nil
}

// GetChapterByID retrieves one chapter
func (r *SubjectRepository) GetChapterByID(ctx context.Context, id int64) (*models.Chapter, error) {
	query := `
		SELECT id, subject_id, position, title, content_link, created_at, updated_at
		FROM chapters
		WHERE id = $1
	`

	var chapter models.Chapter
	err := r.db.QueryRow(ctx, query, id).Scan(
		&chapter.ID,
		&chapter.SubjectID,
		&chapter.Position,
		&chapter.Title,
		&chapter.ContentLink,
		&chapter.CreatedAt,
		&chapter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("error retrieving chapter: %w", err)
	}
	return &chapter, nil
}

// GetChaptersBySubjectID retrieves a subject's chapters in position order
func (r *SubjectRepository) GetChaptersBySubjectID(ctx context.Context, subjectID int64) ([]*models.Chapter, error) {
	query := `
		SELECT id, subject_id, position, title, content_link, created_at, updated_at
		FROM chapters
		WHERE subject_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*models.Chapter
	for rows.Next() {
		var chapter models.Chapter
		if err := rows.Scan(
			&chapter.ID,
			&chapter.SubjectID,
			&chapter.Position,
			&chapter.Title,
			&chapter.ContentLink,
			&chapter.CreatedAt,
			&chapter.UpdatedAt,
		); err != nil {
			return nil, err
		}
		chapters = append(chapters, &chapter)
	}
	return chapters, rows.Err()
}

// UpdateChapter updates one chapter
func (r *SubjectRepository) UpdateChapter(ctx context.Context, chapter *models.Chapter) error {
	query := `
		UPDATE chapters
		SET position = $1, title = $2, content_link = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		chapter.Position, chapter.Title, chapter.ContentLink, chapter.ID)
	if err != nil {
		return fmt.Errorf("error updating chapter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrChapterNotFound
	}
	return nil
}

// DeleteChapter deletes one chapter
func (r *SubjectRepository) DeleteChapter(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM chapters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting chapter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrChapterNotFound
	}
	return nil
}
