package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaris/scolaris/internal/app/models"
)

// Assignment error types
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// AssignmentRepository handles database operations for assignments and
// submissions
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (subject_id, session_id, title, description, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		assignment.SubjectID, assignment.SessionID, assignment.Title,
		assignment.Description, assignment.DueDate,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}
	return nil
}

const assignmentColumns = `id, subject_id, session_id, title, description, due_date, created_at, updated_at`

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var a models.Assignment
	err := row.Scan(
		&a.ID,
		&a.SubjectID,
		&a.SessionID,
		&a.Title,
		&a.Description,
		&a.DueDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}
	return &a, nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	return scanAssignment(r.db.QueryRow(ctx, query, id))
}

// GetBySubjectID retrieves all assignments of a subject, soonest due first
func (r *AssignmentRepository) GetBySubjectID(ctx context.Context, subjectID int64) ([]*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE subject_id = $1 ORDER BY due_date NULLS LAST, id`

	rows, err := r.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Update updates an assignment
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET title = $1, description = $2, due_date = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		assignment.Title, assignment.Description, assignment.DueDate, assignment.ID)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// Delete deletes an assignment; submissions go with it via FK cascade
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// UpsertSubmission writes a student's answer, replacing any earlier one
// for the same assignment as long as it has not been graded yet
func (r *AssignmentRepository) UpsertSubmission(ctx context.Context, submission *models.Submission) error {
	query := `
		INSERT INTO submissions (assignment_id, student_id, content, file_link, submitted_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (assignment_id, student_id)
		DO UPDATE SET content = EXCLUDED.content, file_link = EXCLUDED.file_link,
		              submitted_at = NOW()
		WHERE submissions.grade IS NULL
		RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		submission.AssignmentID, submission.StudentID, submission.Content, submission.FileLink,
	).Scan(&submission.ID, &submission.SubmittedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already graded: the conditional upsert matched nothing
			return fmt.Errorf("submission already graded: %w", ErrSubmissionNotFound)
		}
		return fmt.Errorf("error writing submission: %w", err)
	}
	return nil
}

const submissionColumns = `id, assignment_id, student_id, content, file_link, submitted_at, grade, grade_comment, graded_by, graded_at`

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.ID,
		&s.AssignmentID,
		&s.StudentID,
		&s.Content,
		&s.FileLink,
		&s.SubmittedAt,
		&s.Grade,
		&s.GradeComment,
		&s.GradedBy,
		&s.GradedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}
	return &s, nil
}

// GetSubmissionByID retrieves one submission
func (r *AssignmentRepository) GetSubmissionByID(ctx context.Context, id int64) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`
	return scanSubmission(r.db.QueryRow(ctx, query, id))
}

// ListSubmissions retrieves all submissions of an assignment
func (r *AssignmentRepository) ListSubmissions(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE assignment_id = $1 ORDER BY submitted_at`

	rows, err := r.db.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// Grade sets the grade on a submission
func (r *AssignmentRepository) Grade(ctx context.Context, id int64, grade float64, comment *string, gradedBy int64, at time.Time) error {
	query := `
		UPDATE submissions
		SET grade = $1, grade_comment = $2, graded_by = $3, graded_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, grade, comment, gradedBy, at, id)
	if err != nil {
		return fmt.Errorf("error grading submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
