package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaris/scolaris/internal/app/models"
)

// Feedback error types
var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)

// FeedbackRepository handles database operations for session feedback
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Upsert writes a student's feedback for a session, replacing any earlier
// feedback for the same (session, student) pair
func (r *FeedbackRepository) Upsert(ctx context.Context, feedback *models.Feedback) error {
	query := `
		INSERT INTO feedback (session_id, student_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, student_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.SessionID, feedback.StudentID, feedback.Rating, feedback.Comment,
	).Scan(&feedback.ID, &feedback.CreatedAt, &feedback.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error writing feedback: %w", err)
	}
	return nil
}

const feedbackColumns = `id, session_id, student_id, rating, comment, created_at, updated_at`

// ListBySession retrieves all feedback left on one session
func (r *FeedbackRepository) ListBySession(ctx context.Context, sessionID int64) ([]*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE session_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, sessionID)
}

// ListByStudent retrieves all feedback one student has left
func (r *FeedbackRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE student_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, studentID)
}

func (r *FeedbackRepository) list(ctx context.Context, query string, arg interface{}) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []*models.Feedback
	for rows.Next() {
		var feedback models.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.SessionID,
			&feedback.StudentID,
			&feedback.Rating,
			&feedback.Comment,
			&feedback.CreatedAt,
			&feedback.UpdatedAt,
		); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &feedback)
	}
	return feedbacks, rows.Err()
}

// AverageRating returns the mean rating of a session and the number of
// ratings behind it
func (r *FeedbackRepository) AverageRating(ctx context.Context, sessionID int64) (float64, int64, error) {
	var avg *float64
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT AVG(rating), COUNT(*) FROM feedback WHERE session_id = $1`, sessionID).
		Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("error computing average rating: %w", err)
	}
	if avg == nil {
		return 0, 0, nil
	}
	return *avg, count, nil
}

// Delete removes one feedback entry
func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting feedback: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}
