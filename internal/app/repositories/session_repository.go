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

// Session error types
var (
	ErrSessionNotFound = errors.New("session not found")
)

// SessionRepository handles database operations for sessions and their
// enrollment
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `id, name, teacher_id, date, start_time, end_time, remark, direct_link, support_link, created_at, updated_at`

func scanSession(row pgx.Row) (*models.Session, error) {
	var session models.Session
	err := row.Scan(
		&session.ID,
		&session.Name,
		&session.TeacherID,
		&session.Date,
		&session.StartTime,
		&session.EndTime,
		&session.Remark,
		&session.DirectLink,
		&session.SupportLink,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving session: %w", err)
	}
	return &session, nil
}

// Create inserts a session and its enrollment in one transaction
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sessions (name, teacher_id, date, start_time, end_time, remark, direct_link, support_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		session.Name, session.TeacherID, session.Date, session.StartTime, session.EndTime,
		session.Remark, session.DirectLink, session.SupportLink,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}

	for _, studentID := range session.StudentIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO session_students (session_id, student_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			session.ID, studentID); err != nil {
			return fmt.Errorf("error enrolling student %d: %w", studentID, err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a session with its enrollment
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	session, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	studentIDs, err := r.getEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}
	session.StudentIDs = studentIDs
	return session, nil
}

func (r *SessionRepository) getEnrollment(ctx context.Context, sessionID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT student_id FROM session_students WHERE session_id = $1 ORDER BY student_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	defer rows.Close()

	var studentIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		studentIDs = append(studentIDs, id)
	}
	return studentIDs, rows.Err()
}

// GetAll retrieves a page of sessions, optionally filtered by teacher,
// ordered by date descending with unscheduled sessions last
func (r *SessionRepository) GetAll(ctx context.Context, teacherID int64, offset uint64, limit int) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions`
	args := []interface{}{}
	if teacherID > 0 {
		query += ` WHERE teacher_id = $1`
		args = append(args, teacherID)
	}
	query += fmt.Sprintf(` ORDER BY date DESC NULLS LAST, start_time OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, session := range sessions {
		studentIDs, err := r.getEnrollment(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		session.StudentIDs = studentIDs
	}
	return sessions, nil
}

// Count returns the number of sessions, optionally filtered by teacher
func (r *SessionRepository) Count(ctx context.Context, teacherID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM sessions`
	args := []interface{}{}
	if teacherID > 0 {
		query += ` WHERE teacher_id = $1`
		args = append(args, teacherID)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting sessions: %w", err)
	}
	return count, nil
}

// ListByDateRange retrieves sessions whose date falls in [from, to), with
// enrollment loaded. Sessions without a date never match. The bounds are
// compared by calendar day: they are sent as "YYYY-MM-DD" text so the date
// column never sees a location-dependent timestamp.
func (r *SessionRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE date >= $1::date AND date < $2::date ORDER BY date, start_time`

	rows, err := r.db.Query(ctx, query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, session := range sessions {
		studentIDs, err := r.getEnrollment(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		session.StudentIDs = studentIDs
	}
	return sessions, nil
}

// Update updates the session's scalar fields; enrollment is replaced
// separately via ReplaceEnrollment
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	query := `
		UPDATE sessions
		SET name = $1, teacher_id = $2, date = $3, start_time = $4, end_time = $5,
		    remark = $6, direct_link = $7, support_link = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		session.Name, session.TeacherID, session.Date, session.StartTime, session.EndTime,
		session.Remark, session.DirectLink, session.SupportLink, session.ID)
	if err != nil {
		return fmt.Errorf("error updating session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ReplaceEnrollment swaps the session's enrollment for the given set
func (r *SessionRepository) ReplaceEnrollment(ctx context.Context, sessionID int64, studentIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM session_students WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("error clearing enrollment: %w", err)
	}

	for _, studentID := range studentIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO session_students (session_id, student_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			sessionID, studentID); err != nil {
			return fmt.Errorf("error enrolling student %d: %w", studentID, err)
		}
	}

	return tx.Commit(ctx)
}

// Delete deletes a session; enrollment, attendance and feedback rows go
// with it via FK cascade
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}
