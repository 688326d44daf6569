package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolaris/scolaris/internal/app/models"
)

// Attendance error types
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert writes one student's attendance for a session, replacing any
// earlier record for the same (session, student) pair
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (session_id, student_id, status, note, recorded_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, student_id)
		DO UPDATE SET status = EXCLUDED.status, note = EXCLUDED.note,
		              recorded_by = EXCLUDED.recorded_by, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		record.SessionID, record.StudentID, record.Status, record.Note, record.RecordedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error writing attendance record: %w", err)
	}
	return nil
}

const attendanceColumns = `id, session_id, student_id, status, note, recorded_by, created_at, updated_at`

// ListBySession retrieves all attendance records of one session
func (r *AttendanceRepository) ListBySession(ctx context.Context, sessionID int64) ([]*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE session_id = $1 ORDER BY student_id`
	return r.list(ctx, query, sessionID)
}

// ListByStudent retrieves all attendance records of one student
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE student_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, studentID)
}

func (r *AttendanceRepository) list(ctx context.Context, query string, arg interface{}) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.SessionID,
			&record.StudentID,
			&record.Status,
			&record.Note,
			&record.RecordedBy,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

// Delete removes one attendance record
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
