package models

import "time"

// AttendanceRecord is one student's presence state for one session, based
// on the 'attendance_records' table. Unique per (session, student).
type AttendanceRecord struct {
	ID         int64            `json:"id" db:"id"`
	SessionID  int64            `json:"sessionId" db:"session_id"`
	StudentID  int64            `json:"studentId" db:"student_id"`
	Status     AttendanceStatus `json:"status" db:"status"`
	Note       *string          `json:"note,omitempty" db:"note"`
	RecordedBy int64            `json:"recordedBy" db:"recorded_by"`
	Student    *Student         `json:"student,omitempty"` // relation, no db tag
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`
}
