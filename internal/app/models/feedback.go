package models

import "time"

// Feedback is one student's rating of one session, based on the 'feedback'
// table. Unique per (session, student); a resubmission overwrites.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	SessionID int64     `json:"sessionId" db:"session_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Rating    int       `json:"rating" db:"rating"` // 1..5
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	Student   *Student  `json:"student,omitempty"` // relation, no db tag
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
