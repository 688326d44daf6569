package models

import "time"

// Subject defines the subject model based on the 'subjects' table
type Subject struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Code        string     `json:"code" db:"code"`
	Description *string    `json:"description,omitempty" db:"description"`
	TeacherID   *int64     `json:"teacherId,omitempty" db:"teacher_id"`
	Teacher     *Teacher   `json:"teacher,omitempty"` // relation, no db tag
	Chapters    []*Chapter `json:"chapters,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Chapter defines one ordered unit of a subject's content
type Chapter struct {
	ID          int64     `json:"id" db:"id"`
	SubjectID   int64     `json:"subjectId" db:"subject_id"`
	Position    int       `json:"position" db:"position"`
	Title       string    `json:"title" db:"title"`
	ContentLink *string   `json:"contentLink,omitempty" db:"content_link"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
