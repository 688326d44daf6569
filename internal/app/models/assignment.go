package models

import "time"

// Assignment defines homework attached to a subject and optionally to one
// session, based on the 'assignments' table.
type Assignment struct {
	ID          int64      `json:"id" db:"id"`
	SubjectID   int64      `json:"subjectId" db:"subject_id"`
	SessionID   *int64     `json:"sessionId,omitempty" db:"session_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`
	Subject     *Subject   `json:"subject,omitempty"` // relation, no db tag
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Submission is one student's answer to an assignment. Grade is on the
// French 0-20 scale and stays nil until a teacher grades the submission.
type Submission struct {
	ID           int64      `json:"id" db:"id"`
	AssignmentID int64      `json:"assignmentId" db:"assignment_id"`
	StudentID    int64      `json:"studentId" db:"student_id"`
	Content      *string    `json:"content,omitempty" db:"content"`
	FileLink     *string    `json:"fileLink,omitempty" db:"file_link"`
	SubmittedAt  time.Time  `json:"submittedAt" db:"submitted_at"`
	Grade        *float64   `json:"grade,omitempty" db:"grade"`
	GradeComment *string    `json:"gradeComment,omitempty" db:"grade_comment"`
	GradedBy     *int64     `json:"gradedBy,omitempty" db:"graded_by"`
	GradedAt     *time.Time `json:"gradedAt,omitempty" db:"graded_at"`
	Student      *Student   `json:"student,omitempty"` // relation, no db tag
}
