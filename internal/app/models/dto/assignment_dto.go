package dto

// CreateAssignmentRequest creates homework on a subject
type CreateAssignmentRequest struct {
	SubjectID   int64   `json:"subjectId" binding:"required,min=1"`
	SessionID   *int64  `json:"sessionId,omitempty"`
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	DueDate     *string `json:"dueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAssignmentRequest updates homework; nil fields are left unchanged
type UpdateAssignmentRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	DueDate     *string `json:"dueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// SubmitAssignmentRequest hands in a student's answer
type SubmitAssignmentRequest struct {
	Content  *string `json:"content,omitempty" binding:"omitempty,max=10000"`
	FileLink *string `json:"fileLink,omitempty" binding:"omitempty,url"`
}

// GradeSubmissionRequest sets the grade on a submission (0-20 scale)
type GradeSubmissionRequest struct {
	Grade   float64 `json:"grade" binding:"min=0,max=20"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}
