package dto

// CreateSubjectRequest creates a subject
type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	Code        string  `json:"code" binding:"required,min=2,max=20"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	TeacherID   *int64  `json:"teacherId,omitempty"`
}

// UpdateSubjectRequest updates a subject; nil fields are left unchanged
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Code        *string `json:"code,omitempty" binding:"omitempty,min=2,max=20"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	TeacherID   *int64  `json:"teacherId,omitempty"`
}

// CreateChapterRequest adds a content unit to a subject
type CreateChapterRequest struct {
	Position    int     `json:"position" binding:"required,min=1"`
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	ContentLink *string `json:"contentLink,omitempty" binding:"omitempty,url"`
}

// UpdateChapterRequest updates a chapter; nil fields are left unchanged
type UpdateChapterRequest struct {
	Position    *int    `json:"position,omitempty" binding:"omitempty,min=1"`
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	ContentLink *string `json:"contentLink,omitempty" binding:"omitempty,url"`
}
