package dto

// SubmitFeedbackRequest creates or replaces the calling student's feedback
// on a session
type SubmitFeedbackRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

// SessionFeedbackResponse bundles a session's feedback with its aggregate
// rating
type SessionFeedbackResponse struct {
	Feedback      interface{} `json:"feedback"`
	AverageRating float64     `json:"averageRating" example:"4.2"`
	RatingCount   int64       `json:"ratingCount" example:"17"`
}
