package dto

// CreateSessionRequest creates a scheduled teaching meeting.
// Date is "YYYY-MM-DD"; StartTime/EndTime are 24-hour "HH:MM" and must
// satisfy endTime > startTime. The hhmm rule is registered in the
// validation package.
type CreateSessionRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=200"`
	TeacherID   int64   `json:"teacherId" binding:"required,min=1"`
	StudentIDs  []int64 `json:"studentIds"`
	Date        *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2026-09-14"`
	StartTime   *string `json:"startTime,omitempty" binding:"omitempty,hhmm" example:"09:00"`
	EndTime     *string `json:"endTime,omitempty" binding:"omitempty,hhmm" example:"12:00"`
	Remark      *string `json:"remark,omitempty" binding:"omitempty,max=500"`
	DirectLink  *string `json:"directLink,omitempty" binding:"omitempty,url"`
	SupportLink *string `json:"supportLink,omitempty" binding:"omitempty,url"`
}

// UpdateSessionRequest reschedules or re-targets a session. Nil fields are
// left unchanged; StudentIDs, when present, replaces the full enrollment
// (the service computes the added delta for notification fan-out).
type UpdateSessionRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	TeacherID   *int64   `json:"teacherId,omitempty" binding:"omitempty,min=1"`
	StudentIDs  *[]int64 `json:"studentIds,omitempty"`
	Date        *string  `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string  `json:"startTime,omitempty" binding:"omitempty,hhmm"`
	EndTime     *string  `json:"endTime,omitempty" binding:"omitempty,hhmm"`
	Remark      *string  `json:"remark,omitempty" binding:"omitempty,max=500"`
	DirectLink  *string  `json:"directLink,omitempty" binding:"omitempty,url"`
	SupportLink *string  `json:"supportLink,omitempty" binding:"omitempty,url"`
}
