package models

import "time"

// Session represents one scheduled teaching meeting based on the 'sessions'
// table. Date carries only the calendar date; StartTime and EndTime are
// 24-hour "HH:MM" wall-clock strings interpreted as local time on Date.
// Any of the three may be absent, in which case the session is not yet
// scheduled.
type Session struct {
	ID          int64         `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	TeacherID   int64         `json:"teacherId" db:"teacher_id"`
	Date        *time.Time    `json:"date,omitempty" db:"date"`
	StartTime   *string       `json:"startTime,omitempty" db:"start_time" example:"09:00"`
	EndTime     *string       `json:"endTime,omitempty" db:"end_time" example:"12:00"`
	Remark      *string       `json:"remark,omitempty" db:"remark"`
	DirectLink  *string       `json:"directLink,omitempty" db:"direct_link"`
	SupportLink *string       `json:"supportLink,omitempty" db:"support_link"`
	StudentIDs  []int64       `json:"studentIds"`                // enrollment, loaded from session_students
	Teacher     *Teacher      `json:"teacher,omitempty"`         // relation, no db tag
	Status      SessionStatus `json:"status,omitempty" db:"-"`   // computed, never stored
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// Scheduled reports whether the session has a full date + time range
func (s *Session) Scheduled() bool {
	return s.Date != nil && s.StartTime != nil && s.EndTime != nil
}
