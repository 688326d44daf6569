package dto

// MarkAttendanceEntry is one student's state in a bulk attendance call
type MarkAttendanceEntry struct {
	StudentID int64   `json:"studentId" binding:"required,min=1"`
	Status    string  `json:"status" binding:"required,oneof=present absent late excused"`
	Note      *string `json:"note,omitempty" binding:"omitempty,max=300"`
}

// MarkAttendanceRequest records attendance for several students of one
// session in a single call
type MarkAttendanceRequest struct {
	Entries []MarkAttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}
