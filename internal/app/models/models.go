package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// SessionStatus is the computed lifecycle phase of a session. It is derived
// from the stored date and time-of-day strings at read time and never
// persisted.
type SessionStatus string

const (
	StatusNotScheduled SessionStatus = "NOT_SCHEDULED"
	StatusUpcoming     SessionStatus = "UPCOMING"
	StatusOngoing      SessionStatus = "ONGOING"
	StatusCompleted    SessionStatus = "COMPLETED"
)

// NotificationCategory classifies a notification for client filtering
type NotificationCategory string

const (
	CategorySession    NotificationCategory = "session"
	CategoryResource   NotificationCategory = "resource"
	CategoryFeedback   NotificationCategory = "feedback"
	CategoryAttendance NotificationCategory = "attendance"
	CategoryGeneral    NotificationCategory = "general"
)

// EntityKind identifies the entity a notification points back to
type EntityKind string

const (
	EntitySession    EntityKind = "SESSION"
	EntityAssignment EntityKind = "ASSIGNMENT"
	EntityFeedback   EntityKind = "FEEDBACK"
)

// AttendanceStatus is the per-student presence state for one session
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// ValidAttendanceStatus reports whether s is one of the known statuses
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}
