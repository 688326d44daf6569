package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"jdupont@scolaris.fr"`
	Password    string     `json:"-" db:"password"` // hashed, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name" example:"Jean"`
	LastName    string     `json:"lastName" db:"last_name" example:"Dupont"`
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"TEACHER"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the display name used in notification text
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Teacher defines the teacher profile based on the 'teachers' table.
// UserID is nullable: a teacher record may exist before any login account
// is linked to it, in which case notification fan-out skips it.
type Teacher struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"userId,omitempty" db:"user_id"`
	Specialty string    `json:"specialty" db:"specialty"`
	User      *User     `json:"user,omitempty"` // relation, no db tag
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Student defines the student profile based on the 'students' table.
// UserID is nullable, same contract as Teacher.UserID.
type Student struct {
	ID               int64     `json:"id" db:"id"`
	UserID           *int64    `json:"userId,omitempty" db:"user_id"`
	ClassName        string    `json:"className" db:"class_name"`
	EnrollmentNumber string    `json:"enrollmentNumber" db:"enrollment_number"`
	User             *User     `json:"user,omitempty"` // relation, no db tag
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
