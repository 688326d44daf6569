package dto

// CreateUserRequest creates a login account (admin only)
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100"`
	RoleType  string `json:"roleType" binding:"required,oneof=ADMIN TEACHER STUDENT"`
}

// UpdateUserRequest updates mutable account fields (admin only)
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,min=2,max=100"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// CreateTeacherRequest creates a teacher profile, optionally linked to a user
type CreateTeacherRequest struct {
	UserID    *int64 `json:"userId,omitempty"`
	Specialty string `json:"specialty" binding:"required,min=2,max=100"`
}

// UpdateTeacherRequest updates a teacher profile
type UpdateTeacherRequest struct {
	UserID    *int64  `json:"userId,omitempty"`
	Specialty *string `json:"specialty,omitempty" binding:"omitempty,min=2,max=100"`
}

// CreateStudentRequest creates a student profile, optionally linked to a user
type CreateStudentRequest struct {
	UserID           *int64 `json:"userId,omitempty"`
	ClassName        string `json:"className" binding:"required,min=1,max=50"`
	EnrollmentNumber string `json:"enrollmentNumber" binding:"required,min=1,max=30"`
}

// UpdateStudentRequest updates a student profile
type UpdateStudentRequest struct {
	UserID    *int64  `json:"userId,omitempty"`
	ClassName *string `json:"className,omitempty" binding:"omitempty,min=1,max=50"`
}
