package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	TeacherRepository      *TeacherRepository
	StudentRepository      *StudentRepository
	SubjectRepository      *SubjectRepository
	SessionRepository      *SessionRepository
	NotificationRepository *NotificationRepository
	AttendanceRepository   *AttendanceRepository
	AssignmentRepository   *AssignmentRepository
	FeedbackRepository     *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		TeacherRepository:      NewTeacherRepository(db),
		StudentRepository:      NewStudentRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		SessionRepository:      NewSessionRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		AssignmentRepository:   NewAssignmentRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
	}
}
