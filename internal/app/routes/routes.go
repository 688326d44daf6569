package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/scolaris/scolaris/internal/app/controllers"
	"github.com/scolaris/scolaris/internal/app/models"
	"github.com/scolaris/scolaris/internal/app/models/dto"
	"github.com/scolaris/scolaris/internal/middleware"
	"github.com/scolaris/scolaris/internal/pkg/realtime"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	subjectController *controllers.SubjectController,
	sessionController *controllers.SessionController,
	attendanceController *controllers.AttendanceController,
	assignmentController *controllers.AssignmentController,
	notificationController *controllers.NotificationController,
	feedbackController *controllers.FeedbackController,
	adminController *controllers.AdminController,
	realtimeHandler *realtime.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		// Account management is reserved for administrators
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RequireRoles(models.RoleAdmin))
		{
			users.POST("", userController.CreateUser)
			users.GET("", userController.GetAllUsers)
			users.GET("/:id", userController.GetUserByID)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Teacher profiles: reads are open to staff, writes to administrators
		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("", userController.GetAllTeachers)
			teachers.GET("/:id", userController.GetTeacherByID)

			teachersAdmin := teachers.Group("")
			teachersAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
			{
				teachersAdmin.POST("", userController.CreateTeacher)
				teachersAdmin.PUT("/:id", userController.UpdateTeacher)
				teachersAdmin.DELETE("/:id", userController.DeleteTeacher)
			}
		}

		// Student profiles
		students := authenticated.Group("/students")
		{
			students.GET("", userController.GetAllStudents)
			students.GET("/:id", userController.GetStudentByID)
			students.GET("/:id/attendance", attendanceController.GetStudentAttendance)
			students.GET("/:id/feedback", feedbackController.GetStudentFeedback)

			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
			{
				studentsAdmin.POST("", userController.CreateStudent)
				studentsAdmin.PUT("/:id", userController.UpdateStudent)
				studentsAdmin.DELETE("/:id", userController.DeleteStudent)
			}
		}

		// Subjects and their chapters
		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetAllSubjects)
			subjects.GET("/:id", subjectController.GetSubjectByID)
			subjects.GET("/:id/chapters", subjectController.GetChapters)
			subjects.GET("/:id/assignments", assignmentController.GetSubjectAssignments)

			subjectsStaff := subjects.Group("")
			subjectsStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				subjectsStaff.POST("", subjectController.CreateSubject)
				subjectsStaff.PUT("/:id", subjectController.UpdateSubject)
				subjectsStaff.DELETE("/:id", subjectController.DeleteSubject)
				subjectsStaff.POST("/:id/chapters", subjectController.CreateChapter)
			}
		}

		chaptersStaff := authenticated.Group("/chapters")
		chaptersStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		{
			chaptersStaff.PUT("/:chapterId", subjectController.UpdateChapter)
			chaptersStaff.DELETE("/:chapterId", subjectController.DeleteChapter)
		}

		// Sessions: everyone enrolled can look, staff manages
		sessions := authenticated.Group("/sessions")
		{
			sessions.GET("", sessionController.GetAllSessions)
			sessions.GET("/:id", sessionController.GetSessionByID)
			sessions.GET("/:id/attendance", attendanceController.GetSessionAttendance)
			sessions.GET("/:id/feedback", feedbackController.GetSessionFeedback)

			sessionsStudent := sessions.Group("")
			sessionsStudent.Use(authMiddleware.RequireRoles(models.RoleStudent))
			{
				sessionsStudent.POST("/:id/feedback", feedbackController.SubmitFeedback)
			}

			sessionsStaff := sessions.Group("")
			sessionsStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				sessionsStaff.POST("", sessionController.CreateSession)
				sessionsStaff.PUT("/:id", sessionController.UpdateSession)
				sessionsStaff.DELETE("/:id", sessionController.DeleteSession)
				sessionsStaff.POST("/:id/support", sessionController.UploadSupportFile)
				sessionsStaff.POST("/:id/attendance", attendanceController.MarkAttendance)
			}
		}

		attendanceStaff := authenticated.Group("/attendance")
		attendanceStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		{
			attendanceStaff.DELETE("/:id", attendanceController.DeleteRecord)
		}

		// Assignments: students hand in, staff manages and grades
		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("/:id", assignmentController.GetAssignmentByID)

			assignmentsStudent := assignments.Group("")
			assignmentsStudent.Use(authMiddleware.RequireRoles(models.RoleStudent))
			{
				assignmentsStudent.POST("/:id/submissions", assignmentController.Submit)
			}

			assignmentsStaff := assignments.Group("")
			assignmentsStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
			{
				assignmentsStaff.POST("", assignmentController.CreateAssignment)
				assignmentsStaff.PUT("/:id", assignmentController.UpdateAssignment)
				assignmentsStaff.DELETE("/:id", assignmentController.DeleteAssignment)
				assignmentsStaff.GET("/:id/submissions", assignmentController.GetSubmissions)
			}
		}

		submissionsStaff := authenticated.Group("/submissions")
		submissionsStaff.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		{
			submissionsStaff.PUT("/:id/grade", assignmentController.GradeSubmission)
		}

		feedbackAdmin := authenticated.Group("/feedback")
		feedbackAdmin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
		{
			feedbackAdmin.DELETE("/:id", feedbackController.DeleteFeedback)
		}

		// Notification inbox, always scoped to the caller
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.GET("/unread", notificationController.UnreadCount)
			notifications.GET("/stream", realtimeHandler.HandleConnection)
			notifications.PUT("/read-all", notificationController.MarkAllRead)
			notifications.PUT("/:id/read", notificationController.MarkRead)
			notifications.DELETE("/:id", notificationController.DeleteNotification)
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/reminders/run", adminController.TriggerReminders)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
