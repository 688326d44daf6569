package services

// Services defined in this package:
// - AuthService: login, token refresh and password changes
// - UserService: account, teacher and student administration
// - SubjectService: subjects and their chapters
// - SessionService: session scheduling, enrollment and support files
// - NotificationService: notification fan-out and the per-user inbox
// - ReminderService: the daily next-day session reminder run
// - AttendanceService: per-session attendance sheets
// - AssignmentService: homework, submissions and grading
// - FeedbackService: post-session student ratings
