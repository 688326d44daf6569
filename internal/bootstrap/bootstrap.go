package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/scolaris/scolaris/internal/app/controllers"
	appMigrations "github.com/scolaris/scolaris/internal/app/migrations"
	appRepos "github.com/scolaris/scolaris/internal/app/repositories"
	appRoutes "github.com/scolaris/scolaris/internal/app/routes"
	appServices "github.com/scolaris/scolaris/internal/app/services"
	"github.com/scolaris/scolaris/internal/config"
	"github.com/scolaris/scolaris/internal/db"
	appMiddleware "github.com/scolaris/scolaris/internal/middleware"
	pkgAuth "github.com/scolaris/scolaris/internal/pkg/auth"
	"github.com/scolaris/scolaris/internal/pkg/email"
	"github.com/scolaris/scolaris/internal/pkg/filestorage"
	"github.com/scolaris/scolaris/internal/pkg/helpers"
	"github.com/scolaris/scolaris/internal/pkg/logger"
	"github.com/scolaris/scolaris/internal/pkg/realtime"
	"github.com/scolaris/scolaris/internal/pkg/validation"
	"github.com/scolaris/scolaris/internal/scheduler"
	"github.com/scolaris/scolaris/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	SubjectService         appServices.SubjectService
	SessionService         appServices.SessionService
	AttendanceService      appServices.AttendanceService
	AssignmentService      appServices.AssignmentService
	NotificationService    appServices.NotificationService
	FeedbackService        appServices.FeedbackService
	ReminderService        appServices.ReminderService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	SubjectController      *appControllers.SubjectController
	SessionController      *appControllers.SessionController
	AttendanceController   *appControllers.AttendanceController
	AssignmentController   *appControllers.AssignmentController
	NotificationController *appControllers.NotificationController
	FeedbackController     *appControllers.FeedbackController
	AdminController        *appControllers.AdminController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Hub                    *realtime.Hub
	RealtimeHandler        *realtime.Handler
	Scheduler              *scheduler.Scheduler
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A missing admin account is recoverable through manual SQL, keep
		// the server coming up
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// background machinery.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if err := validation.RegisterRules(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		BaseURL:   baseURL,
	}, lgr)

	deps.Hub = realtime.NewHub(lgr)
	deps.RealtimeHandler = realtime.NewHandler(deps.Hub, lgr)

	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.NotificationRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		deps.Hub,
	)
	deps.ReminderService = appServices.NewReminderService(deps.Repos.SessionRepository, deps.NotificationService)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		emailService,
	)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, deps.Repos.TeacherRepository)
	deps.SessionService = appServices.NewSessionService(
		deps.Repos.SessionRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		deps.NotificationService,
		deps.FileStorage,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.SessionRepository,
		deps.Repos.StudentRepository,
		deps.NotificationService,
	)
	deps.AssignmentService = appServices.NewAssignmentService(
		deps.Repos.AssignmentRepository,
		deps.Repos.SubjectRepository,
		deps.Repos.StudentRepository,
		deps.NotificationService,
	)
	deps.FeedbackService = appServices.NewFeedbackService(
		deps.Repos.FeedbackRepository,
		deps.Repos.SessionRepository,
		deps.Repos.StudentRepository,
		deps.NotificationService,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.AssignmentController = appControllers.NewAssignmentController(deps.AssignmentService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.AdminController = appControllers.NewAdminController(deps.ReminderService)

	if cfg.Reminder.Enabled {
		deps.Scheduler, err = scheduler.NewScheduler(deps.ReminderService, cfg.Reminder.Schedule, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to build scheduler: %w", err)
		}
	} else {
		lgr.Warn().Msg("Daily reminder trigger disabled by configuration")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.SubjectController,
		deps.SessionController,
		deps.AttendanceController,
		deps.AssignmentController,
		deps.NotificationController,
		deps.FeedbackController,
		deps.AdminController,
		deps.RealtimeHandler,
		deps.AuthMiddleware,
	)

	return router
}
