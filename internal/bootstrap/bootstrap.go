package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/trackpro/trackpro/internal/app/controllers"
	appMigrations "github.com/trackpro/trackpro/internal/app/migrations"
	appRepos "github.com/trackpro/trackpro/internal/app/repositories"
	appRoutes "github.com/trackpro/trackpro/internal/app/routes"
	appServices "github.com/trackpro/trackpro/internal/app/services"
	"github.com/trackpro/trackpro/internal/config"
	"github.com/trackpro/trackpro/internal/db"
	appMiddleware "github.com/trackpro/trackpro/internal/middleware"
	pkgAuth "github.com/trackpro/trackpro/internal/pkg/auth"
	"github.com/trackpro/trackpro/internal/pkg/logger"
	"github.com/trackpro/trackpro/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	AuthService        *appServices.AuthService
	StudentService     *appServices.StudentService
	UserService        *appServices.UserService
	AdminService       *appServices.AdminService
	CourseService      *appServices.CourseService
	ApplicationService *appServices.ApplicationService
	ComplaintService   *appServices.ComplaintService
	DashboardService   *appServices.DashboardService
	AuthController     *appControllers.AuthController
	StudentController  *appControllers.StudentController
	AdminController    *appControllers.AdminController
	HealthController   *appControllers.HealthController
	Logger             zerolog.Logger
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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.NewPgxPool(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, dbPool, cfg.Seed.AdminPassword, lgr); err != nil {
			// Seeding failures are logged, not fatal
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	tokenExpiry, err := time.ParseDuration(cfg.JWT.TokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT token expiry: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: tokenExpiry,
		TokenIssuer: cfg.JWT.Issuer,
	})

	inTx := func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return db.WithTransaction(ctx, dbPool, fn)
	}

	deps.AuthService = appServices.NewAuthService(
		[]appServices.PrincipalProvider{
			appServices.NewAdminProvider(deps.Repos.AdminRepository, lgr),
			appServices.NewStaffProvider(deps.Repos.UserRepository),
			appServices.NewStudentProvider(deps.Repos.StudentRepository),
		},
		deps.JWTService,
		lgr,
	)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		inTx,
		lgr,
	)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.StudentService,
		deps.UserService,
		deps.AdminService,
		deps.CourseService,
		deps.ApplicationService,
		deps.ComplaintService,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.StudentService, lgr)
	deps.StudentController = appControllers.NewStudentController(
		deps.StudentService,
		deps.CourseService,
		deps.ApplicationService,
		deps.ComplaintService,
		lgr,
	)
	deps.AdminController = appControllers.NewAdminController(
		deps.DashboardService,
		deps.StudentService,
		deps.UserService,
		deps.AdminService,
		deps.CourseService,
		deps.ApplicationService,
		deps.ComplaintService,
		lgr,
	)
	deps.HealthController = appControllers.NewHealthController(dbPool)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.HealthController,
	)

	return router
}
