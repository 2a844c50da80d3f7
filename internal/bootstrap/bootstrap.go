package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/melisdmr/brightnest/docs" // Import generated swagger docs
	appControllers "github.com/melisdmr/brightnest/internal/app/controllers"
	appMigrations "github.com/melisdmr/brightnest/internal/app/migrations"
	appRepos "github.com/melisdmr/brightnest/internal/app/repositories"
	appRoutes "github.com/melisdmr/brightnest/internal/app/routes"
	appServices "github.com/melisdmr/brightnest/internal/app/services"
	"github.com/melisdmr/brightnest/internal/config"
	"github.com/melisdmr/brightnest/internal/db"
	appMiddleware "github.com/melisdmr/brightnest/internal/middleware"
	pkgAuth "github.com/melisdmr/brightnest/internal/pkg/auth"
	"github.com/melisdmr/brightnest/internal/pkg/helpers"
	"github.com/melisdmr/brightnest/internal/pkg/logger"
	"github.com/melisdmr/brightnest/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      *appServices.AuthService
	ChildService     *appServices.ChildService
	ClassroomService *appServices.ClassroomService
	OccupancyService *appServices.OccupancyService
	RatioService     *appServices.RatioService
	DashboardService *appServices.DashboardService

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ChildController      *appControllers.ChildController
	ClassroomController  *appControllers.ClassroomController
	AttendanceController *appControllers.AttendanceController
	RatioController      *appControllers.RatioController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Pool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Seeding failures are logged but do not stop startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)

	deps.ChildService = appServices.NewChildService(deps.Repos.ChildRepository, deps.Repos.UserRepository)
	deps.ClassroomService = appServices.NewClassroomService(
		deps.Repos.ClassroomRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.CheckInRepository,
	)
	deps.OccupancyService = appServices.NewOccupancyService(
		deps.Repos.ChildRepository,
		deps.Repos.ClassroomRepository,
		deps.Repos.UserRepository,
		deps.Repos.AssignmentRepository,
		deps.Repos.CheckInRepository,
		deps.Repos.StaffAttendanceRepository,
	)
	deps.RatioService = appServices.NewRatioService(
		deps.Repos.ClassroomRepository,
		deps.Repos.CheckInRepository,
		deps.Repos.StaffAttendanceRepository,
	)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.ClassroomRepository,
		deps.Repos.CheckInRepository,
		deps.Repos.StaffAttendanceRepository,
		deps.RatioService,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.UserController = appControllers.NewUserController(deps.Repos.UserRepository, deps.Logger)
	deps.ChildController = appControllers.NewChildController(deps.ChildService, deps.Logger)
	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService, deps.Logger)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.OccupancyService, deps.Logger)
	deps.RatioController = appControllers.NewRatioController(deps.RatioService, deps.DashboardService, deps.Logger)

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

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ChildController,
		deps.ClassroomController,
		deps.AttendanceController,
		deps.RatioController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
