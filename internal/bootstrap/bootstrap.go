package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/collegeadmin/internal/app/controllers"
	appMigrations "github.com/yigit/collegeadmin/internal/app/migrations"
	"github.com/yigit/collegeadmin/internal/app/models"
	appRepos "github.com/yigit/collegeadmin/internal/app/repositories"
	appRoutes "github.com/yigit/collegeadmin/internal/app/routes"
	appServices "github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/db"
	appMiddleware "github.com/yigit/collegeadmin/internal/middleware"
	pkgAuth "github.com/yigit/collegeadmin/internal/pkg/auth"
	"github.com/yigit/collegeadmin/internal/pkg/helpers"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
	"github.com/yigit/collegeadmin/internal/pkg/websocket"
	"github.com/yigit/collegeadmin/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Campus         *appServices.Campus
	Fixture        *seed.Fixture
	Database       *db.PostgresDB // nil when persistence is disabled
	Snapshots      *appRepos.SnapshotRepository
	JWTService     *pkgAuth.JWTService
	AuthService    *appServices.AuthService
	AuthMiddleware *appMiddleware.AuthMiddleware
	ActivityHub    *websocket.Hub
	Activity       *websocket.Recorder
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	logger.Configure(logger.Config{
		Level:      logLevel,
		Pretty:     strings.ToLower(cfg.Logging.Format) == "text",
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCampus builds the campus from the college settings and seeds the
// default records
func SetupCampus(cfg *config.Config, lgr zerolog.Logger) (*appServices.Campus, *seed.Fixture, error) {
	college := models.CollegeInfo{Name: cfg.College.Name, Address: cfg.College.Address}
	campus := appServices.NewCampus(college, cfg.Delays(), lgr)

	fx, err := seed.CreateDefaultData(campus, lgr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to seed campus: %w", err)
	}
	if err := seed.CreateDefaultOrganisations(campus, fx); err != nil {
		return nil, nil, fmt.Errorf("failed to seed organisations: %w", err)
	}
	return campus, fx, nil
}

// SetupDatabase connects to PostgreSQL and runs migrations. It returns nil
// without error when persistence is disabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if !cfg.Database.Enabled {
		lgr.Info().Msg("Database persistence disabled, snapshots will be rejected")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes services and controllers around the campus.
func BuildDependencies(cfg *config.Config, campus *appServices.Campus, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Campus:    campus,
		Database:  database,
		Snapshots: appRepos.NewSnapshotRepository(database),
		Logger:    lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	var err error
	deps.AuthService, err = appServices.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, deps.JWTService, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up admin credentials: %w", err)
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ActivityHub = websocket.NewHub(lgr)
	deps.Activity = websocket.NewRecorder(deps.ActivityHub, cfg.Activity.HistorySize, lgr)
	feed := deps.ActivityHub

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.AuthService, lgr),
		Student:    appControllers.NewStudentController(campus, feed),
		Faculty:    appControllers.NewFacultyController(campus, feed),
		Department: appControllers.NewDepartmentController(campus, feed),
		Club:       appControllers.NewClubController(campus, feed),
		Society:    appControllers.NewSocietyController(campus, feed),
		Hostel:     appControllers.NewHostelController(campus, feed),
		Library:    appControllers.NewLibraryController(campus, feed),
		Accounts:   appControllers.NewAccountsController(campus, feed),
		Academic:   appControllers.NewAcademicController(campus, feed),
		Canteen:    appControllers.NewCanteenController(campus, feed),
		NNF:        appControllers.NewNNFController(campus, feed),
		Snapshot:   appControllers.NewSnapshotController(campus, feed, deps.Snapshots),
		Activity:   appControllers.NewActivityController(deps.Activity, websocket.NewHandler(deps.ActivityHub, lgr)),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
