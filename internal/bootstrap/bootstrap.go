package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/dkravch/studyplan/docs" // generated swagger docs
	appControllers "github.com/dkravch/studyplan/internal/app/controllers"
	appMigrations "github.com/dkravch/studyplan/internal/app/migrations"
	appRepos "github.com/dkravch/studyplan/internal/app/repositories"
	appRoutes "github.com/dkravch/studyplan/internal/app/routes"
	appServices "github.com/dkravch/studyplan/internal/app/services"
	"github.com/dkravch/studyplan/internal/config"
	"github.com/dkravch/studyplan/internal/db"
	appMiddleware "github.com/dkravch/studyplan/internal/middleware"
	pkgAuth "github.com/dkravch/studyplan/internal/pkg/auth"
	"github.com/dkravch/studyplan/internal/pkg/helpers"
	"github.com/dkravch/studyplan/internal/pkg/logger"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	SubjectService      *appServices.SubjectService
	AcademicPlanService *appServices.AcademicPlanService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	SubjectController   *appControllers.SubjectController
	PlanController      *appControllers.AcademicPlanController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
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
// Connection failure here is fatal for the process.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 1*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, deps.Repos.AcademicPlanRepository)
	deps.AcademicPlanService = appServices.NewAcademicPlanService(
		deps.Repos.AcademicPlanRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SubjectRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.PlanController = appControllers.NewAcademicPlanController(deps.AcademicPlanService)

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

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.SubjectController,
		deps.PlanController,
		deps.AuthMiddleware,
	)

	return router
}
