package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"oaknee-backend/internal/assessments"
	"oaknee-backend/internal/exercises"
	"oaknee-backend/internal/services/health"
	"oaknee-backend/internal/shared/config"
	"oaknee-backend/internal/shared/server"
	"oaknee-backend/internal/shared/storage/db"
	"oaknee-backend/internal/shared/storage/object"
	localstore "oaknee-backend/internal/shared/storage/object/local"
	s3store "oaknee-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies and the assembled router.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.ObjectStore
	ExercisesRepo     exercises.Repo
	AssessmentsRepo   assessments.Repo
	ExercisesService  *exercises.Service
	AssessmentService *assessments.Service
	ExerciseHandler   *exercises.Handler
	AssessmentHandler *assessments.Handler
	Health            *health.Service
}

// Build prepares dependencies, loads the exercise catalog and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}
	if err := loadCatalog(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		ExerciseHandler:   app.ExerciseHandler,
		AssessmentHandler: app.AssessmentHandler,
		Health:            app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultOptions(db.ProfileLambda))
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultOptions(db.ProfileServer))
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if isDevLike(cfg.Env) {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			if !db.IsLambdaRuntime() {
				_ = sqlDB.Close()
			}
			return nil, nil
		}
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var exerciseRepo exercises.Repo
	var assessmentRepo assessments.Repo

	if app.DB != nil {
		exerciseRepo = &exercises.PGRepo{DB: app.DB}
		assessmentRepo = &assessments.PGRepo{DB: app.DB}
	} else {
		exerciseRepo = exercises.NewMemoryRepo()
		assessmentRepo = assessments.NewMemoryRepo()
	}

	exerciseSvc := &exercises.Service{
		Repo:  exerciseRepo,
		Store: app.Store,
	}
	assessmentSvc := &assessments.Service{
		Repo:          assessmentRepo,
		Catalog:       exerciseSvc,
		Store:         app.Store,
		ReportsPrefix: app.Config.ReportsPrefix,
	}

	if app.DB != nil {
		app.Health = health.NewService(app.DB, exerciseSvc)
	} else {
		app.Health = health.NewService(nil, exerciseSvc)
	}

	app.ExercisesRepo = exerciseRepo
	app.AssessmentsRepo = assessmentRepo
	app.ExercisesService = exerciseSvc
	app.AssessmentService = assessmentSvc
	app.ExerciseHandler = exercises.NewHandler(exerciseSvc)
	app.AssessmentHandler = assessments.NewHandler(assessmentSvc)

	if app.ExerciseHandler == nil || app.AssessmentHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}

// loadCatalog imports CATALOG_OBJECT_KEY when set, then seeds an empty catalog.
// A failed import is logged; the seed still applies.
func loadCatalog(ctx context.Context, app *App) error {
	if key := strings.TrimSpace(app.Config.CatalogObjectKey); key != "" {
		n, err := app.ExercisesService.ImportFromStore(ctx, key)
		if err != nil {
			log.Printf("bootstrap: catalog import from %s failed: %v", key, err)
		} else {
			log.Printf("bootstrap: imported %d exercises from %s", n, key)
		}
	}

	n, err := app.ExercisesService.EnsureSeeded(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if n > 0 {
		log.Printf("bootstrap: seeded %d exercises", n)
	}
	return nil
}
