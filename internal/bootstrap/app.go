package bootstrap

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/jobinput"
	"github.com/franciscoturdera00/resume-automation/internal/llm"
	openai "github.com/franciscoturdera00/resume-automation/internal/llm/openai"
	"github.com/franciscoturdera00/resume-automation/internal/runs"
	"github.com/franciscoturdera00/resume-automation/internal/server"
	"github.com/franciscoturdera00/resume-automation/internal/shared/config"
	"github.com/franciscoturdera00/resume-automation/internal/shared/storage/db"
	"github.com/franciscoturdera00/resume-automation/internal/shared/storage/object"
	localstore "github.com/franciscoturdera00/resume-automation/internal/shared/storage/object/local"
	s3store "github.com/franciscoturdera00/resume-automation/internal/shared/storage/object/s3"
	"github.com/franciscoturdera00/resume-automation/internal/tailor"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	LLM           llm.Client
	RunsRepo      runs.Repo
	TailorService *tailor.Service
	TailorHandler *tailor.Handler
	RunsHandler   *runs.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	var runsRepo runs.Repo
	if sqlDB != nil {
		runsRepo = &runs.PGRepo{DB: sqlDB}
	} else {
		runsRepo = runs.NewMemoryRepo()
	}

	tailorSvc := tailor.NewService(client, store, runsRepo)
	tailorHandler := tailor.NewHandler(tailorSvc, jobinput.NewResolver(), loadMasterResume(cfg))
	runsHandler := runs.NewHandler(runsRepo, store)

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Store:         store,
		LLM:           client,
		RunsRepo:      runsRepo,
		TailorService: tailorSvc,
		TailorHandler: tailorHandler,
		RunsHandler:   runsHandler,
	}
	app.Router = server.NewRouter(cfg, tailorHandler, runsHandler)

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory run repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory run repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
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

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.LLMProvider)) {
	case "openai":
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" {
			if isDevLike(cfg.Env) {
				log.Printf("bootstrap: OPENAI_API_KEY empty; using placeholder LLM client")
				return llm.PlaceholderClient{}, nil
			}
			return nil, fmt.Errorf("OPENAI_API_KEY is required for LLM_PROVIDER=openai")
		}
		return openai.NewClient(apiKey, cfg.LLMModel)
	case "", "none":
		return llm.PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

// loadMasterResume reads the configured master resume file. Missing or
// malformed files leave the API requiring an inline master resume.
func loadMasterResume(cfg config.Config) json.RawMessage {
	path := strings.TrimSpace(cfg.MasterResume)
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("bootstrap: master resume not loaded from %s: %v", path, err)
		return nil
	}
	if !json.Valid(data) {
		log.Printf("bootstrap: master resume at %s is not valid JSON; ignoring", path)
		return nil
	}
	return json.RawMessage(data)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
