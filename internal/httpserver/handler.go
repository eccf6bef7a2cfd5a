package httpserver

import (
	"context"
	"fmt"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard/internal/extract"
	"taskboard/internal/middleware"
	"taskboard/internal/suggest"
	taskHTTP "taskboard/internal/task/delivery/http"
	"taskboard/internal/task/repository/sqldb"
	"taskboard/internal/task/usecase"
	"taskboard/pkg/llmprovider"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.RequestLog())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.RateLimit())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the task domain end to end:
// database, repository, extractor, usecase, HTTP handler.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	db, err := srv.openDatabase()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// A migration failure is survivable: reads and writes degrade to the
	// legacy column set when the status column is absent.
	if err := sqldb.Migrate(db); err != nil {
		srv.l.Warnf(ctx, "Migration failed, relying on legacy schema fallback: %v", err)
	}

	repo := sqldb.New(srv.l, db)

	extractor, err := srv.buildExtractor()
	if err != nil {
		return fmt.Errorf("build extractor: %w", err)
	}

	location, err := time.LoadLocation(srv.cfg.Extractor.Timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", srv.cfg.Extractor.Timezone, err)
		location = time.UTC
	}

	uc := usecase.New(srv.l, repo, extractor, location, suggest.Config{
		Debounce:  srv.cfg.Suggest.Debounce,
		Limit:     srv.cfg.Suggest.Limit,
		CacheSize: srv.cfg.Suggest.CacheSize,
		CacheTTL:  srv.cfg.Suggest.CacheTTL,
	})

	h := taskHTTP.New(srv.l, uc)

	api := srv.gin.Group("/api/v1")
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered (driver=%s, extractor=%s)",
		srv.cfg.Database.Driver, srv.cfg.Extractor.Strategy)
	return nil
}

func (srv *HTTPServer) openDatabase() (*gorm.DB, error) {
	gormCfg := &gorm.Config{}

	switch srv.cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(srv.cfg.Database.DSN), gormCfg)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(srv.cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", srv.cfg.Database.Driver)
	}
}

// buildExtractor selects the extraction strategy. The rule engine is
// always constructed; in llm mode it doubles as the outage fallback.
func (srv *HTTPServer) buildExtractor() (extract.Extractor, error) {
	ctx := context.Background()

	rule := extract.NewRuleEngine(srv.l)

	if srv.cfg.Extractor.Strategy != "llm" {
		return rule, nil
	}

	providers, err := llmprovider.InitializeProviders(&srv.cfg.LLM)
	if err != nil {
		return nil, err
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: srv.cfg.LLM.FallbackEnabled,
		RetryAttempts:   srv.cfg.LLM.RetryAttempts,
		RetryDelay:      srv.cfg.LLM.RetryDelay,
		MaxTotalTimeout: srv.cfg.LLM.MaxTotalTimeout,
	}, srv.l)

	srv.l.Infof(ctx, "LLM extraction enabled with %d provider(s)", len(providers))
	return extract.WithFallback(extract.NewLLMEngine(srv.l, manager), rule), nil
}
