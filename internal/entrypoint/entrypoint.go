package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qazaqkitap/qazaqkitap/internal/assets"
	"github.com/qazaqkitap/qazaqkitap/internal/auth"
	"github.com/qazaqkitap/qazaqkitap/internal/config"
	"github.com/qazaqkitap/qazaqkitap/internal/database"
	"github.com/qazaqkitap/qazaqkitap/internal/database/books"
	"github.com/qazaqkitap/qazaqkitap/internal/database/cart"
	"github.com/qazaqkitap/qazaqkitap/internal/database/favorites"
	"github.com/qazaqkitap/qazaqkitap/internal/database/users"
	http_controllers "github.com/qazaqkitap/qazaqkitap/internal/http"
	"github.com/qazaqkitap/qazaqkitap/internal/scheduler"
	"github.com/qazaqkitap/qazaqkitap/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting QazaqKitap API v%s", version)

	// Initialize database and seed the catalog
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := db.SeedCatalog(); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Repositories
	booksRepo := books.NewRepository(db.DB)
	favoritesRepo := favorites.NewRepository(db.DB)
	cartRepo := cart.NewRepository(db.DB)
	usersRepo := users.NewRepository(db.DB)

	// Auth service and session manager
	authService := auth.NewService(db.DB, cfg.Auth)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}

	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	authMiddleware := auth.NewMiddleware(authService, sessionManager)

	// Generate or use configured CSRF secret
	var csrfSecret []byte
	if cfg.Auth.CSRFEnabled {
		if cfg.Auth.SessionSecret != "" {
			csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
			if err != nil {
				// Not hex, use as raw bytes
				csrfSecret = []byte(cfg.Auth.SessionSecret)
			}
		} else {
			secret, err := auth.GenerateSessionSecret()
			if err != nil {
				log.Fatalf("Failed to generate CSRF secret: %v", err)
			}
			csrfSecret, _ = hex.DecodeString(secret)
			log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
		}
	}

	// Asset checker over the upload directories; log findings once at boot
	checker := assets.NewChecker(booksRepo, cfg.Uploads.CoversDir, cfg.Uploads.PdfsDir)
	if report, err := checker.Check(); err != nil {
		log.Printf("WARNING: startup asset check failed: %v", err)
	} else if !report.OK() {
		log.Printf("WARNING: %d catalog files missing under %s / %s",
			len(report.Missing), cfg.Uploads.CoversDir, cfg.Uploads.PdfsDir)
	}

	// Task queue for on-demand asset checks
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewCheckAssetsQueue(checker),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Scheduled asset checks
	var assetScheduler *scheduler.AssetCheckScheduler
	if cfg.AssetCheck.Enabled {
		assetScheduler = scheduler.NewAssetCheckScheduler(checker, cfg.AssetCheck.Schedule)
		if err := assetScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start asset check scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		BookCatalog:    booksRepo,
		FavoritesStore: favoritesRepo,
		CartStore:      cartRepo,
		ProfileStore:   usersRepo,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		TaskClient:     taskClient,
		CoversDir:      cfg.Uploads.CoversDir,
		PdfsDir:        cfg.Uploads.PdfsDir,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if assetScheduler != nil {
			assetScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
