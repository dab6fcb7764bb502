package http

import (
	"github.com/gin-gonic/gin"

	"github.com/qazaqkitap/qazaqkitap/internal/auth"
	"github.com/qazaqkitap/qazaqkitap/internal/database"
	"github.com/qazaqkitap/qazaqkitap/internal/tasks"
)

// RouterConfig carries every dependency the router needs. Using a config
// struct keeps the constructor signature stable and lets tests wire only
// the pieces they exercise.
type RouterConfig struct {
	Database *database.Database

	BookCatalog    BookCatalog
	FavoritesStore FavoritesStore
	CartStore      CartStore
	ProfileStore   ProfileStore

	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool

	TaskClient *tasks.Client

	CoversDir string
	PdfsDir   string

	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	// The guard rejects everything outside the public path list
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Static mounts for uploaded book covers and PDFs
	if cfg.CoversDir != "" {
		router.Static("/uploads/covers", cfg.CoversDir)
	}
	if cfg.PdfsDir != "" {
		router.Static("/uploads/pdfs", cfg.PdfsDir)
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth endpoints
	if cfg.AuthService != nil {
		authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager)
		authController.RegisterRoutes(router)
	}
	if cfg.ProfileStore != nil {
		profileController := NewProfileController(cfg.ProfileStore)
		router.GET("/api/auth/me", profileController.Me)
	}

	// Catalog endpoints (public, read-only; the seed is the only writer)
	if cfg.BookCatalog != nil {
		booksController := NewBooksController(cfg.BookCatalog)
		router.GET("/api/books", booksController.GetAllBooks)
		router.GET("/api/books/:id", booksController.GetBookByID)
	}

	// Favorites endpoints
	if cfg.FavoritesStore != nil && cfg.BookCatalog != nil {
		favoritesController := NewFavoritesController(cfg.FavoritesStore, cfg.BookCatalog)
		router.POST("/api/favorites", favoritesController.CreateFavorite)
		router.DELETE("/api/favorites/:id", favoritesController.DeleteFavorite)
	}

	// Cart endpoints
	if cfg.CartStore != nil && cfg.BookCatalog != nil {
		cartController := NewCartController(cfg.CartStore, cfg.BookCatalog)
		router.POST("/api/cart", cartController.CreateItem)
		router.DELETE("/api/cart/:id", cartController.DeleteItem)
	}

	// Operator endpoints
	if cfg.TaskClient != nil {
		adminController := NewAdminController(cfg.TaskClient)
		router.POST("/api/admin/assets/check", adminController.CheckAssets)
	}

	return router
}
