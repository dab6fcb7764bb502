package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/qazaqkitap/qazaqkitap/internal/config"
	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// setupAuthStack builds a service, session manager and guard middleware on
// a file-backed database. Sessions need the raw *sql.DB, which the
// in-memory driver shares poorly across connections.
func setupAuthStack(t *testing.T) (*Service, *SessionManager, *Middleware, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_auth_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))

	service := NewService(db, config.Auth{BcryptCost: 4})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sessionManager, err := NewSessionManager(sqlDB, config.Auth{
		SessionLifetime: time.Hour,
	})
	require.NoError(t, err)

	middleware := NewMiddleware(service, sessionManager)

	cleanup := func() {
		sqlDB.Close()
		os.Remove(dbPath)
	}
	return service, sessionManager, middleware, cleanup
}

// newGuardedRouter wires the session and guard middleware plus a login
// route and a probe route that reports the resolved user.
func newGuardedRouter(service *Service, sm *SessionManager, mw *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(sm.SessionLoadSave())
	router.Use(mw.Handler())

	router.POST("/api/auth/login", func(c *gin.Context) {
		user, err := service.Authenticate(c.Query("login"), c.Query("password"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login or password"})
			return
		}
		if err := sm.CreateSession(c.Request, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
	})

	probe := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetUserID(c),
			"username": GetUsername(c),
		})
	}
	router.GET("/api/private", probe)
	router.GET("/api/books", probe)
	router.GET("/api/books/1", probe)
	router.GET("/uploads/covers/abai.jpg", probe)
	router.GET("/health", probe)

	return router
}

func loginAndGetCookies(t *testing.T, router *gin.Engine, login, password string) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login?login="+login+"&password="+password, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestMiddleware_GuardedPathWithoutSession(t *testing.T) {
	service, sm, mw, cleanup := setupAuthStack(t)
	defer cleanup()

	router := newGuardedRouter(service, sm, mw)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/private", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authentication required")
}

func TestMiddleware_PublicPathsWithoutSession(t *testing.T) {
	service, sm, mw, cleanup := setupAuthStack(t)
	defer cleanup()

	router := newGuardedRouter(service, sm, mw)

	for _, path := range []string{"/health", "/api/books", "/api/books/1", "/uploads/covers/abai.jpg"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "path %s should be public", path)
	}
}

func TestMiddleware_GuardedPathWithSession(t *testing.T) {
	service, sm, mw, cleanup := setupAuthStack(t)
	defer cleanup()

	user, err := service.Register("aigerim", "aigerim@example.com", "password123")
	require.NoError(t, err)

	router := newGuardedRouter(service, sm, mw)
	cookies := loginAndGetCookies(t, router, "aigerim", "password123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/private", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"aigerim"`)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"user_id":%d`, user.ID))
}

func TestMiddleware_PublicPathStillResolvesUser(t *testing.T) {
	service, sm, mw, cleanup := setupAuthStack(t)
	defer cleanup()

	_, err := service.Register("aigerim", "aigerim@example.com", "password123")
	require.NoError(t, err)

	router := newGuardedRouter(service, sm, mw)
	cookies := loginAndGetCookies(t, router, "aigerim", "password123")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/books", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"aigerim"`)
}

func TestMiddleware_SessionForDeletedUser(t *testing.T) {
	service, sm, mw, cleanup := setupAuthStack(t)
	defer cleanup()

	user, err := service.Register("aigerim", "aigerim@example.com", "password123")
	require.NoError(t, err)

	router := newGuardedRouter(service, sm, mw)
	cookies := loginAndGetCookies(t, router, "aigerim", "password123")

	require.NoError(t, service.db.Delete(&entities.User{}, user.ID).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/private", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_IsPublicPath(t *testing.T) {
	mw := NewMiddleware(nil, nil)

	assert.True(t, mw.isPublicPath("/health"))
	assert.True(t, mw.isPublicPath("/api/auth/login"))
	assert.True(t, mw.isPublicPath("/api/books/7"))
	assert.True(t, mw.isPublicPath("/uploads/pdfs/abai-zholy.pdf"))
	assert.False(t, mw.isPublicPath("/api/favorites"))
	assert.False(t, mw.isPublicPath("/api/auth/me"))
	assert.False(t, mw.isPublicPath("/api/admin/assets/check"))
}
