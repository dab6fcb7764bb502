package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazaqkitap/qazaqkitap/internal/database/cart"
	"github.com/qazaqkitap/qazaqkitap/internal/database/favorites"
	"github.com/qazaqkitap/qazaqkitap/internal/database/users"
	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

func newProfileRouter(repo *users.Repository, user *entities.User) *gin.Engine {
	controller := NewProfileController(repo)
	router := gin.New()
	if user != nil {
		router.Use(authAs(user))
	}
	router.GET("/api/auth/me", controller.Me)
	return router
}

func TestProfileController_Me(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")
	first := createTestBook(t, db, "Абай жолы", "Мұхтар Әуезов", "Роман")
	second := createTestBook(t, db, "Көшпенділер", "Ілияс Есенберлин", "Тарихи роман")

	_, err := favorites.NewRepository(db.DB).CreateFavorite(user.ID, first.ID)
	require.NoError(t, err)
	_, err = cart.NewRepository(db.DB).CreateItem(user.ID, second.ID)
	require.NoError(t, err)

	router := newProfileRouter(users.NewRepository(db.DB), user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		User ProfilePayload `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "aigerim", response.User.Username)
	assert.Equal(t, "aigerim@example.com", response.User.Email)

	require.Len(t, response.User.Favorites, 1)
	assert.Equal(t, "Абай жолы", response.User.Favorites[0].Book.Title)
	assert.Equal(t, "Мұхтар Әуезов", response.User.Favorites[0].Book.Author.Name)
	assert.Equal(t, "Роман", response.User.Favorites[0].Book.Genre.Name)

	require.Len(t, response.User.CartItems, 1)
	assert.Equal(t, "Көшпенділер", response.User.CartItems[0].Book.Title)

	// The hash never crosses the wire.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestProfileController_Me_EmptyCollections(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")
	router := newProfileRouter(users.NewRepository(db.DB), user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Empty collections render as [], not null.
	assert.Contains(t, w.Body.String(), `"favorites":[]`)
	assert.Contains(t, w.Body.String(), `"cart_items":[]`)
}

func TestProfileController_Me_Unauthenticated(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	router := newProfileRouter(users.NewRepository(db.DB), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileController_Me_DeletedAccount(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")
	router := newProfileRouter(users.NewRepository(db.DB), user)

	require.NoError(t, db.DB.Delete(&entities.User{}, user.ID).Error)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
