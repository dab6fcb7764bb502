package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazaqkitap/qazaqkitap/internal/database/books"
	"github.com/qazaqkitap/qazaqkitap/internal/database/favorites"
	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

func newFavoritesRouter(repo *favorites.Repository, catalog *books.Repository, user *entities.User) *gin.Engine {
	controller := NewFavoritesController(repo, catalog)
	router := gin.New()
	if user != nil {
		router.Use(authAs(user))
	}
	router.POST("/api/favorites", controller.CreateFavorite)
	router.DELETE("/api/favorites/:id", controller.DeleteFavorite)
	return router
}

func TestFavoritesController_CreateFavorite(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")
	book := createTestBook(t, db, "Абай жолы", "Мұхтар Әуезов", "Роман")

	router := newFavoritesRouter(favorites.NewRepository(db.DB), books.NewRepository(db.DB), user)

	body, _ := json.Marshal(gin.H{"bookId": book.ID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var payload FavoritePayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.NotZero(t, payload.ID)
	assert.Equal(t, user.ID, payload.UserID)
	assert.Equal(t, book.ID, payload.BookID)
	assert.Equal(t, "Абай жолы", payload.Book.Title)
	assert.Equal(t, "Мұхтар Әуезов", payload.Book.Author.Name)
	assert.Equal(t, "Роман", payload.Book.Genre.Name)
}

func TestFavoritesController_CreateFavorite_Unauthenticated(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createTestBook(t, db, "Абай жолы", "Мұхтар Әуезов", "Роман")

	router := newFavoritesRouter(favorites.NewRepository(db.DB), books.NewRepository(db.DB), nil)

	body, _ := json.Marshal(gin.H{"bookId": book.ID})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavoritesController_CreateFavorite_UnknownBook(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")

	router := newFavoritesRouter(favorites.NewRepository(db.DB), books.NewRepository(db.DB), user)

	body, _ := json.Marshal(gin.H{"bookId": 999})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "book not found")
}

func TestFavoritesController_CreateFavorite_MissingBookID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")

	router := newFavoritesRouter(favorites.NewRepository(db.DB), books.NewRepository(db.DB), user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bookId is required")
}

func TestFavoritesController_CreateFavorite_DuplicatesAllowed(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")
	book := createTestBook(t, db, "Абай жолы", "Мұхтар Әуезов", "Роман")

	repo := favorites.NewRepository(db.DB)
	router := newFavoritesRouter(repo, books.NewRepository(db.DB), user)

	for i := 0; i < 2; i++ {
		body, _ := json.Marshal(gin.H{"bookId": book.ID})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	count, err := repo.CountByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFavoritesController_DeleteFavorite(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")
	book := createTestBook(t, db, "Абай жолы", "Мұхтар Әуезов", "Роман")

	repo := favorites.NewRepository(db.DB)
	favorite, err := repo.CreateFavorite(user.ID, book.ID)
	require.NoError(t, err)

	router := newFavoritesRouter(repo, books.NewRepository(db.DB), user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/favorites/%d", favorite.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "favorite removed")

	count, err := repo.CountByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFavoritesController_DeleteFavorite_OtherUsersRow(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	owner := createTestUser(t, db, "aigerim")
	other := createTestUser(t, db, "nursultan")
	book := createTestBook(t, db, "Абай жолы", "Мұхтар Әуезов", "Роман")

	repo := favorites.NewRepository(db.DB)
	favorite, err := repo.CreateFavorite(owner.ID, book.ID)
	require.NoError(t, err)

	// Authenticated as someone else, the row is invisible.
	router := newFavoritesRouter(repo, books.NewRepository(db.DB), other)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/favorites/%d", favorite.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	count, err := repo.CountByUser(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFavoritesController_DeleteFavorite_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createTestUser(t, db, "aigerim")

	router := newFavoritesRouter(favorites.NewRepository(db.DB), books.NewRepository(db.DB), user)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/favorites/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "favorite not found")
}
