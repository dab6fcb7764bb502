package http

import (
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/qazaqkitap/qazaqkitap/internal/auth"
	"github.com/qazaqkitap/qazaqkitap/internal/database"
	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// setupTestDB creates a file-backed database for controller tests.
func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// createTestBook inserts a book with a fresh author and genre.
func createTestBook(t *testing.T, db *database.Database, title, authorName, genreName string) *entities.Book {
	t.Helper()

	author := &entities.Author{Name: authorName}
	require.NoError(t, db.DB.FirstOrCreate(author, entities.Author{Name: authorName}).Error)
	genre := &entities.Genre{Name: genreName}
	require.NoError(t, db.DB.FirstOrCreate(genre, entities.Genre{Name: genreName}).Error)

	book := &entities.Book{
		Title:    title,
		Year:     1962,
		Image:    "cover.jpg",
		Pdf:      "book.pdf",
		Price:    1234,
		AuthorID: author.ID,
		GenreID:  genre.ID,
	}
	require.NoError(t, db.DB.Create(book).Error)
	return book
}

// createTestUser inserts an account directly; controller tests don't need
// real password hashes.
func createTestUser(t *testing.T, db *database.Database, username string) *entities.User {
	t.Helper()

	user := &entities.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

// authAs returns a middleware that stamps the request as authenticated,
// standing in for the session guard.
func authAs(user *entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextKeyUserID, user.ID)
		c.Set(auth.ContextKeyUsername, user.Username)
		c.Next()
	}
}
