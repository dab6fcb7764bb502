package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// FavoritesStore defines database operations for favorites management.
type FavoritesStore interface {
	CreateFavorite(userID, bookID uint) (*entities.Favorite, error)
	DeleteFavorite(id, userID uint) error
}

type FavoritesController struct {
	store   FavoritesStore
	catalog BookCatalog
}

func NewFavoritesController(store FavoritesStore, catalog BookCatalog) *FavoritesController {
	return &FavoritesController{store: store, catalog: catalog}
}

type createFavoriteRequest struct {
	BookID uint `json:"bookId" binding:"required"`
}

// CreateFavorite bookmarks a book for the session user. Repeated calls
// create repeated rows; that is the store's documented shape.
// POST /api/favorites
func (fc *FavoritesController) CreateFavorite(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondUnauthorized(c)
		return
	}

	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "bookId is required")
		return
	}

	exists, err := fc.catalog.BookExists(req.BookID)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	favorite, err := fc.store.CreateFavorite(userID, req.BookID)
	if err != nil {
		respondInternalError(c, err, "create favorite")
		return
	}

	respondCreated(c, NewFavoritePayload(*favorite))
}

// DeleteFavorite removes a favorite owned by the session user. A row owned
// by another user matches nothing and reads as not found.
// DELETE /api/favorites/:id
func (fc *FavoritesController) DeleteFavorite(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.DeleteFavorite(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "favorite")
			return
		}
		respondInternalError(c, err, "delete favorite")
		return
	}

	respondSuccess(c, "favorite removed")
}
