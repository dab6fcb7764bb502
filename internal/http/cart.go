package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// CartStore defines database operations for cart management.
type CartStore interface {
	CreateItem(userID, bookID uint) (*entities.CartItem, error)
	DeleteItem(id, userID uint) error
}

type CartController struct {
	store   CartStore
	catalog BookCatalog
}

func NewCartController(store CartStore, catalog BookCatalog) *CartController {
	return &CartController{store: store, catalog: catalog}
}

type createCartItemRequest struct {
	BookID uint `json:"bookId" binding:"required"`
}

// CreateItem stages one unit of a book for the session user. Adding the
// same book again stages another unit as a separate row.
// POST /api/cart
func (cc *CartController) CreateItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondUnauthorized(c)
		return
	}

	var req createCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "bookId is required")
		return
	}

	exists, err := cc.catalog.BookExists(req.BookID)
	if err != nil {
		respondInternalError(c, err, "check book")
		return
	}
	if !exists {
		respondNotFound(c, "book")
		return
	}

	item, err := cc.store.CreateItem(userID, req.BookID)
	if err != nil {
		respondInternalError(c, err, "create cart item")
		return
	}

	respondCreated(c, NewCartItemPayload(*item))
}

// DeleteItem removes a cart row owned by the session user. Checkout on the
// client drains the cart by calling this once per row.
// DELETE /api/cart/:id
func (cc *CartController) DeleteItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondUnauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.DeleteItem(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "cart item")
			return
		}
		respondInternalError(c, err, "delete cart item")
		return
	}

	respondSuccess(c, "cart item removed")
}
