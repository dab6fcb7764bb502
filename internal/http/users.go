package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// ProfileStore answers the denormalized current-user query.
type ProfileStore interface {
	GetProfile(id uint) (*entities.User, error)
}

type ProfileController struct {
	store ProfileStore
}

func NewProfileController(store ProfileStore) *ProfileController {
	return &ProfileController{store: store}
}

// Me returns the session user with favorites and cart items expanded, each
// carrying its book with author and genre. This is the one query the
// frontend uses to derive favorite and cart membership.
// GET /api/auth/me
func (pc *ProfileController) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondUnauthorized(c)
		return
	}

	user, err := pc.store.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Session points at a deleted account; treat as unauthenticated.
			respondUnauthorized(c)
			return
		}
		respondInternalError(c, err, "load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": NewProfilePayload(*user)})
}
