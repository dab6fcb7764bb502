package http

import (
	"time"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// Explicit read projections for API responses. The original data model
// relied on ORM eager loading to shape payloads; here the shapes are fixed
// types so the wire contract cannot drift with the schema. Books embed the
// full author record but only the genre's name.

// AuthorPayload is the full author record embedded in book responses.
type AuthorPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GenrePayload exposes only the genre name.
type GenrePayload struct {
	Name string `json:"name"`
}

// BookPayload is a catalog entry with author and genre resolved.
type BookPayload struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Year      int           `json:"year"`
	Image     string        `json:"image"`
	Pdf       string        `json:"pdf"`
	Price     int           `json:"price"`
	Author    AuthorPayload `json:"author"`
	Genre     GenrePayload  `json:"genre"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// FavoritePayload is a favorite row with its book expanded.
type FavoritePayload struct {
	ID     uint        `json:"id"`
	UserID uint        `json:"user_id"`
	BookID uint        `json:"book_id"`
	Book   BookPayload `json:"book"`
}

// CartItemPayload is a cart row with its book expanded.
type CartItemPayload struct {
	ID     uint        `json:"id"`
	UserID uint        `json:"user_id"`
	BookID uint        `json:"book_id"`
	Book   BookPayload `json:"book"`
}

// ProfilePayload is the denormalized current-user response: the account
// plus favorites and cart items, each with their book, so the frontend
// derives membership without extra queries.
type ProfilePayload struct {
	ID        uint              `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Favorites []FavoritePayload `json:"favorites"`
	CartItems []CartItemPayload `json:"cart_items"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewBookPayload builds the book projection. The book's Author and Genre
// associations must be loaded.
func NewBookPayload(book entities.Book) BookPayload {
	return BookPayload{
		ID:    book.ID,
		Title: book.Title,
		Year:  book.Year,
		Image: book.Image,
		Pdf:   book.Pdf,
		Price: book.Price,
		Author: AuthorPayload{
			ID:   book.Author.ID,
			Name: book.Author.Name,
		},
		Genre: GenrePayload{
			Name: book.Genre.Name,
		},
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// NewBookPayloads builds projections for a book list.
func NewBookPayloads(books []entities.Book) []BookPayload {
	payloads := make([]BookPayload, 0, len(books))
	for _, book := range books {
		payloads = append(payloads, NewBookPayload(book))
	}
	return payloads
}

// NewFavoritePayload builds the favorite projection.
func NewFavoritePayload(favorite entities.Favorite) FavoritePayload {
	return FavoritePayload{
		ID:     favorite.ID,
		UserID: favorite.UserID,
		BookID: favorite.BookID,
		Book:   NewBookPayload(favorite.Book),
	}
}

// NewCartItemPayload builds the cart item projection.
func NewCartItemPayload(item entities.CartItem) CartItemPayload {
	return CartItemPayload{
		ID:     item.ID,
		UserID: item.UserID,
		BookID: item.BookID,
		Book:   NewBookPayload(item.Book),
	}
}

// NewProfilePayload builds the current-user projection from a user with
// favorites and cart items preloaded.
func NewProfilePayload(user entities.User) ProfilePayload {
	favorites := make([]FavoritePayload, 0, len(user.Favorites))
	for _, favorite := range user.Favorites {
		favorites = append(favorites, NewFavoritePayload(favorite))
	}

	cartItems := make([]CartItemPayload, 0, len(user.CartItems))
	for _, item := range user.CartItems {
		cartItems = append(cartItems, NewCartItemPayload(item))
	}

	return ProfilePayload{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Favorites: favorites,
		CartItems: cartItems,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
