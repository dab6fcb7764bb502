package entities

import (
	"time"
)

// Catalog entities. Authors, genres and books are reference data owned by
// the seed; the API only ever reads them.

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:256" json:"name"`
	Books     []Book    `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	Books     []Book    `gorm:"foreignKey:GenreID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Year      int       `json:"year"`
	Image     string    `gorm:"size:1024" json:"image"` // cover filename under the covers upload dir
	Pdf       string    `gorm:"size:1024" json:"pdf"`   // book filename under the pdfs upload dir
	Price     int       `json:"price"`
	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	GenreID   uint      `gorm:"index;not null" json:"genre_id"`
	Author    Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Genre     Genre     `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
