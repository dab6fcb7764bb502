package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// SeedCatalog populates the catalog reference data: genres, authors and
// books. It is idempotent; existing rows are found by name (genres,
// authors) or title (books) and never recreated. A book whose author or
// genre cannot be resolved is skipped with a log line rather than failing
// the whole seed.
func (d *Database) SeedCatalog() error {
	genres := make(map[string]*entities.Genre, len(seedGenres))
	for _, name := range seedGenres {
		genre, err := d.findOrCreateGenre(name)
		if err != nil {
			return fmt.Errorf("failed to seed genre %q: %w", name, err)
		}
		genres[name] = genre
	}

	authors := make(map[string]*entities.Author, len(seedAuthors))
	for _, name := range seedAuthors {
		author, err := d.findOrCreateAuthor(name)
		if err != nil {
			return fmt.Errorf("failed to seed author %q: %w", name, err)
		}
		authors[name] = author
	}

	for _, data := range seedBooks {
		author := authors[data.Author]
		genre := genres[data.Genre]
		if author == nil || genre == nil {
			log.Printf("Skipping book %q: unresolved author or genre reference", data.Title)
			continue
		}

		var existing entities.Book
		err := d.DB.Where("title = ?", data.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up book %q: %w", data.Title, err)
		}

		book := entities.Book{
			Title:    data.Title,
			Year:     data.Year,
			Image:    data.Image,
			Pdf:      data.Pdf,
			Price:    data.Price,
			AuthorID: author.ID,
			GenreID:  genre.ID,
		}
		if err := d.DB.Create(&book).Error; err != nil {
			return fmt.Errorf("failed to create book %q: %w", data.Title, err)
		}
		log.Printf("Created book: %s", data.Title)
	}

	return nil
}

func (d *Database) findOrCreateGenre(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := d.DB.Where("name = ?", name).First(&genre).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	genre = entities.Genre{Name: name}
	if err := d.DB.Create(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (d *Database) findOrCreateAuthor(name string) (*entities.Author, error) {
	var author entities.Author
	err := d.DB.Where("name = ?", name).First(&author).Error
	if err == nil {
		return &author, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	author = entities.Author{Name: name}
	if err := d.DB.Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
