// Package assets verifies that the files the catalog points at actually
// exist under the upload directories. Book rows name a cover image and a
// PDF by filename; a row whose files are gone renders as a broken card in
// the storefront, so the checker reports them for operators to fix.
package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qazaqkitap/qazaqkitap/internal/entities"
)

// AssetKind identifies which of a book's two files is being checked.
type AssetKind string

const (
	AssetKindCover AssetKind = "cover"
	AssetKindPdf   AssetKind = "pdf"
)

// BookLister provides the catalog rows to verify.
type BookLister interface {
	GetAllBooks() ([]entities.Book, error)
}

// MissingAsset describes one file a catalog row references but the upload
// directory does not contain.
type MissingAsset struct {
	BookID   uint      `json:"book_id"`
	Title    string    `json:"title"`
	Kind     AssetKind `json:"kind"`
	Filename string    `json:"filename"`
	Path     string    `json:"path"`
}

// Report summarizes one checker run.
type Report struct {
	BooksChecked int            `json:"books_checked"`
	Missing      []MissingAsset `json:"missing"`
}

// OK reports whether every referenced file was present.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Checker walks the catalog and stats each referenced file.
type Checker struct {
	catalog   BookLister
	coversDir string
	pdfsDir   string
}

// NewChecker creates a checker over the given upload directories.
func NewChecker(catalog BookLister, coversDir, pdfsDir string) *Checker {
	return &Checker{
		catalog:   catalog,
		coversDir: coversDir,
		pdfsDir:   pdfsDir,
	}
}

// Check verifies every book's cover and PDF and returns the report. A
// missing file is a finding, not an error; the error return covers catalog
// access only.
func (c *Checker) Check() (Report, error) {
	books, err := c.catalog.GetAllBooks()
	if err != nil {
		return Report{}, fmt.Errorf("failed to list catalog: %w", err)
	}

	report := Report{BooksChecked: len(books), Missing: []MissingAsset{}}

	for _, book := range books {
		if missing, path := c.fileMissing(c.coversDir, book.Image); missing {
			report.Missing = append(report.Missing, MissingAsset{
				BookID:   book.ID,
				Title:    book.Title,
				Kind:     AssetKindCover,
				Filename: book.Image,
				Path:     path,
			})
		}
		if missing, path := c.fileMissing(c.pdfsDir, book.Pdf); missing {
			report.Missing = append(report.Missing, MissingAsset{
				BookID:   book.ID,
				Title:    book.Title,
				Kind:     AssetKindPdf,
				Filename: book.Pdf,
				Path:     path,
			})
		}
	}

	return report, nil
}

// fileMissing stats a single referenced file. Rows store bare filenames;
// Base strips anything else so a crafted name cannot probe outside the
// upload directory.
func (c *Checker) fileMissing(dir, filename string) (bool, string) {
	if filename == "" {
		return true, filepath.Join(dir, "(empty)")
	}

	path := filepath.Join(dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return true, path
	}
	return false, path
}
