package book

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is a user-authored catalog entry, as opposed to the records
// mirrored from the external catalog.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description,omitempty"`
	Price         int       `json:"price"`
	Genres        string    `json:"genres,omitempty"` // comma-separated
	PublishedDate string    `json:"published_date,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (b Book) GenreList() []string {
	if b.Genres == "" {
		return nil
	}
	parts := strings.Split(b.Genres, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func (b Book) GenreDisplay() string {
	return strings.Join(b.GenreList(), ", ")
}

// Query defines filters and pagination for listing books.
type Query struct {
	Search string // matches title, author or genres
	Author string
	Genre  string
	Limit  int
	Offset int
}
