package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when a volume cannot be retrieved, either
// because the remote catalog does not know it or because the fetch
// failed outright.
var ErrNotFound = errors.New("catalog record not found")

// UnknownTitle is filled in when the remote payload carries no title.
const UnknownTitle = "Unknown Title"

// Record is the canonical representation of one external catalog volume.
// ExternalID is assigned by the remote catalog and is immutable once
// stored; every other field is overwritten in full on refetch.
type Record struct {
	ExternalID    string    `json:"external_id"`
	Title         string    `json:"title"`
	Authors       []string  `json:"authors"`
	Description   string    `json:"description,omitempty"`
	PublishedDate string    `json:"published_date,omitempty"`
	PageCount     *int      `json:"page_count,omitempty"`
	Categories    []string  `json:"categories"`
	AverageRating *float64  `json:"average_rating,omitempty"`
	RatingsCount  int       `json:"ratings_count"`
	ImageURL      string    `json:"image_url,omitempty"`
	PreviewURL    string    `json:"preview_url,omitempty"`
	WebReaderURL  string    `json:"web_reader_url,omitempty"`
	IsEbook       bool      `json:"is_ebook"`
	Price         *float64  `json:"price,omitempty"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r Record) AuthorsDisplay() string {
	if len(r.Authors) == 0 {
		return "Unknown Author"
	}
	return strings.Join(r.Authors, ", ")
}

func (r Record) CategoriesDisplay() string {
	if len(r.Categories) == 0 {
		return "Uncategorized"
	}
	return strings.Join(r.Categories, ", ")
}

func (r Record) RatingDisplay() string {
	if r.AverageRating == nil {
		return "No ratings yet"
	}
	return fmt.Sprintf("%.1f/5.0 (%d ratings)", *r.AverageRating, r.RatingsCount)
}

// SearchResult is the outcome of one catalog search. Err carries the
// operator-facing failure message; when it is set Records is empty and
// nothing was cached.
type SearchResult struct {
	Records    []Record `json:"records"`
	TotalCount int      `json:"total_count"`
	Err        string   `json:"error,omitempty"`
}
