package book

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns books matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new book on behalf of the given user.
func (s *Service) Create(ctx context.Context, b *Book, userID string) (Book, error) {
	b.ID = uuid.New().String()
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.CreatedBy = userID
	return s.repo.Create(ctx, b)
}
