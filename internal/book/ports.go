package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, int, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Create(ctx context.Context, b *Book) (Book, error)
}
