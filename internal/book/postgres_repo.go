package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d OR genres ILIKE $%d)", argn, argn+1, argn+2))
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern, pattern)
		argn += 3
	}

	if q.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, "%"+q.Author+"%")
		argn++
	}

	if q.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("genres ILIKE $%d", argn))
		args = append(args, "%"+q.Genre+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, title, author, description, price, genres, published_date, image_url, created_by, created_at, updated_at
		FROM books
		%s
		ORDER BY title ASC
		LIMIT $%d OFFSET $%d`,
		where, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	rows, err := r.db.Query(ctx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Genres,
			&b.PublishedDate, &b.ImageURL, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	const query = `
		SELECT id, title, author, description, price, genres, published_date, image_url, created_by, created_at, updated_at
		FROM books
		WHERE id = $1`

	var b Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.Price, &b.Genres,
		&b.PublishedDate, &b.ImageURL, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) (Book, error) {
	const query = `
		INSERT INTO books (id, title, author, description, price, genres, published_date, image_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING created_at, updated_at`

	stored := *b
	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Author, b.Description, b.Price, b.Genres,
		b.PublishedDate, b.ImageURL, b.CreatedBy,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return stored, nil
}
