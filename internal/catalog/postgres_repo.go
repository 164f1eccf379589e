package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const recordColumns = `google_id, title, authors, description, published_date, page_count,
	categories, average_rating, ratings_count, image_url, preview_url, web_reader_url,
	is_ebook, price, currency, created_at, updated_at`

func (r *PostgresRepo) GetByExternalID(ctx context.Context, externalID string) (Record, error) {
	query := fmt.Sprintf("SELECT %s FROM google_books WHERE google_id = $1", recordColumns)

	rec, err := scanRecord(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// Upsert inserts the record or overwrites every mutable field of the
// existing row. created_at survives updates; updated_at moves on every
// write.
func (r *PostgresRepo) Upsert(ctx context.Context, rec *Record) (Record, error) {
	query := fmt.Sprintf(`
		INSERT INTO google_books (google_id, title, authors, description, published_date,
			page_count, categories, average_rating, ratings_count, image_url, preview_url,
			web_reader_url, is_ebook, price, currency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		ON CONFLICT (google_id) DO UPDATE SET
			title = EXCLUDED.title,
			authors = EXCLUDED.authors,
			description = EXCLUDED.description,
			published_date = EXCLUDED.published_date,
			page_count = EXCLUDED.page_count,
			categories = EXCLUDED.categories,
			average_rating = EXCLUDED.average_rating,
			ratings_count = EXCLUDED.ratings_count,
			image_url = EXCLUDED.image_url,
			preview_url = EXCLUDED.preview_url,
			web_reader_url = EXCLUDED.web_reader_url,
			is_ebook = EXCLUDED.is_ebook,
			price = EXCLUDED.price,
			currency = EXCLUDED.currency,
			updated_at = now()
		RETURNING %s`, recordColumns)

	stored, err := scanRecord(r.db.QueryRow(ctx, query,
		rec.ExternalID, rec.Title, rec.Authors, rec.Description, rec.PublishedDate,
		rec.PageCount, rec.Categories, rec.AverageRating, rec.RatingsCount,
		rec.ImageURL, rec.PreviewURL, rec.WebReaderURL, rec.IsEbook, rec.Price, rec.Currency,
	))
	if err != nil {
		return Record{}, fmt.Errorf("upsert record %s: %w", rec.ExternalID, err)
	}
	return stored, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ExternalID, &rec.Title, &rec.Authors, &rec.Description, &rec.PublishedDate,
		&rec.PageCount, &rec.Categories, &rec.AverageRating, &rec.RatingsCount,
		&rec.ImageURL, &rec.PreviewURL, &rec.WebReaderURL, &rec.IsEbook,
		&rec.Price, &rec.Currency, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}
