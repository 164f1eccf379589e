package catalog

import (
	"encoding/json"
	"testing"

	"bookshelf/internal/platform/googlebooks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func volumeFromJSON(t *testing.T, raw string) *googlebooks.Volume {
	t.Helper()
	var v googlebooks.Volume
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return &v
}

func TestNormalize_Defaults(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{"id": "abc"}`))

		assert.Equal(t, "abc", rec.ExternalID)
		assert.Equal(t, "Unknown Title", rec.Title)
		assert.Equal(t, []string{}, rec.Authors)
		assert.Equal(t, "Unknown Author", rec.AuthorsDisplay())
		assert.Equal(t, []string{}, rec.Categories)
		assert.Equal(t, "Uncategorized", rec.CategoriesDisplay())
		assert.Nil(t, rec.PageCount)
		assert.Nil(t, rec.AverageRating)
		assert.Equal(t, 0, rec.RatingsCount)
		assert.Nil(t, rec.Price)
		assert.Equal(t, "USD", rec.Currency)
		assert.False(t, rec.IsEbook)
	})

	t.Run("nil volume", func(t *testing.T) {
		rec := Normalize(nil)
		assert.Equal(t, "Unknown Title", rec.Title)
		assert.Equal(t, "USD", rec.Currency)
	})

	t.Run("full payload", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"volumeInfo": {
				"title": "The Go Programming Language",
				"authors": ["Alan Donovan", "Brian Kernighan"],
				"description": "A book about Go.",
				"publishedDate": "2015",
				"pageCount": 380,
				"categories": ["Computers"],
				"averageRating": 4.5,
				"ratingsCount": 120,
				"previewLink": "https://example.com/preview"
			},
			"accessInfo": {"webReaderLink": "https://example.com/read"}
		}`))

		assert.Equal(t, "vol-1", rec.ExternalID)
		assert.Equal(t, "The Go Programming Language", rec.Title)
		assert.Equal(t, "Alan Donovan, Brian Kernighan", rec.AuthorsDisplay())
		assert.Equal(t, "2015", rec.PublishedDate)
		require.NotNil(t, rec.PageCount)
		assert.Equal(t, 380, *rec.PageCount)
		require.NotNil(t, rec.AverageRating)
		assert.Equal(t, 4.5, *rec.AverageRating)
		assert.Equal(t, 120, rec.RatingsCount)
		assert.Equal(t, "https://example.com/preview", rec.PreviewURL)
		assert.Equal(t, "https://example.com/read", rec.WebReaderURL)
		assert.Equal(t, "4.5/5.0 (120 ratings)", rec.RatingDisplay())
	})
}

func TestNormalize_Price(t *testing.T) {
	t.Run("for sale with list price", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"saleInfo": {
				"saleability": "FOR_SALE",
				"listPrice": {"amount": 9.99, "currencyCode": "EUR"}
			}
		}`))

		require.NotNil(t, rec.Price)
		assert.Equal(t, 9.99, *rec.Price)
		assert.Equal(t, "EUR", rec.Currency)
	})

	t.Run("not for sale", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"saleInfo": {
				"saleability": "NOT_FOR_SALE",
				"listPrice": {"amount": 9.99, "currencyCode": "EUR"}
			}
		}`))

		assert.Nil(t, rec.Price)
		assert.Equal(t, "USD", rec.Currency)
	})

	t.Run("for sale without list price", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"saleInfo": {"saleability": "FOR_SALE"}
		}`))

		assert.Nil(t, rec.Price)
		assert.Equal(t, "USD", rec.Currency)
	})

	t.Run("missing currency code defaults to USD", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"saleInfo": {"saleability": "FOR_SALE", "listPrice": {"amount": 4.5}}
		}`))

		require.NotNil(t, rec.Price)
		assert.Equal(t, "USD", rec.Currency)
	})
}

func TestNormalize_ImageURL(t *testing.T) {
	t.Run("prefers thumbnail", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"volumeInfo": {"imageLinks": {"thumbnail": "big.jpg", "smallThumbnail": "small.jpg"}}
		}`))
		assert.Equal(t, "big.jpg", rec.ImageURL)
	})

	t.Run("falls back to small thumbnail", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{
			"id": "vol-1",
			"volumeInfo": {"imageLinks": {"smallThumbnail": "small.jpg"}}
		}`))
		assert.Equal(t, "small.jpg", rec.ImageURL)
	})

	t.Run("absent", func(t *testing.T) {
		rec := Normalize(volumeFromJSON(t, `{"id": "vol-1"}`))
		assert.Equal(t, "", rec.ImageURL)
	})
}

func TestNormalize_IsEbook(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want bool
	}{
		{"epub available", `{"id": "v", "accessInfo": {"epub": {"isAvailable": true}}}`, true},
		{"pdf available", `{"id": "v", "accessInfo": {"pdf": {"isAvailable": true}}}`, true},
		{"neither available", `{"id": "v", "accessInfo": {"epub": {"isAvailable": false}, "pdf": {"isAvailable": false}}}`, false},
		{"access info missing", `{"id": "v"}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Normalize(volumeFromJSON(t, tc.raw))
			assert.Equal(t, tc.want, rec.IsEbook)
		})
	}
}
