package catalog

import (
	"bookshelf/internal/platform/googlebooks"
)

// Normalize maps one raw volume payload onto the canonical Record shape.
// It is pure and never fails: any missing or malformed nested field
// resolves to the documented default.
func Normalize(v *googlebooks.Volume) Record {
	if v == nil {
		return Record{Title: UnknownTitle, Currency: "USD"}
	}

	info := v.VolumeInfo

	rec := Record{
		ExternalID:    v.ID,
		Title:         info.Title,
		Authors:       info.Authors,
		Description:   info.Description,
		PublishedDate: info.PublishedDate,
		Categories:    info.Categories,
		RatingsCount:  info.RatingsCount,
		PreviewURL:    info.PreviewLink,
		WebReaderURL:  v.AccessInfo.WebReaderLink,
		IsEbook:       v.AccessInfo.Epub.IsAvailable || v.AccessInfo.Pdf.IsAvailable,
		Currency:      "USD",
	}

	if rec.Title == "" {
		rec.Title = UnknownTitle
	}
	if rec.Authors == nil {
		rec.Authors = []string{}
	}
	if rec.Categories == nil {
		rec.Categories = []string{}
	}

	if info.PageCount > 0 {
		pages := info.PageCount
		rec.PageCount = &pages
	}
	if info.AverageRating > 0 {
		rating := info.AverageRating
		rec.AverageRating = &rating
	}

	// Prefer the larger thumbnail variant.
	if info.ImageLinks.Thumbnail != "" {
		rec.ImageURL = info.ImageLinks.Thumbnail
	} else {
		rec.ImageURL = info.ImageLinks.SmallThumbnail
	}

	// Price only applies to items actually on sale with a list price.
	if v.SaleInfo.Saleability == "FOR_SALE" && v.SaleInfo.ListPrice != nil {
		amount := v.SaleInfo.ListPrice.Amount
		rec.Price = &amount
		if v.SaleInfo.ListPrice.CurrencyCode != "" {
			rec.Currency = v.SaleInfo.ListPrice.CurrencyCode
		}
	}

	return rec
}
