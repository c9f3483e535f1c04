package repository

import (
	"gorm.io/gorm"
)

// BookFilter holds the query constraints FindAll understands. Zero values
// and nil pointers mean "no constraint"; ranges are inclusive.
type BookFilter struct {
	Title     string
	Author    string
	Language  string
	Publisher string
	Year      *int
	MinYear   *int
	MaxYear   *int
	MinPages  *int
	MaxPages  *int
}

func (f BookFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Title != "" {
		q = q.Where("title = ?", f.Title)
	}
	if f.Author != "" {
		q = q.Where("author = ?", f.Author)
	}
	if f.Language != "" {
		q = q.Where("language = ?", f.Language)
	}
	if f.Publisher != "" {
		q = q.Where("publisher = ?", f.Publisher)
	}
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}
	if f.MinYear != nil {
		q = q.Where("year >= ?", *f.MinYear)
	}
	if f.MaxYear != nil {
		q = q.Where("year <= ?", *f.MaxYear)
	}
	if f.MinPages != nil {
		q = q.Where("pages >= ?", *f.MinPages)
	}
	if f.MaxPages != nil {
		q = q.Where("pages <= ?", *f.MaxPages)
	}
	return q
}

// BookChanges lists the fields an update should overwrite. A nil field is
// left untouched.
type BookChanges struct {
	AmazonURL *string
	Author    *string
	Language  *string
	Pages     *int
	Publisher *string
	Title     *string
	Year      *int
}

func (c BookChanges) columns() map[string]any {
	cols := make(map[string]any)

	if c.AmazonURL != nil {
		cols["amazon_url"] = *c.AmazonURL
	}
	if c.Author != nil {
		cols["author"] = *c.Author
	}
	if c.Language != nil {
		cols["language"] = *c.Language
	}
	if c.Pages != nil {
		cols["pages"] = *c.Pages
	}
	if c.Publisher != nil {
		cols["publisher"] = *c.Publisher
	}
	if c.Title != nil {
		cols["title"] = *c.Title
	}
	if c.Year != nil {
		cols["year"] = *c.Year
	}

	return cols
}

func (c BookChanges) Empty() bool {
	return len(c.columns()) == 0
}
