package handler

import (
	"github.com/snnyvrz/isbn-books-api/internal/model"
	"github.com/snnyvrz/isbn-books-api/internal/repository"
)

// CreateBookRequest is the create-schema: every field is required.
type CreateBookRequest struct {
	ISBN      string `json:"isbn" binding:"required,isbn" example:"0691161518"`
	AmazonURL string `json:"amazon_url" binding:"required,url" example:"http://a.co/eobPtX2"`
	Author    string `json:"author" binding:"required,notblank" example:"Matthew Lane"`
	Language  string `json:"language" binding:"required,notblank" example:"english"`
	Pages     int    `json:"pages" binding:"required,gt=0" example:"264"`
	Publisher string `json:"publisher" binding:"required,notblank" example:"Princeton University Press"`
	Title     string `json:"title" binding:"required,notblank" example:"Power-Up: Unlocking the Hidden Mathematics in Video Games"`
	Year      int    `json:"year" binding:"required,gte=1,lte=9999" example:"2017"`
}

// UpdateBookRequest is the update-schema: any subset of fields, at least one
// of which must be updatable. The isbn may be repeated but never changed.
type UpdateBookRequest struct {
	ISBN      *string `json:"isbn" binding:"omitempty,isbn" example:"0691161518"`
	AmazonURL *string `json:"amazon_url" binding:"omitempty,url" example:"http://a.co/eobPtX2"`
	Author    *string `json:"author" binding:"omitempty,notblank" example:"Matthew Lane"`
	Language  *string `json:"language" binding:"omitempty,notblank" example:"english"`
	Pages     *int    `json:"pages" binding:"omitempty,gt=0" example:"264"`
	Publisher *string `json:"publisher" binding:"omitempty,notblank" example:"Princeton University Press"`
	Title     *string `json:"title" binding:"omitempty,notblank" example:"Power-Up"`
	Year      *int    `json:"year" binding:"omitempty,gte=1,lte=9999" example:"2017"`
}

func (r *UpdateBookRequest) Check() []string {
	if r.changes().Empty() {
		return []string{"at least one field must be provided to update"}
	}
	return nil
}

func (r *UpdateBookRequest) changes() repository.BookChanges {
	return repository.BookChanges{
		AmazonURL: r.AmazonURL,
		Author:    r.Author,
		Language:  r.Language,
		Pages:     r.Pages,
		Publisher: r.Publisher,
		Title:     r.Title,
		Year:      r.Year,
	}
}

// ListBooksQuery holds the recognised filters of GET /books. Unknown query
// keys are ignored.
type ListBooksQuery struct {
	Title     string `form:"title"`
	Author    string `form:"author"`
	Language  string `form:"language"`
	Publisher string `form:"publisher"`
	Year      *int   `form:"year" binding:"omitempty,gte=1,lte=9999"`
	MinYear   *int   `form:"min_year" binding:"omitempty,gte=1,lte=9999"`
	MaxYear   *int   `form:"max_year" binding:"omitempty,gte=1,lte=9999"`
	MinPages  *int   `form:"min_pages" binding:"omitempty,gt=0"`
	MaxPages  *int   `form:"max_pages" binding:"omitempty,gt=0"`
}

func (q *ListBooksQuery) Check() []string {
	var msgs []string
	if q.MinYear != nil && q.MaxYear != nil && *q.MinYear > *q.MaxYear {
		msgs = append(msgs, "min_year must not be greater than max_year")
	}
	if q.MinPages != nil && q.MaxPages != nil && *q.MinPages > *q.MaxPages {
		msgs = append(msgs, "min_pages must not be greater than max_pages")
	}
	return msgs
}

func (q *ListBooksQuery) filter() repository.BookFilter {
	return repository.BookFilter{
		Title:     q.Title,
		Author:    q.Author,
		Language:  q.Language,
		Publisher: q.Publisher,
		Year:      q.Year,
		MinYear:   q.MinYear,
		MaxYear:   q.MaxYear,
		MinPages:  q.MinPages,
		MaxPages:  q.MaxPages,
	}
}

type Book struct {
	ISBN      string `json:"isbn" example:"0691161518"`
	AmazonURL string `json:"amazon_url" example:"http://a.co/eobPtX2"`
	Author    string `json:"author" example:"Matthew Lane"`
	Language  string `json:"language" example:"english"`
	Pages     int    `json:"pages" example:"264"`
	Publisher string `json:"publisher" example:"Princeton University Press"`
	Title     string `json:"title" example:"Power-Up: Unlocking the Hidden Mathematics in Video Games"`
	Year      int    `json:"year" example:"2017"`
}

type BookResponse struct {
	Book Book `json:"book"`
}

type ListBooksResponse struct {
	Books []Book `json:"books"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Book deleted"`
}

func toBook(b model.Book) Book {
	return Book{
		ISBN:      b.ISBN,
		AmazonURL: b.AmazonURL,
		Author:    b.Author,
		Language:  b.Language,
		Pages:     b.Pages,
		Publisher: b.Publisher,
		Title:     b.Title,
		Year:      b.Year,
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Book: toBook(b)}
}

func toListBooksResponse(books []model.Book) ListBooksResponse {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, toBook(b))
	}
	return ListBooksResponse{Books: out}
}

func (r *CreateBookRequest) toModel() model.Book {
	return model.Book{
		ISBN:      r.ISBN,
		AmazonURL: r.AmazonURL,
		Author:    r.Author,
		Language:  r.Language,
		Pages:     r.Pages,
		Publisher: r.Publisher,
		Title:     r.Title,
		Year:      r.Year,
	}
}
