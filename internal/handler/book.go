package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/isbn-books-api/internal/apperr"
	"github.com/snnyvrz/isbn-books-api/internal/repository"
	"github.com/snnyvrz/isbn-books-api/internal/sqlerr"
	"github.com/snnyvrz/isbn-books-api/internal/validation"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", handle(h.ListBooks))
		books.GET("/:id", handle(h.GetBook))
		books.POST("", handle(h.CreateBook))
		books.PUT("/:isbn", handle(h.UpdateBook))
		books.DELETE("/:isbn", handle(h.DeleteBook))
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books, optionally filtered. Unknown query keys are ignored.
// @Tags         books
// @Produce      json
// @Param        title      query     string  false  "Exact title"
// @Param        author     query     string  false  "Exact author"
// @Param        language   query     string  false  "Exact language"
// @Param        publisher  query     string  false  "Exact publisher"
// @Param        year       query     int     false  "Publication year"
// @Param        min_year   query     int     false  "Published in or after"
// @Param        max_year   query     int     false  "Published in or before"
// @Param        min_pages  query     int     false  "At least this many pages"
// @Param        max_pages  query     int     false  "At most this many pages"
// @Success      200  {object}  ListBooksResponse
// @Failure      400  {object}  apperr.ErrorResponse  "Invalid query parameters"
// @Failure      500  {object}  apperr.ErrorResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) error {
	query, err := parseListBooksQuery(c)
	if err != nil {
		return err
	}

	books, err := h.repo.FindAll(c.Request.Context(), query.filter())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, toListBooksResponse(books))
	return nil
}

// GetBook godoc
// @Summary      Get a book
// @Description  Get a single book by its ISBN
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "ISBN"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  apperr.ErrorResponse  "Book not found"
// @Failure      500  {object}  apperr.ErrorResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) error {
	book, err := h.repo.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
	return nil
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. Every field is required and the ISBN must be unused.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest     true  "Book to create"
// @Success      201      {object}  BookResponse
// @Failure      400      {object}  apperr.ErrorResponse  "Validation error or duplicate ISBN"
// @Failure      500      {object}  apperr.ErrorResponse  "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) error {
	var req CreateBookRequest
	if msgs := validation.DecodeAndValidate(c.Request.Body, &req); msgs != nil {
		return apperr.Validation(msgs)
	}

	book := req.toModel()

	if err := h.repo.Create(c.Request.Context(), &book); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return apperr.Conflict()
		}
		return err
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
	return nil
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace some or all fields of a book. The ISBN itself cannot change.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        isbn     path      string                true  "ISBN"
// @Param        payload  body      UpdateBookRequest     true  "Fields to update"
// @Success      200      {object}  BookResponse
// @Failure      400      {object}  apperr.ErrorResponse  "Validation error"
// @Failure      404      {object}  apperr.ErrorResponse  "Book not found"
// @Failure      500      {object}  apperr.ErrorResponse  "Internal server error"
// @Router       /books/{isbn} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) error {
	isbn := c.Param("isbn")

	var req UpdateBookRequest
	if msgs := validation.DecodeAndValidate(c.Request.Body, &req); msgs != nil {
		return apperr.Validation(msgs)
	}

	if req.ISBN != nil && *req.ISBN != isbn {
		return apperr.Validation([]string{"isbn cannot be changed"})
	}

	book, err := h.repo.Update(c.Request.Context(), isbn, req.changes())
	if err != nil {
		return err
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
	return nil
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by its ISBN
// @Tags         books
// @Produce      json
// @Param        isbn  path      string  true  "ISBN"
// @Success      200   {object}  MessageResponse
// @Failure      404   {object}  apperr.ErrorResponse  "Book not found"
// @Failure      500   {object}  apperr.ErrorResponse  "Internal server error"
// @Router       /books/{isbn} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) error {
	if err := h.repo.Remove(c.Request.Context(), c.Param("isbn")); err != nil {
		return err
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted"})
	return nil
}
