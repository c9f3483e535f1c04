package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/isbn-books-api/internal/apperr"
	"github.com/snnyvrz/isbn-books-api/internal/validation"
)

func parseIntQuery(c *gin.Context, key string, dst **int, fieldErrs map[string]string) {
	s := c.Query(key)
	if s == "" {
		return
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		fieldErrs[key] = fmt.Sprintf("%s must be of type integer", key)
		return
	}
	*dst = &v
}

func parseListBooksQuery(c *gin.Context) (*ListBooksQuery, error) {
	q := ListBooksQuery{
		Title:     c.Query("title"),
		Author:    c.Query("author"),
		Language:  c.Query("language"),
		Publisher: c.Query("publisher"),
	}

	fieldErrs := make(map[string]string)
	parseIntQuery(c, "year", &q.Year, fieldErrs)
	parseIntQuery(c, "min_year", &q.MinYear, fieldErrs)
	parseIntQuery(c, "max_year", &q.MaxYear, fieldErrs)
	parseIntQuery(c, "min_pages", &q.MinPages, fieldErrs)
	parseIntQuery(c, "max_pages", &q.MaxPages, fieldErrs)

	if msgs := validation.StructWith(&q, fieldErrs); msgs != nil {
		return nil, apperr.Validation(msgs)
	}

	return &q, nil
}
