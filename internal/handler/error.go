package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/isbn-books-api/internal/apperr"
	"github.com/snnyvrz/isbn-books-api/internal/sqlerr"
)

type handlerFunc func(c *gin.Context) error

// handle adapts an error-returning handler to gin. It is the only place a
// failed request is turned into a response.
func handle(fn handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			writeError(c, err)
		}
	}
}

func writeError(c *gin.Context, err error) {
	httpErr := apperr.From(err)
	status := httpErr.StatusCode()

	if status >= 500 {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("sqlstate", sqlerr.Code(err)).
			Msg("request failed")
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, httpErr.Response())
}
