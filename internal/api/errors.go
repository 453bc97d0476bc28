package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/revisa-app/revisa/internal/cardgen"
	"github.com/revisa-app/revisa/internal/review"
	"github.com/revisa-app/revisa/internal/store"
)

// fail maps domain errors to HTTP responses. Everything unrecognized
// is a 500 with a generic body; the detail goes to the log only.
func (s *Server) fail(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	var (
		valErrs  validator.ValidationErrors
		provider *cardgen.ErrProvider
		badBatch *cardgen.ErrInvalidBatch
		cfgErr   *cardgen.ErrConfig
	)

	switch {
	case errors.As(err, &valErrs):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, review.ErrInvalidRating):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, review.ErrRecordNotFound), errors.Is(err, store.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, review.ErrAlreadyEnrolled):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, review.ErrWriteConflict), errors.Is(err, store.ErrConflict):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, review.ErrStoreUnavailable), errors.Is(err, store.ErrUnavailable):
		status, msg = http.StatusServiceUnavailable, err.Error()
	case errors.As(err, &provider), errors.As(err, &badBatch):
		status, msg = http.StatusBadGateway, "card generation failed"
	case errors.As(err, &cfgErr):
		status, msg = http.StatusServiceUnavailable, err.Error()
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	} else {
		s.logger.Warn("request rejected", "method", c.Request().Method, "path", c.Path(), "status", status, "error", err)
	}
	return c.JSON(status, map[string]string{"error": msg})
}
