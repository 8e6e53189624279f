package job

import (
	"net/http"

	"github.com/Abraxas-365/medjobb/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeInvalidPosting     = ErrRegistry.Register("INVALID_POSTING", errx.TypeValidation, http.StatusUnprocessableEntity, "Job posting is invalid")
	CodeDuplicatePosting   = ErrRegistry.Register("DUPLICATE_POSTING", errx.TypeConflict, http.StatusConflict, "Job posting id is not unique")
	CodeInvalidWeek        = ErrRegistry.Register("INVALID_WEEK", errx.TypeValidation, http.StatusBadRequest, "Week must be a non-negative integer")
	CodeInvalidPagination  = ErrRegistry.Register("INVALID_PAGINATION", errx.TypeValidation, http.StatusBadRequest, "Page and page size must be integers")
	CodeCatalogNotLoaded   = ErrRegistry.Register("CATALOG_NOT_LOADED", errx.TypeInternal, http.StatusServiceUnavailable, "Job catalog is not loaded")
	CodeCatalogUnavailable = ErrRegistry.Register("CATALOG_UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "Job catalog source is unavailable")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrInvalidPosting() *errx.Error {
	return ErrRegistry.New(CodeInvalidPosting)
}

func ErrDuplicatePosting() *errx.Error {
	return ErrRegistry.New(CodeDuplicatePosting)
}

func ErrInvalidWeek() *errx.Error {
	return ErrRegistry.New(CodeInvalidWeek)
}

func ErrInvalidPagination() *errx.Error {
	return ErrRegistry.New(CodeInvalidPagination)
}

func ErrCatalogNotLoaded() *errx.Error {
	return ErrRegistry.New(CodeCatalogNotLoaded)
}

func ErrCatalogUnavailable() *errx.Error {
	return ErrRegistry.New(CodeCatalogUnavailable)
}
