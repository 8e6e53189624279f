package ad

import (
	"net/http"

	"github.com/Abraxas-365/medjobb/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AD")

// Error codes
var (
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Request body must be a JSON object")
	CodeMethodNotAllowed = ErrRegistry.Register("METHOD_NOT_ALLOWED", errx.TypeValidation, http.StatusMethodNotAllowed, "Method not allowed")
	CodeStoreUnavailable = ErrRegistry.Register("STORE_UNAVAILABLE", errx.TypeExternal, http.StatusServiceUnavailable, "Ad store is unavailable")
	CodeAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Ad already exists")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrMethodNotAllowed() *errx.Error {
	return ErrRegistry.New(CodeMethodNotAllowed)
}

func ErrStoreUnavailable() *errx.Error {
	return ErrRegistry.New(CodeStoreUnavailable)
}

func ErrAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAlreadyExists)
}
