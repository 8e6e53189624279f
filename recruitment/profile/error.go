package profile

import (
	"net/http"

	"github.com/Abraxas-365/medjobb/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PROFILE")

// Error codes
var (
	CodeSlotEmpty        = ErrRegistry.Register("SLOT_EMPTY", errx.TypeNotFound, http.StatusNotFound, "No profile is stored")
	CodeSlotUnavailable  = ErrRegistry.Register("SLOT_UNAVAILABLE", errx.TypeExternal, http.StatusServiceUnavailable, "Profile storage is unavailable")
	CodeMalformedProfile = ErrRegistry.Register("MALFORMED", errx.TypeValidation, http.StatusUnprocessableEntity, "Stored profile could not be parsed")
	CodeInvalidProfile   = ErrRegistry.Register("INVALID", errx.TypeValidation, http.StatusBadRequest, "Profile is missing required fields")
	CodeInvalidEmail     = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email format")
)

// Helper functions
func ErrSlotEmpty() *errx.Error {
	return ErrRegistry.New(CodeSlotEmpty)
}

func ErrSlotUnavailable() *errx.Error {
	return ErrRegistry.New(CodeSlotUnavailable)
}

func ErrMalformedProfile() *errx.Error {
	return ErrRegistry.New(CodeMalformedProfile)
}

func ErrInvalidProfile() *errx.Error {
	return ErrRegistry.New(CodeInvalidProfile)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}
