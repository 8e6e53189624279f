package errx_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testRegistry = errx.NewRegistry("TEST")
	codeMissing  = testRegistry.Register("MISSING", errx.TypeNotFound, http.StatusNotFound, "Thing not found")
	codeBad      = testRegistry.Register("BAD", errx.TypeValidation, http.StatusBadRequest, "Bad thing")
)

func TestRegistry_New(t *testing.T) {
	err := testRegistry.New(codeMissing)

	assert.Equal(t, errx.Code("TEST.MISSING"), err.Code)
	assert.Equal(t, errx.TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "Thing not found", err.Message)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	reg := errx.NewRegistry("DUP")
	reg.Register("X", errx.TypeInternal, http.StatusInternalServerError, "x")

	assert.Panics(t, func() {
		reg.Register("X", errx.TypeInternal, http.StatusInternalServerError, "x")
	})
}

func TestError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("lookup: %w", testRegistry.New(codeMissing).WithDetail("id", "42"))

	assert.True(t, errors.Is(err, testRegistry.New(codeMissing)))
	assert.False(t, errors.Is(err, testRegistry.New(codeBad)))
}

func TestWrap_KeepsClassificationOfInnerError(t *testing.T) {
	wrapped := errx.Wrap(testRegistry.New(codeMissing), "failed to load", errx.TypeInternal)

	assert.Equal(t, http.StatusNotFound, wrapped.HTTPStatus)
	assert.Equal(t, codeMissing, wrapped.Code)
}

func TestWrap_PlainError(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := errx.Wrap(cause, "failed to list ads", errx.TypeInternal)

	require.NotNil(t, wrapped)
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPStatus)
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, errx.Wrap(nil, "nothing", errx.TypeInternal))
}

func TestToHTTPResponse(t *testing.T) {
	body := testRegistry.New(codeBad).WithDetail("field", "week_from").ToHTTPResponse()

	assert.Equal(t, errx.Code("TEST.BAD"), body["code"])
	assert.Equal(t, errx.TypeValidation, body["type"])
	assert.Equal(t, map[string]any{"field": "week_from"}, body["details"])
}
