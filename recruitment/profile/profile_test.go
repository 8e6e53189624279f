package profile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStudentProfile_Strip(t *testing.T) {
	p := anna()
	stripped := p.Strip()

	assert.Empty(t, stripped.Password)
	assert.Equal(t, "secret123", p.Password)

	stripped.Interests[0] = "changed"
	assert.Equal(t, "akutmedicin", p.Interests[0])
}

func TestStudentProfile_Validate(t *testing.T) {
	p := anna()
	assert.NoError(t, p.Validate())

	missing := StudentProfile{Email: "a@b.se"}
	assert.True(t, errors.Is(missing.Validate(), ErrInvalidProfile()))

	bad := anna()
	bad.Email = "not-an-email"
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidEmail()))

	wrongCountry := anna()
	wrongCountry.Country = "Finland"
	assert.True(t, errors.Is(wrongCountry.Validate(), ErrInvalidProfile()))
}

func TestStudentProfile_IsAvailableIn(t *testing.T) {
	p := anna()
	assert.True(t, p.IsAvailableIn(time.June))
	assert.False(t, p.IsAvailableIn(time.August))

	p.AvailableMonths = nil
	assert.True(t, p.IsAvailableIn(time.August))
}

func TestStudentProfile_GetFullName(t *testing.T) {
	p := anna()
	assert.Equal(t, "Anna Svensson", p.GetFullName())
}
