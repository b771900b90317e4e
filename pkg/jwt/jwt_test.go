package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secreto", "user-1", "a@b.com", "facturacion-api", 1440)
	require.NoError(t, err)

	id, email, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "a@b.com", email)
}

func TestGenerate_ExpiresIn24h(t *testing.T) {
	token, err := Generate("secreto", "user-1", "a@b.com", "", 1440)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Generate("secreto", "user-1", "a@b.com", "", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := Generate("secreto", "user-1", "a@b.com", "", -1)
	require.NoError(t, err)

	_, _, err = Parse("secreto", token)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "user-1", "a@b.com", "", 60)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, _, err = Parse("", "x.y.z")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
