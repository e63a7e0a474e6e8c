package middleware

import (
	"testing"
	"time"

	"coursehub/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTKey = "test-secret"

	signed, err := GenerateJWT(42, "Ada", "student", "ada@example.com")
	require.NoError(t, err)

	claims, err := parseToken(signed)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims["userId"])
	assert.Equal(t, "student", claims["role"])
}

// a validly signed token with a non-numeric userId claim must be rejected,
// not panic the handler
func TestParseTokenRejectsNonNumericUserID(t *testing.T) {
	config.AppConfig.JWTKey = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "42",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	_, err = parseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsMissingUserID(t *testing.T) {
	config.AppConfig.JWTKey = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	_, err = parseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	config.AppConfig.JWTKey = "test-secret"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": float64(42),
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = parseToken(signed)
	assert.Error(t, err)
}
