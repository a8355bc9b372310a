package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	signKey = "test-sign-key"
	issuer  = "nutrisync-test"
)

func issueToken(t *testing.T, claims jwt.RegisteredClaims, key string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)

	return token
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token := issueToken(t, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, signKey)

	userID, err := ValidateAndParseJWTToken(token, signKey, issuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token := issueToken(t, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, "other-key")

	_, err := ValidateAndParseJWTToken(token, signKey, issuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token := issueToken(t, jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, signKey)

	_, err := ValidateAndParseJWTToken(token, signKey, issuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token := issueToken(t, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, signKey)

	_, err := ValidateAndParseJWTToken(token, signKey, issuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAndParseJWTToken_NoExpiry(t *testing.T) {
	token := issueToken(t, jwt.RegisteredClaims{Issuer: issuer, Subject: "42"}, signKey)

	_, err := ValidateAndParseJWTToken(token, signKey, issuer)
	assert.ErrorIs(t, err, ErrInvalidToken, "tokens without expiry are rejected")
}

func TestValidateAndParseJWTToken_NonNumericSubject(t *testing.T) {
	token := issueToken(t, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, signKey)

	_, err := ValidateAndParseJWTToken(token, signKey, issuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
