package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(userID, "alice@example.com", "Alice", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "verdant-api", claims.Issuer)
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(uuid.New(), "a@example.com", "A", "customer")

	assert.Error(t, err)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(uuid.New(), "a@example.com", "A", "customer")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateJWT(token)

	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := JWTClaims{
		UserID: uuid.New().String(),
		Email:  "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Issuer:    "verdant-api",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateJWT(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateJWT_RejectsUnsignedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{UserID: "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(token)

	assert.Error(t, err)
}
