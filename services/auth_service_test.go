package services

import (
	"testing"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterCustomer(t *testing.T) {
	svc := NewAuthService()

	user, err := svc.RegisterCustomer(models.RegisterCustomerRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.Nil(t, user.Shop)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.NotZero(t, user.ID)
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	svc := NewAuthService()

	user, err := svc.RegisterAdmin(models.RegisterAdminRequest{
		Name:     "Bob",
		Email:    "bob@shop.example.com",
		Password: "supersecret1",
		ShopName: "Bob's Emporium",
		Address: models.Address{
			Street: "1 Main St",
			City:   "Springfield",
			State:  "IL",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	require.NotNil(t, user.Shop)
	assert.Equal(t, "Bob's Emporium", user.Shop.ShopName)
	assert.Equal(t, "Springfield", user.Shop.Address.City)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := NewAuthService()
	_, err := svc.RegisterCustomer(models.RegisterCustomerRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	// Same address with different casing still collides
	_, err = svc.RegisterCustomer(models.RegisterCustomerRequest{Name: "Imposter", Email: "ALICE@example.com", Password: "password456"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := NewAuthService()

	_, err := svc.RegisterCustomer(models.RegisterCustomerRequest{Name: "Alice", Email: "alice@example.com", Password: "short"})

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestAuthService_Authenticate(t *testing.T) {
	svc := NewAuthService()
	_, err := svc.RegisterCustomer(models.RegisterCustomerRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	user, err := svc.Authenticate("alice@example.com", "password123", models.RoleCustomer)

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestAuthService_Authenticate_FailuresAreUniform(t *testing.T) {
	svc := NewAuthService()
	_, err := svc.RegisterCustomer(models.RegisterCustomerRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	cases := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"unknown email", "nobody@example.com", "password123", models.RoleCustomer},
		{"wrong password", "alice@example.com", "wrongpass99", models.RoleCustomer},
		{"role mismatch", "alice@example.com", "password123", models.RoleAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Authenticate(tc.email, tc.password, tc.role)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_PasswordRoundTrip(t *testing.T) {
	svc := NewAuthService()

	hash, err := svc.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, svc.VerifyPassword(hash, "hunter2hunter2"))
	assert.False(t, svc.VerifyPassword(hash, "hunter2hunter3"))
}

func TestAuthService_HashToken(t *testing.T) {
	svc := NewAuthService()

	first := svc.HashToken("some.jwt.token")
	second := svc.HashToken("some.jwt.token")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex-encoded sha256
	assert.NotEqual(t, first, svc.HashToken("other.jwt.token"))
}
