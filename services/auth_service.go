package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email, password or role")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// AuthService owns the account registry and password handling. The registry
// stands in for the external auth backend behind the same boundary: login
// yields a user record {email, role} or a failure reason, nothing else leaks.
type AuthService struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by lowercased email
}

var (
	authService     *AuthService
	authServiceOnce sync.Once
)

// GetAuthService returns the shared auth service
func GetAuthService() *AuthService {
	authServiceOnce.Do(func() {
		authService = NewAuthService()
	})
	return authService
}

func NewAuthService() *AuthService {
	return &AuthService{users: make(map[string]models.User)}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 8 characters
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}

// HashToken hashes a session token using SHA256 for use as a storage key
func (s *AuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Registration
// ════════════════════════════════════════════════════════════

// RegisterCustomer creates a customer account
func (s *AuthService) RegisterCustomer(req models.RegisterCustomerRequest) (models.User, error) {
	return s.register(req.Name, req.Email, req.Password, models.RoleCustomer, nil)
}

// RegisterAdmin creates an admin account with its shop profile
func (s *AuthService) RegisterAdmin(req models.RegisterAdminRequest) (models.User, error) {
	shop := &models.ShopProfile{ShopName: req.ShopName, Address: req.Address}
	return s.register(req.Name, req.Email, req.Password, models.RoleAdmin, shop)
}

func (s *AuthService) register(name, email, password, role string, shop *models.ShopProfile) (models.User, error) {
	if !s.ValidatePassword(password) {
		return models.User{}, ErrWeakPassword
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[key]; exists {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Shop:         shop,
		CreatedAt:    time.Now(),
	}
	s.users[key] = user

	return user, nil
}

// ════════════════════════════════════════════════════════════
// Authentication
// ════════════════════════════════════════════════════════════

// Authenticate verifies the credentials and the requested role. The failure
// reason is deliberately uniform — callers cannot distinguish a wrong
// password from an unknown email or a role mismatch.
func (s *AuthService) Authenticate(email, password, role string) (models.User, error) {
	s.mu.RLock()
	user, exists := s.users[strings.ToLower(email)]
	s.mu.RUnlock()

	if !exists {
		return models.User{}, ErrInvalidCredentials
	}
	if !s.VerifyPassword(user.PasswordHash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	if user.Role != role {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// FindByEmail looks up a registered account
func (s *AuthService) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, exists := s.users[strings.ToLower(email)]
	return user, exists
}
