package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// SessionService keeps login session records in Redis, keyed by the SHA256
// hash of the JWT so raw tokens are never stored.
type SessionService struct{}

// GetSessionService returns a session service
func GetSessionService() *SessionService {
	return &SessionService{}
}

func sessionKey(tokenHash string) string {
	return "session:" + tokenHash
}

// CreateSession records a new login session
func (s *SessionService) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
	email string,
	token string,
	ipAddress string,
	userAgent string,
) (*models.Session, error) {
	tokenHash := GetAuthService().HashToken(token)

	session := &models.Session{
		ID:             uuid.Must(uuid.NewV7()),
		UserID:         userID,
		Email:          email,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      time.Now(),
		LastActivityAt: time.Now(),
		ExpiresAt:      time.Now().Add(sessionTTL),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	if err := config.RedisClient.Set(ctx, sessionKey(tokenHash), payload, sessionTTL).Err(); err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for user %s", session.ID, email)
	return session, nil
}

// UpdateSessionActivity refreshes the last activity timestamp for a session
func (s *SessionService) UpdateSessionActivity(ctx context.Context, tokenHash string) error {
	key := sessionKey(tokenHash)

	raw, err := config.RedisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil // session expired or logged out; JWT validity governs access
	}
	if err != nil {
		log.Printf("[session] failed to read session: %v", err)
		return err
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Printf("[session] failed to decode session: %v", err)
		return err
	}

	session.LastActivityAt = time.Now()
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// KeepTTL preserves the original expiry
	if err := config.RedisClient.Set(ctx, key, payload, redis.KeepTTL).Err(); err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
		return err
	}
	return nil
}

// DeactivateSession removes the session record (logout)
func (s *SessionService) DeactivateSession(ctx context.Context, tokenHash string) error {
	if err := config.RedisClient.Del(ctx, sessionKey(tokenHash)).Err(); err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}
	return nil
}
