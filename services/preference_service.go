package services

import (
	"context"
	"log"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
	"github.com/redis/go-redis/v9"
)

// PreferenceService stores per-user presentation preferences (the theme
// flag) in Redis. Preferences carry no business rules — they are read for
// rendering and replaced wholesale on toggle.
type PreferenceService struct{}

// GetPreferenceService returns a preference service
func GetPreferenceService() *PreferenceService {
	return &PreferenceService{}
}

func themeKey(email string) string {
	return "pref:theme:" + email
}

// GetPreferences returns the user's preferences; a user who never toggled
// anything gets the defaults.
func (s *PreferenceService) GetPreferences(ctx context.Context, email string) (models.Preferences, error) {
	val, err := config.RedisClient.Get(ctx, themeKey(email)).Result()
	if err == redis.Nil {
		return models.Preferences{}, nil
	}
	if err != nil {
		log.Printf("[preferences] failed to read theme for %s: %v", email, err)
		return models.Preferences{}, err
	}
	return models.Preferences{DarkMode: val == "1"}, nil
}

// ToggleTheme flips the dark-mode flag and returns the new preferences
func (s *PreferenceService) ToggleTheme(ctx context.Context, email string) (models.Preferences, error) {
	current, err := s.GetPreferences(ctx, email)
	if err != nil {
		return models.Preferences{}, err
	}

	next := models.Preferences{DarkMode: !current.DarkMode}

	val := "0"
	if next.DarkMode {
		val = "1"
	}
	if err := config.RedisClient.Set(ctx, themeKey(email), val, 0).Err(); err != nil {
		log.Printf("[preferences] failed to store theme for %s: %v", email, err)
		return models.Preferences{}, err
	}

	return next, nil
}
