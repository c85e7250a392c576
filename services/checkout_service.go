package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Verdant-Commerce/verdant-storefront-backend/config"
	"github.com/Verdant-Commerce/verdant-storefront-backend/models"
)

// CheckoutService is the client for the external checkout/payment provider.
// It submits the cart lines and yields either a redirect URL or a failure
// message. There is no retry — a failed checkout changes nothing and the
// caller tells the user.
type CheckoutService struct {
	endpoint string
	client   *http.Client
}

var checkoutService *CheckoutService

// GetCheckoutService returns the checkout client configured at boot
func GetCheckoutService() *CheckoutService {
	if checkoutService == nil {
		checkoutService = NewCheckoutService(config.CheckoutURL, config.HTTPClient)
	}
	return checkoutService
}

func NewCheckoutService(endpoint string, client *http.Client) *CheckoutService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CheckoutService{endpoint: endpoint, client: client}
}

type checkoutPayload struct {
	Items []models.CartLine `json:"items"`
}

type checkoutResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Checkout submits the cart lines and returns the payment redirect URL
func (s *CheckoutService) Checkout(ctx context.Context, items []models.CartLine) (string, error) {
	body, err := json.Marshal(checkoutPayload{Items: items})
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer res.Body.Close()

	var result checkoutResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode checkout response: %w", err)
	}

	if !result.Success {
		if result.Message == "" {
			result.Message = fmt.Sprintf("checkout returned status %d", res.StatusCode)
		}
		return "", fmt.Errorf("checkout rejected: %s", result.Message)
	}

	return result.URL, nil
}
