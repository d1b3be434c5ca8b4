package reputation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"delivery_auction/internal/domain/entities"
	"delivery_auction/internal/usecase/interfaces"
)

var ErrMissingRatingServiceURL = errors.New("missing RATING_SERVICE_URL")

const ratingRequestTimeout = 3 * time.Second

// RatingServiceClient resolves a bidder's historical average rating from
// the user rating service.
//
// Bidders without history resolve to the neutral default; the bid intake
// path treats transport failures the same way, so this client only needs
// to distinguish "no history" from "call failed".
type RatingServiceClient struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IReputationService = (*RatingServiceClient)(nil)

func NewRatingServiceClient(baseURL string) (*RatingServiceClient, error) {
	if isRatingServiceMockEnabled() {
		log.Printf("[reputation][gateway] mock mode enabled")
		return &RatingServiceClient{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[reputation][gateway] missing RATING_SERVICE_URL")
		return nil, ErrMissingRatingServiceURL
	}

	return &RatingServiceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: ratingRequestTimeout},
	}, nil
}

type ratingResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}

func (c *RatingServiceClient) GetAverageRating(ctx context.Context, bidderID string) (float64, error) {
	if c != nil && c.mockMode {
		log.Printf("[reputation][gateway] mock lookup bidder_id=%s rating=%.1f", bidderID, entities.NeutralReputation)
		return entities.NeutralReputation, nil
	}
	if c == nil || c.client == nil {
		return 0, ErrMissingRatingServiceURL
	}

	endpoint := fmt.Sprintf("%s/v1/users/%s/rating", c.baseURL, url.PathEscape(bidderID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[reputation][gateway] lookup failed bidder_id=%s err=%v", bidderID, err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No rating history yet.
		return entities.NeutralReputation, nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[reputation][gateway] lookup unexpected status bidder_id=%s status=%d", bidderID, resp.StatusCode)
		return 0, fmt.Errorf("rating service returned status %d", resp.StatusCode)
	}

	var body ratingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.TotalRatings == 0 {
		return entities.NeutralReputation, nil
	}
	log.Printf("[reputation][gateway] lookup success bidder_id=%s rating=%.2f total_ratings=%d", bidderID, body.AverageRating, body.TotalRatings)
	return body.AverageRating, nil
}

func isRatingServiceMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("RATING_SERVICE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
