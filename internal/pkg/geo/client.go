package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gajkesari/backoffice-go/internal/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// RoutingClient resolves road distances between two points via the external
// routing provider. Token acquisition and refresh are handled by the
// client-credentials token source.
type RoutingClient struct {
	directionsURL string
	httpClient    *http.Client
	limiter       *rate.Limiter
}

func NewRoutingClient(cfg config.RoutingConfig) *RoutingClient {
	ccConfig := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       []string{"openid"},
	}

	return &RoutingClient{
		directionsURL: cfg.DirectionsURL,
		httpClient:    ccConfig.Client(context.Background()),
		limiter:       rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
	}
}

type directionsResponse struct {
	Routes []struct {
		Legs []struct {
			Distance float64 `json:"distance"`
		} `json:"legs"`
	} `json:"routes"`
}

// Distance returns the road distance in kilometres from origin to
// destination. The provider reports leg distances in metres; only the first
// leg of the first route is used.
func (c *RoutingClient) Distance(ctx context.Context, origin, destination Coordinate) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	query := url.Values{}
	query.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	query.Set("destination", fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.directionsURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("X-Correlation-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("routing provider returned status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	if len(body.Routes) == 0 || len(body.Routes[0].Legs) == 0 {
		return 0, fmt.Errorf("routing provider returned no route")
	}

	return body.Routes[0].Legs[0].Distance / 1000, nil
}
