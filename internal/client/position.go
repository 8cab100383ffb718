package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"context"

	"liveCrime/pkg/e"
)

// PositionClient queries the device position service. It satisfies
// capture.LocationSource; an unreachable or denied service is reported
// as an unavailable capability, never as a fatal error.
type PositionClient struct {
	url  string
	http *http.Client
}

func NewPositionClient(url string, timeout time.Duration) *PositionClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PositionClient{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c *PositionClient) Position(ctx context.Context) (float64, float64, error) {
	if c.url == "" {
		return 0, 0, e.ErrCapabilityUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return 0, 0, e.Wrap("client.Position", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("client.Position: %s: %w", err.Error(), e.ErrCapabilityUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound {
		return 0, 0, fmt.Errorf("client.Position: %s: %w", resp.Status, e.ErrCapabilityUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, 0, fmt.Errorf("client.Position: unexpected status %s", resp.Status)
	}

	var pos positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return 0, 0, e.Wrap("client.Position", err)
	}

	return pos.Latitude, pos.Longitude, nil
}
