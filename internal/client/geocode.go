package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"liveCrime/pkg/e"
)

// Geocoder resolves coordinates to a display address via a
// Nominatim-style reverse lookup endpoint.
type Geocoder struct {
	baseURL string
	http    *http.Client
}

func NewGeocoder(baseURL string, timeout time.Duration) *Geocoder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Geocoder{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

func (g *Geocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", e.Wrap("client.Reverse", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return "", e.Wrap("client.Reverse", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("client.Reverse: unexpected status %s", resp.Status)
	}

	var rr reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return "", e.Wrap("client.Reverse", err)
	}

	return rr.DisplayName, nil
}
