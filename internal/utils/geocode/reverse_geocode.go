package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"GiveBridge-Backend/internal/utils"
)

const defaultHTTPTimeout = 8 * time.Second

type (
	// ReverseGeocoder turns device coordinates into a human-readable address
	// used to pre-fill the pickup location step.
	ReverseGeocoder interface {
		ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
	}

	googleGeocoder struct {
		httpClient *http.Client
		baseURL    string
	}
)

func NewGoogleGeocoder() ReverseGeocoder {
	return NewGoogleGeocoderWithOptions("", nil)
}

// NewGoogleGeocoderWithOptions allows overriding the base URL and HTTP client
// (used for tests).
func NewGoogleGeocoderWithOptions(baseURL string, httpClient *http.Client) ReverseGeocoder {
	if baseURL == "" {
		baseURL = utils.GetConfig("GEOCODE_BASE_URL")
	}
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &googleGeocoder{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (g *googleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("key", utils.GetConfig("GEOCODE_API_KEY"))

	req, err := http.NewRequestWithContext(ctx, "GET", g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode API error: %s", resp.Status)
	}

	var geocodeResp struct {
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
		Status string `json:"status"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geocodeResp); err != nil {
		return "", err
	}

	if geocodeResp.Status != "OK" || len(geocodeResp.Results) == 0 {
		return "", fmt.Errorf("geocode API returned status %s", geocodeResp.Status)
	}

	return geocodeResp.Results[0].FormattedAddress, nil
}
