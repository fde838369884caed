package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GeocodeService reverse-geocodes coordinates through the Kakao local API.
// The response body is passed through to the client untouched.
type GeocodeService struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewKakaoGeocodeService(apiKey string) *GeocodeService {
	return &GeocodeService{
		APIKey:  apiKey,
		BaseURL: "https://dapi.kakao.com",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// ReverseGeocode returns the raw address document for the coordinates.
func (gs *GeocodeService) ReverseGeocode(ctx context.Context, latitude, longitude float64) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("x", fmt.Sprintf("%f", longitude))
	query.Set("y", fmt.Sprintf("%f", latitude))
	endpoint := gs.BaseURL + "/v2/local/geo/coord2address.json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+gs.APIKey)

	resp, err := gs.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocode API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocode response: %w", err)
	}
	return json.RawMessage(body), nil
}
