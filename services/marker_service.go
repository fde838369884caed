package services

import (
	"context"
	"encoding/json"

	"togedog_server/models"
)

// MarkerService manages map pins in the distributed tier only, under
// "marker:<email>". Markers are best-effort display data.
type MarkerService struct {
	Store CacheStore
}

// SaveMarker replaces the marker at markerKey. The previous entry is deleted
// first so a stale pin never coexists with a fresh one for the same owner.
func (ms *MarkerService) SaveMarker(ctx context.Context, markerKey string, latitude, longitude float64, email string) error {
	marker := models.Marker{
		Email:     email,
		Latitude:  latitude,
		Longitude: longitude,
	}
	payload, err := json.Marshal(marker)
	if err != nil {
		return &CacheOperationError{Op: "serialize", Key: markerKey, Err: err}
	}

	if err := ms.DeleteMarker(ctx, markerKey); err != nil {
		return err
	}
	if err := ms.Store.SetWithTTL(ctx, markerKey, string(payload), models.MarkerRedisTTL); err != nil {
		return &CacheOperationError{Op: "set", Key: markerKey, Err: err}
	}
	return nil
}

// GetMarker returns the marker stored at markerKey, or (nil, nil) when the
// key is absent or the stored value does not decode. Markers are non-critical,
// so a bad value reads as a miss.
func (ms *MarkerService) GetMarker(ctx context.Context, markerKey string) (*models.Marker, error) {
	raw, found, err := ms.Store.Get(ctx, markerKey)
	if err != nil {
		return nil, &CacheOperationError{Op: "get", Key: markerKey, Err: err}
	}
	if !found {
		return nil, nil
	}

	var marker models.Marker
	if err := json.Unmarshal([]byte(raw), &marker); err != nil {
		return nil, nil
	}
	return &marker, nil
}

// GetKeysByPattern lists marker keys matching a glob pattern, e.g. "marker:*".
func (ms *MarkerService) GetKeysByPattern(ctx context.Context, pattern string) ([]string, error) {
	keys, err := ms.Store.Keys(ctx, pattern)
	if err != nil {
		return nil, &CacheOperationError{Op: "keys", Key: pattern, Err: err}
	}
	return keys, nil
}

// DeleteMarker removes the marker only if the key currently exists, saving
// the delete round trip otherwise. Safe to call repeatedly.
func (ms *MarkerService) DeleteMarker(ctx context.Context, markerKey string) error {
	exists, err := ms.Store.Exists(ctx, markerKey)
	if err != nil {
		return &CacheOperationError{Op: "exists", Key: markerKey, Err: err}
	}
	if !exists {
		return nil
	}
	if err := ms.Store.Delete(ctx, markerKey); err != nil {
		return &CacheOperationError{Op: "delete", Key: markerKey, Err: err}
	}
	return nil
}
