package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"togedog_server/models"
)

// LocationService keeps a member's last reported position in two tiers: a
// short-lived in-process cache for reads from this instance, and the shared
// Redis store under "location:<email>" for everyone else.
type LocationService struct {
	Store CacheStore
	Local *gocache.Cache
}

// NewLocationService builds the service and its process-wide local tier.
func NewLocationService(store CacheStore) *LocationService {
	return &LocationService{
		Store: store,
		Local: gocache.New(models.LocationLocalTTL, 2*models.LocationLocalTTL),
	}
}

// SaveLocation writes the position to the local tier and then, best-effort,
// to the distributed tier. A failure to serialize or reach the store is
// logged and swallowed: the local write already succeeded and callers must
// not block on transient store issues.
func (ls *LocationService) SaveLocation(ctx context.Context, email string, latitude, longitude float64) *models.Location {
	location := &models.Location{
		Latitude:  latitude,
		Longitude: longitude,
		StoredAt:  time.Now(),
	}
	key := models.LocationKeyPrefix + email

	ls.Local.Set(key, location, gocache.DefaultExpiration)

	payload, err := json.Marshal(location)
	if err != nil {
		log.Printf("Failed to serialize location for '%s': %v", key, err)
		return location
	}
	if err := ls.Store.SetWithTTL(ctx, key, string(payload), models.LocationRedisTTL); err != nil {
		log.Printf("Failed to write location '%s' to cache store: %v", key, err)
	}
	return location
}

// GetLocation reads local-then-remote. A remote hit is backfilled into the
// local tier. Absence in both tiers is (nil, nil); a store or deserialization
// failure is a CacheOperationError, since there is no fallback to serve.
func (ls *LocationService) GetLocation(ctx context.Context, email string) (*models.Location, error) {
	key := models.LocationKeyPrefix + email

	if cached, found := ls.Local.Get(key); found {
		return cached.(*models.Location), nil
	}

	raw, found, err := ls.Store.Get(ctx, key)
	if err != nil {
		return nil, &CacheOperationError{Op: "get", Key: key, Err: err}
	}
	if !found {
		return nil, nil
	}

	var location models.Location
	if err := json.Unmarshal([]byte(raw), &location); err != nil {
		return nil, &CacheOperationError{Op: "deserialize", Key: key, Err: err}
	}

	ls.Local.Set(key, &location, gocache.DefaultExpiration)
	return &location, nil
}

// DeleteLocation evicts both tiers. Eviction is an explicit caller intent, so
// a distributed-tier failure is surfaced rather than swallowed.
func (ls *LocationService) DeleteLocation(ctx context.Context, email string) error {
	key := models.LocationKeyPrefix + email

	ls.Local.Delete(key)

	if err := ls.Store.Delete(ctx, key); err != nil {
		return &CacheOperationError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
