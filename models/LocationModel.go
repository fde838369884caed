package models

import "time"

// Location is a member's last reported position, cached under
// "location:<email>" in both cache tiers.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	StoredAt  time.Time `json:"storedAt"`
}

// Marker is a map pin placed by a member, cached under "marker:<email>" in
// the distributed tier only.
type Marker struct {
	Email     string  `json:"email"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
