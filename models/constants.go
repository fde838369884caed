package models

import "time"

// DynamoDB table names
const (
	MatchingsTable = "Matchings"
	MembersTable   = "Members"
	StandBysTable  = "MatchingStandBys"
)

// Cache key prefixes. These are persisted key schemes shared with other
// consumers of the cache store; do not change them.
const (
	LocationKeyPrefix = "location:"
	MarkerKeyPrefix   = "marker:"
)

// Cache retention windows. The distributed tier is the source of truth; the
// local tier is a short-lived accelerator.
const (
	LocationRedisTTL = 10000 * time.Second
	MarkerRedisTTL   = 259200 * time.Second // 3 days
	LocationLocalTTL = 10 * time.Minute
)
