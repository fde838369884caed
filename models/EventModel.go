package models

// EventCase identifies which cleanup a lifecycle event requests.
type EventCase string

const (
	DeleteMarker                     EventCase = "DELETE_MARKER"
	DeleteRelatedMatchingStandByData EventCase = "DELETE_RELATED_MATCHING_STAND_BY_DATA"
)

// LifecycleEvent is published on matching state transitions and consumed
// synchronously by registered handlers. Payload carries a member id or an
// email depending on the case. Events are never persisted.
type LifecycleEvent struct {
	Source  string    `json:"source"`
	Case    EventCase `json:"case"`
	Payload string    `json:"payload"`
}
