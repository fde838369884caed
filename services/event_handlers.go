package services

import (
	"context"

	"togedog_server/models"
)

// MarkerDeleter is the slice of MarkerService the cleanup handlers need.
type MarkerDeleter interface {
	DeleteMarker(ctx context.Context, markerKey string) error
}

// StandByCleaner removes pending stand-by records tied to a member.
type StandByCleaner interface {
	DeleteRelatedByMember(ctx context.Context, memberID string) error
}

// RegisterCleanupHandlers wires the cancellation cleanup consumers onto the
// bus. Both handlers are idempotent: the record they clean up may already be
// gone, and the matching record may still read MATCH_HOSTING because events
// fire before the status persists.
func RegisterCleanupHandlers(bus *EventBus, markers MarkerDeleter, standBys StandByCleaner) {
	bus.Subscribe(models.DeleteMarker, func(ctx context.Context, event models.LifecycleEvent) error {
		return markers.DeleteMarker(ctx, models.MarkerKeyPrefix+event.Payload)
	})

	bus.Subscribe(models.DeleteRelatedMatchingStandByData, func(ctx context.Context, event models.LifecycleEvent) error {
		return standBys.DeleteRelatedByMember(ctx, event.Payload)
	})
}
