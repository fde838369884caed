package services

import (
	"context"
	"errors"
	"testing"

	"togedog_server/models"
)

func TestPublishRunsHandlersInRegistrationOrder(t *testing.T) {
	bus := NewEventBus()

	var order []string
	bus.Subscribe(models.DeleteMarker, func(ctx context.Context, e models.LifecycleEvent) error {
		order = append(order, "first")
		return nil
	})
	bus.Subscribe(models.DeleteMarker, func(ctx context.Context, e models.LifecycleEvent) error {
		order = append(order, "second")
		return nil
	})

	err := bus.Publish(context.Background(), models.LifecycleEvent{Case: models.DeleteMarker, Payload: "a@x.com"})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected handlers in registration order, got %v", order)
	}
}

func TestPublishStopsOnHandlerError(t *testing.T) {
	bus := NewEventBus()
	boom := errors.New("handler failed")

	var secondRan bool
	bus.Subscribe(models.DeleteMarker, func(ctx context.Context, e models.LifecycleEvent) error {
		return boom
	})
	bus.Subscribe(models.DeleteMarker, func(ctx context.Context, e models.LifecycleEvent) error {
		secondRan = true
		return nil
	})

	err := bus.Publish(context.Background(), models.LifecycleEvent{Case: models.DeleteMarker})
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error to propagate, got %v", err)
	}
	if secondRan {
		t.Fatal("expected delivery to stop after the failing handler")
	}
}

func TestPublishOnlyReachesMatchingCase(t *testing.T) {
	bus := NewEventBus()

	var markerCalls, standByCalls int
	bus.Subscribe(models.DeleteMarker, func(ctx context.Context, e models.LifecycleEvent) error {
		markerCalls++
		return nil
	})
	bus.Subscribe(models.DeleteRelatedMatchingStandByData, func(ctx context.Context, e models.LifecycleEvent) error {
		standByCalls++
		return nil
	})

	if err := bus.Publish(context.Background(), models.LifecycleEvent{Case: models.DeleteRelatedMatchingStandByData, Payload: "m-1"}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if markerCalls != 0 || standByCalls != 1 {
		t.Fatalf("expected only the stand-by handler to run, got marker=%d standBy=%d", markerCalls, standByCalls)
	}
}

type fakeMarkerDeleter struct {
	keys []string
}

func (f *fakeMarkerDeleter) DeleteMarker(ctx context.Context, markerKey string) error {
	f.keys = append(f.keys, markerKey)
	return nil
}

type fakeStandByCleaner struct {
	memberIDs []string
}

func (f *fakeStandByCleaner) DeleteRelatedByMember(ctx context.Context, memberID string) error {
	f.memberIDs = append(f.memberIDs, memberID)
	return nil
}

func TestCleanupHandlers(t *testing.T) {
	bus := NewEventBus()
	markers := &fakeMarkerDeleter{}
	standBys := &fakeStandByCleaner{}
	RegisterCleanupHandlers(bus, markers, standBys)

	if err := bus.Publish(context.Background(), models.LifecycleEvent{Case: models.DeleteMarker, Payload: "alice@example.com"}); err != nil {
		t.Fatalf("publish marker event: %v", err)
	}
	if err := bus.Publish(context.Background(), models.LifecycleEvent{Case: models.DeleteRelatedMatchingStandByData, Payload: "member-1"}); err != nil {
		t.Fatalf("publish stand-by event: %v", err)
	}

	if len(markers.keys) != 1 || markers.keys[0] != "marker:alice@example.com" {
		t.Fatalf("expected marker delete for prefixed key, got %v", markers.keys)
	}
	if len(standBys.memberIDs) != 1 || standBys.memberIDs[0] != "member-1" {
		t.Fatalf("expected stand-by cleanup for member-1, got %v", standBys.memberIDs)
	}
}
