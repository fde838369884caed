package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"togedog_server/models"
	"togedog_server/services"
)

type stubRepo struct {
	records map[string]models.Matching
}

func (s *stubRepo) FindHostingByMember(ctx context.Context, memberID string) (*models.Matching, error) {
	for _, m := range s.records {
		if m.HostMemberID == memberID && m.Status == models.MatchHosting {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) FindByHostEmailAndStatus(ctx context.Context, email string, status models.MatchStatus) (*models.Matching, error) {
	return nil, nil
}

func (s *stubRepo) FindOngoingBetween(ctx context.Context, a, b string) (*models.Matching, error) {
	for _, m := range s.records {
		paired := (m.HostMemberID == a && m.GuestMemberID == b) || (m.HostMemberID == b && m.GuestMemberID == a)
		if paired && m.Status.Ongoing() {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) FindAllByEitherHost(ctx context.Context, a, b string) ([]models.Matching, error) {
	return nil, nil
}

func (s *stubRepo) Save(ctx context.Context, m *models.Matching) error {
	s.records[m.MatchID] = *m
	return nil
}

func (s *stubRepo) SaveAll(ctx context.Context, ms []*models.Matching) error {
	for _, m := range ms {
		s.records[m.MatchID] = *m
	}
	return nil
}

func (s *stubRepo) FindAllPaged(ctx context.Context, page, size int) ([]models.Matching, error) {
	return []models.Matching{}, nil
}

type stubResolver struct{}

func (stubResolver) ResolveByIdentity(ctx context.Context, token string) (*models.Member, error) {
	return stubResolver{}.ResolveByEmail(ctx, token)
}

func (stubResolver) ResolveByEmail(ctx context.Context, email string) (*models.Member, error) {
	switch email {
	case "alice@example.com":
		return &models.Member{MemberID: "member-alice", Email: email}, nil
	case "bob@example.com":
		return &models.Member{MemberID: "member-bob", Email: email}, nil
	}
	return nil, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, e models.LifecycleEvent) error { return nil }

func newTestController() *MatchingController {
	repo := &stubRepo{records: make(map[string]models.Matching)}
	svc := services.NewMatchingService(repo, stubResolver{}, noopPublisher{})
	return NewMatchingController(svc)
}

func TestHandleCreateMatchRequiresIdentity(t *testing.T) {
	controller := newTestController()

	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"latitude":1,"longitude":2}`))
	rec := httptest.NewRecorder()
	controller.HandleCreateMatch(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity header, got %d", rec.Code)
	}
}

func TestHandleCreateMatchReturnsRecord(t *testing.T) {
	controller := newTestController()

	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"latitude":37.5,"longitude":127.0}`))
	req.Header.Set("X-User-Email", "alice@example.com")
	rec := httptest.NewRecorder()
	controller.HandleCreateMatch(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var matching models.Matching
	if err := json.NewDecoder(rec.Body).Decode(&matching); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if matching.MatchID == "" || matching.Status != models.MatchHosting {
		t.Fatalf("unexpected response record: %+v", matching)
	}
}

func TestHandleCreateMatchConflict(t *testing.T) {
	repo := &stubRepo{records: map[string]models.Matching{
		"m-1": {
			MatchID:       "m-1",
			Status:        models.MatchRequested,
			HostMemberID:  "member-alice",
			GuestMemberID: "member-bob",
		},
	}}
	svc := services.NewMatchingService(repo, stubResolver{}, noopPublisher{})
	controller := NewMatchingController(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/matches", strings.NewReader(`{"guestEmail":"bob@example.com","latitude":1,"longitude":2}`))
	req.Header.Set("X-User-Email", "alice@example.com")
	rec := httptest.NewRecorder()
	controller.HandleCreateMatch(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a duplicate ongoing match, got %d", rec.Code)
	}
}

func TestHandleGetMyMatchNotFound(t *testing.T) {
	controller := newTestController()

	req := httptest.NewRequest(http.MethodGet, "/api/matches/me", nil)
	req.Header.Set("X-User-Email", "alice@example.com")
	rec := httptest.NewRecorder()
	controller.HandleGetMyMatch(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a hosted match, got %d", rec.Code)
	}
}
