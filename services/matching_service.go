package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"togedog_server/models"
)

// MatchingService is the matching lifecycle state machine. It enforces one
// hosted MATCH_HOSTING record per member and at most one ongoing match
// between any pair, and fans out cleanup events when a match is cancelled.
type MatchingService struct {
	Repo    MatchingRepository
	Members MemberResolver
	Events  EventPublisher

	mu        sync.Mutex
	hostLocks map[string]*sync.Mutex
}

func NewMatchingService(repo MatchingRepository, members MemberResolver, events EventPublisher) *MatchingService {
	return &MatchingService{
		Repo:      repo,
		Members:   members,
		Events:    events,
		hostLocks: make(map[string]*sync.Mutex),
	}
}

// hostLock serializes the check-then-act section of CreateMatch per host, so
// two concurrent creates for the same member cannot both observe "no hosting
// record" and insert twice. Cross-instance races remain the storage layer's
// concern.
func (ms *MatchingService) hostLock(memberID string) *sync.Mutex {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	lock, ok := ms.hostLocks[memberID]
	if !ok {
		lock = &sync.Mutex{}
		ms.hostLocks[memberID] = lock
	}
	return lock
}

// CreateMatch opens (or moves) the caller's hosted match. If the caller and
// the referenced guest already have an ongoing match in either direction the
// call fails with ErrMatchAlreadyExists and writes nothing. If the caller
// already hosts a MATCH_HOSTING record, its coordinates are updated in place
// and the same record is returned.
func (ms *MatchingService) CreateMatch(ctx context.Context, identityToken, guestEmail string, latitude, longitude float64) (*models.Matching, error) {
	member, err := ms.resolveMember(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	var guest *models.Member
	if guestEmail != "" {
		guest, err = ms.Members.ResolveByEmail(ctx, guestEmail)
		if err != nil {
			return nil, err
		}
		if guest != nil {
			ongoing, err := ms.Repo.FindOngoingBetween(ctx, member.MemberID, guest.MemberID)
			if err != nil {
				return nil, err
			}
			if ongoing != nil {
				return nil, ErrMatchAlreadyExists
			}
		}
	}

	lock := ms.hostLock(member.MemberID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := ms.Repo.FindHostingByMember(ctx, member.MemberID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Latitude = latitude
		existing.Longitude = longitude
		if err := ms.Repo.Save(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	matching := &models.Matching{
		MatchID:      uuid.NewString(),
		Latitude:     latitude,
		Longitude:    longitude,
		Status:       models.MatchHosting,
		HostMemberID: member.MemberID,
		HostEmail:    member.Email,
		CreatedAt:    time.Now(),
	}
	if guest != nil {
		matching.GuestMemberID = guest.MemberID
		matching.GuestEmail = guest.Email
	}

	if err := ms.Repo.Save(ctx, matching); err != nil {
		return nil, err
	}
	log.Printf("Created match %s hosted by %s", matching.MatchID, member.Email)
	return matching, nil
}

// UpdateMatch applies a status change to the caller's hosted match. A change
// to MATCH_CANCEL publishes the stand-by and marker cleanup events before the
// status persists; handlers must tolerate a record that still reads
// MATCH_HOSTING.
func (ms *MatchingService) UpdateMatch(ctx context.Context, identityToken string, status models.MatchStatus) (*models.Matching, error) {
	member, err := ms.resolveMember(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	matching, err := ms.Repo.FindHostingByMember(ctx, member.MemberID)
	if err != nil {
		return nil, err
	}
	if matching == nil {
		return nil, ErrMatchNotFound
	}

	if status != "" {
		matching.Status = status
	}

	if status == models.MatchCancel {
		err = ms.Events.Publish(ctx, models.LifecycleEvent{
			Source:  "MatchingService",
			Case:    models.DeleteRelatedMatchingStandByData,
			Payload: matching.HostMemberID,
		})
		if err != nil {
			return nil, err
		}
		err = ms.Events.Publish(ctx, models.LifecycleEvent{
			Source:  "MatchingService",
			Case:    models.DeleteMarker,
			Payload: matching.HostEmail,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := ms.Repo.Save(ctx, matching); err != nil {
		return nil, err
	}
	return matching, nil
}

// UpdateMatchOnPairingConfirmed flips every record hosted by either member to
// MATCH_SUCCESS once their pairing is confirmed. Records already at
// MATCH_SUCCESS are untouched; when nothing changes, nothing is written.
func (ms *MatchingService) UpdateMatchOnPairingConfirmed(ctx context.Context, hostMemberID, guestMemberID string) error {
	matchings, err := ms.Repo.FindAllByEitherHost(ctx, hostMemberID, guestMemberID)
	if err != nil {
		return err
	}

	var updated []*models.Matching
	for i := range matchings {
		if matchings[i].Status != models.MatchSuccess {
			matchings[i].Status = models.MatchSuccess
			updated = append(updated, &matchings[i])
		}
	}
	if len(updated) == 0 {
		return nil
	}
	return ms.Repo.SaveAll(ctx, updated)
}

// FindHostedMatch returns the caller's own MATCH_HOSTING record.
func (ms *MatchingService) FindHostedMatch(ctx context.Context, identityToken string) (*models.Matching, error) {
	member, err := ms.resolveMember(ctx, identityToken)
	if err != nil {
		return nil, err
	}

	matching, err := ms.Repo.FindHostingByMember(ctx, member.MemberID)
	if err != nil {
		return nil, err
	}
	if matching == nil {
		return nil, ErrMatchNotFound
	}
	return matching, nil
}

// FindHostedMatchByEmail returns the hosted match of an arbitrary member,
// after validating that the caller's own identity resolves. The host member
// is re-attached on the returned record for display; nothing is persisted.
func (ms *MatchingService) FindHostedMatchByEmail(ctx context.Context, email, identityToken string) (*models.Matching, error) {
	if _, err := ms.resolveMember(ctx, identityToken); err != nil {
		return nil, err
	}

	matching, err := ms.Repo.FindByHostEmailAndStatus(ctx, email, models.MatchHosting)
	if err != nil {
		return nil, err
	}
	if matching == nil {
		return nil, ErrMatchNotFound
	}

	host, err := ms.Members.ResolveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if host == nil {
		return nil, ErrMemberNotFound
	}
	matching.HostMember = host
	return matching, nil
}

// FindMatches returns one page of matches, newest first. Page numbering
// starts at 1.
func (ms *MatchingService) FindMatches(ctx context.Context, page, size int) ([]models.Matching, error) {
	if page < 1 || size < 1 {
		return nil, ErrInvalidPageRequest
	}
	return ms.Repo.FindAllPaged(ctx, page, size)
}

func (ms *MatchingService) resolveMember(ctx context.Context, identityToken string) (*models.Member, error) {
	member, err := ms.Members.ResolveByIdentity(ctx, identityToken)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}
