package services

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"togedog_server/models"
	"togedog_server/utils"
)

// MatchingRepository is the persistence boundary for matching records.
// Lookups report absence as (nil, nil), never as an error.
type MatchingRepository interface {
	FindHostingByMember(ctx context.Context, memberID string) (*models.Matching, error)
	FindByHostEmailAndStatus(ctx context.Context, email string, status models.MatchStatus) (*models.Matching, error)
	FindOngoingBetween(ctx context.Context, memberIDA, memberIDB string) (*models.Matching, error)
	FindAllByEitherHost(ctx context.Context, memberIDA, memberIDB string) ([]models.Matching, error)
	Save(ctx context.Context, matching *models.Matching) error
	SaveAll(ctx context.Context, matchings []*models.Matching) error
	FindAllPaged(ctx context.Context, page, size int) ([]models.Matching, error)
}

// DynamoMatchingRepository stores matching records in the Matchings table,
// keyed by matchId.
type DynamoMatchingRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoMatchingRepository) findFirst(ctx context.Context, filterFunc func(map[string]types.AttributeValue) bool) (*models.Matching, error) {
	var matchings []models.Matching
	if err := r.Dynamo.ScanWithFilter(ctx, models.MatchingsTable, filterFunc, &matchings); err != nil {
		return nil, err
	}
	if len(matchings) == 0 {
		return nil, nil
	}
	return &matchings[0], nil
}

func (r *DynamoMatchingRepository) FindHostingByMember(ctx context.Context, memberID string) (*models.Matching, error) {
	return r.findFirst(ctx, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "hostMemberId") == memberID &&
			utils.ExtractString(item, "matchStatus") == string(models.MatchHosting)
	})
}

func (r *DynamoMatchingRepository) FindByHostEmailAndStatus(ctx context.Context, email string, status models.MatchStatus) (*models.Matching, error) {
	return r.findFirst(ctx, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "hostEmail") == email &&
			utils.ExtractString(item, "matchStatus") == string(status)
	})
}

// FindOngoingBetween looks for a non-terminal record between the unordered
// pair (a, b), in either host/guest orientation.
func (r *DynamoMatchingRepository) FindOngoingBetween(ctx context.Context, memberIDA, memberIDB string) (*models.Matching, error) {
	return r.findFirst(ctx, func(item map[string]types.AttributeValue) bool {
		host := utils.ExtractString(item, "hostMemberId")
		guest := utils.ExtractString(item, "guestMemberId")
		paired := (host == memberIDA && guest == memberIDB) || (host == memberIDB && guest == memberIDA)
		return paired && models.MatchStatus(utils.ExtractString(item, "matchStatus")).Ongoing()
	})
}

func (r *DynamoMatchingRepository) FindAllByEitherHost(ctx context.Context, memberIDA, memberIDB string) ([]models.Matching, error) {
	var matchings []models.Matching
	err := r.Dynamo.ScanWithFilter(ctx, models.MatchingsTable, func(item map[string]types.AttributeValue) bool {
		host := utils.ExtractString(item, "hostMemberId")
		return host == memberIDA || host == memberIDB
	}, &matchings)
	if err != nil {
		return nil, err
	}
	return matchings, nil
}

func (r *DynamoMatchingRepository) Save(ctx context.Context, matching *models.Matching) error {
	return r.Dynamo.PutItem(ctx, models.MatchingsTable, matching)
}

func (r *DynamoMatchingRepository) SaveAll(ctx context.Context, matchings []*models.Matching) error {
	for _, matching := range matchings {
		if err := r.Save(ctx, matching); err != nil {
			return err
		}
	}
	return nil
}

// FindAllPaged returns one page of records, newest first. Page numbering
// starts at 1.
func (r *DynamoMatchingRepository) FindAllPaged(ctx context.Context, page, size int) ([]models.Matching, error) {
	var matchings []models.Matching
	if err := r.Dynamo.ScanWithFilter(ctx, models.MatchingsTable, nil, &matchings); err != nil {
		return nil, err
	}

	sort.Slice(matchings, func(i, j int) bool {
		if !matchings[i].CreatedAt.Equal(matchings[j].CreatedAt) {
			return matchings[i].CreatedAt.After(matchings[j].CreatedAt)
		}
		return matchings[i].MatchID > matchings[j].MatchID
	})

	offset := (page - 1) * size
	if offset >= len(matchings) {
		return []models.Matching{}, nil
	}
	end := offset + size
	if end > len(matchings) {
		end = len(matchings)
	}
	return matchings[offset:end], nil
}
