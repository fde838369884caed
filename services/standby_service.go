package services

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"togedog_server/models"
	"togedog_server/utils"
)

// StandByService owns the pending stand-by records other members file against
// a hosted match. Cancellation cleanup deletes every record the member is
// part of, on either side.
type StandByService struct {
	Dynamo *DynamoService
}

// DeleteRelatedByMember removes all stand-by records whose host or guest is
// the member. Deleting nothing is a successful no-op.
func (ss *StandByService) DeleteRelatedByMember(ctx context.Context, memberID string) error {
	var standBys []models.MatchingStandBy
	err := ss.Dynamo.ScanWithFilter(ctx, models.StandBysTable, func(item map[string]types.AttributeValue) bool {
		return utils.ExtractString(item, "hostMemberId") == memberID ||
			utils.ExtractString(item, "guestMemberId") == memberID
	}, &standBys)
	if err != nil {
		return err
	}
	if len(standBys) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(standBys))
	for _, standBy := range standBys {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"standById": &types.AttributeValueMemberS{Value: standBy.StandByID},
				},
			},
		})
	}

	if err := ss.Dynamo.BatchWriteItems(ctx, models.StandBysTable, writeRequests); err != nil {
		return err
	}
	log.Printf("Deleted %d stand-by records for member %s", len(standBys), memberID)
	return nil
}
