package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"togedog_server/models"
)

// MemberResolver resolves caller identity to a member. An unknown identity
// or email is (nil, nil).
type MemberResolver interface {
	ResolveByIdentity(ctx context.Context, identityToken string) (*models.Member, error)
	ResolveByEmail(ctx context.Context, email string) (*models.Member, error)
}

// MemberService resolves members against the Members table, keyed by email.
// The identity token the auth layer hands us is the principal's email.
type MemberService struct {
	Dynamo *DynamoService
}

func (ms *MemberService) ResolveByIdentity(ctx context.Context, identityToken string) (*models.Member, error) {
	return ms.ResolveByEmail(ctx, identityToken)
}

func (ms *MemberService) ResolveByEmail(ctx context.Context, email string) (*models.Member, error) {
	key := map[string]types.AttributeValue{
		"email": &types.AttributeValueMemberS{Value: email},
	}
	item, err := ms.Dynamo.GetItem(ctx, models.MembersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var member models.Member
	if err := attributevalue.UnmarshalMap(item, &member); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member '%s': %w", email, err)
	}
	return &member, nil
}
