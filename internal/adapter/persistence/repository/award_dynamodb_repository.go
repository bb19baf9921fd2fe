package repository

import (
	"context"
	"encoding/json"

	"nova_freight/internal/domain/entities"
	"nova_freight/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAwardsTableName = "auction_awards"

type awardItem struct {
	BidNumber         string  `dynamodbav:"bid_number"`
	WinnerActorID     string  `dynamodbav:"winner_actor_id"`
	WinnerAmountCents int64   `dynamodbav:"winner_amount_cents"`
	MarginCents       int64   `dynamodbav:"margin_cents,omitempty"`
	Status            string  `dynamodbav:"status"`
	AwardedAt         string  `dynamodbav:"awarded_at"`
	DistanceMiles     float64 `dynamodbav:"distance_miles,omitempty"`
	PickupTimestamp   string  `dynamodbav:"pickup_timestamp,omitempty"`
	DeliveryTimestamp string  `dynamodbav:"delivery_timestamp,omitempty"`
	Stops             string  `dynamodbav:"stops,omitempty"`
	Tag               string  `dynamodbav:"tag,omitempty"`
	SourceChannel     string  `dynamodbav:"source_channel,omitempty"`
}

// AwardDynamoRepository reads Award records from DynamoDB.
//
// Table requirements:
//   - PK: bid_number (string)
//
// The table is owned by the auction-close process; this repository is
// read-only. Acceptance flips the award status, but that write happens
// inside LifecycleDynamoRepository's transaction.

type AwardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAwardRepository = (*AwardDynamoRepository)(nil)

func NewAwardDynamoRepository(ddb *dynamodb.Client) *AwardDynamoRepository {
	return &AwardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AWARDS_TABLE", defaultAwardsTableName),
	}
}

func (r *AwardDynamoRepository) GetByBidNumber(ctx context.Context, bidNumber string) (entities.Award, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"bid_number": &types.AttributeValueMemberS{Value: bidNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Award{}, err
	}
	if len(out.Item) == 0 {
		return entities.Award{}, nil
	}

	var it awardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Award{}, err
	}
	return fromAwardItem(it), nil
}

func fromAwardItem(it awardItem) entities.Award {
	a := entities.Award{
		BidNumber:         it.BidNumber,
		WinnerActorID:     it.WinnerActorID,
		WinnerAmountCents: it.WinnerAmountCents,
		MarginCents:       it.MarginCents,
		Status:            entities.AwardStatus(it.Status),
		AwardedAt:         parseTime(it.AwardedAt),
		DistanceMiles:     it.DistanceMiles,
		PickupTimestamp:   parseTimePtr(it.PickupTimestamp),
		DeliveryTimestamp: parseTimePtr(it.DeliveryTimestamp),
		Tag:               it.Tag,
		SourceChannel:     it.SourceChannel,
	}
	if it.Stops != "" {
		a.Stops = json.RawMessage(it.Stops)
	}
	return a
}
