package repository

import (
	"context"
	"errors"
	"fmt"

	"nova_freight/internal/domain/entities"
	"nova_freight/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventsTableName    = "bid_lifecycle_events"
	defaultSnapshotsTableName = "carrier_bids"
)

type eventDataItem struct {
	PreviousStatus string `dynamodbav:"previous_status"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type lifecycleEventItem struct {
	BidID     string        `dynamodbav:"bid_id"`
	TS        string        `dynamodbav:"ts"`
	ID        string        `dynamodbav:"id"`
	EventType string        `dynamodbav:"event_type"`
	EventData eventDataItem `dynamodbav:"event_data"`
	Notes     string        `dynamodbav:"notes,omitempty"`
	Location  string        `dynamodbav:"location,omitempty"`
	Documents []string      `dynamodbav:"documents,omitempty"`
	Photos    []string      `dynamodbav:"photos,omitempty"`

	DriverName          string `dynamodbav:"driver_name,omitempty"`
	DriverPhone         string `dynamodbav:"driver_phone,omitempty"`
	DriverEmail         string `dynamodbav:"driver_email,omitempty"`
	DriverLicenseNumber string `dynamodbav:"driver_license_number,omitempty"`
	DriverLicenseState  string `dynamodbav:"driver_license_state,omitempty"`
	TruckNumber         string `dynamodbav:"truck_number,omitempty"`
	TrailerNumber       string `dynamodbav:"trailer_number,omitempty"`

	SecondDriverName          string `dynamodbav:"second_driver_name,omitempty"`
	SecondDriverPhone         string `dynamodbav:"second_driver_phone,omitempty"`
	SecondDriverEmail         string `dynamodbav:"second_driver_email,omitempty"`
	SecondDriverLicenseNumber string `dynamodbav:"second_driver_license_number,omitempty"`
	SecondDriverLicenseState  string `dynamodbav:"second_driver_license_state,omitempty"`
	SecondTruckNumber         string `dynamodbav:"second_truck_number,omitempty"`
	SecondTrailerNumber       string `dynamodbav:"second_trailer_number,omitempty"`

	CheckInTime         string `dynamodbav:"check_in_time,omitempty"`
	PickupTime          string `dynamodbav:"pickup_time,omitempty"`
	DepartureTime       string `dynamodbav:"departure_time,omitempty"`
	CheckInDeliveryTime string `dynamodbav:"check_in_delivery_time,omitempty"`
	DeliveryTime        string `dynamodbav:"delivery_time,omitempty"`
}

type currentBidStateItem struct {
	BidNumber      string `dynamodbav:"bid_number"`
	CarrierActorID string `dynamodbav:"carrier_actor_id"`
	Status         string `dynamodbav:"status,omitempty"`
	LifecycleNotes string `dynamodbav:"lifecycle_notes,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at"`

	DriverName          string `dynamodbav:"driver_name,omitempty"`
	DriverPhone         string `dynamodbav:"driver_phone,omitempty"`
	DriverEmail         string `dynamodbav:"driver_email,omitempty"`
	DriverLicenseNumber string `dynamodbav:"driver_license_number,omitempty"`
	DriverLicenseState  string `dynamodbav:"driver_license_state,omitempty"`
	TruckNumber         string `dynamodbav:"truck_number,omitempty"`
	TrailerNumber       string `dynamodbav:"trailer_number,omitempty"`

	SecondDriverName          string `dynamodbav:"second_driver_name,omitempty"`
	SecondDriverPhone         string `dynamodbav:"second_driver_phone,omitempty"`
	SecondDriverEmail         string `dynamodbav:"second_driver_email,omitempty"`
	SecondDriverLicenseNumber string `dynamodbav:"second_driver_license_number,omitempty"`
	SecondDriverLicenseState  string `dynamodbav:"second_driver_license_state,omitempty"`
	SecondTruckNumber         string `dynamodbav:"second_truck_number,omitempty"`
	SecondTrailerNumber       string `dynamodbav:"second_trailer_number,omitempty"`
}

// LifecycleDynamoRepository persists lifecycle events and the current
// snapshot in DynamoDB.
//
// Table requirements:
//   - bid_lifecycle_events: PK bid_id (string), SK ts (string). Puts
//     always carry attribute_not_exists(ts); nothing updates or deletes
//     rows, so the log is append-only by construction.
//   - carrier_bids: PK bid_number (string), SK carrier_actor_id
//     (string). One row per key, upserted via UpdateItem.
//
// RecordTransition writes both tables (plus the award on acceptance)
// through TransactWriteItems so the event and the snapshot can never
// diverge: a timeout or a failed condition leaves neither visible.

type LifecycleDynamoRepository struct {
	ddb            *dynamodb.Client
	eventsTable    string
	snapshotsTable string
	awardsTable    string
}

var _ interfaces.ILifecycleRepository = (*LifecycleDynamoRepository)(nil)

func NewLifecycleDynamoRepository(ddb *dynamodb.Client) *LifecycleDynamoRepository {
	return &LifecycleDynamoRepository{
		ddb:            ddb,
		eventsTable:    getenvDefault("LIFECYCLE_EVENTS_TABLE", defaultEventsTableName),
		snapshotsTable: getenvDefault("CARRIER_BIDS_TABLE", defaultSnapshotsTableName),
		awardsTable:    getenvDefault("AWARDS_TABLE", defaultAwardsTableName),
	}
}

func (r *LifecycleDynamoRepository) RecordTransition(ctx context.Context, rec interfaces.TransitionRecord) error {
	eventAV, err := attributevalue.MarshalMap(toLifecycleEventItem(rec))
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.eventsTable),
				Item:                eventAV,
				ConditionExpression: aws.String("attribute_not_exists(#ts)"),
				ExpressionAttributeNames: map[string]string{
					"#ts": "ts",
				},
			},
		},
		{
			Update: r.buildSnapshotUpdate(rec),
		},
	}

	awardItemIndex := -1
	if rec.AcceptAward {
		awardItemIndex = len(items)
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.awardsTable),
				Key: map[string]types.AttributeValue{
					"bid_number": &types.AttributeValueMemberS{Value: rec.BidNumber},
				},
				UpdateExpression:    aws.String("SET #status = :accepted"),
				ConditionExpression: aws.String("#status = :awarded"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":accepted": &types.AttributeValueMemberS{Value: string(entities.AwardStatusAccepted)},
					":awarded":  &types.AttributeValueMemberS{Value: string(entities.AwardStatusAwarded)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return mapCancellation(canceled, awardItemIndex)
		}
		return err
	}
	return nil
}

// mapCancellation translates a cancelled transaction into the
// precondition error matching the item whose condition failed.
// Cancellation reasons arrive in the same order as the submitted items:
// 0 event, 1 snapshot, then the award when acceptance was requested.
func mapCancellation(canceled *types.TransactionCanceledException, awardItemIndex int) error {
	for i, reason := range canceled.CancellationReasons {
		if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
			continue
		}
		if i == awardItemIndex {
			return fmt.Errorf("accept bid: %w", interfaces.ErrAwardPreconditionFailed)
		}
		// Event timestamp collision and snapshot CAS failure both mean a
		// concurrent writer got there first; a re-read and retry resolves
		// either.
		return fmt.Errorf("record transition: %w", interfaces.ErrSnapshotPreconditionFailed)
	}
	return canceled
}

// buildSnapshotUpdate assembles the upsert for the current snapshot.
// Only fields present on the request enter the SET clause, which is what
// gives the "incoming if present, else existing" merge; status and
// lifecycle notes are excluded entirely for driver_info_update.
func (r *LifecycleDynamoRepository) buildSnapshotUpdate(rec interfaces.TransitionRecord) *types.Update {
	expr := "SET #updated_at = :updated_at"
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(rec.Timestamp)},
	}

	if rec.WriteStatus {
		expr += ", #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(rec.EventType)}
		if rec.Notes != "" {
			expr += ", #lifecycle_notes = :lifecycle_notes"
			names["#lifecycle_notes"] = "lifecycle_notes"
			values[":lifecycle_notes"] = &types.AttributeValueMemberS{Value: rec.Notes}
		}
	}

	for _, f := range driverFields(rec.Driver) {
		if f.value == "" {
			continue
		}
		placeholder := "#" + f.name
		expr += fmt.Sprintf(", %s = :%s", placeholder, f.name)
		names[placeholder] = f.name
		values[":"+f.name] = &types.AttributeValueMemberS{Value: f.value}
	}

	var condition string
	if rec.SnapshotExists {
		condition = "#status = :previous_status"
		names["#status"] = "status"
		values[":previous_status"] = &types.AttributeValueMemberS{Value: string(rec.PreviousStatus)}
	} else {
		condition = "attribute_not_exists(#bid_number)"
		names["#bid_number"] = "bid_number"
	}

	return &types.Update{
		TableName: aws.String(r.snapshotsTable),
		Key: map[string]types.AttributeValue{
			"bid_number":       &types.AttributeValueMemberS{Value: rec.BidNumber},
			"carrier_actor_id": &types.AttributeValueMemberS{Value: rec.CarrierActorID},
		},
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

type driverField struct {
	name  string
	value string
}

func driverFields(d entities.DriverPair) []driverField {
	return []driverField{
		{"driver_name", d.DriverName},
		{"driver_phone", d.DriverPhone},
		{"driver_email", d.DriverEmail},
		{"driver_license_number", d.DriverLicenseNumber},
		{"driver_license_state", d.DriverLicenseState},
		{"truck_number", d.TruckNumber},
		{"trailer_number", d.TrailerNumber},
		{"second_driver_name", d.SecondDriverName},
		{"second_driver_phone", d.SecondDriverPhone},
		{"second_driver_email", d.SecondDriverEmail},
		{"second_driver_license_number", d.SecondDriverLicenseNumber},
		{"second_driver_license_state", d.SecondDriverLicenseState},
		{"second_truck_number", d.SecondTruckNumber},
		{"second_trailer_number", d.SecondTrailerNumber},
	}
}

func (r *LifecycleDynamoRepository) ListEvents(ctx context.Context, bidNumber string) ([]entities.LifecycleEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.eventsTable),
		KeyConditionExpression: aws.String("bid_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bidNumber},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	var items []lifecycleEventItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}

	events := make([]entities.LifecycleEvent, 0, len(items))
	for _, it := range items {
		events = append(events, fromLifecycleEventItem(it))
	}
	return events, nil
}

func (r *LifecycleDynamoRepository) GetSnapshot(ctx context.Context, bidNumber, carrierActorID string) (entities.CurrentBidState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.snapshotsTable),
		Key: map[string]types.AttributeValue{
			"bid_number":       &types.AttributeValueMemberS{Value: bidNumber},
			"carrier_actor_id": &types.AttributeValueMemberS{Value: carrierActorID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CurrentBidState{}, err
	}
	if len(out.Item) == 0 {
		return entities.CurrentBidState{}, nil
	}

	var it currentBidStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CurrentBidState{}, err
	}
	return fromCurrentBidStateItem(it), nil
}

func toLifecycleEventItem(rec interfaces.TransitionRecord) lifecycleEventItem {
	return lifecycleEventItem{
		BidID:     rec.BidNumber,
		TS:        formatTime(rec.Timestamp),
		ID:        rec.EventID,
		EventType: string(rec.EventType),
		EventData: eventDataItem{
			PreviousStatus: string(rec.PreviousStatus),
			UpdatedAt:      formatTime(rec.Timestamp),
		},
		Notes:     rec.Notes,
		Location:  rec.Location,
		Documents: rec.Documents,
		Photos:    rec.Photos,

		DriverName:          rec.Driver.DriverName,
		DriverPhone:         rec.Driver.DriverPhone,
		DriverEmail:         rec.Driver.DriverEmail,
		DriverLicenseNumber: rec.Driver.DriverLicenseNumber,
		DriverLicenseState:  rec.Driver.DriverLicenseState,
		TruckNumber:         rec.Driver.TruckNumber,
		TrailerNumber:       rec.Driver.TrailerNumber,

		SecondDriverName:          rec.Driver.SecondDriverName,
		SecondDriverPhone:         rec.Driver.SecondDriverPhone,
		SecondDriverEmail:         rec.Driver.SecondDriverEmail,
		SecondDriverLicenseNumber: rec.Driver.SecondDriverLicenseNumber,
		SecondDriverLicenseState:  rec.Driver.SecondDriverLicenseState,
		SecondTruckNumber:         rec.Driver.SecondTruckNumber,
		SecondTrailerNumber:       rec.Driver.SecondTrailerNumber,

		CheckInTime:         formatTimePtr(rec.Times.CheckInTime),
		PickupTime:          formatTimePtr(rec.Times.PickupTime),
		DepartureTime:       formatTimePtr(rec.Times.DepartureTime),
		CheckInDeliveryTime: formatTimePtr(rec.Times.CheckInDeliveryTime),
		DeliveryTime:        formatTimePtr(rec.Times.DeliveryTime),
	}
}

func fromLifecycleEventItem(it lifecycleEventItem) entities.LifecycleEvent {
	return entities.LifecycleEvent{
		ID:        it.ID,
		BidID:     it.BidID,
		EventType: entities.BidStatus(it.EventType),
		EventData: entities.EventData{
			PreviousStatus: it.EventData.PreviousStatus,
			UpdatedAt:      parseTime(it.EventData.UpdatedAt),
		},
		Timestamp: parseTime(it.TS),
		Notes:     it.Notes,
		Location:  it.Location,
		Documents: it.Documents,
		Photos:    it.Photos,
		DriverPair: entities.DriverPair{
			DriverName:          it.DriverName,
			DriverPhone:         it.DriverPhone,
			DriverEmail:         it.DriverEmail,
			DriverLicenseNumber: it.DriverLicenseNumber,
			DriverLicenseState:  it.DriverLicenseState,
			TruckNumber:         it.TruckNumber,
			TrailerNumber:       it.TrailerNumber,

			SecondDriverName:          it.SecondDriverName,
			SecondDriverPhone:         it.SecondDriverPhone,
			SecondDriverEmail:         it.SecondDriverEmail,
			SecondDriverLicenseNumber: it.SecondDriverLicenseNumber,
			SecondDriverLicenseState:  it.SecondDriverLicenseState,
			SecondTruckNumber:         it.SecondTruckNumber,
			SecondTrailerNumber:       it.SecondTrailerNumber,
		},
		PhaseTimes: entities.PhaseTimes{
			CheckInTime:         parseTimePtr(it.CheckInTime),
			PickupTime:          parseTimePtr(it.PickupTime),
			DepartureTime:       parseTimePtr(it.DepartureTime),
			CheckInDeliveryTime: parseTimePtr(it.CheckInDeliveryTime),
			DeliveryTime:        parseTimePtr(it.DeliveryTime),
		},
	}
}

func fromCurrentBidStateItem(it currentBidStateItem) entities.CurrentBidState {
	return entities.CurrentBidState{
		BidNumber:      it.BidNumber,
		CarrierActorID: it.CarrierActorID,
		Status:         entities.BidStatus(it.Status),
		LifecycleNotes: it.LifecycleNotes,
		UpdatedAt:      parseTime(it.UpdatedAt),
		DriverPair: entities.DriverPair{
			DriverName:          it.DriverName,
			DriverPhone:         it.DriverPhone,
			DriverEmail:         it.DriverEmail,
			DriverLicenseNumber: it.DriverLicenseNumber,
			DriverLicenseState:  it.DriverLicenseState,
			TruckNumber:         it.TruckNumber,
			TrailerNumber:       it.TrailerNumber,

			SecondDriverName:          it.SecondDriverName,
			SecondDriverPhone:         it.SecondDriverPhone,
			SecondDriverEmail:         it.SecondDriverEmail,
			SecondDriverLicenseNumber: it.SecondDriverLicenseNumber,
			SecondDriverLicenseState:  it.SecondDriverLicenseState,
			SecondTruckNumber:         it.SecondTruckNumber,
			SecondTrailerNumber:       it.SecondTrailerNumber,
		},
	}
}
