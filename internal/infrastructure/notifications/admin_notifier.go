package notifications

import (
	"context"
	"fmt"
	"os"
	"time"

	"nova_freight/internal/domain/entities"
	"nova_freight/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultNotificationsTableName = "notifications"
	defaultRolesTableName         = "user_roles"
	defaultProfilesTableName      = "carrier_profiles"

	rolesRoleIndex = "role-index"

	noticeTypeBidAccepted = "bid_accepted"
)

type notificationItem struct {
	UserID    string         `dynamodbav:"user_id"`
	CreatedAt string         `dynamodbav:"created_at"`
	ID        string         `dynamodbav:"id"`
	Type      string         `dynamodbav:"type"`
	Title     string         `dynamodbav:"title"`
	Message   string         `dynamodbav:"message"`
	Data      map[string]any `dynamodbav:"data,omitempty"`
	Read      bool           `dynamodbav:"read"`
}

type carrierProfileItem struct {
	ActorID     string `dynamodbav:"actor_id"`
	LegalName   string `dynamodbav:"legal_name,omitempty"`
	CompanyName string `dynamodbav:"company_name,omitempty"`
	ContactName string `dynamodbav:"contact_name,omitempty"`
	MCNumber    string `dynamodbav:"mc_number,omitempty"`
}

type userRoleItem struct {
	ActorID string `dynamodbav:"actor_id"`
	Role    string `dynamodbav:"role"`
}

// AdminNotifier delivers in-app notifications to every admin user.
//
// Table requirements:
//   - notifications: PK user_id (string), SK created_at (string)
//   - user_roles: PK actor_id (string), GSI role-index (PK: role)
//   - carrier_profiles: PK actor_id (string)
//
// Delivery is best effort end to end: a missing profile falls back to a
// generic display name, a failed per-admin write is logged and skipped,
// and the caller never treats an error here as a transition failure.

type AdminNotifier struct {
	ddb                *dynamodb.Client
	notificationsTable string
	rolesTable         string
	profilesTable      string
	log                *zap.Logger
}

var _ interfaces.IAdminNotifier = (*AdminNotifier)(nil)

func NewAdminNotifier(ddb *dynamodb.Client, log *zap.Logger) *AdminNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminNotifier{
		ddb:                ddb,
		notificationsTable: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
		rolesTable:         getenvDefault("USER_ROLES_TABLE", defaultRolesTableName),
		profilesTable:      getenvDefault("CARRIER_PROFILES_TABLE", defaultProfilesTableName),
		log:                log,
	}
}

func (n *AdminNotifier) BidAccepted(ctx context.Context, notice interfaces.BidAcceptedNotice) error {
	carrierName := n.carrierDisplayName(ctx, notice.CarrierActorID)

	adminIDs, err := n.adminUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing admin users: %w", err)
	}
	if len(adminIDs) == 0 {
		n.log.Info("no admin users found for bid-accepted notification",
			zap.String("bid_number", notice.BidNumber))
		return nil
	}

	now := time.Now().UTC()
	title := "Bid Accepted"
	message := fmt.Sprintf("%s accepted Bid #%s for $%.2f",
		carrierName, notice.BidNumber, float64(notice.AmountCents)/100)
	data := map[string]any{
		"bid_number":      notice.BidNumber,
		"carrier_user_id": notice.CarrierActorID,
		"carrier_name":    carrierName,
		"amount_cents":    notice.AmountCents,
	}

	for _, adminID := range adminIDs {
		notif := entities.Notification{
			ID:        uuid.NewString(),
			UserID:    adminID,
			Type:      noticeTypeBidAccepted,
			Title:     title,
			Message:   message,
			Data:      data,
			CreatedAt: now,
		}
		if err := n.put(ctx, notif); err != nil {
			n.log.Error("failed creating admin notification",
				zap.String("admin_user_id", adminID),
				zap.String("bid_number", notice.BidNumber),
				zap.Error(err),
			)
		}
	}

	n.log.Info("admin notifications created",
		zap.Int("admins", len(adminIDs)),
		zap.String("type", noticeTypeBidAccepted),
		zap.String("bid_number", notice.BidNumber),
	)
	return nil
}

func (n *AdminNotifier) put(ctx context.Context, notif entities.Notification) error {
	av, err := attributevalue.MarshalMap(notificationItem{
		UserID:    notif.UserID,
		CreatedAt: notif.CreatedAt.Format(time.RFC3339Nano),
		ID:        notif.ID,
		Type:      notif.Type,
		Title:     notif.Title,
		Message:   notif.Message,
		Data:      notif.Data,
		Read:      notif.Read,
	})
	if err != nil {
		return err
	}
	_, err = n.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(n.notificationsTable),
		Item:      av,
	})
	return err
}

func (n *AdminNotifier) adminUserIDs(ctx context.Context) ([]string, error) {
	out, err := n.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(n.rolesTable),
		IndexName:              aws.String(rolesRoleIndex),
		KeyConditionExpression: aws.String("#role = :admin"),
		ExpressionAttributeNames: map[string]string{
			"#role": "role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":admin": &types.AttributeValueMemberS{Value: "admin"},
		},
	})
	if err != nil {
		return nil, err
	}

	var roles []userRoleItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &roles); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(roles))
	for _, r := range roles {
		if r.ActorID != "" {
			ids = append(ids, r.ActorID)
		}
	}
	return ids, nil
}

// carrierDisplayName resolves the carrier's legal or company name,
// falling back to a generic label when no profile exists.
func (n *AdminNotifier) carrierDisplayName(ctx context.Context, actorID string) string {
	fallback := fmt.Sprintf("Carrier (%s)", actorID)

	out, err := n.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(n.profilesTable),
		Key: map[string]types.AttributeValue{
			"actor_id": &types.AttributeValueMemberS{Value: actorID},
		},
	})
	if err != nil {
		n.log.Warn("failed fetching carrier profile",
			zap.String("carrier_actor_id", actorID), zap.Error(err))
		return fallback
	}
	if len(out.Item) == 0 {
		return fallback
	}

	var profile carrierProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &profile); err != nil {
		return fallback
	}
	switch {
	case profile.LegalName != "":
		return profile.LegalName
	case profile.CompanyName != "":
		return profile.CompanyName
	default:
		return fallback
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
