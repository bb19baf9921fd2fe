package entities

import (
	"encoding/json"
	"time"
)

// AwardStatus tracks the award record's own state, separate from the
// carrier's fulfillment progression.

type AwardStatus string

const (
	AwardStatusAwarded   AwardStatus = "awarded"
	AwardStatusAccepted  AwardStatus = "accepted"
	AwardStatusCancelled AwardStatus = "cancelled"
)

// Award is the immutable record of which carrier won an auctioned load
// and for how much, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: bid_number
//
// Created once by the auction-close process. The lifecycle core never
// mutates it except for the one-time awarded -> accepted flip performed
// inside the acceptance transaction.
//
// MarginCents is the brokerage spread over the winner amount. It is an
// internal figure and must never reach a carrier-facing response.
type Award struct {
	BidNumber         string      `json:"bid_number"`
	WinnerActorID     string      `json:"winner_actor_id"`
	WinnerAmountCents int64       `json:"winner_amount_cents"`
	MarginCents       int64       `json:"-"`
	Status            AwardStatus `json:"status"`
	AwardedAt         time.Time   `json:"awarded_at"`

	// Route metadata denormalized from the published load.
	DistanceMiles     float64         `json:"distance_miles"`
	PickupTimestamp   *time.Time      `json:"pickup_timestamp,omitempty"`
	DeliveryTimestamp *time.Time      `json:"delivery_timestamp,omitempty"`
	Stops             json.RawMessage `json:"stops,omitempty"`
	Tag               string          `json:"tag,omitempty"`
	SourceChannel     string          `json:"source_channel,omitempty"`
}
