package entities

import "time"

// CurrentBidState is the single mutable "where things stand now" row
// derived from the event log.
//
// Storage model (DynamoDB):
//   - PK: bid_number
//   - SK: carrier_actor_id
//
// At most one row exists per (bid_number, carrier_actor_id), and only
// the winning carrier's requests may write it. Status always equals the
// event type of the latest non-driver_info_update event; driver fields
// reflect the most recently known value and never regress to empty.
type CurrentBidState struct {
	BidNumber      string    `json:"bid_number"`
	CarrierActorID string    `json:"carrier_actor_id"`
	Status         BidStatus `json:"status"`
	LifecycleNotes string    `json:"lifecycle_notes,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`

	DriverPair
}
