package entities

// BidStatus is the carrier-facing fulfillment state of an awarded load.
//
// Domain notes:
//   - The lifecycle-service is the source of truth for fulfillment state.
//   - Ordinary statuses progress forward only; re-submitting the current
//     status is accepted as an idempotent no-op.
//   - driver_info_update is a side channel: it never occupies a position
//     in the forward order and leaves the snapshot status untouched.

type BidStatus string

const (
	BidStatusAwarded              BidStatus = "bid_awarded"
	BidStatusLoadAssigned         BidStatus = "load_assigned"
	BidStatusCheckedInOrigin      BidStatus = "checked_in_origin"
	BidStatusPickedUp             BidStatus = "picked_up"
	BidStatusDepartedOrigin       BidStatus = "departed_origin"
	BidStatusInTransit            BidStatus = "in_transit"
	BidStatusCheckedInDestination BidStatus = "checked_in_destination"
	BidStatusDelivered            BidStatus = "delivered"
	BidStatusCompleted            BidStatus = "completed"

	BidStatusDriverInfoUpdate BidStatus = "driver_info_update"
)

// progressionOrder fixes the forward ordering of ordinary statuses.
// driver_info_update is deliberately absent.
var progressionOrder = [...]BidStatus{
	BidStatusAwarded,
	BidStatusLoadAssigned,
	BidStatusCheckedInOrigin,
	BidStatusPickedUp,
	BidStatusDepartedOrigin,
	BidStatusInTransit,
	BidStatusCheckedInDestination,
	BidStatusDelivered,
	BidStatusCompleted,
}

// ProgressionIndex returns the position of s in the forward order, or -1
// for driver_info_update and for values this core did not write (e.g. the
// pre-acceptance "awarded" marker left by the auction-close process).
func (s BidStatus) ProgressionIndex() int {
	for i, v := range progressionOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the ten recognized event types.
func (s BidStatus) Valid() bool {
	return s == BidStatusDriverInfoUpdate || s.ProgressionIndex() >= 0
}

func (s BidStatus) String() string {
	return string(s)
}

// ParseBidStatus converts a wire value into a BidStatus, rejecting
// anything outside the closed set.
func ParseBidStatus(v string) (BidStatus, bool) {
	s := BidStatus(v)
	if !s.Valid() {
		return "", false
	}
	return s, true
}
