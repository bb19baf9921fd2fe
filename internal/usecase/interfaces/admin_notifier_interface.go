package interfaces

import "context"

// BidAcceptedNotice is the payload handed to the admin notifier after a
// carrier accepts an awarded bid.
type BidAcceptedNotice struct {
	BidNumber      string
	CarrierActorID string
	AmountCents    int64
}

// IAdminNotifier fans a notice out to every admin user. It is invoked
// only after the acceptance transaction has committed; implementations
// and callers both treat failures as log-and-continue, never as a
// reason to fail the transition.

type IAdminNotifier interface {
	BidAccepted(ctx context.Context, notice BidAcceptedNotice) error
}
