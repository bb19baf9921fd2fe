package interfaces

import (
	"context"
	"errors"
	"time"

	"nova_freight/internal/domain/entities"
)

var (
	// ErrSnapshotPreconditionFailed reports that the snapshot's
	// compare-and-swap condition did not hold: another request moved the
	// bid between this request's read and write.
	ErrSnapshotPreconditionFailed = errors.New("snapshot precondition failed")

	// ErrAwardPreconditionFailed reports that the award was no longer in
	// the awarded state when the acceptance transaction committed.
	ErrAwardPreconditionFailed = errors.New("award precondition failed")
)

// TransitionRecord is everything the store needs to append one lifecycle
// event and project the current snapshot as a single atomic write.
type TransitionRecord struct {
	BidNumber      string
	CarrierActorID string

	EventID        string
	EventType      entities.BidStatus
	PreviousStatus entities.BidStatus
	Timestamp      time.Time

	// SnapshotExists selects the compare-and-swap condition: when true
	// the snapshot's stored status must still equal PreviousStatus; when
	// false no snapshot row may exist yet.
	SnapshotExists bool

	// WriteStatus is false for driver_info_update, which must leave the
	// snapshot's status and lifecycle notes untouched.
	WriteStatus bool

	// AcceptAward adds the one-time award awarded -> accepted flip to
	// the transaction.
	AcceptAward bool

	Notes     string
	Location  string
	Documents []string
	Photos    []string
	Driver    entities.DriverPair
	Times     entities.PhaseTimes
}

// ILifecycleRepository abstracts DynamoDB persistence for the event log
// and the current-state snapshot.
//
// RecordTransition must execute as one transaction: either the event,
// the snapshot update and (for acceptance) the award flip all become
// visible, or none of them do.

type ILifecycleRepository interface {
	RecordTransition(ctx context.Context, rec TransitionRecord) error
	// ListEvents returns all events for a bid ordered by timestamp
	// ascending.
	ListEvents(ctx context.Context, bidNumber string) ([]entities.LifecycleEvent, error)
	// GetSnapshot returns the zero-value CurrentBidState when no row
	// exists.
	GetSnapshot(ctx context.Context, bidNumber, carrierActorID string) (entities.CurrentBidState, error)
}
