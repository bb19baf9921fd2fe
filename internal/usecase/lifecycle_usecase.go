package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"nova_freight/internal/domain/entities"
	"nova_freight/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidBidNumber = errors.New("invalid bid number")
	ErrInvalidStatus    = errors.New("invalid status")

	// ErrBidNotFound covers both "no such bid" and "not this carrier's
	// bid". The merge is deliberate: a non-winner must not learn whether
	// an award exists.
	ErrBidNotFound = errors.New("bid not found or not authorized")

	ErrPrematureDriverUpdate = errors.New("cannot update driver info before load is assigned")
	ErrBidAlreadyAccepted    = errors.New("bid already accepted")
	ErrInvalidAwardState     = errors.New("award is not in an acceptable state")
	ErrRegressiveTransition  = errors.New("status must progress forward")
	ErrStateConflict         = errors.New("concurrent lifecycle update detected")
)

const defaultNotifyTimeout = 10 * time.Second

// TransitionInput is one lifecycle write request after transport-level
// validation.
type TransitionInput struct {
	BidNumber string
	ActorID   string
	Status    entities.BidStatus
	Notes     string
	Location  string
	Documents []string
	Photos    []string
	Driver    entities.DriverPair
	Times     entities.PhaseTimes
}

// TransitionResult reports a committed transition back to the caller.
type TransitionResult struct {
	EventID        string
	NewStatus      entities.BidStatus
	PreviousStatus entities.BidStatus
}

// BidDetails is the denormalized award/route/snapshot summary attached
// to the read path.
type BidDetails struct {
	Award    entities.Award
	Snapshot *entities.CurrentBidState
}

// LifecycleView is the full read-path result for one bid.
type LifecycleView struct {
	Events        []entities.LifecycleEvent
	CurrentStatus entities.BidStatus
	Details       *BidDetails
}

// IBidLifecycleUseCase exposes the bid lifecycle operations.
//
//   - RecordTransition: POST lifecycle(bid_number)
//   - GetLifecycle: GET lifecycle(bid_number)

type IBidLifecycleUseCase interface {
	RecordTransition(ctx context.Context, in TransitionInput) (TransitionResult, error)
	GetLifecycle(ctx context.Context, bidNumber, actorID string, adminView bool) (LifecycleView, error)
}

type BidLifecycleUseCase struct {
	awards    interfaces.IAwardRepository
	lifecycle interfaces.ILifecycleRepository
	notifier  interfaces.IAdminNotifier
	log       *zap.Logger

	notifyTimeout time.Duration
}

var _ IBidLifecycleUseCase = (*BidLifecycleUseCase)(nil)

func NewBidLifecycleUseCase(
	awards interfaces.IAwardRepository,
	lifecycle interfaces.ILifecycleRepository,
	notifier interfaces.IAdminNotifier,
	log *zap.Logger,
) *BidLifecycleUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BidLifecycleUseCase{
		awards:        awards,
		lifecycle:     lifecycle,
		notifier:      notifier,
		log:           log,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// RecordTransition runs the full write path: ownership check, transition
// validation, then the atomic event-append + snapshot-projection write.
// The admin notification on acceptance is dispatched after commit and
// can never fail the transition.
func (u *BidLifecycleUseCase) RecordTransition(ctx context.Context, in TransitionInput) (TransitionResult, error) {
	bidNumber := strings.TrimSpace(in.BidNumber)
	if bidNumber == "" {
		return TransitionResult{}, ErrInvalidBidNumber
	}
	if !in.Status.Valid() {
		return TransitionResult{}, ErrInvalidStatus
	}

	award, err := u.awards.GetByBidNumber(ctx, bidNumber)
	if err != nil {
		return TransitionResult{}, err
	}
	if award.BidNumber == "" || award.WinnerActorID != in.ActorID {
		return TransitionResult{}, ErrBidNotFound
	}

	snap, err := u.lifecycle.GetSnapshot(ctx, bidNumber, in.ActorID)
	if err != nil {
		return TransitionResult{}, err
	}
	snapshotExists := snap.BidNumber != ""
	current := snap.Status
	if !snapshotExists {
		// Comparison default only; never persisted.
		current = entities.BidStatusAwarded
	}

	decision, err := ValidateTransition(current, in.Status, award.Status)
	if err != nil {
		return TransitionResult{}, err
	}

	rec := interfaces.TransitionRecord{
		BidNumber:      bidNumber,
		CarrierActorID: in.ActorID,
		EventID:        uuid.NewString(),
		EventType:      in.Status,
		PreviousStatus: current,
		Timestamp:      time.Now().UTC(),
		SnapshotExists: snapshotExists,
		WriteStatus:    decision.WriteStatus,
		AcceptAward:    decision.Branch == BranchAcceptance,
		Notes:          strings.TrimSpace(in.Notes),
		Location:       strings.TrimSpace(in.Location),
		Documents:      in.Documents,
		Photos:         in.Photos,
		Driver:         in.Driver,
		Times:          in.Times,
	}

	if err := u.lifecycle.RecordTransition(ctx, rec); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrSnapshotPreconditionFailed):
			return TransitionResult{}, ErrStateConflict
		case errors.Is(err, interfaces.ErrAwardPreconditionFailed):
			// Validation saw the award as still awarded, so a concurrent
			// request must have accepted it first.
			return TransitionResult{}, ErrBidAlreadyAccepted
		default:
			return TransitionResult{}, err
		}
	}

	u.log.Info("lifecycle transition recorded",
		zap.String("bid_number", bidNumber),
		zap.String("event_id", rec.EventID),
		zap.String("previous_status", current.String()),
		zap.String("new_status", in.Status.String()),
	)

	if decision.Branch == BranchAcceptance {
		u.dispatchAcceptedNotice(interfaces.BidAcceptedNotice{
			BidNumber:      bidNumber,
			CarrierActorID: in.ActorID,
			AmountCents:    award.WinnerAmountCents,
		})
	}

	return TransitionResult{
		EventID:        rec.EventID,
		NewStatus:      in.Status,
		PreviousStatus: current,
	}, nil
}

// dispatchAcceptedNotice fires the admin notification without blocking
// the caller. The transition is already durable at this point, so the
// notice runs on a detached context and any failure is only logged.
func (u *BidLifecycleUseCase) dispatchAcceptedNotice(notice interfaces.BidAcceptedNotice) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), u.notifyTimeout)
		defer cancel()
		if err := u.notifier.BidAccepted(ctx, notice); err != nil {
			u.log.Error("admin notification failed",
				zap.String("bid_number", notice.BidNumber),
				zap.String("carrier_actor_id", notice.CarrierActorID),
				zap.Error(err),
			)
		}
	}()
}

// GetLifecycle returns the ordered event history, the current status and
// the award/route/snapshot summary for one bid. Carriers may only read
// their own bids; adminView bypasses the ownership check.
func (u *BidLifecycleUseCase) GetLifecycle(ctx context.Context, bidNumber, actorID string, adminView bool) (LifecycleView, error) {
	bidNumber = strings.TrimSpace(bidNumber)
	if bidNumber == "" {
		return LifecycleView{}, ErrInvalidBidNumber
	}

	award, err := u.awards.GetByBidNumber(ctx, bidNumber)
	if err != nil {
		return LifecycleView{}, err
	}
	if award.BidNumber == "" {
		return LifecycleView{}, ErrBidNotFound
	}
	if !adminView && award.WinnerActorID != actorID {
		return LifecycleView{}, ErrBidNotFound
	}

	events, err := u.lifecycle.ListEvents(ctx, bidNumber)
	if err != nil {
		return LifecycleView{}, err
	}

	// The snapshot is keyed to the winning carrier even for admin reads.
	snap, err := u.lifecycle.GetSnapshot(ctx, bidNumber, award.WinnerActorID)
	if err != nil {
		return LifecycleView{}, err
	}

	current := snap.Status
	details := &BidDetails{Award: award}
	if snap.BidNumber != "" {
		snapCopy := snap
		details.Snapshot = &snapCopy
	} else {
		current = entities.BidStatusAwarded
	}

	return LifecycleView{
		Events:        events,
		CurrentStatus: current,
		Details:       details,
	}, nil
}
