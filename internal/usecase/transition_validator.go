package usecase

import (
	"nova_freight/internal/domain/entities"
)

// TransitionBranch identifies which validation rule admitted a status
// change. The projector uses it to decide whether the snapshot's status
// field is written at all.
type TransitionBranch int

const (
	// BranchDriverInfoUpdate merges driver fields without touching the
	// snapshot status.
	BranchDriverInfoUpdate TransitionBranch = iota
	// BranchAcceptance is the one-time acceptance of an awarded bid.
	BranchAcceptance
	// BranchProgression is an ordinary forward move along the status
	// order.
	BranchProgression
)

// TransitionDecision is the validator's allow result.
type TransitionDecision struct {
	Branch TransitionBranch
	// WriteStatus is false when the snapshot's status must stay
	// untouched (driver_info_update).
	WriteStatus bool
}

// ValidateTransition decides whether requested may follow current.
//
// current comes from the snapshot row, defaulting to bid_awarded when no
// row exists yet; awardStatus is the award record's own state and is
// consulted only for the acceptance branch. Rules are evaluated in
// order:
//
//  1. driver_info_update requires a load to already be assigned.
//  2. bid_awarded (acceptance) requires the award itself to still be
//     awarded; it ignores the snapshot status entirely.
//  3. Anything else must not move backwards in the forward order.
//     Re-submitting the current status is accepted as idempotent.
func ValidateTransition(current, requested entities.BidStatus, awardStatus entities.AwardStatus) (TransitionDecision, error) {
	switch {
	case requested == entities.BidStatusDriverInfoUpdate:
		if current == entities.BidStatusAwarded {
			return TransitionDecision{}, ErrPrematureDriverUpdate
		}
		return TransitionDecision{Branch: BranchDriverInfoUpdate, WriteStatus: false}, nil

	case requested == entities.BidStatusAwarded:
		switch awardStatus {
		case entities.AwardStatusAwarded:
			return TransitionDecision{Branch: BranchAcceptance, WriteStatus: true}, nil
		case entities.AwardStatusAccepted:
			return TransitionDecision{}, ErrBidAlreadyAccepted
		default:
			return TransitionDecision{}, ErrInvalidAwardState
		}

	default:
		requestedIdx := requested.ProgressionIndex()
		if requestedIdx < 0 {
			return TransitionDecision{}, ErrInvalidStatus
		}
		// current may sit outside the order (no snapshot yet, or an
		// upstream marker); that never blocks forward progress.
		if requestedIdx < current.ProgressionIndex() {
			return TransitionDecision{}, ErrRegressiveTransition
		}
		return TransitionDecision{Branch: BranchProgression, WriteStatus: true}, nil
	}
}
