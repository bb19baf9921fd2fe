package usecase

import (
	"errors"
	"testing"

	"nova_freight/internal/domain/entities"
)

func TestValidateTransition_DriverInfoUpdate(t *testing.T) {
	t.Run("before load assigned", func(t *testing.T) {
		_, err := ValidateTransition(entities.BidStatusAwarded, entities.BidStatusDriverInfoUpdate, entities.AwardStatusAccepted)
		if !errors.Is(err, ErrPrematureDriverUpdate) {
			t.Fatalf("expected ErrPrematureDriverUpdate, got %v", err)
		}
	})

	t.Run("after load assigned", func(t *testing.T) {
		d, err := ValidateTransition(entities.BidStatusLoadAssigned, entities.BidStatusDriverInfoUpdate, entities.AwardStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Branch != BranchDriverInfoUpdate {
			t.Fatalf("expected driver info branch, got %v", d.Branch)
		}
		if d.WriteStatus {
			t.Fatal("driver_info_update must not write the snapshot status")
		}
	})

	t.Run("deep in transit", func(t *testing.T) {
		d, err := ValidateTransition(entities.BidStatusInTransit, entities.BidStatusDriverInfoUpdate, entities.AwardStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.WriteStatus {
			t.Fatal("driver_info_update must not write the snapshot status")
		}
	})
}

func TestValidateTransition_Acceptance(t *testing.T) {
	t.Run("award still awarded", func(t *testing.T) {
		d, err := ValidateTransition(entities.BidStatusAwarded, entities.BidStatusAwarded, entities.AwardStatusAwarded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Branch != BranchAcceptance || !d.WriteStatus {
			t.Fatalf("expected acceptance branch with status write, got %+v", d)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		_, err := ValidateTransition(entities.BidStatusInTransit, entities.BidStatusAwarded, entities.AwardStatusAccepted)
		if !errors.Is(err, ErrBidAlreadyAccepted) {
			t.Fatalf("expected ErrBidAlreadyAccepted, got %v", err)
		}
	})

	t.Run("cancelled award", func(t *testing.T) {
		_, err := ValidateTransition(entities.BidStatusAwarded, entities.BidStatusAwarded, entities.AwardStatusCancelled)
		if !errors.Is(err, ErrInvalidAwardState) {
			t.Fatalf("expected ErrInvalidAwardState, got %v", err)
		}
	})
}

func TestValidateTransition_Progression(t *testing.T) {
	t.Run("forward move", func(t *testing.T) {
		d, err := ValidateTransition(entities.BidStatusAwarded, entities.BidStatusLoadAssigned, entities.AwardStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Branch != BranchProgression || !d.WriteStatus {
			t.Fatalf("expected progression branch with status write, got %+v", d)
		}
	})

	t.Run("skipping ahead is allowed", func(t *testing.T) {
		_, err := ValidateTransition(entities.BidStatusLoadAssigned, entities.BidStatusDelivered, entities.AwardStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("regressive move", func(t *testing.T) {
		_, err := ValidateTransition(entities.BidStatusInTransit, entities.BidStatusPickedUp, entities.AwardStatusAccepted)
		if !errors.Is(err, ErrRegressiveTransition) {
			t.Fatalf("expected ErrRegressiveTransition, got %v", err)
		}
	})

	t.Run("resubmitting current status is idempotent", func(t *testing.T) {
		d, err := ValidateTransition(entities.BidStatusInTransit, entities.BidStatusInTransit, entities.AwardStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Branch != BranchProgression {
			t.Fatalf("expected progression branch, got %v", d.Branch)
		}
	})

	t.Run("current outside the order never blocks", func(t *testing.T) {
		// An upstream marker like "awarded" has no progression index.
		_, err := ValidateTransition(entities.BidStatus("awarded"), entities.BidStatusLoadAssigned, entities.AwardStatusAccepted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown requested status", func(t *testing.T) {
		_, err := ValidateTransition(entities.BidStatusInTransit, entities.BidStatus("shipped"), entities.AwardStatusAccepted)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}
