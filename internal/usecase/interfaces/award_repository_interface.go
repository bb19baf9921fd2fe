package interfaces

import (
	"context"

	"nova_freight/internal/domain/entities"
)

// IAwardRepository abstracts DynamoDB persistence for Award.
//
// Awards are created by the auction-close process; the lifecycle core
// only reads them here. The one-time awarded -> accepted flip happens
// inside ILifecycleRepository.RecordTransition so it commits atomically
// with the acceptance event.

type IAwardRepository interface {
	// GetByBidNumber returns the zero-value Award when no record exists.
	GetByBidNumber(ctx context.Context, bidNumber string) (entities.Award, error)
}
