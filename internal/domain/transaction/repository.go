package transaction

import "context"

// Repository defines the interface for transaction data access.
// Implemented by the persistent store and by the in-memory mock provider.
type Repository interface {
	// ListByCard retrieves the [offset, offset+limit) window over a
	// card's transactions ordered by date descending, together with the
	// total unsliced count. Returns card.ErrCardNotFound when the card is
	// absent.
	ListByCard(ctx context.Context, cardID string, limit, offset int) (*Page, error)
}
