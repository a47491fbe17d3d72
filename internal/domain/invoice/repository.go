package invoice

import "context"

// Repository defines the interface for invoice data access.
type Repository interface {
	// GetByCard retrieves the invoice for a card.
	// Returns (nil, nil) when the card has no invoice. The mock source
	// additionally validates card existence and returns
	// card.ErrCardNotFound for an absent card.
	GetByCard(ctx context.Context, cardID string) (*Invoice, error)
}
