package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kort/internal/domain/invoice"
)

type InvoiceRepository struct {
	db *DB
}

func NewInvoiceRepository(db *DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) GetByCard(ctx context.Context, cardID string) (*invoice.Invoice, error) {
	query := `
		SELECT card_id, due_date, amount, currency, is_paid
		FROM invoices
		WHERE card_id = $1
	`

	var inv invoice.Invoice
	err := r.db.QueryRowContext(ctx, query, cardID).Scan(
		&inv.CardID, &inv.DueDate, &inv.Amount, &inv.Currency, &inv.IsPaid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // no invoice for this card
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return &inv, nil
}
