package postgres

import (
	"context"
	"fmt"

	"kort/internal/domain/card"
	"kort/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) ListByCard(ctx context.Context, cardID string, limit, offset int) (*transaction.Page, error) {
	// Validate the card before slicing so an unknown card surfaces as
	// not-found rather than an empty page.
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)`, cardID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check card: %w", err)
	}
	if !exists {
		return nil, card.ErrCardNotFound
	}

	query := `
		SELECT id, card_id, description, amount, data_points, transaction_date, created_at
		FROM transactions
		WHERE card_id = $1
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, cardID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	items := make([]*transaction.Transaction, 0, limit)
	for rows.Next() {
		var t transaction.Transaction
		err := rows.Scan(
			&t.ID, &t.CardID, &t.Description, &t.Amount,
			&t.DataPoints, &t.Date, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		items = append(items, &t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	var total int
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE card_id = $1`, cardID).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	return &transaction.Page{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
