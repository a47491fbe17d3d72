package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kort/internal/domain/card"
	"kort/internal/domain/company"
	"kort/internal/infrastructure/redis"
)

const cardColumns = `id, company_id, card_number, status, credit_limit, current_spend, currency, card_image_url, created_at, updated_at`

// CardRepository is the persistent card store. When a cache is
// configured, single-card lookups are read-through and activation
// invalidates the cached entry.
type CardRepository struct {
	db    *DB
	cache *redis.ViewCache[card.Card]
}

// NewCardRepository creates a card repository. cache may be nil.
func NewCardRepository(db *DB, cache *redis.ViewCache[card.Card]) *CardRepository {
	return &CardRepository{db: db, cache: cache}
}

func cardCacheKey(id string) string {
	return "card:" + id
}

func (r *CardRepository) ListByCompany(ctx context.Context, companyID string) ([]*card.Card, error) {
	// Validate the company first so an unknown company is a not-found
	// error rather than an empty list.
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, companyID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check company: %w", err)
	}
	if !exists {
		return nil, company.ErrCompanyNotFound
	}

	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*card.Card, 0)
	for rows.Next() {
		var c card.Card
		if err := scanCard(rows.Scan, &c); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cards: %w", err)
	}

	return cards, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*card.Card, error) {
	if r.cache != nil {
		if cached, ok := r.cache.Get(ctx, cardCacheKey(id)); ok {
			return cached, nil
		}
	}

	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE id = $1
	`

	var c card.Card
	err := scanCard(r.db.QueryRowContext(ctx, query, id).Scan, &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, card.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cardCacheKey(id), &c)
	}

	return &c, nil
}

func (r *CardRepository) Activate(ctx context.Context, id string) (*card.Card, error) {
	// Read the current status first; activating an active card is a
	// domain conflict, not a no-op.
	var status string
	err := r.db.QueryRowContext(ctx, `SELECT status FROM cards WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, card.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card status: %w", err)
	}
	if status == card.StatusActive {
		return nil, card.ErrCardAlreadyActive
	}

	query := `
		UPDATE cards
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING ` + cardColumns

	var c card.Card
	err = scanCard(r.db.QueryRowContext(ctx, query, card.StatusActive, id).Scan, &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, card.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to activate card: %w", err)
	}

	if r.cache != nil {
		r.cache.Delete(ctx, cardCacheKey(id))
	}

	return &c, nil
}

// scanCard scans a full card row in cardColumns order.
func scanCard(scan func(dest ...any) error, c *card.Card) error {
	return scan(
		&c.ID, &c.CompanyID, &c.CardNumber, &c.Status,
		&c.Limit, &c.CurrentSpend, &c.Currency, &c.CardImageURL,
		&c.CreatedAt, &c.UpdatedAt,
	)
}
