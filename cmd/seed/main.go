// Command seed bootstraps the Postgres schema and loads a development
// data set: two companies, three cards, two invoices and a bulk batch
// of day-staggered transactions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"kort/internal/domain/card"
	"kort/internal/infrastructure/postgres"
	"kort/internal/shared/config"
)

const usage = `kort seed - schema bootstrap and development data

Usage:
  seed [options]

Options:
  --drop       Drop existing tables before creating the schema
  --timeout    Overall timeout (default 1m)

Database connection is taken from the same DB_* environment variables
as the API server.
`

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id             UUID PRIMARY KEY,
		company_id     UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		card_number    TEXT NOT NULL,
		status         TEXT NOT NULL,
		credit_limit   DOUBLE PRECISION NOT NULL,
		current_spend  DOUBLE PRECISION NOT NULL DEFAULT 0,
		currency       TEXT NOT NULL,
		card_image_url TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		card_id  UUID PRIMARY KEY REFERENCES cards(id) ON DELETE CASCADE,
		due_date TIMESTAMPTZ NOT NULL,
		amount   DOUBLE PRECISION NOT NULL,
		currency TEXT NOT NULL,
		is_paid  BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id               UUID PRIMARY KEY,
		card_id          UUID NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
		description      TEXT NOT NULL,
		amount           DOUBLE PRECISION NOT NULL,
		data_points      TEXT NOT NULL DEFAULT '',
		transaction_date TIMESTAMPTZ NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_company_id ON cards(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_card_id_date ON transactions(card_id, transaction_date DESC)`,
}

func main() {
	drop := flag.Bool("drop", false, "drop existing tables before creating the schema")
	timeout := flag.Duration("timeout", time.Minute, "overall timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *drop {
		log.Println("Dropping existing tables...")
		for _, table := range []string{"transactions", "invoices", "cards", "companies"} {
			if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
				log.Fatalf("Failed to drop %s: %v", table, err)
			}
		}
	}

	log.Println("Creating schema...")
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	if err := seed(ctx, db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}

func seed(ctx context.Context, db *postgres.DB) error {
	log.Println("Seeding database...")

	company1, err := insertCompany(ctx, db, "Company AB")
	if err != nil {
		return err
	}
	company2, err := insertCompany(ctx, db, "Tech Solutions Ltd")
	if err != nil {
		return err
	}

	card1, err := insertCard(ctx, db, company1, "**** **** **** 1234", card.StatusInactive, 10000, 5400)
	if err != nil {
		return err
	}
	card2, err := insertCard(ctx, db, company1, "**** **** **** 5678", card.StatusActive, 15000, 3200)
	if err != nil {
		return err
	}
	if _, err := insertCard(ctx, db, company2, "**** **** **** 9012", card.StatusInactive, 20000, 8900); err != nil {
		return err
	}

	for cardID, amount := range map[string]float64{card1: 5400, card2: 3200} {
		_, err := db.ExecContext(ctx,
			`INSERT INTO invoices (card_id, due_date, amount, currency, is_paid) VALUES ($1, $2, $3, $4, FALSE)`,
			cardID, time.Now().Add(20*24*time.Hour), amount, "kr",
		)
		if err != nil {
			return fmt.Errorf("failed to insert invoice: %w", err)
		}
	}

	if err := insertTransactions(ctx, db, card1, 57); err != nil {
		return err
	}
	if err := insertTransactions(ctx, db, card2, 25); err != nil {
		return err
	}

	log.Println("Database seeded: 2 companies, 3 cards, 2 invoices, 82 transactions")
	return nil
}

func insertCompany(ctx context.Context, db *postgres.DB, name string) (string, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx, `INSERT INTO companies (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return "", fmt.Errorf("failed to insert company %q: %w", name, err)
	}
	return id, nil
}

func insertCard(ctx context.Context, db *postgres.DB, companyID, number, status string, limit, spend float64) (string, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx, `
		INSERT INTO cards (id, company_id, card_number, status, credit_limit, current_spend, currency, card_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, companyID, number, status, limit, spend, "kr", "/assets/card-image.png",
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert card %s: %w", number, err)
	}
	return id, nil
}

func insertTransactions(ctx context.Context, db *postgres.DB, cardID string, count int) error {
	for i := 0; i < count; i++ {
		_, err := db.ExecContext(ctx, `
			INSERT INTO transactions (id, card_id, description, amount, data_points, transaction_date)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.NewString(), cardID,
			fmt.Sprintf("Transaction data %d", i+1),
			rand.Float64()*500+50,
			"Data points",
			time.Now().Add(-time.Duration(i)*24*time.Hour),
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}
	return nil
}
