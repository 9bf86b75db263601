package db

import (
	"context"
	"database/sql"
)

const keystoneMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    username text NOT NULL,
    password_hash text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_username_unique
ON users (username);

CREATE TABLE IF NOT EXISTS tickets (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    title text NOT NULL,
    price numeric(10,2) NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);
`

// Catalog rows are read-only at runtime, so the seed ships with the
// migration. Fixed ids keep the seed idempotent across restarts.
const seedTickets = `
INSERT INTO tickets (id, title, price)
VALUES
    ('7b5de594-1a1a-4b57-9f2f-2ec1a0b1f101', 'Standard Admission', 12.50),
    ('b3a9c1de-52c4-4d26-9a6d-0d3f2e4a9c02', 'VIP Admission', 45.00),
    ('e4f81c3a-9d0b-4f6e-8b1c-6a2d5e7f1d03', 'Balcony Seat', 20.00)
ON CONFLICT (id) DO NOTHING;
`

func RunKeystoneMigration(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, keystoneMigration); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, seedTickets)
	return err
}
