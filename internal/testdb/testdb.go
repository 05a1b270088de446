// Package testdb provides database helpers for integration tests. Tests
// that need a real PostgreSQL instance call New, which skips the test
// unless DATABASE_URL is set, so the unit suite runs green without one.
//
// New truncates every table, so packages using it must not run against
// the same database concurrently; run integration tests with -p 1.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver for database/sql
	"github.com/stretchr/testify/require"

	"github.com/hward/boardgames-api/internal/platform/postgres"
)

// New opens a connection to the test database named by DATABASE_URL,
// applies migrations, and resets all tables. Skips the test when
// DATABASE_URL is unset. The connection is closed automatically when the
// test finishes.
func New(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	require.NoError(t, postgres.RunMigrations(db), "failed to migrate test database")
	Reset(t, db)

	return db
}

// Reset truncates all entity tables and restarts their id sequences.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`TRUNCATE categories, users, reviews, comments RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to reset test database")
}

// Seed inserts a small fixture set: two categories, two users, two
// reviews (both by mallionaire, one per category) and three comments on
// review 1.
func Seed(t *testing.T, db *sql.DB) {
	t.Helper()

	const fixtures = `
		INSERT INTO categories (slug, description) VALUES
			('euro game', 'Abstract games that involve little luck'),
			('dexterity', 'Games involving physical skill');
		INSERT INTO users (username, name, avatar_url) VALUES
			('mallionaire', 'haz', 'https://example.com/haz.jpg'),
			('philippaclaire9', 'philippa', 'https://example.com/philippa.jpg');
		INSERT INTO reviews (title, designer, owner, review_body, category, votes) VALUES
			('Agricola', 'Uwe Rosenberg', 'mallionaire', 'Farmyard fun!', 'euro game', 1),
			('Jenga', 'Leslie Scott', 'mallionaire', 'Fiddly fun for all the family', 'dexterity', 5);
		INSERT INTO comments (author, body, review_id, votes) VALUES
			('philippaclaire9', 'I loved this game too!', 1, 16),
			('mallionaire', 'My dog loved this game too!', 1, 13),
			('philippaclaire9', 'EPIC board game!', 1, 16);
	`
	_, err := db.Exec(fixtures)
	require.NoError(t, err, "failed to seed test database")
}
