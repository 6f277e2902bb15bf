package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema holds the four relations. Enrollments carry both the pair
// uniqueness constraint and ON DELETE CASCADE on each reference; concurrent
// writers race on these constraints, never on application locks.
const schema = `
CREATE TABLE IF NOT EXISTS participants (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(100) NOT NULL,
	phone       VARCHAR(20) NOT NULL UNIQUE,
	secret_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS judges (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(100) NOT NULL,
	username    VARCHAR(50) NOT NULL UNIQUE,
	secret_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sports (
	id    BIGSERIAL PRIMARY KEY,
	title VARCHAR(50) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS enrollments (
	id             BIGSERIAL PRIMARY KEY,
	participant_id BIGINT NOT NULL REFERENCES participants(id) ON DELETE CASCADE,
	sport_id       BIGINT NOT NULL REFERENCES sports(id) ON DELETE CASCADE,
	UNIQUE (participant_id, sport_id)
);
`

// starterSports is the fixed catalog seed. Further sports arrive through the
// administrative endpoint.
var starterSports = []string{"Basketball", "Volleyball"}

// EnsureSchema provisions tables and the starter sport rows. It is
// idempotent and runs before the server accepts requests.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	for _, title := range starterSports {
		_, err := db.ExecContext(ctx,
			`INSERT INTO sports (title) VALUES ($1) ON CONFLICT (title) DO NOTHING`, title)
		if err != nil {
			return fmt.Errorf("seed sport %q: %w", title, err)
		}
	}
	return nil
}
