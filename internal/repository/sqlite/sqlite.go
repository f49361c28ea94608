// Package sqlite implements the document-store contracts on top of SQLite.
//
// WHY SQLITE HERE?
// Production reviews live in Firestore, but a developer should be able to run
// the API without a Google Cloud project. SQLite gives us a single-file store
// with the same observable behaviour:
//   - document ids are generated by the store (xid, 20 URL-safe chars)
//   - timestamps are resolved by the database at write time, never by Go code
//   - user profiles are merged, not replaced
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// modernc.org/sqlite is a pure Go translation of SQLite: no CGo, no C
// toolchain, cross-compiles everywhere Go does.
package sqlite

import (
	"database/sql"
	"fmt"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"

	"github.com/sakif/restaurant-reviews/internal/repository"
)

// serverNow is the SQL expression for a server timestamp in epoch seconds.
// Evaluated inside the statement, so the value is resolved at commit time.
const serverNow = `CAST(strftime('%s','now') AS INTEGER)`

var _ repository.Store = (*DB)(nil)

// DB wraps a sql.DB connection pool and hands out the two collections.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database and runs migrations.
//
// dbPath examples:
//   - "data/reviews.db" → file-based database (persistent)
//   - ":memory:"        → in-memory database (tests)
//
// sql.Open does not connect; Ping forces a connection so a bad path or
// permissions issue fails here instead of on the first request.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory database exists per connection. Pinning the pool to one
	// connection keeps every query on the same database.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets readers proceed while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Reviews returns the reviews collection.
func (db *DB) Reviews() repository.ReviewRepository {
	return &ReviewDB{conn: db.conn}
}

// Users returns the users collection.
func (db *DB) Users() repository.UserRepository {
	return &UserDB{conn: db.conn}
}

// migrate creates the tables. CREATE ... IF NOT EXISTS makes it safe to run
// on every start.
//
// There are no foreign keys: reviews may reference restaurants that only
// exist in the static catalog, and users that never created a profile.
// Timestamp columns are nullable epoch seconds; NULL means "unset".
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS reviews (
			id               TEXT PRIMARY KEY,
			restaurant_id    TEXT NOT NULL,
			restaurant_name  TEXT NOT NULL DEFAULT '',
			restaurant_image TEXT NOT NULL DEFAULT '',
			user_id          TEXT NOT NULL,
			user_name        TEXT NOT NULL DEFAULT '',
			rating           REAL NOT NULL,
			comment          TEXT NOT NULL,
			created_at       INTEGER,
			updated_at       INTEGER
		);
		CREATE INDEX IF NOT EXISTS idx_reviews_restaurant_id ON reviews(restaurant_id);
		CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating reviews table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id           TEXT PRIMARY KEY,
			email        TEXT,
			display_name TEXT,
			created_at   INTEGER
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	return nil
}
