package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/repository"
)

var _ repository.UserRepository = (*UserDB)(nil)

// UserDB is the users collection.
type UserDB struct {
	conn *sql.DB
}

// Upsert creates or merges a profile in a single statement.
//
// INSERT ... ON CONFLICT DO UPDATE:
// On a new id the row is inserted with created_at = serverNow.
// On an existing id only the update clause runs, and it never mentions
// created_at, so the original creation time survives every merge.
// COALESCE(excluded.x, users.x) keeps the stored value when the caller did
// not supply the field (we bind NULL for "not supplied").
func (db *UserDB) Upsert(ctx context.Context, id string, fields model.ProfileFields) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, email, display_name, created_at)
		 VALUES (?, ?, ?, `+serverNow+`)
		 ON CONFLICT(id) DO UPDATE SET
			email        = COALESCE(excluded.email, users.email),
			display_name = COALESCE(excluded.display_name, users.display_name)`,
		id,
		nullString(fields.Email),
		nullString(fields.DisplayName),
	)
	if err != nil {
		return fmt.Errorf("sqlite: upserting user %s: %w", id, err)
	}
	return nil
}

func (db *UserDB) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	var (
		u                  model.UserProfile
		email, displayName sql.NullString
		createdAt          sql.NullInt64
	)
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, email, display_name, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &email, &displayName, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("User")
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}

	u.Email = email.String
	u.DisplayName = displayName.String
	u.CreatedAt = model.TimestampFromUnix(createdAt.Int64)
	return &u, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
