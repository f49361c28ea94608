package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/repository"
)

var _ repository.ReviewRepository = (*ReviewDB)(nil)

// ReviewDB is the reviews collection.
type ReviewDB struct {
	conn *sql.DB
}

const reviewColumns = `id, restaurant_id, restaurant_name, restaurant_image,
	user_id, user_name, rating, comment, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(s rowScanner) (model.Review, error) {
	var (
		r                    model.Review
		createdAt, updatedAt sql.NullInt64
	)
	err := s.Scan(
		&r.ID, &r.RestaurantID, &r.RestaurantName, &r.RestaurantImage,
		&r.UserID, &r.UserName, &r.Rating, &r.Comment,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Review{}, err
	}
	r.CreatedAt = model.TimestampFromUnix(createdAt.Int64)
	r.UpdatedAt = model.TimestampFromUnix(updatedAt.Int64)
	return r, nil
}

func (db *ReviewDB) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Review, error) {
	return db.listWhere(ctx, "restaurant_id", restaurantID)
}

func (db *ReviewDB) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	return db.listWhere(ctx, "user_id", userID)
}

// listWhere runs an equality query on one indexed column. column is always
// a constant from this file, never user input, so interpolating it is safe.
func (db *ReviewDB) listWhere(ctx context.Context, column, value string) ([]model.Review, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE `+column+` = ? ORDER BY rowid`,
		value,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing reviews by %s: %w", column, err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scanning review row: %w", err)
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating reviews: %w", err)
	}

	return reviews, nil
}

func (db *ReviewDB) GetByID(ctx context.Context, id string) (*model.Review, error) {
	r, err := scanReview(db.conn.QueryRowContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Review")
		}
		return nil, fmt.Errorf("sqlite: getting review %s: %w", id, err)
	}
	return &r, nil
}

// Create inserts the review under a fresh xid. Both timestamps come from
// serverNow; review.CreatedAt/UpdatedAt are left as the caller set them.
func (db *ReviewDB) Create(ctx context.Context, review *model.Review) error {
	review.ID = xid.New().String()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO reviews (id, restaurant_id, restaurant_name, restaurant_image,
			user_id, user_name, rating, comment, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, `+serverNow+`, `+serverNow+`)`,
		review.ID,
		review.RestaurantID,
		review.RestaurantName,
		review.RestaurantImage,
		review.UserID,
		review.UserName,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating review: %w", err)
	}
	return nil
}

// Update touches rating, comment and updated_at only. A zero RowsAffected
// means the id did not match.
func (db *ReviewDB) Update(ctx context.Context, id string, rating float64, comment string) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE reviews SET rating = ?, comment = ?, updated_at = `+serverNow+` WHERE id = ?`,
		rating, comment, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating review %s: %w", id, err)
	}
	return expectOneRow(result, id)
}

func (db *ReviewDB) Delete(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting review %s: %w", id, err)
	}
	return expectOneRow(result, id)
}

func expectOneRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected for %s: %w", id, err)
	}
	if n == 0 {
		return apperror.NotFound("Review")
	}
	return nil
}
