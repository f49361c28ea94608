package firestore

import (
	"context"
	"fmt"
	"time"

	fs "cloud.google.com/go/firestore"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/repository"
)

var _ repository.ReviewRepository = (*ReviewCollection)(nil)

// reviewDoc is the stored document. Missing or null timestamps decode to
// the zero time.Time.
type reviewDoc struct {
	RestaurantID    string    `firestore:"restaurantId"`
	RestaurantName  string    `firestore:"restaurantName"`
	RestaurantImage string    `firestore:"restaurantImage"`
	UserID          string    `firestore:"userId"`
	UserName        string    `firestore:"userName"`
	Rating          float64   `firestore:"rating"`
	Comment         string    `firestore:"comment"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}

func (d reviewDoc) toModel(id string) model.Review {
	return model.Review{
		ID:              id,
		RestaurantID:    d.RestaurantID,
		RestaurantName:  d.RestaurantName,
		RestaurantImage: d.RestaurantImage,
		UserID:          d.UserID,
		UserName:        d.UserName,
		Rating:          d.Rating,
		Comment:         d.Comment,
		CreatedAt:       model.NewTimestamp(d.CreatedAt),
		UpdatedAt:       model.NewTimestamp(d.UpdatedAt),
	}
}

// newReviewData builds the document written on create. Timestamps are
// server sentinels; whatever the caller put on the review is ignored.
func newReviewData(r *model.Review) map[string]interface{} {
	return map[string]interface{}{
		"restaurantId":    r.RestaurantID,
		"restaurantName":  r.RestaurantName,
		"restaurantImage": r.RestaurantImage,
		"userId":          r.UserID,
		"userName":        r.UserName,
		"rating":          r.Rating,
		"comment":         r.Comment,
		"createdAt":       fs.ServerTimestamp,
		"updatedAt":       fs.ServerTimestamp,
	}
}

// ReviewCollection is the reviews collection.
type ReviewCollection struct {
	coll *fs.CollectionRef
}

func (c *ReviewCollection) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Review, error) {
	return c.listWhere(ctx, "restaurantId", restaurantID)
}

func (c *ReviewCollection) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	return c.listWhere(ctx, "userId", userID)
}

func (c *ReviewCollection) listWhere(ctx context.Context, field, value string) ([]model.Review, error) {
	snaps, err := c.coll.Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore: querying reviews by %s: %w", field, err)
	}

	reviews := make([]model.Review, 0, len(snaps))
	for _, snap := range snaps {
		var doc reviewDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("firestore: decoding review %s: %w", snap.Ref.ID, err)
		}
		reviews = append(reviews, doc.toModel(snap.Ref.ID))
	}
	return reviews, nil
}

func (c *ReviewCollection) GetByID(ctx context.Context, id string) (*model.Review, error) {
	ref := c.coll.Doc(id)
	if ref == nil {
		return nil, apperror.NotFound("Review")
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("Review")
		}
		return nil, fmt.Errorf("firestore: getting review %s: %w", id, err)
	}

	var doc reviewDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore: decoding review %s: %w", id, err)
	}
	r := doc.toModel(snap.Ref.ID)
	return &r, nil
}

func (c *ReviewCollection) Create(ctx context.Context, review *model.Review) error {
	ref, _, err := c.coll.Add(ctx, newReviewData(review))
	if err != nil {
		return fmt.Errorf("firestore: creating review: %w", err)
	}
	review.ID = ref.ID
	return nil
}

// Update fails with codes.NotFound on a missing document; that is mapped to
// apperror.NotFound so every backend reports the same error.
func (c *ReviewCollection) Update(ctx context.Context, id string, rating float64, comment string) error {
	ref := c.coll.Doc(id)
	if ref == nil {
		return apperror.NotFound("Review")
	}

	_, err := ref.Update(ctx, []fs.Update{
		{Path: "rating", Value: rating},
		{Path: "comment", Value: comment},
		{Path: "updatedAt", Value: fs.ServerTimestamp},
	})
	if err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Review")
		}
		return fmt.Errorf("firestore: updating review %s: %w", id, err)
	}
	return nil
}

// Delete uses the Exists precondition; a plain delete of a missing document
// succeeds silently in Firestore.
func (c *ReviewCollection) Delete(ctx context.Context, id string) error {
	ref := c.coll.Doc(id)
	if ref == nil {
		return apperror.NotFound("Review")
	}

	if _, err := ref.Delete(ctx, fs.Exists); err != nil {
		if isNotFound(err) {
			return apperror.NotFound("Review")
		}
		return fmt.Errorf("firestore: deleting review %s: %w", id, err)
	}
	return nil
}
