// Package service contains the business rules that sit between the HTTP
// handlers and the document store.
//
//	Handler (HTTP)   → parses requests, writes JSON, maps errors to statuses
//	Service (rules)  → validates, applies defaults, orders, authorizes
//	Repository (I/O) → one document-store operation per call
//
// Services take repository interfaces, so tests inject in-memory fakes and
// production injects Firestore (or SQLite for local runs).
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/repository"
)

// Defaults applied when a review omits optional display fields.
const (
	DefaultRestaurantName = "Restaurant"
	DefaultUserName       = "Anonymous"
)

const msgMissingFields = "Missing required fields"

// ReviewService enforces the review rules:
//   - required fields and defaults on create
//   - newest-first ordering on list
//   - owner-id authorization on update/delete
//
// OWNER-ID AUTHORIZATION:
// The only check before a mutation is that the caller-supplied userId equals
// the userId stored on the review. Nothing verifies that the caller really
// is that user; the client is trusted to send its own id. Treat this as a
// convenience guard against editing someone else's review by mistake, not
// as a security boundary. Verified identity would be a new feature.
type ReviewService struct {
	repo   repository.ReviewRepository
	logger *slog.Logger
}

func NewReviewService(repo repository.ReviewRepository, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		logger: logger,
	}
}

// CreateReviewInput is a review as submitted by a client, already coerced
// to Go types by the handler.
type CreateReviewInput struct {
	RestaurantID    string
	RestaurantName  string
	RestaurantImage string
	UserID          string
	UserName        string
	Rating          float64
	Comment         string
}

// ListByRestaurant returns a restaurant's reviews, newest first.
func (s *ReviewService) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Review, error) {
	reviews, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews for restaurant %s: %w", restaurantID, err)
	}
	sortNewestFirst(reviews)
	return reviews, nil
}

// ListByUser returns a user's reviews, newest first.
func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	reviews, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews for user %s: %w", userID, err)
	}
	sortNewestFirst(reviews)
	return reviews, nil
}

// sortNewestFirst orders by createdAt seconds, descending. A review without
// a timestamp counts as epoch 0 and so sinks below every timestamped one.
// The sort is stable: ties keep store order.
func sortNewestFirst(reviews []model.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.Epoch() > reviews[j].CreatedAt.Epoch()
	})
}

// Create validates, applies defaults and stores a new review.
//
// The returned review carries the new id and the stored fields, with
// CreatedAt/UpdatedAt nil: the store resolves them at commit time and this
// call does not read the document back. Clients that need the timestamps
// fetch the list again.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*model.Review, error) {
	comment := strings.TrimSpace(in.Comment)

	switch {
	case in.RestaurantID == "":
		return nil, apperror.ValidationFailed("restaurantId", msgMissingFields)
	case in.UserID == "":
		return nil, apperror.ValidationFailed("userId", msgMissingFields)
	case in.Rating == 0 || math.IsNaN(in.Rating):
		return nil, apperror.ValidationFailed("rating", msgMissingFields)
	case comment == "":
		return nil, apperror.ValidationFailed("comment", msgMissingFields)
	}

	review := &model.Review{
		RestaurantID:    in.RestaurantID,
		RestaurantName:  orDefault(in.RestaurantName, DefaultRestaurantName),
		RestaurantImage: in.RestaurantImage,
		UserID:          in.UserID,
		UserName:        orDefault(in.UserName, DefaultUserName),
		Rating:          in.Rating,
		Comment:         comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error("failed to create review",
			slog.String("restaurantId", review.RestaurantID),
			slog.String("userId", review.UserID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating review: %w", err)
	}

	review.CreatedAt, review.UpdatedAt = nil, nil

	s.logger.Info("review created",
		slog.String("id", review.ID),
		slog.String("restaurantId", review.RestaurantID),
		slog.String("userId", review.UserID),
	)
	return review, nil
}

// Update overwrites rating and comment on a review owned by requestingUserID.
//
// Existence and ownership are checked before the body, so a missing or
// foreign review answers 404/403 whatever rating and comment were sent.
// The result echoes the values from this request with UpdatedAt nil; it is
// not a re-read of the stored document.
func (s *ReviewService) Update(ctx context.Context, id, requestingUserID string, rating float64, comment string) (*model.ReviewUpdate, error) {
	if err := s.authorize(ctx, id, requestingUserID); err != nil {
		return nil, err
	}

	comment = strings.TrimSpace(comment)
	if rating == 0 || math.IsNaN(rating) {
		return nil, apperror.ValidationFailed("rating", msgMissingFields)
	}
	if comment == "" {
		return nil, apperror.ValidationFailed("comment", msgMissingFields)
	}

	if err := s.repo.Update(ctx, id, rating, comment); err != nil {
		return nil, fmt.Errorf("updating review %s: %w", id, err)
	}

	s.logger.Info("review updated", slog.String("id", id), slog.String("userId", requestingUserID))
	return &model.ReviewUpdate{ID: id, Rating: rating, Comment: comment}, nil
}

// Delete removes a review owned by requestingUserID.
func (s *ReviewService) Delete(ctx context.Context, id, requestingUserID string) error {
	if err := s.authorize(ctx, id, requestingUserID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting review %s: %w", id, err)
	}

	s.logger.Info("review deleted", slog.String("id", id), slog.String("userId", requestingUserID))
	return nil
}

// authorize loads the review and checks ownership.
// NotFound wins over Forbidden: a missing review is reported as missing
// whatever userId was supplied.
func (s *ReviewService) authorize(ctx context.Context, id, requestingUserID string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != requestingUserID {
		s.logger.Warn("review ownership mismatch",
			slog.String("id", id),
			slog.String("owner", existing.UserID),
			slog.String("requestedBy", requestingUserID),
		)
		return apperror.Forbidden("Unauthorized")
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
