// Package repository defines the document-store contracts the services
// depend on. Backends live in sub-packages (firestore, sqlite, memory).
package repository

import (
	"context"

	"github.com/sakif/restaurant-reviews/internal/model"
)

// Collection names shared by every backend.
const (
	ReviewsCollection = "reviews"
	UsersCollection   = "users"
)

// ReviewRepository stores reviews in a collection keyed by store-generated
// document ids.
//
// Implementations resolve CreatedAt/UpdatedAt themselves at write time
// (server timestamps) and return apperror.NotFound("Review") for unknown ids.
// Results of the List methods are in store order; sorting is the caller's job.
type ReviewRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
	GetByID(ctx context.Context, id string) (*model.Review, error)

	// Create assigns review.ID. Timestamps on review are ignored.
	Create(ctx context.Context, review *model.Review) error

	// Update overwrites rating and comment and refreshes updatedAt.
	Update(ctx context.Context, id string, rating float64, comment string) error
	Delete(ctx context.Context, id string) error
}

// UserRepository stores user profiles keyed by the caller-supplied id.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.UserProfile, error)

	// Upsert creates the profile or merges the supplied fields into it.
	// createdAt is written only when the profile did not exist yet.
	Upsert(ctx context.Context, id string, fields model.ProfileFields) error
}

// Store is one document-store backend: both collections plus its lifecycle.
type Store interface {
	Reviews() ReviewRepository
	Users() UserRepository
	Close() error
}
