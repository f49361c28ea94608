package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
)

// =========================================================================
// FAKE REPOSITORIES
// =========================================================================
//
// Hand-written fakes keep the tests readable: every behaviour the service
// relies on is visible right here. Set the *Err fields to simulate a store
// outage.

type fakeReviewRepo struct {
	reviews map[string]model.Review
	order   []string
	nextID  int
	writes  int // Create/Update/Delete calls that reached the store

	listErr   error
	createErr error
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]model.Review)}
}

func (f *fakeReviewRepo) put(r model.Review) {
	if _, ok := f.reviews[r.ID]; !ok {
		f.order = append(f.order, r.ID)
	}
	f.reviews[r.ID] = r
}

func (f *fakeReviewRepo) list(match func(model.Review) bool) ([]model.Review, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.Review{}
	for _, id := range f.order {
		if r, ok := f.reviews[id]; ok && match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.Review, error) {
	return f.list(func(r model.Review) bool { return r.RestaurantID == restaurantID })
}

func (f *fakeReviewRepo) ListByUser(_ context.Context, userID string) ([]model.Review, error) {
	return f.list(func(r model.Review) bool { return r.UserID == userID })
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*model.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, apperror.NotFound("Review")
	}
	return &r, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, r *model.Review) error {
	f.writes++
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	r.ID = fmt.Sprintf("review-%d", f.nextID)
	stored := *r
	stored.CreatedAt = &model.Timestamp{Seconds: int64(1000 + f.nextID)}
	stored.UpdatedAt = stored.CreatedAt
	f.put(stored)
	return nil
}

func (f *fakeReviewRepo) Update(_ context.Context, id string, rating float64, comment string) error {
	f.writes++
	r, ok := f.reviews[id]
	if !ok {
		return apperror.NotFound("Review")
	}
	r.Rating, r.Comment = rating, comment
	f.reviews[id] = r
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	f.writes++
	if _, ok := f.reviews[id]; !ok {
		return apperror.NotFound("Review")
	}
	delete(f.reviews, id)
	return nil
}

type fakeUserRepo struct {
	users     map[string]model.UserProfile
	clock     int64
	upsertErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.UserProfile), clock: 100}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.UserProfile, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	return &u, nil
}

func (f *fakeUserRepo) Upsert(_ context.Context, id string, fields model.ProfileFields) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.clock++
	u, ok := f.users[id]
	if !ok {
		u = model.UserProfile{ID: id, CreatedAt: &model.Timestamp{Seconds: f.clock}}
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.DisplayName != nil {
		u.DisplayName = *fields.DisplayName
	}
	f.users[id] = u
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
