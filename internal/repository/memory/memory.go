// Package memory is an in-process document store. It stands in for the
// remote store in tests and local runs, so it mimics the remote semantics:
// store-generated ids, timestamps resolved at write time, merge upserts.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/repository"
)

var (
	_ repository.Store            = (*Store)(nil)
	_ repository.ReviewRepository = (*reviewRepo)(nil)
	_ repository.UserRepository   = (*userRepo)(nil)
)

type Store struct {
	mu      sync.RWMutex
	now     func() time.Time
	reviews map[string]model.Review
	order   []string // insertion order, so listings are deterministic
	users   map[string]model.UserProfile
}

type Option func(*Store)

// WithClock overrides the server clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:     time.Now,
		reviews: make(map[string]model.Review),
		users:   make(map[string]model.UserProfile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Reviews() repository.ReviewRepository { return (*reviewRepo)(s) }
func (s *Store) Users() repository.UserRepository     { return (*userRepo)(s) }
func (s *Store) Close() error                         { return nil }

// Seed inserts a review exactly as given, timestamps included. Tests use it
// to build documents with missing or out-of-order timestamps.
func (s *Store) Seed(r model.Review) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = xid.New().String()
	}
	if _, exists := s.reviews[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.reviews[r.ID] = r
	return r.ID
}

type reviewRepo Store

func (r *reviewRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]model.Review, error) {
	return r.listWhere(func(rv model.Review) bool { return rv.RestaurantID == restaurantID }), nil
}

func (r *reviewRepo) ListByUser(_ context.Context, userID string) ([]model.Review, error) {
	return r.listWhere(func(rv model.Review) bool { return rv.UserID == userID }), nil
}

func (r *reviewRepo) listWhere(match func(model.Review) bool) []model.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Review, 0)
	for _, id := range r.order {
		if rv, ok := r.reviews[id]; ok && match(rv) {
			out = append(out, rv)
		}
	}
	return out
}

func (r *reviewRepo) GetByID(_ context.Context, id string) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.reviews[id]
	if !ok {
		return nil, apperror.NotFound("Review")
	}
	return &rv, nil
}

func (r *reviewRepo) Create(_ context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = xid.New().String()
	stored := *review
	ts := model.NewTimestamp(r.now())
	stored.CreatedAt, stored.UpdatedAt = ts, ts

	r.reviews[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *reviewRepo) Update(_ context.Context, id string, rating float64, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv, ok := r.reviews[id]
	if !ok {
		return apperror.NotFound("Review")
	}
	rv.Rating = rating
	rv.Comment = comment
	rv.UpdatedAt = model.NewTimestamp(r.now())
	r.reviews[id] = rv
	return nil
}

func (r *reviewRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return apperror.NotFound("Review")
	}
	delete(r.reviews, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type userRepo Store

func (u *userRepo) GetByID(_ context.Context, id string) (*model.UserProfile, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	p, ok := u.users[id]
	if !ok {
		return nil, apperror.NotFound("User")
	}
	return &p, nil
}

func (u *userRepo) Upsert(_ context.Context, id string, fields model.ProfileFields) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	p, exists := u.users[id]
	if !exists {
		p = model.UserProfile{ID: id, CreatedAt: model.NewTimestamp(u.now())}
	}
	if fields.Email != nil {
		p.Email = *fields.Email
	}
	if fields.DisplayName != nil {
		p.DisplayName = *fields.DisplayName
	}
	u.users[id] = p
	return nil
}
