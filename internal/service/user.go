package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
	"github.com/sakif/restaurant-reviews/internal/repository"
)

// UserService manages user profiles. Profiles are keyed by the id the
// client's identity provider issued, and are never deleted here.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the stored profile or apperror.NotFound("User").
func (s *UserService) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.repo.GetByID(ctx, userID)
}

// Upsert creates the profile or merges the supplied fields into it.
// The response holds only what this call wrote.
func (s *UserService) Upsert(ctx context.Context, userID string, fields model.ProfileFields) (*model.ProfileWrite, error) {
	if userID == "" {
		return nil, apperror.ValidationFailed("userId", "userId is required")
	}

	if err := s.repo.Upsert(ctx, userID, fields); err != nil {
		s.logger.Error("failed to upsert user",
			slog.String("userId", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("upserting user %s: %w", userID, err)
	}

	s.logger.Info("user profile saved", slog.String("userId", userID))
	return &model.ProfileWrite{
		ID:          userID,
		Email:       fields.Email,
		DisplayName: fields.DisplayName,
	}, nil
}
