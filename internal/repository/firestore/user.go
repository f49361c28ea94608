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

var _ repository.UserRepository = (*UserCollection)(nil)

type userDoc struct {
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

func (d userDoc) toModel(id string) model.UserProfile {
	return model.UserProfile{
		ID:          id,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		CreatedAt:   model.NewTimestamp(d.CreatedAt),
	}
}

// profileData holds only the supplied fields, so a MergeAll set leaves the
// others alone.
func profileData(fields model.ProfileFields) map[string]interface{} {
	data := make(map[string]interface{}, 3)
	if fields.Email != nil {
		data["email"] = *fields.Email
	}
	if fields.DisplayName != nil {
		data["displayName"] = *fields.DisplayName
	}
	return data
}

// UserCollection is the users collection, keyed by caller-supplied id.
type UserCollection struct {
	coll *fs.CollectionRef
}

func (c *UserCollection) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	ref := c.coll.Doc(id)
	if ref == nil {
		return nil, apperror.NotFound("User")
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("User")
		}
		return nil, fmt.Errorf("firestore: getting user %s: %w", id, err)
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore: decoding user %s: %w", id, err)
	}
	u := doc.toModel(snap.Ref.ID)
	return &u, nil
}

// Upsert reads the document once to learn whether it exists, then merges.
// createdAt is only added for a new document. Two first-time upserts racing
// on the same id both write createdAt; the later commit wins.
func (c *UserCollection) Upsert(ctx context.Context, id string, fields model.ProfileFields) error {
	ref := c.coll.Doc(id)
	if ref == nil {
		return apperror.ValidationFailed("userId", "Invalid user id")
	}

	data := profileData(fields)

	_, err := ref.Get(ctx)
	switch {
	case isNotFound(err):
		data["createdAt"] = fs.ServerTimestamp
	case err != nil:
		return fmt.Errorf("firestore: checking user %s: %w", id, err)
	case len(data) == 0:
		return nil
	}

	if _, err := ref.Set(ctx, data, fs.MergeAll); err != nil {
		return fmt.Errorf("firestore: upserting user %s: %w", id, err)
	}
	return nil
}
