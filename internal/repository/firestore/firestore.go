// Package firestore implements the document-store contracts on Cloud
// Firestore, initialised through the Firebase Admin SDK.
//
// Collections:
//
//	reviews/{auto-id}  restaurantId, restaurantName, restaurantImage, userId,
//	                   userName, rating, comment, createdAt, updatedAt
//	users/{userId}     email, displayName, createdAt
//
// createdAt/updatedAt are always written as firestore.ServerTimestamp, so the
// value is resolved by Firestore at commit time.
package firestore

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sakif/restaurant-reviews/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Config selects the Firebase project and service-account credentials.
// Empty fields fall back to Application Default Credentials and the project
// recorded in them.
type Config struct {
	ProjectID       string
	CredentialsFile string
}

// Store owns the Firestore client.
type Store struct {
	client *fs.Client
}

// New initialises a Firebase app and opens its Firestore client.
// Setting FIRESTORE_EMULATOR_HOST in the environment points the client at
// the local emulator instead.
func New(ctx context.Context, cfg Config) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: initialising firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore: opening client: %w", err)
	}

	return &Store{client: client}, nil
}

// NewWithClient wraps an already configured client.
func NewWithClient(client *fs.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Reviews() repository.ReviewRepository {
	return &ReviewCollection{coll: s.client.Collection(repository.ReviewsCollection)}
}

func (s *Store) Users() repository.UserRepository {
	return &UserCollection{coll: s.client.Collection(repository.UsersCollection)}
}

func (s *Store) Close() error {
	return s.client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
