package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmarlow/course-store/internal/config"
)

var (
	// ErrUnavailable indicates the document store could not be reached
	// within the configured attempt budget
	ErrUnavailable = errors.New("storage unavailable")
)

// Collection names match the schemas the storefront was built against.
const (
	CourseCollection = "Course"
	OrderCollection  = "Order"
)

// Store wraps the Mongo client and database handle for the service.
// It is created once at startup and shared by all repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// dialFunc establishes and verifies a single connection attempt.
// It exists so tests can exercise the retry loop without a live server.
type dialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

func defaultDial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// Connect establishes a connection to the document store, retrying with a
// fixed delay between attempts. The delay does not grow across attempts.
// When every attempt fails the returned error wraps ErrUnavailable and
// carries the last underlying error.
func Connect(ctx context.Context, cfg config.MongoConfig, log *slog.Logger) (*Store, error) {
	return connect(ctx, cfg, log, defaultDial)
}

func connect(ctx context.Context, cfg config.MongoConfig, log *slog.Logger, dial dialFunc) (*Store, error) {
	var lastErr error

	for attempt := 1; attempt <= cfg.ConnectAttempts; attempt++ {
		client, err := dial(ctx, cfg.URI)
		if err == nil {
			log.Info("connected to document store", "database", cfg.Database, "attempt", attempt)
			return &Store{
				client: client,
				db:     client.Database(cfg.Database),
			}, nil
		}

		lastErr = err
		log.Warn("storage connection failed",
			"attempt", attempt,
			"max_attempts", cfg.ConnectAttempts,
			"error", err,
		)

		if attempt < cfg.ConnectAttempts {
			select {
			case <-time.After(cfg.ConnectDelay):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, cfg.ConnectAttempts, lastErr)
}

// Courses returns the course collection handle
func (s *Store) Courses() *mongo.Collection {
	return s.db.Collection(CourseCollection)
}

// Orders returns the order collection handle
func (s *Store) Orders() *mongo.Collection {
	return s.db.Collection(OrderCollection)
}

// Close disconnects from the document store
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
