package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mebella/catalog-api/internal/config"
)

// ErrUnavailable is returned by every operation when no store connection
// exists. Callers must surface it, never treat it as an empty result.
var ErrUnavailable = errors.New("document store is not available")

// ErrNoDocuments reports that a single-document lookup matched nothing.
var ErrNoDocuments = mongo.ErrNoDocuments

// Store wraps a MongoDB database as a generic document store offering
// insert/find/count over named collections.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	urlSet bool
}

// Connect establishes the store connection. It never fails the process:
// a missing URL or an unreachable server yields an unavailable store whose
// operations all return ErrUnavailable.
func Connect(ctx context.Context, cfg config.Mongo, logger *slog.Logger) *Store {
	s := &Store{urlSet: cfg.URL != ""}

	if cfg.URL == "" {
		logger.WarnContext(ctx, "DATABASE_URL is not set, document store disabled")
		return s
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		logger.WarnContext(ctx, "error connecting to document store", slog.Any("error", err))
		return s
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		logger.WarnContext(ctx, "error pinging document store", slog.Any("error", err))
		//nolint:errcheck
		client.Disconnect(ctx)
		return s
	}

	s.client = client
	s.db = client.Database(cfg.DB)
	return s
}

// Available reports whether a usable connection exists.
func (s *Store) Available() bool {
	return s.db != nil
}

// URLConfigured reports whether a connection string was supplied at startup.
func (s *Store) URLConfigured() bool {
	return s.urlSet
}

// Name returns the database name, or an empty string when unavailable.
func (s *Store) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

// Insert persists a document into the named collection and returns the
// store-assigned identifier in string form.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Find decodes up to limit documents matching filter into results, in the
// store's natural order.
func (s *Store) Find(ctx context.Context, collection string, filter any, limit int64, results any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode documents from %s: %w", collection, err)
	}
	return nil
}

// FindOne decodes a single document matching filter into result. Returns
// ErrNoDocuments when nothing matches.
func (s *Store) FindOne(ctx context.Context, collection string, filter any, result any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	if err := s.db.Collection(collection).FindOne(ctx, filter).Decode(result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

// Count returns the number of documents matching filter.
func (s *Store) Count(ctx context.Context, collection string, filter any) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count in %s: %w", collection, err)
	}
	return count, nil
}

// Collections lists the collection names of the underlying database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collection names: %w", err)
	}
	return names, nil
}

// Disconnect closes the underlying connection if one exists.
func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
