package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/squarespiral/pkg/cache"
	"github.com/matzehuels/squarespiral/pkg/errors"
	"github.com/matzehuels/squarespiral/pkg/layout"
)

// Mongo defaults.
const (
	DefaultMongoDatabase   = "squarespiral"
	DefaultMongoCollection = "layouts"
)

// MongoOptions configures a [MongoStore].
type MongoOptions struct {
	URI        string
	Database   string // default: DefaultMongoDatabase
	Collection string // default: DefaultMongoCollection
}

// MongoStore stores layouts as documents keyed by their ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects, pings with retry, and ensures the created_at index.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo store needs a URI")
	}
	if opts.Database == "" {
		opts.Database = DefaultMongoDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultMongoCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	err = cache.RetryWithBackoff(ctx, func() error {
		return cache.Retryable(client.Ping(ctx, readpref.Primary()))
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}
	_, err = s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create index: %w", err)
	}
	return s, nil
}

func (s *MongoStore) Save(ctx context.Context, l *layout.Layout) error {
	prepare(l)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": l.ID}, l, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save layout %s", l.ID)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (layout.Layout, error) {
	if err := errors.ValidateLayoutID(id); err != nil {
		return layout.Layout{}, err
	}
	var l layout.Layout
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return layout.Layout{}, notFound(id)
	}
	if err != nil {
		return layout.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "get layout %s", id)
	}
	l.CreatedAt = l.CreatedAt.UTC()
	return l, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateLayoutID(id); err != nil {
		return err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete layout %s", id)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// mongoSummary is the projection List decodes.
type mongoSummary struct {
	ID        string    `bson:"_id"`
	MaxValue  float64   `bson:"max_value"`
	CreatedAt time.Time `bson:"created_at"`
	Count     int       `bson:"count"`
}

func (s *MongoStore) List(ctx context.Context, limit int) ([]Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: normalizeLimit(limit)}},
		{{Key: "$project", Value: bson.D{
			{Key: "max_value", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "count", Value: bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$squares", bson.A{}}}}}}},
		}}},
	}
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list layouts")
	}
	defer cur.Close(ctx)

	var docs []mongoSummary
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode layouts")
	}
	out := make([]Summary, len(docs))
	for i, d := range docs {
		out[i] = Summary{ID: d.ID, Count: d.Count, MaxValue: d.MaxValue, CreatedAt: d.CreatedAt.UTC()}
	}
	return out, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
