package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	defaultDatabase = "vendra"
	collectionName  = "order_logs"
	dialTimeout     = 10 * time.Second
)

// MongoStore is the production cold store: one document per archived order
// in the order_logs collection, unique on order_id.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ LogStore = (*MongoStore)(nil)

// NewMongoStore wraps a connected client and ensures the order_id index.
func NewMongoStore(ctx context.Context, client *mongo.Client, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}
	coll := client.Database(database).Collection(collectionName)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure order_id index: %w", err)
	}
	return &MongoStore{client: client, collection: coll}, nil
}

// Dial connects to the cold store, verifies the connection, and returns a
// ready store. The caller owns the connection and should Close it on
// shutdown.
func Dial(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cold store: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping cold store: %w", err)
	}
	return NewMongoStore(ctx, client, database)
}

// Save upserts the document keyed by order_id.
func (s *MongoStore) Save(ctx context.Context, log *OrderLog) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"order_id": log.OrderID}, log, opts)
	if err != nil {
		return fmt.Errorf("failed to save order log %s: %w", log.OrderID, err)
	}
	return nil
}

// Get returns one archived order.
func (s *MongoStore) Get(ctx context.Context, orderID string) (*OrderLog, error) {
	var doc OrderLog
	err := s.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order log %s: %w", orderID, err)
	}
	return &doc, nil
}

// ListForBusiness returns a tenant's archived orders, newest first.
func (s *MongoStore) ListForBusiness(ctx context.Context, businessID string, limit, offset int) ([]*OrderLog, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "archived_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := s.collection.Find(ctx, bson.M{"business_id": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list order logs: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []*OrderLog
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode order logs: %w", err)
	}
	return docs, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
