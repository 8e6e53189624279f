package adinfra

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abraxas-365/medjobb/recruitment/ad"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// createdAtField is the bson name of ad.Ad.CreatedAt
const createdAtField = "created_at"

// newestFirst orders the listing and backs its index
var newestFirst = bson.D{{Key: createdAtField, Value: -1}}

// MongoAdRepository implements ad.Repository over one MongoDB collection
type MongoAdRepository struct {
	coll *mongo.Collection
}

// NewMongoAdRepository creates a new MongoDB ad repository
func NewMongoAdRepository(db *mongo.Database, collection string) *MongoAdRepository {
	return &MongoAdRepository{
		coll: db.Collection(collection),
	}
}

// EnsureIndexes creates the index backing the newest-first listing
func (r *MongoAdRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: newestFirst,
	})
	if err != nil {
		return fmt.Errorf("failed to create ads index: %w", err)
	}
	return nil
}

// Create inserts the ad
func (r *MongoAdRepository) Create(ctx context.Context, a *ad.Ad) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ad.ErrAlreadyExists().WithDetail("id", a.ID.String())
		}
		return mapMongoError(err, "failed to insert ad")
	}
	return nil
}

// List returns every ad sorted by created_at descending
func (r *MongoAdRepository) List(ctx context.Context) ([]ad.Ad, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, listOptions())
	if err != nil {
		return nil, mapMongoError(err, "failed to list ads")
	}
	defer cursor.Close(ctx)

	ads := make([]ad.Ad, 0)
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, mapMongoError(err, "failed to decode ads")
	}
	return ads, nil
}

func listOptions() *options.FindOptionsBuilder {
	return options.Find().SetSort(newestFirst)
}

func mapMongoError(err error, msg string) error {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) || errors.Is(err, context.DeadlineExceeded) {
		return ad.ErrStoreUnavailable().WithCause(fmt.Errorf("%s: %w", msg, err))
	}
	return fmt.Errorf("%s: %w", msg, err)
}
