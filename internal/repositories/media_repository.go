package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jskang/quillpress/backend/internal/models"
)

// MediaRepository defines the interface for media metadata operations.
// Media rows are never updated in place: they are created when an upload
// completes and deleted when the object goes away.
type MediaRepository interface {
	Exists(ctx context.Context, mediaID string) (bool, error)
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, mediaID string) (*models.Media, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Media, error)
	ListAll(ctx context.Context) ([]models.Media, error)
	Delete(ctx context.Context, mediaID string) error
}

// MongoMediaRepository implements MediaRepository for MongoDB
type MongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new MongoMediaRepository
func NewMongoMediaRepository(db *mongo.Database, collection string) *MongoMediaRepository {
	return &MongoMediaRepository{collection: db.Collection(collection)}
}

// EnsureIndexes creates the owner index backing ListByUserID.
func (r *MongoMediaRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

// Exists performs a single point lookup by primary key
func (r *MongoMediaRepository) Exists(ctx context.Context, mediaID string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.collection.FindOne(ctx, bson.M{"_id": mediaID}, opts).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the media row; a duplicate primary key surfaces as
// models.ErrConflict.
func (r *MongoMediaRepository) Create(ctx context.Context, media *models.Media) error {
	media.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, media)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrConflict
	}
	return err
}

// GetByID retrieves a media row by primary key
func (r *MongoMediaRepository) GetByID(ctx context.Context, mediaID string) (*models.Media, error) {
	var media models.Media
	err := r.collection.FindOne(ctx, bson.M{"_id": mediaID}).Decode(&media)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// ListByUserID queries the owner index
func (r *MongoMediaRepository) ListByUserID(ctx context.Context, userID string) ([]models.Media, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	media := []models.Media{}
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// ListAll scans the whole collection
func (r *MongoMediaRepository) ListAll(ctx context.Context) ([]models.Media, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	media := []models.Media{}
	if err = cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// Delete removes a media row by primary key
func (r *MongoMediaRepository) Delete(ctx context.Context, mediaID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": mediaID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
