package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jskang/quillpress/backend/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Exists(ctx context.Context, postID string) (bool, error)
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListByUserID(ctx context.Context, userID string) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, postID string, patch models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database, collection string) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(collection)}
}

// EnsureIndexes creates the owner index backing ListByUserID.
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

// Exists performs a single point lookup by primary key. Store errors are
// propagated unchanged; the caller decides how to surface them.
func (r *MongoPostRepository) Exists(ctx context.Context, postID string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}, opts).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the post, stamping both timestamps. The unique _id makes
// the insert itself the duplicate check, so two creators racing on the same
// id cannot both win.
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, post)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrConflict
	}
	return err
}

// GetByID retrieves a post by primary key
func (r *MongoPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByUserID queries the owner index. A user with no posts yields an
// empty slice, not an error.
func (r *MongoPostRepository) ListByUserID(ctx context.Context, userID string) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAll scans the whole collection. No pagination: the target dataset is
// a single person's posts.
func (r *MongoPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Update applies only the patch fields present, always refreshes
// updated_at, and returns the post-update document in one round trip.
func (r *MongoPostRepository) Update(ctx context.Context, postID string, patch models.UpdatePostRequest) (*models.Post, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, bson.M{"$set": set}, opts).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post by primary key. Deletion is physical.
func (r *MongoPostRepository) Delete(ctx context.Context, postID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
