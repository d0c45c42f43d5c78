package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"filesmanager/internal/model"
)

const (
	usersCollection = "users"
	filesCollection = "files"
)

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a UserRepository over the "users" collection.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.D{{Key: "email", Value: email}})
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

type mongoFileRepository struct {
	coll *mongo.Collection
}

// NewMongoFileRepository builds a FileRepository over the "files" collection.
func NewMongoFileRepository(db *mongo.Database) FileRepository {
	return &mongoFileRepository{coll: db.Collection(filesCollection)}
}

func (r *mongoFileRepository) Create(ctx context.Context, file *model.File) error {
	if file.ID == "" {
		file.ID = uuid.New().String()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, file)
	return err
}

func (r *mongoFileRepository) FindByID(ctx context.Context, id string) (*model.File, error) {
	return findOne[model.File](ctx, r.coll, bson.D{{Key: "_id", Value: id}})
}

func (r *mongoFileRepository) FindByIDAndOwner(ctx context.Context, id, userID string) (*model.File, error) {
	return findOne[model.File](ctx, r.coll, bson.D{
		{Key: "_id", Value: id},
		{Key: "userId", Value: userID},
	})
}

func (r *mongoFileRepository) ListByOwner(ctx context.Context, userID, parentID string, offset, limit int) ([]model.File, error) {
	filter := bson.D{
		{Key: "userId", Value: userID},
		{Key: "parentId", Value: parentID},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	files := make([]model.File, 0, limit)
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *mongoFileRepository) UpdateVisibility(ctx context.Context, id string, isPublic bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "isPublic", Value: isPublic}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoFileRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// ensureMongoIndexes creates the indexes the repositories rely on.
func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(filesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "parentId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
