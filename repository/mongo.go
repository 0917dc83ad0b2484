package repository

import (
	"context"
	"fmt"

	"dateme/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Users on top of a MongoDB users collection plus a
// counters collection backing the userID sequence.
type Mongo struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewMongo(users, counters *mongo.Collection) *Mongo {
	return &Mongo{users: users, counters: counters}
}

func (r *Mongo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Mongo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"userID": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Mongo) CountAll(ctx context.Context) (int64, error) {
	return r.users.CountDocuments(ctx, bson.M{})
}

// ListExcluding returns every user except the given one. The password
// hash is excluded in the projection so it never leaves the store.
func (r *Mongo) ListExcluding(ctx context.Context, userID string) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.users.Find(ctx, bson.M{"userID": bson.M{"$ne": userID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Mongo) Insert(ctx context.Context, user *models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	return err
}

func (r *Mongo) AddToLiked(ctx context.Context, ownerID, targetID string) error {
	return r.addToSet(ctx, ownerID, "likedUsers", targetID)
}

func (r *Mongo) AddToDisliked(ctx context.Context, ownerID, targetID string) error {
	return r.addToSet(ctx, ownerID, "dislikedUsers", targetID)
}

func (r *Mongo) addToSet(ctx context.Context, ownerID, field, targetID string) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"userID": ownerID},
		bson.M{"$addToSet": bson.M{field: targetID}},
	)
	return err
}

// NextUserID increments the userID counter and formats the new value.
// The $inc runs server-side, so concurrent registrations each get a
// distinct number.
func (r *Mongo) NextUserID(ctx context.Context) (string, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "userID"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("DM%05d", counter.Seq), nil
}
