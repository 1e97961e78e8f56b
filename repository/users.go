package repository

import (
	"context"
	"errors"
	"os"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for UsersRepo
func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("USERS_COLLECTION")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetUser returns the user's aggregate record. Unknown names get a fresh
// zero-valued record, never an error.
func (r *UsersRepo) GetUser(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": name}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.NewUser(name), nil
		}
		return nil, err
	}

	// Older documents may predate some ledgers
	for _, t := range model.PassTypes {
		user.PassLedger(t)
	}
	return &user, nil
}

// PutUser upserts the record with merge semantics: only the record's own
// fields are $set, so concurrent increments on other fields survive.
func (r *UsersRepo) PutUser(ctx context.Context, user *model.User) error {
	if user.Name == "" {
		return errors.New("user name is required")
	}

	update := bson.M{
		"$set": bson.M{
			"points":              user.Points,
			"last_active":         user.LastActive,
			"last_penalty_date":   user.LastPenaltyDate,
			"stats":               user.Stats,
			"rest_days_used":      user.RestDaysUsed,
			"cheat_meals_used":    user.CheatMealsUsed,
			"dessert_passes_used": user.DessertPassesUsed,
			"soda_passes_used":    user.SodaPassesUsed,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": user.Name}, update, opts)
	return err
}

// IncrementPoints adds delta to the user's cumulative points atomically.
func (r *UsersRepo) IncrementPoints(ctx context.Context, name string, delta int) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"points": delta}},
		opts)
	return err
}

// ApplyLogDelta adjusts points, total days and perfect days in one atomic
// write, the way a log submission (or resubmission) changes the aggregates.
func (r *UsersRepo) ApplyLogDelta(ctx context.Context, name string, points, totalDays, perfectDays int, lastActive string) error {
	update := bson.M{
		"$inc": bson.M{
			"points":             points,
			"stats.total_days":   totalDays,
			"stats.perfect_days": perfectDays,
		},
		"$set": bson.M{
			"last_active": lastActive,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": name}, update, opts)
	return err
}

// SetStreaks stores the recomputed streak values.
func (r *UsersRepo) SetStreaks(ctx context.Context, name string, current, longest int) error {
	update := bson.M{
		"$set": bson.M{
			"stats.current_streak": current,
			"stats.longest_streak": longest,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": name}, update, opts)
	return err
}

// ListUsers retrieves every user record, points-descending.
func (r *UsersRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "points", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
