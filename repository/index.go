package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logsCollection := db.Collection(utils.GetEnvAsString("LOGS_COLLECTION", "dailyLogs"))
	usersCollection := db.Collection(utils.GetEnvAsString("USERS_COLLECTION", "users"))

	logIndexes := []mongo.IndexModel{
		// History queries: a user's logs newest first
		{
			Keys: bson.D{
				{Key: "user_name", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("user_logs_date").
				SetUnique(false),
		},
		// Global history, newest first
		{
			Keys: bson.D{{Key: "date", Value: -1}},
			Options: options.Index().
				SetName("logs_date"),
		},
	}

	userIndexes := []mongo.IndexModel{
		// Leaderboard ordering
		{
			Keys: bson.D{{Key: "points", Value: -1}},
			Options: options.Index().
				SetName("users_points"),
		},
	}

	if _, err := logsCollection.Indexes().CreateMany(ctx, logIndexes); err != nil {
		return fmt.Errorf("failed to create log indexes: %w", err)
	}
	log.Println("Created daily log indexes")

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	log.Println("Created user indexes")

	return nil
}
