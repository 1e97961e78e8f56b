package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LogsRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for LogsRepo
func GetLogsRepo(client *mongo.Client) *LogsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("LOGS_COLLECTION")
	return &LogsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// logID builds the document id, one per (user, civil day).
func logID(userName, date string) string {
	return fmt.Sprintf("%s_%s", userName, date)
}

// GetLog returns the log for (user, date), or (nil, nil) when absent.
func (r *LogsRepo) GetLog(ctx context.Context, userName, date string) (*model.DailyLog, error) {
	var log model.DailyLog
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": logID(userName, date)}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// PutLog upserts the day's log.
func (r *LogsRepo) PutLog(ctx context.Context, log *model.DailyLog) error {
	if log.UserName == "" || log.Date == "" {
		return errors.New("log user name and date are required")
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"_id": logID(log.UserName, log.Date)},
		log,
		opts)
	return err
}

// ListLogs retrieves up to limit most recent logs for the user, keyed by date.
// A limit of 0 means no limit.
func (r *LogsRepo) ListLogs(ctx context.Context, userName string, limit int64) (map[string]*model.DailyLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_name": userName}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := make(map[string]*model.DailyLog)
	for cursor.Next(ctx) {
		var log model.DailyLog
		if err := cursor.Decode(&log); err != nil {
			return nil, err
		}
		logs[log.Date] = &log
	}
	return logs, cursor.Err()
}

// ListAllLogs retrieves every log, grouped by user then date.
func (r *LogsRepo) ListAllLogs(ctx context.Context) (map[string]map[string]*model.DailyLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	logs := make(map[string]map[string]*model.DailyLog)
	for cursor.Next(ctx) {
		var log model.DailyLog
		if err := cursor.Decode(&log); err != nil {
			return nil, err
		}
		if logs[log.UserName] == nil {
			logs[log.UserName] = make(map[string]*model.DailyLog)
		}
		logs[log.UserName][log.Date] = &log
	}
	return logs, cursor.Err()
}
