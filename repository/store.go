package repository

import (
	"context"

	"main/model"
)

// LogStore is the persistence surface for daily logs. GetLog returns
// (nil, nil) when no log exists for the day; PutLog upserts the (user, date)
// document.
type LogStore interface {
	GetLog(ctx context.Context, userName, date string) (*model.DailyLog, error)
	PutLog(ctx context.Context, log *model.DailyLog) error
	ListLogs(ctx context.Context, userName string, limit int64) (map[string]*model.DailyLog, error)
	ListAllLogs(ctx context.Context) (map[string]map[string]*model.DailyLog, error)
}

// UserStore is the persistence surface for user aggregates. GetUser returns
// a zero-valued record instead of "not found" so callers never special-case
// first-time users. Point and stat changes go through delta increments so
// concurrent writers (a submission racing the midnight penalizer) cannot
// lose updates.
type UserStore interface {
	GetUser(ctx context.Context, name string) (*model.User, error)
	// PutUser saves the record with merge semantics: fields of the given
	// record overwrite, unrelated concurrent increments are not clobbered.
	PutUser(ctx context.Context, user *model.User) error
	IncrementPoints(ctx context.Context, name string, delta int) error
	// ApplyLogDelta adjusts the aggregates touched by a log submission in
	// one atomic write.
	ApplyLogDelta(ctx context.Context, name string, points, totalDays, perfectDays int, lastActive string) error
	SetStreaks(ctx context.Context, name string, current, longest int) error
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// Store bundles both surfaces; the Mongo and in-memory backends satisfy it.
type Store interface {
	LogStore
	UserStore
}
