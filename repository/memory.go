package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"main/model"
)

// MemoryStore is the in-memory backend: the mock data source for local
// development and the substrate for unit tests. It satisfies the same Store
// interface as the Mongo repos.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*model.User
	logs  map[string]map[string]*model.DailyLog // user -> date -> log
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*model.User),
		logs:  make(map[string]map[string]*model.DailyLog),
	}
}

func copyUser(u *model.User) *model.User {
	out := *u
	out.RestDaysUsed = copyLedger(u.RestDaysUsed)
	out.CheatMealsUsed = copyLedger(u.CheatMealsUsed)
	out.DessertPassesUsed = copyLedger(u.DessertPassesUsed)
	out.SodaPassesUsed = copyLedger(u.SodaPassesUsed)
	return &out
}

func copyLedger(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyLog(l *model.DailyLog) *model.DailyLog {
	out := *l
	out.Activities = l.Activities.Clone()
	out.Breakdown = append([]string(nil), l.Breakdown...)
	return &out
}

func (s *MemoryStore) GetUser(ctx context.Context, name string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[name]; ok {
		return copyUser(u), nil
	}
	return model.NewUser(name), nil
}

func (s *MemoryStore) PutUser(ctx context.Context, user *model.User) error {
	if user.Name == "" {
		return errors.New("user name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Name] = copyUser(user)
	return nil
}

func (s *MemoryStore) IncrementPoints(ctx context.Context, name string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.ensureUser(name)
	u.Points += delta
	return nil
}

func (s *MemoryStore) ApplyLogDelta(ctx context.Context, name string, points, totalDays, perfectDays int, lastActive string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.ensureUser(name)
	u.Points += points
	u.Stats.TotalDays += totalDays
	u.Stats.PerfectDays += perfectDays
	u.LastActive = lastActive
	return nil
}

func (s *MemoryStore) SetStreaks(ctx context.Context, name string, current, longest int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.ensureUser(name)
	u.Stats.CurrentStreak = current
	u.Stats.LongestStreak = longest
	return nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, copyUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Points != users[j].Points {
			return users[i].Points > users[j].Points
		}
		return users[i].Name < users[j].Name
	})
	return users, nil
}

// ensureUser must be called with the write lock held.
func (s *MemoryStore) ensureUser(name string) *model.User {
	u, ok := s.users[name]
	if !ok {
		u = model.NewUser(name)
		s.users[name] = u
	}
	return u
}

func (s *MemoryStore) GetLog(ctx context.Context, userName, date string) (*model.DailyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.logs[userName][date]; ok {
		return copyLog(l), nil
	}
	return nil, nil
}

func (s *MemoryStore) PutLog(ctx context.Context, log *model.DailyLog) error {
	if log.UserName == "" || log.Date == "" {
		return errors.New("log user name and date are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.logs[log.UserName] == nil {
		s.logs[log.UserName] = make(map[string]*model.DailyLog)
	}
	s.logs[log.UserName][log.Date] = copyLog(log)
	return nil
}

func (s *MemoryStore) ListLogs(ctx context.Context, userName string, limit int64) (map[string]*model.DailyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]string, 0, len(s.logs[userName]))
	for date := range s.logs[userName] {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if limit > 0 && int64(len(dates)) > limit {
		dates = dates[:limit]
	}

	out := make(map[string]*model.DailyLog, len(dates))
	for _, date := range dates {
		out[date] = copyLog(s.logs[userName][date])
	}
	return out, nil
}

func (s *MemoryStore) ListAllLogs(ctx context.Context) (map[string]map[string]*model.DailyLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]*model.DailyLog, len(s.logs))
	for userName, byDate := range s.logs {
		out[userName] = make(map[string]*model.DailyLog, len(byDate))
		for date, l := range byDate {
			out[userName][date] = copyLog(l)
		}
	}
	return out, nil
}
