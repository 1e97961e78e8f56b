package usecase

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/utils"
)

// StatsService aggregates leaderboard and participant statistics.
type StatsService struct {
	users  repository.UserStore
	logs   repository.LogStore
	cfg    config.AppConfig
	roster map[string]config.UserConfig

	Now func() time.Time
}

func NewStatsService(users repository.UserStore, logs repository.LogStore, cfg config.AppConfig, roster map[string]config.UserConfig) *StatsService {
	return &StatsService{
		users:  users,
		logs:   logs,
		cfg:    cfg,
		roster: roster,
		Now:    func() time.Time { return utils.Today(cfg.DayOffset) },
	}
}

// GetLeaderboard ranks all participants by cumulative points, descending.
// Ties keep the store's order.
func (svc *StatsService) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	users, err := svc.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, model.LeaderboardEntry{
			Name:          u.Name,
			Points:        u.Points,
			TotalDays:     u.Stats.TotalDays,
			CurrentStreak: u.Stats.CurrentStreak,
			LastActive:    u.LastActive,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries, nil
}

// GetUserStats reports the user's totals plus the last seven civil days of
// logs. Completion rate is perfect days over total days, as a rounded
// percentage, zero when nothing was logged yet.
func (svc *StatsService) GetUserStats(ctx context.Context, userName string) (*model.UserStatsReport, error) {
	user, err := svc.users.GetUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	logs, err := svc.logs.ListLogs(ctx, userName, 7)
	if err != nil {
		return nil, err
	}

	today := svc.Now()
	last7 := make([]model.DayLogRef, 0, 7)
	for i := 6; i >= 0; i-- {
		date := utils.FormatDate(today.AddDate(0, 0, -i))
		last7 = append(last7, model.DayLogRef{Date: date, Log: logs[date]})
	}

	rate := 0
	if user.Stats.TotalDays > 0 {
		rate = int(math.Round(float64(user.Stats.PerfectDays) / float64(user.Stats.TotalDays) * 100))
	}

	return &model.UserStatsReport{
		UserName:       userName,
		TotalPoints:    user.Points,
		TotalDays:      user.Stats.TotalDays,
		PerfectDays:    user.Stats.PerfectDays,
		CurrentStreak:  user.Stats.CurrentStreak,
		LongestStreak:  user.Stats.LongestStreak,
		CompletionRate: rate,
		Last7Days:      last7,
	}, nil
}

// GetGroupStats builds the dashboard header: challenge day number, how many
// roster members reported today, and the current leader.
func (svc *StatsService) GetGroupStats(ctx context.Context) (*model.GroupStats, error) {
	today := svc.Now()
	todayStr := utils.FormatDate(today)

	stats := &model.GroupStats{
		TotalUsers:  len(svc.roster),
		PrizeAmount: svc.cfg.PrizeAmount,
	}

	if start, err := utils.ParseDate(svc.cfg.StartDate); err == nil {
		stats.ChallengeDay = int(today.Sub(start).Hours() / 24)
	}

	for name := range svc.roster {
		user, err := svc.users.GetUser(ctx, name)
		if err != nil {
			return nil, err
		}
		stats.TotalPoints += user.Points

		logEntry, err := svc.logs.GetLog(ctx, name, todayStr)
		if err != nil {
			return nil, err
		}
		if logEntry != nil {
			stats.TodayCompleted++
		}
	}

	leaderboard, err := svc.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if len(leaderboard) > 0 {
		stats.LeaderName = leaderboard[0].Name
		stats.LeaderPoints = leaderboard[0].Points
	}

	return stats, nil
}

// HistoryEntry is one flattened row of the cross-user history view.
type HistoryEntry struct {
	UserName string          `json:"user_name"`
	Date     string          `json:"date"`
	Log      *model.DailyLog `json:"log"`
}

// GetHistory flattens all logs date-descending, optionally filtered to one
// user and to the last N days.
func (svc *StatsService) GetHistory(ctx context.Context, userFilter string, days int) ([]HistoryEntry, error) {
	allLogs, err := svc.logs.ListAllLogs(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := ""
	if days > 0 {
		cutoff = utils.FormatDate(svc.Now().AddDate(0, 0, -days))
	}

	entries := make([]HistoryEntry, 0)
	for userName, byDate := range allLogs {
		if userFilter != "" && userFilter != userName {
			continue
		}
		for date, logEntry := range byDate {
			if cutoff != "" && date < cutoff {
				continue
			}
			entries = append(entries, HistoryEntry{UserName: userName, Date: date, Log: logEntry})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].UserName < entries[j].UserName
	})
	return entries, nil
}

// SubscribeToLeaderboard polls the leaderboard on the given interval and
// invokes the callback with each snapshot. The returned function stops the
// subscription; calling it more than once is safe.
func (svc *StatsService) SubscribeToLeaderboard(interval time.Duration, callback func([]model.LeaderboardEntry)) func() {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				leaderboard, err := svc.GetLeaderboard(context.Background())
				if err != nil {
					log.Printf("Leaderboard subscription refresh failed: %v", err)
					continue
				}
				callback(leaderboard)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
