package usecase

import (
	"context"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/utils"
)

// StreakService computes consecutive perfect-day streaks over a user's
// full log history.
type StreakService struct {
	logs repository.LogStore
	cfg  config.AppConfig

	Now func() time.Time
}

func NewStreakService(logs repository.LogStore, cfg config.AppConfig) *StreakService {
	return &StreakService{
		logs: logs,
		cfg:  cfg,
		Now:  func() time.Time { return utils.Today(cfg.DayOffset) },
	}
}

// CalculateUserStreak returns the current streak (perfect days counted
// backward from today, stopping at the first missing or imperfect day) and
// the longest streak over the whole logged span. Gaps between logs break
// streaks: the scan walks every calendar day from the earliest to the
// latest logged date, not just the logged ones.
func (svc *StreakService) CalculateUserStreak(ctx context.Context, userName string) (*model.StreakResult, error) {
	logs, err := svc.logs.ListLogs(ctx, userName, 0)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return &model.StreakResult{}, nil
	}

	result := &model.StreakResult{}

	// Current streak: today counts only if already perfect.
	for day := svc.Now(); ; day = day.AddDate(0, 0, -1) {
		if !logs[utils.FormatDate(day)].Perfect() {
			break
		}
		result.CurrentStreak++
	}

	var earliest, latest string
	for date := range logs {
		if earliest == "" || date < earliest {
			earliest = date
		}
		if date > latest {
			latest = date
		}
	}

	start, err := utils.ParseDate(earliest)
	if err != nil {
		return nil, err
	}

	run := 0
	for day := start; utils.FormatDate(day) <= latest; day = day.AddDate(0, 0, 1) {
		if logs[utils.FormatDate(day)].Perfect() {
			run++
			if run > result.LongestStreak {
				result.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	return result, nil
}
