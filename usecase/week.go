package usecase

import (
	"context"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/utils"
)

// ProgressService computes the Monday-anchored view of the current week
// from a user's log history.
type ProgressService struct {
	logs repository.LogStore
	cfg  config.AppConfig

	// Now is overridable in tests; defaults to Costa Rica "today" with the
	// configured dev offset.
	Now func() time.Time
}

func NewProgressService(logs repository.LogStore, cfg config.AppConfig) *ProgressService {
	return &ProgressService{
		logs: logs,
		cfg:  cfg,
		Now:  func() time.Time { return utils.Today(cfg.DayOffset) },
	}
}

// GetWeeklyProgress builds the seven day descriptors for the current week.
//
// A day is failed only when it is strictly in the past, was logged, and the
// log is not perfect. Future days are never failed; neither is today, even
// when logged imperfectly, since today is still editable.
func (svc *ProgressService) GetWeeklyProgress(ctx context.Context, userName string) (*model.WeeklyProgress, error) {
	logs, err := svc.logs.ListLogs(ctx, userName, 0)
	if err != nil {
		return nil, err
	}

	today := svc.Now()
	todayStr := utils.FormatDate(today)
	monday := utils.MondayOf(today)

	progress := &model.WeeklyProgress{
		Week:      utils.WeekKey(today),
		Days:      make([]model.WeekDay, 0, 7),
		TotalDays: 7,
	}

	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		dateStr := utils.FormatDate(date)

		log := logs[dateStr]
		completed := log != nil
		perfect := log.Perfect()
		isToday := dateStr == todayStr

		day := model.WeekDay{
			Date:      dateStr,
			DayName:   utils.ShortDayName(date),
			Completed: completed,
			Perfect:   perfect,
			IsToday:   isToday,
			IsFuture:  dateStr > todayStr,
			Failed:    dateStr < todayStr && !isToday && completed && !perfect,
		}
		progress.Days = append(progress.Days, day)

		if day.Completed {
			progress.CompletedDays++
		}
		if day.Perfect {
			progress.PerfectDays++
		}
		if day.Failed {
			progress.HasFailedDay = true
		}
	}

	progress.IsComplete = progress.PerfectDays == 7 && !progress.HasFailedDay
	progress.IsFailed = progress.HasFailedDay
	return progress, nil
}

// IsWeekComplete reports whether the current week is already perfect.
func (svc *ProgressService) IsWeekComplete(ctx context.Context, userName string) (bool, error) {
	progress, err := svc.GetWeeklyProgress(ctx, userName)
	if err != nil {
		return false, err
	}
	return progress.IsComplete && progress.PerfectDays == 7, nil
}

// IsWeekCompleteWithToday reports whether submitting the proposed activities
// for today would close out a perfect week: the proposal itself must be
// perfect and the other six days of the week must already be perfect.
func (svc *ProgressService) IsWeekCompleteWithToday(ctx context.Context, userName string, proposed model.Activities) (bool, error) {
	if !proposed.Perfect() {
		return false, nil
	}

	progress, err := svc.GetWeeklyProgress(ctx, userName)
	if err != nil {
		return false, err
	}

	perfectOthers := 0
	for _, day := range progress.Days {
		if !day.IsToday && day.Perfect {
			perfectOthers++
		}
	}
	return perfectOthers == 6, nil
}
