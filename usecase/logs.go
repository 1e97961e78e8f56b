package usecase

import (
	"context"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/utils"
)

// LogsService owns the submission flow: validate, apply pass overrides,
// decide the weekly bonus, score, persist the log, and adjust the user's
// aggregates by the delta against any previous entry for the same day.
type LogsService struct {
	users  repository.UserStore
	logs   repository.LogStore
	cfg    config.AppConfig
	roster map[string]config.UserConfig

	progress *ProgressService
	streaks  *StreakService
	passes   *PassService

	Now func() time.Time
}

func NewLogsService(users repository.UserStore, logs repository.LogStore, cfg config.AppConfig, roster map[string]config.UserConfig) *LogsService {
	return &LogsService{
		users:    users,
		logs:     logs,
		cfg:      cfg,
		roster:   roster,
		progress: NewProgressService(logs, cfg),
		streaks:  NewStreakService(logs, cfg),
		passes:   NewPassService(users, cfg),
		Now:      func() time.Time { return utils.Today(cfg.DayOffset) },
	}
}

// SubmitInput is one day's report as received from the boundary, already
// shape-validated but not yet business-validated.
type SubmitInput struct {
	UserName    string
	Date        string // empty means today
	Activities  model.Activities
	DailyBonus  bool
	RestDay     bool
	CheatMeal   bool
	DessertPass bool
	SodaPass    bool
	LatePenalty bool
}

func (in *SubmitInput) passMap() map[model.PassType]bool {
	return map[model.PassType]bool{
		model.PassRestDay:     in.RestDay,
		model.PassCheatMeal:   in.CheatMeal,
		model.PassDessertPass: in.DessertPass,
		model.PassSodaPass:    in.SodaPass,
	}
}

func (svc *LogsService) validate(in *SubmitInput) (config.UserConfig, error) {
	userCfg, ok := svc.roster[in.UserName]
	if !ok {
		return config.UserConfig{}, ErrUserNotConfigured
	}
	if !in.Activities.Valid() {
		return config.UserConfig{}, ErrInvalidActivitySet
	}
	return userCfg, nil
}

// PreviewPoints scores the submission without persisting anything. The
// weekly bonus is provisional: it assumes the proposal would be submitted
// for today.
func (svc *LogsService) PreviewPoints(ctx context.Context, in *SubmitInput) (*ScoreResult, error) {
	userCfg, err := svc.validate(in)
	if err != nil {
		return nil, err
	}

	effective := ApplyPassOverrides(in.Activities, in.passMap())
	weeklyBonus, err := svc.progress.IsWeekCompleteWithToday(ctx, in.UserName, effective)
	if err != nil {
		return nil, err
	}

	result := CalculatePoints(svc.cfg, effective, userCfg.PersonalChallenge, in.DailyBonus, weeklyBonus, in.LatePenalty)
	return &result, nil
}

// SubmitDailyLog stores the day's report. Resubmitting the same day
// overwrites the previous log and adjusts the user's points, total days and
// perfect days by the difference only. Streaks are recomputed from history
// afterwards.
func (svc *LogsService) SubmitDailyLog(ctx context.Context, in *SubmitInput) (*model.DailyLog, error) {
	userCfg, err := svc.validate(in)
	if err != nil {
		return nil, err
	}

	now := svc.Now()
	today := utils.FormatDate(now)
	date := in.Date
	if date == "" {
		date = today
	}

	effective := ApplyPassOverrides(in.Activities, in.passMap())

	// The weekly bonus can only be decided for today: it marks the log
	// that closes out the perfect week. Backfilled days never earn it.
	weeklyBonus := false
	if date == today {
		weeklyBonus, err = svc.progress.IsWeekCompleteWithToday(ctx, in.UserName, effective)
		if err != nil {
			return nil, err
		}
	}

	score := CalculatePoints(svc.cfg, effective, userCfg.PersonalChallenge, in.DailyBonus, weeklyBonus, in.LatePenalty)

	previous, err := svc.logs.GetLog(ctx, in.UserName, date)
	if err != nil {
		return nil, err
	}

	logEntry := &model.DailyLog{
		UserName:     in.UserName,
		Date:         date,
		Activities:   effective,
		DailyBonus:   in.DailyBonus,
		WeeklyBonus:  weeklyBonus,
		RestDay:      in.RestDay,
		CheatMeal:    in.CheatMeal,
		DessertPass:  in.DessertPass,
		SodaPass:     in.SodaPass,
		LatePenalty:  in.LatePenalty,
		PointsEarned: score.Points,
		Breakdown:    score.Breakdown,
		Timestamp:    now,
	}

	if err := svc.logs.PutLog(ctx, logEntry); err != nil {
		return nil, err
	}

	pointsDelta := score.Points
	totalDaysDelta := 1
	perfectDaysDelta := 0
	if effective.Perfect() {
		perfectDaysDelta = 1
	}
	if previous != nil {
		pointsDelta = score.Points - previous.PointsEarned
		totalDaysDelta = 0
		if previous.Perfect() {
			perfectDaysDelta--
		}
	}

	if err := svc.users.ApplyLogDelta(ctx, in.UserName, pointsDelta, totalDaysDelta, perfectDaysDelta, date); err != nil {
		return nil, err
	}

	// Record consumed passes against the log's week, once each. The ledger
	// write is idempotent, so a resubmission cannot double-consume.
	if logDay, err := utils.ParseDate(date); err == nil {
		week := utils.WeekKey(logDay)
		for passType, used := range in.passMap() {
			if !used {
				continue
			}
			if err := svc.passes.UpdateFreePass(ctx, in.UserName, passType, week); err != nil {
				return nil, err
			}
		}
	}

	streaks, err := svc.streaks.CalculateUserStreak(ctx, in.UserName)
	if err != nil {
		return nil, err
	}
	if err := svc.users.SetStreaks(ctx, in.UserName, streaks.CurrentStreak, streaks.LongestStreak); err != nil {
		return nil, err
	}

	return logEntry, nil
}

// HasLoggedToday reports whether the user already has a log for today.
func (svc *LogsService) HasLoggedToday(ctx context.Context, userName string) (bool, error) {
	logEntry, err := svc.logs.GetLog(ctx, userName, utils.FormatDate(svc.Now()))
	if err != nil {
		return false, err
	}
	return logEntry != nil, nil
}

// GetUserLogs returns up to limit recent logs for the user, keyed by date.
func (svc *LogsService) GetUserLogs(ctx context.Context, userName string, limit int64) (map[string]*model.DailyLog, error) {
	if _, ok := svc.roster[userName]; !ok {
		return nil, ErrUserNotConfigured
	}
	return svc.logs.ListLogs(ctx, userName, limit)
}
