package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/utils"
)

// PenalizeService is the unreported-day batch job. It runs right after the
// civil-day boundary and synthesizes a flat-penalty log for every roster
// member who never reported the just-completed day.
type PenalizeService struct {
	users  repository.UserStore
	logs   repository.LogStore
	cfg    config.AppConfig
	roster map[string]config.UserConfig

	Now func() time.Time
}

func NewPenalizeService(users repository.UserStore, logs repository.LogStore, cfg config.AppConfig, roster map[string]config.UserConfig) *PenalizeService {
	return &PenalizeService{
		users:  users,
		logs:   logs,
		cfg:    cfg,
		roster: roster,
		Now:    func() time.Time { return utils.Today(cfg.DayOffset) },
	}
}

// PenalizeUnreported checks yesterday's logs for every known user. Any log
// at all, even a failed one, skips penalization, which also makes re-runs
// for the same day idempotent. One user's failure never aborts the rest of
// the batch; failures are collected in the summary.
func (svc *PenalizeService) PenalizeUnreported(ctx context.Context) (*model.PenalizeSummary, error) {
	yesterday := utils.FormatDate(svc.Now().AddDate(0, 0, -1))
	log.Printf("Checking unreported logs for %s", yesterday)

	names := make([]string, 0, len(svc.roster))
	for name := range svc.roster {
		names = append(names, name)
	}
	sort.Strings(names)

	summary := &model.PenalizeSummary{
		Date:       yesterday,
		TotalUsers: len(names),
	}

	for _, name := range names {
		existing, err := svc.logs.GetLog(ctx, name, yesterday)
		if err != nil {
			log.Printf("Skipping %s: failed to check log for %s: %v", name, yesterday, err)
			summary.Failed = append(summary.Failed, name)
			continue
		}
		if existing != nil {
			summary.AlreadyReported++
			continue
		}

		if err := svc.penalizeUser(ctx, name, yesterday); err != nil {
			log.Printf("Failed to penalize %s for %s: %v", name, yesterday, err)
			summary.Failed = append(summary.Failed, name)
			continue
		}
		summary.Penalized++
	}

	log.Printf("Penalizer run for %s: %d users, %d reported, %d penalized, %d failed",
		yesterday, summary.TotalUsers, summary.AlreadyReported, summary.Penalized, len(summary.Failed))
	return summary, nil
}

func (svc *PenalizeService) penalizeUser(ctx context.Context, userName, date string) error {
	penalty := &model.DailyLog{
		UserName: userName,
		Date:     date,
		Activities: model.Activities{
			model.ActivityExercise:    false,
			model.ActivityHealthyFood: false,
			model.ActivityReading:     false,
			model.ActivityWater:       false,
			model.ActivityNoAlcohol:   false,
		},
		PointsEarned: svc.cfg.NoReportPenalty,
		Breakdown: []string{
			fmt.Sprintf("❌ No reportó - Penalización: %d puntos", svc.cfg.NoReportPenalty),
		},
		IsAutoPenalty: true,
		Timestamp:     svc.Now(),
	}

	if err := svc.logs.PutLog(ctx, penalty); err != nil {
		return fmt.Errorf("failed to store penalty log: %w", err)
	}

	user, err := svc.users.GetUser(ctx, userName)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	user.LastPenaltyDate = date
	if err := svc.users.PutUser(ctx, user); err != nil {
		return fmt.Errorf("failed to record penalty date: %w", err)
	}

	// Delta increment, never an absolute write: a racing submission for
	// another day must not be lost.
	if err := svc.users.IncrementPoints(ctx, userName, svc.cfg.NoReportPenalty); err != nil {
		return fmt.Errorf("failed to apply penalty points: %w", err)
	}
	return nil
}
