package usecase

import (
	"fmt"

	"main/config"
	"main/model"
)

// ScoreResult is the outcome of scoring one day: the signed total and the
// itemized lines explaining it. The breakdown is informational only.
type ScoreResult struct {
	Points    int      `json:"points"`
	Breakdown []string `json:"breakdown"`
}

// CalculatePoints scores one day's activities. Pure function: same inputs,
// same result, usable both for the live preview and the final submission.
//
// Each activity counts +pointsPerActivity when done and -pointsPerActivity
// when skipped, except the user's personal challenge, whose failure costs
// the larger penaltyPoints. Bonuses and the late penalty apply after the
// five activities. Totals can go negative.
func CalculatePoints(cfg config.AppConfig, activities model.Activities, personalChallenge string, dailyBonus, weeklyBonus, latePenalty bool) ScoreResult {
	points := 0
	breakdown := make([]string, 0, len(model.ActivityOrder)+3)

	for _, id := range model.ActivityOrder {
		completed := activities[id]
		switch {
		case id == personalChallenge && !completed:
			points -= cfg.PenaltyPoints
			breakdown = append(breakdown, fmt.Sprintf("%s: -%d (reto personal)", id, cfg.PenaltyPoints))
		case completed:
			points += cfg.PointsPerActivity
			breakdown = append(breakdown, fmt.Sprintf("%s: +%d", id, cfg.PointsPerActivity))
		default:
			points -= cfg.PointsPerActivity
			breakdown = append(breakdown, fmt.Sprintf("%s: -%d", id, cfg.PointsPerActivity))
		}
	}

	if dailyBonus {
		points += cfg.DailyBonusPoints
		breakdown = append(breakdown, fmt.Sprintf("Bonus diario: +%d", cfg.DailyBonusPoints))
	}

	if weeklyBonus {
		points += cfg.WeeklyBonusPoints
		breakdown = append(breakdown, fmt.Sprintf("Bonus semanal: +%d", cfg.WeeklyBonusPoints))
	}

	if latePenalty {
		points -= cfg.LatePenaltyPoints
		breakdown = append(breakdown, fmt.Sprintf("Registro tardío: -%d", cfg.LatePenaltyPoints))
	}

	return ScoreResult{Points: points, Breakdown: breakdown}
}

// ApplyPassOverrides returns a copy of the activity set with each invoked
// pass's affected activity forced to completed. This substitution happens
// before scoring, never inside the pass ledger.
func ApplyPassOverrides(activities model.Activities, passes map[model.PassType]bool) model.Activities {
	out := activities.Clone()
	for passType, used := range passes {
		if !used {
			continue
		}
		if affected, ok := model.AffectedActivity[passType]; ok {
			out[affected] = true
		}
	}
	return out
}
