package handler

import (
	"main/config"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetDailyChallengeHandler returns the rotating bonus challenge for today's
// Costa Rica civil day.
func GetDailyChallengeHandler(c *gin.Context, cfg config.AppConfig) {
	day := utils.Today(cfg.DayOffset)
	challenge := config.DailyChallenges[int(day.Weekday())]

	utils.Success(c, gin.H{
		"date":      utils.FormatDate(day),
		"challenge": challenge,
	})
}

// GetChallengeInfoHandler returns the static tables the clients render from:
// the five activities, the pass catalog, and the scoring constants.
func GetChallengeInfoHandler(c *gin.Context, cfg config.AppConfig) {
	utils.Success(c, gin.H{
		"activities": config.Activities,
		"passes":     config.FreePasses,
		"scoring": gin.H{
			"points_per_activity": cfg.PointsPerActivity,
			"penalty_points":      cfg.PenaltyPoints,
			"daily_bonus":         cfg.DailyBonusPoints,
			"weekly_bonus":        cfg.WeeklyBonusPoints,
			"late_penalty":        cfg.LatePenaltyPoints,
			"no_report_penalty":   cfg.NoReportPenalty,
		},
		"start_date":   cfg.StartDate,
		"prize_amount": cfg.PrizeAmount,
	})
}
