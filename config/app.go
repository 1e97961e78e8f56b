package config

import (
	"encoding/json"
	"log"
	"os"

	"main/utils"
)

// AppConfig holds the scoring rubric and challenge settings. It is loaded
// once at startup and passed by value into the services; nothing mutates it
// afterwards, so unit tests can build their own without touching env.
type AppConfig struct {
	AppName           string
	PrizeAmount       int
	ChallengeDuration int
	StartDate         string // YYYY-MM-DD
	PointsPerActivity int
	PenaltyPoints     int
	DailyBonusPoints  int
	WeeklyBonusPoints int
	LatePenaltyPoints int
	NoReportPenalty   int // flat, applied by the penalizer; negative
	DayOffset         int // dev-only shift of "today", never used in scoring
}

func LoadAppConfig() AppConfig {
	return AppConfig{
		AppName:           utils.GetEnvAsString("APP_NAME", "75 Soft: Redemption Edition"),
		PrizeAmount:       utils.GetEnvAsInt("PRIZE_AMOUNT", 500),
		ChallengeDuration: utils.GetEnvAsInt("CHALLENGE_DURATION", 75),
		StartDate:         utils.GetEnvAsString("CHALLENGE_START_DATE", "2025-01-06"),
		PointsPerActivity: utils.GetEnvAsInt("POINTS_PER_ACTIVITY", 1),
		PenaltyPoints:     utils.GetEnvAsInt("PENALTY_POINTS", 3),
		DailyBonusPoints:  utils.GetEnvAsInt("DAILY_BONUS_POINTS", 1),
		WeeklyBonusPoints: utils.GetEnvAsInt("WEEKLY_BONUS_POINTS", 4),
		LatePenaltyPoints: utils.GetEnvAsInt("LATE_PENALTY_POINTS", 3),
		NoReportPenalty:   utils.GetEnvAsInt("NO_REPORT_PENALTY", -7),
		DayOffset:         utils.GetEnvAsInt("DEV_DAY_OFFSET", 0),
	}
}

// UserConfig is one roster entry: which of the five activities is that
// user's personal challenge, and the human description shown in alerts.
type UserConfig struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	PersonalChallenge  string `json:"personal_challenge"`
	PenaltyDescription string `json:"penalty_description"`
}

// defaultRoster mirrors the original deployment. Override with USERS_JSON.
var defaultRoster = map[string]UserConfig{
	"Kevin": {
		ID:                 "kevin",
		Name:               "Kevin",
		PersonalChallenge:  "noAlcohol",
		PenaltyDescription: "Si toma alcohol o Coca Zero: -3 puntos (en lugar de -1)",
	},
	"Fabi": {
		ID:                 "fabi",
		Name:               "Fabi",
		PersonalChallenge:  "healthyFood",
		PenaltyDescription: "Si no come saludable: -3 puntos (en lugar de -1)",
	},
	"Vivi": {
		ID:                 "vivi",
		Name:               "Vivi",
		PersonalChallenge:  "exercise",
		PenaltyDescription: "Si no hace ejercicio: -3 puntos (en lugar de -1)",
	},
	"Yuli": {
		ID:                 "yuli",
		Name:               "Yuli",
		PersonalChallenge:  "exercise",
		PenaltyDescription: "Si no hace ejercicio: -3 puntos (en lugar de -1)",
	},
}

// LoadUsers returns the fixed user roster keyed by display name.
func LoadUsers() map[string]UserConfig {
	raw := os.Getenv("USERS_JSON")
	if raw == "" {
		return defaultRoster
	}

	var roster map[string]UserConfig
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		log.Printf("Invalid USERS_JSON, falling back to default roster: %v", err)
		return defaultRoster
	}
	return roster
}
