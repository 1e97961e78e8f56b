package usecase

import (
	"time"

	"main/config"
	"main/model"
	"main/utils"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		PrizeAmount:       500,
		ChallengeDuration: 75,
		StartDate:         "2025-01-06",
		PointsPerActivity: 1,
		PenaltyPoints:     3,
		DailyBonusPoints:  1,
		WeeklyBonusPoints: 4,
		LatePenaltyPoints: 3,
		NoReportPenalty:   -7,
	}
}

func testRoster() map[string]config.UserConfig {
	return map[string]config.UserConfig{
		"Kevin": {ID: "kevin", Name: "Kevin", PersonalChallenge: "noAlcohol"},
		"Fabi":  {ID: "fabi", Name: "Fabi", PersonalChallenge: "healthyFood"},
		"Vivi":  {ID: "vivi", Name: "Vivi", PersonalChallenge: "exercise"},
	}
}

func perfectActivities() model.Activities {
	return model.Activities{
		model.ActivityExercise:    true,
		model.ActivityHealthyFood: true,
		model.ActivityReading:     true,
		model.ActivityWater:       true,
		model.ActivityNoAlcohol:   true,
	}
}

func failedActivities() model.Activities {
	a := perfectActivities()
	a[model.ActivityReading] = false
	return a
}

// fixedDay pins "now" to noon of the given civil date in Costa Rica.
func fixedDay(date string) func() time.Time {
	day, err := utils.ParseDate(date)
	if err != nil {
		panic(err)
	}
	day = day.Add(12 * time.Hour)
	return func() time.Time { return day }
}
