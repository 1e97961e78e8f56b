package usecase

import (
	"testing"

	"main/model"
)

func TestCalculatePoints(t *testing.T) {
	cfg := testConfig()

	t.Run("AllActivitiesCompleted", func(t *testing.T) {
		result := CalculatePoints(cfg, perfectActivities(), "noAlcohol", false, false, false)
		if result.Points != 5 {
			t.Errorf("expected 5 points, got %d", result.Points)
		}
		if len(result.Breakdown) != 5 {
			t.Errorf("expected 5 breakdown lines, got %d", len(result.Breakdown))
		}
	})

	t.Run("AllActivitiesMissed", func(t *testing.T) {
		activities := model.Activities{
			model.ActivityExercise:    false,
			model.ActivityHealthyFood: false,
			model.ActivityReading:     false,
			model.ActivityWater:       false,
			model.ActivityNoAlcohol:   false,
		}
		// Four ordinary misses plus the tripled personal challenge.
		result := CalculatePoints(cfg, activities, "exercise", false, false, false)
		if result.Points != -7 {
			t.Errorf("expected -7 points, got %d", result.Points)
		}
	})

	t.Run("PersonalChallengeFailed", func(t *testing.T) {
		activities := perfectActivities()
		activities[model.ActivityNoAlcohol] = false

		result := CalculatePoints(cfg, activities, "noAlcohol", false, false, false)
		if result.Points != 1 {
			t.Errorf("expected 1 point, got %d", result.Points)
		}

		found := false
		for _, line := range result.Breakdown {
			if line == "noAlcohol: -3 (reto personal)" {
				found = true
			}
		}
		if !found {
			t.Errorf("missing personal challenge breakdown line, got %v", result.Breakdown)
		}
	})

	t.Run("KevinEndToEnd", func(t *testing.T) {
		activities := perfectActivities()
		activities[model.ActivityNoAlcohol] = false

		result := CalculatePoints(cfg, activities, "noAlcohol", true, false, false)
		if result.Points != 2 {
			t.Errorf("expected 2 points (1+1+1+1-3+1), got %d", result.Points)
		}
	})

	t.Run("AllBonusesAndLatePenalty", func(t *testing.T) {
		result := CalculatePoints(cfg, perfectActivities(), "water", true, true, true)
		if result.Points != 7 {
			t.Errorf("expected 7 points (5+1+4-3), got %d", result.Points)
		}
		if len(result.Breakdown) != 8 {
			t.Errorf("expected 8 breakdown lines, got %d", len(result.Breakdown))
		}
		last := result.Breakdown[len(result.Breakdown)-1]
		if last != "Registro tardío: -3" {
			t.Errorf("unexpected last breakdown line: %q", last)
		}
	})

	t.Run("BreakdownFollowsActivityOrder", func(t *testing.T) {
		result := CalculatePoints(cfg, perfectActivities(), "", false, false, false)
		want := []string{
			"exercise: +1",
			"healthyFood: +1",
			"reading: +1",
			"water: +1",
			"noAlcohol: +1",
		}
		for i, line := range want {
			if result.Breakdown[i] != line {
				t.Errorf("breakdown[%d] = %q, want %q", i, result.Breakdown[i], line)
			}
		}
	})

	t.Run("NoPersonalChallenge", func(t *testing.T) {
		activities := perfectActivities()
		activities[model.ActivityExercise] = false

		result := CalculatePoints(cfg, activities, "", false, false, false)
		if result.Points != 3 {
			t.Errorf("expected 3 points, got %d", result.Points)
		}
	})
}

func TestApplyPassOverrides(t *testing.T) {
	t.Run("RestDayForcesExercise", func(t *testing.T) {
		activities := perfectActivities()
		activities[model.ActivityExercise] = false

		effective := ApplyPassOverrides(activities, map[model.PassType]bool{model.PassRestDay: true})
		if !effective[model.ActivityExercise] {
			t.Error("rest day should force exercise to completed")
		}
		if activities[model.ActivityExercise] {
			t.Error("input activity set must not be mutated")
		}
	})

	t.Run("UnusedPassesChangeNothing", func(t *testing.T) {
		activities := failedActivities()
		effective := ApplyPassOverrides(activities, map[model.PassType]bool{
			model.PassRestDay:   false,
			model.PassCheatMeal: false,
		})
		if effective[model.ActivityReading] {
			t.Error("reading should stay false without a pass covering it")
		}
	})

	t.Run("MultiplePasses", func(t *testing.T) {
		activities := model.Activities{
			model.ActivityExercise:    false,
			model.ActivityHealthyFood: false,
			model.ActivityReading:     true,
			model.ActivityWater:       true,
			model.ActivityNoAlcohol:   false,
		}
		effective := ApplyPassOverrides(activities, map[model.PassType]bool{
			model.PassRestDay:  true,
			model.PassSodaPass: true,
		})
		if !effective[model.ActivityExercise] || !effective[model.ActivityNoAlcohol] {
			t.Error("both passes should apply")
		}
		if effective[model.ActivityHealthyFood] {
			t.Error("healthyFood has no pass invoked and should stay false")
		}
	})
}
