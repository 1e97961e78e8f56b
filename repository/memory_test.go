package repository

import (
	"context"
	"testing"

	"main/model"
)

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownUserGetsZeroRecord", func(t *testing.T) {
		store := NewMemoryStore()

		user, err := store.GetUser(ctx, "Kevin")
		if err != nil {
			t.Fatal(err)
		}
		if user.Name != "Kevin" || user.Points != 0 {
			t.Errorf("unexpected zero record: %+v", user)
		}
		if user.RestDaysUsed == nil {
			t.Error("ledgers must be initialized")
		}
	})

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		store := NewMemoryStore()

		user := model.NewUser("Fabi")
		user.Points = 11
		user.RestDaysUsed["2025-W3"] = true
		if err := store.PutUser(ctx, user); err != nil {
			t.Fatal(err)
		}

		// Mutating the original must not leak into the store.
		user.Points = 99
		user.RestDaysUsed["2025-W4"] = true

		got, err := store.GetUser(ctx, "Fabi")
		if err != nil {
			t.Fatal(err)
		}
		if got.Points != 11 {
			t.Errorf("points = %d, want 11", got.Points)
		}
		if len(got.RestDaysUsed) != 1 {
			t.Errorf("ledger leaked: %v", got.RestDaysUsed)
		}
	})

	t.Run("PutUserRequiresName", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.PutUser(ctx, &model.User{}); err == nil {
			t.Error("expected error for empty name")
		}
	})

	t.Run("IncrementPoints", func(t *testing.T) {
		store := NewMemoryStore()

		if err := store.IncrementPoints(ctx, "Kevin", 5); err != nil {
			t.Fatal(err)
		}
		if err := store.IncrementPoints(ctx, "Kevin", -7); err != nil {
			t.Fatal(err)
		}

		user, err := store.GetUser(ctx, "Kevin")
		if err != nil {
			t.Fatal(err)
		}
		if user.Points != -2 {
			t.Errorf("points = %d, want -2", user.Points)
		}
	})

	t.Run("ApplyLogDelta", func(t *testing.T) {
		store := NewMemoryStore()

		if err := store.ApplyLogDelta(ctx, "Kevin", 5, 1, 1, "2025-01-15"); err != nil {
			t.Fatal(err)
		}
		if err := store.ApplyLogDelta(ctx, "Kevin", -2, 0, -1, "2025-01-15"); err != nil {
			t.Fatal(err)
		}

		user, err := store.GetUser(ctx, "Kevin")
		if err != nil {
			t.Fatal(err)
		}
		if user.Points != 3 || user.Stats.TotalDays != 1 || user.Stats.PerfectDays != 0 {
			t.Errorf("unexpected aggregates: points=%d stats=%+v", user.Points, user.Stats)
		}
		if user.LastActive != "2025-01-15" {
			t.Errorf("last active = %q", user.LastActive)
		}
	})

	t.Run("ListUsersSortsByPoints", func(t *testing.T) {
		store := NewMemoryStore()

		for name, points := range map[string]int{"Kevin": 3, "Fabi": 9, "Vivi": 3} {
			u := model.NewUser(name)
			u.Points = points
			if err := store.PutUser(ctx, u); err != nil {
				t.Fatal(err)
			}
		}

		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if users[0].Name != "Fabi" {
			t.Errorf("leader = %s, want Fabi", users[0].Name)
		}
		// Equal points tie-break alphabetically.
		if users[1].Name != "Kevin" || users[2].Name != "Vivi" {
			t.Errorf("tie order wrong: %s, %s", users[1].Name, users[2].Name)
		}
	})
}

func TestMemoryStoreLogs(t *testing.T) {
	ctx := context.Background()

	perfect := model.Activities{
		model.ActivityExercise:    true,
		model.ActivityHealthyFood: true,
		model.ActivityReading:     true,
		model.ActivityWater:       true,
		model.ActivityNoAlcohol:   true,
	}

	t.Run("MissingLogIsNilNil", func(t *testing.T) {
		store := NewMemoryStore()

		logEntry, err := store.GetLog(ctx, "Kevin", "2025-01-15")
		if err != nil {
			t.Fatal(err)
		}
		if logEntry != nil {
			t.Error("expected nil for a missing log")
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		store := NewMemoryStore()

		first := &model.DailyLog{UserName: "Kevin", Date: "2025-01-15", Activities: perfect, PointsEarned: 5}
		if err := store.PutLog(ctx, first); err != nil {
			t.Fatal(err)
		}
		second := &model.DailyLog{UserName: "Kevin", Date: "2025-01-15", Activities: perfect, PointsEarned: 9}
		if err := store.PutLog(ctx, second); err != nil {
			t.Fatal(err)
		}

		got, err := store.GetLog(ctx, "Kevin", "2025-01-15")
		if err != nil {
			t.Fatal(err)
		}
		if got.PointsEarned != 9 {
			t.Errorf("points = %d, want the overwritten 9", got.PointsEarned)
		}
	})

	t.Run("PutLogRequiresKey", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.PutLog(ctx, &model.DailyLog{UserName: "Kevin"}); err == nil {
			t.Error("expected error for missing date")
		}
	})

	t.Run("ListLogsLimit", func(t *testing.T) {
		store := NewMemoryStore()

		for _, date := range []string{"2025-01-10", "2025-01-11", "2025-01-12", "2025-01-13"} {
			l := &model.DailyLog{UserName: "Kevin", Date: date, Activities: perfect}
			if err := store.PutLog(ctx, l); err != nil {
				t.Fatal(err)
			}
		}

		logs, err := store.ListLogs(ctx, "Kevin", 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(logs) != 2 {
			t.Fatalf("expected 2 logs, got %d", len(logs))
		}
		if logs["2025-01-13"] == nil || logs["2025-01-12"] == nil {
			t.Error("limit should keep the most recent dates")
		}

		all, err := store.ListLogs(ctx, "Kevin", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 4 {
			t.Errorf("limit 0 means unlimited, got %d", len(all))
		}
	})

	t.Run("ListAllLogsGroupsByUser", func(t *testing.T) {
		store := NewMemoryStore()

		for _, l := range []*model.DailyLog{
			{UserName: "Kevin", Date: "2025-01-14", Activities: perfect},
			{UserName: "Kevin", Date: "2025-01-15", Activities: perfect},
			{UserName: "Fabi", Date: "2025-01-15", Activities: perfect},
		} {
			if err := store.PutLog(ctx, l); err != nil {
				t.Fatal(err)
			}
		}

		all, err := store.ListAllLogs(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 users, got %d", len(all))
		}
		if len(all["Kevin"]) != 2 || len(all["Fabi"]) != 1 {
			t.Errorf("grouping wrong: %d/%d", len(all["Kevin"]), len(all["Fabi"]))
		}
	})
}
