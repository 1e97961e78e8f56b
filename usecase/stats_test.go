package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"main/model"
	"main/repository"
)

func seedUser(t *testing.T, store *repository.MemoryStore, name string, points, totalDays, perfectDays int) {
	t.Helper()
	user := model.NewUser(name)
	user.Points = points
	user.Stats.TotalDays = totalDays
	user.Stats.PerfectDays = perfectDays
	if err := store.PutUser(context.Background(), user); err != nil {
		t.Fatal("failed to seed user:", err)
	}
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewStatsService(store, store, testConfig(), testRoster())
	svc.Now = fixedDay("2025-01-15")

	seedUser(t, store, "Kevin", 12, 5, 3)
	seedUser(t, store, "Fabi", 20, 5, 5)
	seedUser(t, store, "Vivi", -4, 3, 0)

	entries, err := svc.GetLeaderboard(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "Fabi" || entries[1].Name != "Kevin" || entries[2].Name != "Vivi" {
		t.Errorf("wrong order: %s, %s, %s", entries[0].Name, entries[1].Name, entries[2].Name)
	}
	if entries[0].Points != 20 {
		t.Errorf("leader points = %d, want 20", entries[0].Points)
	}
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewStatsService(store, store, testConfig(), testRoster())
	svc.Now = fixedDay("2025-01-15")

	seedUser(t, store, "Kevin", 9, 3, 2)
	putLog(t, store, "Kevin", "2025-01-14", perfectActivities())
	putLog(t, store, "Kevin", "2025-01-15", failedActivities())

	report, err := svc.GetUserStats(ctx, "Kevin")
	if err != nil {
		t.Fatal(err)
	}
	if report.TotalPoints != 9 {
		t.Errorf("total points = %d, want 9", report.TotalPoints)
	}
	if report.CompletionRate != 67 {
		t.Errorf("completion rate = %d, want 67 (2/3 rounded)", report.CompletionRate)
	}
	if len(report.Last7Days) != 7 {
		t.Fatalf("expected 7 day refs, got %d", len(report.Last7Days))
	}
	if report.Last7Days[0].Date != "2025-01-09" {
		t.Errorf("window should start 2025-01-09, got %s", report.Last7Days[0].Date)
	}
	if report.Last7Days[6].Date != "2025-01-15" || report.Last7Days[6].Log == nil {
		t.Error("today should be last and populated")
	}
	if report.Last7Days[0].Log != nil {
		t.Error("unlogged days carry a nil log")
	}
}

func TestGetUserStatsEmpty(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewStatsService(store, store, testConfig(), testRoster())
	svc.Now = fixedDay("2025-01-15")

	report, err := svc.GetUserStats(ctx, "Kevin")
	if err != nil {
		t.Fatal(err)
	}
	if report.CompletionRate != 0 {
		t.Errorf("completion rate = %d, want 0 with no days", report.CompletionRate)
	}
}

func TestGetGroupStats(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewStatsService(store, store, testConfig(), testRoster())
	svc.Now = fixedDay("2025-01-15")

	seedUser(t, store, "Kevin", 10, 2, 2)
	seedUser(t, store, "Fabi", 4, 2, 0)
	putLog(t, store, "Kevin", "2025-01-15", perfectActivities())

	stats, err := svc.GetGroupStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ChallengeDay != 9 {
		t.Errorf("challenge day = %d, want 9 (start 2025-01-06)", stats.ChallengeDay)
	}
	if stats.TodayCompleted != 1 {
		t.Errorf("today completed = %d, want 1", stats.TodayCompleted)
	}
	if stats.TotalUsers != 3 {
		t.Errorf("total users = %d, want 3", stats.TotalUsers)
	}
	if stats.TotalPoints != 14 {
		t.Errorf("total points = %d, want 14", stats.TotalPoints)
	}
	if stats.LeaderName != "Kevin" || stats.LeaderPoints != 10 {
		t.Errorf("leader = %s/%d, want Kevin/10", stats.LeaderName, stats.LeaderPoints)
	}
	if stats.PrizeAmount != 500 {
		t.Errorf("prize = %d, want 500", stats.PrizeAmount)
	}
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewStatsService(store, store, testConfig(), testRoster())
	svc.Now = fixedDay("2025-01-15")

	putLog(t, store, "Kevin", "2025-01-13", perfectActivities())
	putLog(t, store, "Kevin", "2025-01-15", failedActivities())
	putLog(t, store, "Fabi", "2025-01-15", perfectActivities())
	putLog(t, store, "Fabi", "2025-01-01", perfectActivities())

	t.Run("AllUsersNewestFirst", func(t *testing.T) {
		entries, err := svc.GetHistory(ctx, "", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 4 {
			t.Fatalf("expected 4 entries, got %d", len(entries))
		}
		if entries[0].Date != "2025-01-15" || entries[0].UserName != "Fabi" {
			t.Errorf("first entry = %s/%s", entries[0].UserName, entries[0].Date)
		}
		if entries[1].Date != "2025-01-15" || entries[1].UserName != "Kevin" {
			t.Errorf("same-date ties break by name: %s/%s", entries[1].UserName, entries[1].Date)
		}
		if entries[3].Date != "2025-01-01" {
			t.Errorf("oldest entry last, got %s", entries[3].Date)
		}
	})

	t.Run("UserFilter", func(t *testing.T) {
		entries, err := svc.GetHistory(ctx, "Kevin", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries for Kevin, got %d", len(entries))
		}
		for _, e := range entries {
			if e.UserName != "Kevin" {
				t.Errorf("unexpected user %s", e.UserName)
			}
		}
	})

	t.Run("DaysCutoff", func(t *testing.T) {
		entries, err := svc.GetHistory(ctx, "", 7)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if e.Date < "2025-01-08" {
				t.Errorf("entry %s/%s is past the cutoff", e.UserName, e.Date)
			}
		}
		if len(entries) != 3 {
			t.Errorf("expected 3 entries inside the window, got %d", len(entries))
		}
	})
}

func TestSubscribeToLeaderboard(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewStatsService(store, store, testConfig(), testRoster())
	svc.Now = fixedDay("2025-01-15")

	seedUser(t, store, "Kevin", 7, 1, 1)

	var mu sync.Mutex
	snapshots := 0
	done := make(chan struct{})

	unsubscribe := svc.SubscribeToLeaderboard(10*time.Millisecond, func(entries []model.LeaderboardEntry) {
		mu.Lock()
		defer mu.Unlock()
		if len(entries) != 1 || entries[0].Name != "Kevin" {
			t.Errorf("unexpected snapshot: %+v", entries)
		}
		snapshots++
		if snapshots == 2 {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for leaderboard snapshots")
	}

	unsubscribe()
	unsubscribe() // second call must be a no-op
}
