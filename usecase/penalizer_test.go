package usecase

import (
	"context"
	"testing"

	"main/repository"
)

func TestPenalizeUnreported(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	roster := testRoster()

	t.Run("PenalizesEveryoneWithoutLogs", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := NewPenalizeService(store, store, cfg, roster)
		svc.Now = fixedDay("2025-01-15")

		summary, err := svc.PenalizeUnreported(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Date != "2025-01-14" {
			t.Errorf("sweep date = %q, want 2025-01-14", summary.Date)
		}
		if summary.Penalized != len(roster) {
			t.Errorf("penalized = %d, want %d", summary.Penalized, len(roster))
		}

		for name := range roster {
			logEntry, err := store.GetLog(ctx, name, "2025-01-14")
			if err != nil {
				t.Fatal(err)
			}
			if logEntry == nil {
				t.Fatalf("missing penalty log for %s", name)
			}
			if !logEntry.IsAutoPenalty {
				t.Errorf("%s's penalty log not marked auto", name)
			}
			if logEntry.PointsEarned != cfg.NoReportPenalty {
				t.Errorf("%s penalty points = %d, want %d", name, logEntry.PointsEarned, cfg.NoReportPenalty)
			}
			if len(logEntry.Breakdown) != 1 || logEntry.Breakdown[0] != "❌ No reportó - Penalización: -7 puntos" {
				t.Errorf("unexpected breakdown for %s: %v", name, logEntry.Breakdown)
			}

			user, err := store.GetUser(ctx, name)
			if err != nil {
				t.Fatal(err)
			}
			if user.Points != cfg.NoReportPenalty {
				t.Errorf("%s points = %d, want %d", name, user.Points, cfg.NoReportPenalty)
			}
			if user.LastPenaltyDate != "2025-01-14" {
				t.Errorf("%s last penalty date = %q", name, user.LastPenaltyDate)
			}
		}
	})

	t.Run("AnyExistingLogSkips", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := NewPenalizeService(store, store, cfg, roster)
		svc.Now = fixedDay("2025-01-15")

		// A failed day still counts as reported.
		putLog(t, store, "Kevin", "2025-01-14", failedActivities())

		summary, err := svc.PenalizeUnreported(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if summary.AlreadyReported != 1 {
			t.Errorf("already reported = %d, want 1", summary.AlreadyReported)
		}
		if summary.Penalized != len(roster)-1 {
			t.Errorf("penalized = %d, want %d", summary.Penalized, len(roster)-1)
		}

		user, err := store.GetUser(ctx, "Kevin")
		if err != nil {
			t.Fatal(err)
		}
		if user.Points != 0 {
			t.Errorf("Kevin should not be penalized, points = %d", user.Points)
		}
	})

	t.Run("RerunIsIdempotent", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := NewPenalizeService(store, store, cfg, roster)
		svc.Now = fixedDay("2025-01-15")

		if _, err := svc.PenalizeUnreported(ctx); err != nil {
			t.Fatal(err)
		}
		summary, err := svc.PenalizeUnreported(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if summary.Penalized != 0 {
			t.Errorf("second run penalized %d users", summary.Penalized)
		}
		if summary.AlreadyReported != len(roster) {
			t.Errorf("already reported = %d, want %d", summary.AlreadyReported, len(roster))
		}

		user, err := store.GetUser(ctx, "Fabi")
		if err != nil {
			t.Fatal(err)
		}
		if user.Points != cfg.NoReportPenalty {
			t.Errorf("penalty applied more than once: points = %d", user.Points)
		}
	})
}
