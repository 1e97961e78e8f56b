package scheduler

import (
	"context"
	"log"
	"main/middleware"
	"main/services"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Start runs the nightly no-report sweep just after midnight Costa Rica time.
// The sweep is idempotent, so an overlapping manual trigger is harmless.
func Start(penalizeService *usecase.PenalizeService) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(utils.CostaRica))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			summary, err := penalizeService.PenalizeUnreported(ctx)
			if err != nil {
				log.Printf("Penalty sweep failed: %v", err)
				middleware.TrackError("penalizer")
				return
			}

			middleware.TrackPenalties(summary.Penalized)
			if summary.Penalized > 0 && services.GlobalLeaderboardCache != nil {
				if err := services.GlobalLeaderboardCache.Invalidate(); err != nil {
					log.Printf("Warning: failed to invalidate leaderboard cache: %v", err)
				}
			}
			log.Printf("Penalty sweep for %s: %d penalized, %d already reported, %d failed",
				summary.Date, summary.Penalized, summary.AlreadyReported, len(summary.Failed))
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
