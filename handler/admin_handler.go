package handler

import (
	"log"
	"main/middleware"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// PenalizeHandler triggers the no-report penalty sweep for yesterday by hand.
// The scheduler runs the same sweep every midnight; the endpoint exists for
// catch-up after downtime and for operating the batch in staging.
func PenalizeHandler(c *gin.Context, penalizeService *usecase.PenalizeService) {
	summary, err := penalizeService.PenalizeUnreported(c.Request.Context())
	if err != nil {
		log.Printf("Error running penalty sweep: %v", err)
		middleware.TrackError("penalizer")
		utils.InternalError(c, "Failed to run penalty sweep")
		return
	}

	middleware.TrackPenalties(summary.Penalized)
	if summary.Penalized > 0 && services.GlobalLeaderboardCache != nil {
		if err := services.GlobalLeaderboardCache.Invalidate(); err != nil {
			log.Printf("Warning: failed to invalidate leaderboard cache: %v", err)
		}
	}

	utils.Success(c, gin.H{
		"summary": summary,
	})
}
