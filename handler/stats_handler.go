package handler

import (
	"log"
	"main/model"
	"main/usecase"
	"main/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// LeaderboardCache is the snapshot cache surface the handler reads through.
// GetLeaderboard's second return reports staleness; a nil entry set means a
// miss.
type LeaderboardCache interface {
	GetLeaderboard() ([]model.LeaderboardEntry, bool, error)
	SetLeaderboard(entries []model.LeaderboardEntry) error
}

type StatsHandler struct {
	statsService *usecase.StatsService
	cache        LeaderboardCache
}

func NewStatsHandler(statsService *usecase.StatsService, cache LeaderboardCache) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		cache:        cache,
	}
}

// GetLeaderboard serves the ranking, read-through via the snapshot cache
// when one is configured. A stale or missing entry falls back to the store
// and refills.
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	if h.cache != nil {
		entries, stale, err := h.cache.GetLeaderboard()
		if err != nil {
			log.Printf("Warning: leaderboard cache read failed: %v", err)
		} else if entries != nil && !stale {
			utils.Success(c, gin.H{
				"leaderboard": entries,
				"cached":      true,
			})
			return
		}
	}

	entries, err := h.statsService.GetLeaderboard(c.Request.Context())
	if err != nil {
		log.Printf("Error building leaderboard: %v", err)
		utils.InternalError(c, "Failed to build leaderboard")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetLeaderboard(entries); err != nil {
			log.Printf("Warning: leaderboard cache write failed: %v", err)
		}
	}

	utils.Success(c, gin.H{
		"leaderboard": entries,
		"cached":      false,
	})
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userName := c.Param("user")

	report, err := h.statsService.GetUserStats(c.Request.Context(), userName)
	if err != nil {
		log.Printf("Error building stats for %s: %v", userName, err)
		utils.InternalError(c, "Failed to build user stats")
		return
	}

	utils.Success(c, gin.H{
		"stats": report,
	})
}

func (h *StatsHandler) GetGroupStats(c *gin.Context) {
	stats, err := h.statsService.GetGroupStats(c.Request.Context())
	if err != nil {
		log.Printf("Error building group stats: %v", err)
		utils.InternalError(c, "Failed to build group stats")
		return
	}

	utils.Success(c, gin.H{
		"stats": stats,
	})
}

// GetHistory lists logs across the whole group, newest first. Optional
// filters: ?user=<name> and ?days=<n> (0 means no cutoff).
func (h *StatsHandler) GetHistory(c *gin.Context) {
	userFilter := c.Query("user")
	days, err := strconv.Atoi(c.DefaultQuery("days", "0"))
	if err != nil || days < 0 {
		utils.BadRequest(c, "days must be a non-negative integer")
		return
	}

	entries, err := h.statsService.GetHistory(c.Request.Context(), userFilter, days)
	if err != nil {
		log.Printf("Error building history: %v", err)
		utils.InternalError(c, "Failed to build history")
		return
	}

	utils.Success(c, gin.H{
		"history": entries,
		"count":   len(entries),
	})
}
