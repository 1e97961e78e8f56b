package handler

import (
	"log"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetWeeklyProgressHandler(c *gin.Context, progressService *usecase.ProgressService) {
	userName := c.Param("user")

	progress, err := progressService.GetWeeklyProgress(c.Request.Context(), userName)
	if err != nil {
		log.Printf("Error building weekly progress for %s: %v", userName, err)
		utils.InternalError(c, "Failed to build weekly progress")
		return
	}

	utils.Success(c, gin.H{
		"progress": progress,
	})
}

func GetFreePassesHandler(c *gin.Context, passService *usecase.PassService) {
	userName := c.Param("user")

	status, err := passService.CheckFreePasses(c.Request.Context(), userName)
	if err != nil {
		log.Printf("Error checking free passes for %s: %v", userName, err)
		utils.InternalError(c, "Failed to check free passes")
		return
	}

	utils.Success(c, gin.H{
		"passes": status,
	})
}

func GetStreakHandler(c *gin.Context, streakService *usecase.StreakService) {
	userName := c.Param("user")

	streak, err := streakService.CalculateUserStreak(c.Request.Context(), userName)
	if err != nil {
		log.Printf("Error calculating streak for %s: %v", userName, err)
		utils.InternalError(c, "Failed to calculate streak")
		return
	}

	utils.Success(c, gin.H{
		"streak": streak,
	})
}
