package handler

import (
	"errors"
	"log"
	"main/dto"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

func SubmitLogHandler(c *gin.Context, logsService *usecase.LogsService) {
	var req dto.SubmitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	saved, err := logsService.SubmitDailyLog(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotConfigured):
			utils.NotFound(c, "User is not part of the challenge")
		case errors.Is(err, usecase.ErrInvalidActivitySet):
			utils.BadRequest(c, "Activities must cover exactly the five challenge habits")
		default:
			log.Printf("Error submitting log for %s: %v", req.UserName, err)
			middleware.TrackError("submit")
			utils.InternalError(c, "Failed to save daily log")
		}
		return
	}

	middleware.TrackLogSubmission("manual")
	usage := saved.PassUsage()
	for _, passType := range model.PassTypes {
		if usage[passType] {
			middleware.TrackPassConsumed(string(passType))
		}
	}

	if services.GlobalLeaderboardCache != nil {
		if err := services.GlobalLeaderboardCache.Invalidate(); err != nil {
			log.Printf("Warning: failed to invalidate leaderboard cache: %v", err)
		}
	}

	utils.Created(c, gin.H{
		"log": dto.ToLogResponse(saved),
	})
}

func PreviewPointsHandler(c *gin.Context, logsService *usecase.LogsService) {
	var req dto.SubmitLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := logsService.PreviewPoints(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotConfigured):
			utils.NotFound(c, "User is not part of the challenge")
		case errors.Is(err, usecase.ErrInvalidActivitySet):
			utils.BadRequest(c, "Activities must cover exactly the five challenge habits")
		default:
			log.Printf("Error previewing points for %s: %v", req.UserName, err)
			utils.InternalError(c, "Failed to preview points")
		}
		return
	}

	utils.Success(c, gin.H{
		"points":    result.Points,
		"breakdown": result.Breakdown,
	})
}

func GetUserLogsHandler(c *gin.Context, logsService *usecase.LogsService) {
	userName := c.Param("user")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	logs, err := logsService.GetUserLogs(c.Request.Context(), userName, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotConfigured) {
			utils.NotFound(c, "User is not part of the challenge")
			return
		}
		log.Printf("Error fetching logs for %s: %v", userName, err)
		utils.InternalError(c, "Failed to fetch logs")
		return
	}

	responses := make(map[string]dto.LogResponse, len(logs))
	for date, l := range logs {
		responses[date] = dto.ToLogResponse(l)
	}

	utils.Success(c, gin.H{
		"user_name": userName,
		"logs":      responses,
	})
}

func HasLoggedTodayHandler(c *gin.Context, logsService *usecase.LogsService) {
	userName := c.Param("user")

	logged, err := logsService.HasLoggedToday(c.Request.Context(), userName)
	if err != nil {
		log.Printf("Error checking today's log for %s: %v", userName, err)
		utils.InternalError(c, "Failed to check today's log")
		return
	}

	utils.Success(c, gin.H{
		"user_name": userName,
		"logged":    logged,
	})
}
