package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/scheduler"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"LOGS_COLLECTION",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize MongoDB connection
	utils.InitMongoClient()
}

func setupRouter(cfg config.AppConfig, roster map[string]config.UserConfig) *gin.Engine {
	router := gin.Default()

	// Initialize repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	logsRepo := repository.GetLogsRepo(utils.MongoClient)

	// Initialize services
	logsService := usecase.NewLogsService(usersRepo, logsRepo, cfg, roster)
	progressService := usecase.NewProgressService(logsRepo, cfg)
	streakService := usecase.NewStreakService(logsRepo, cfg)
	passService := usecase.NewPassService(usersRepo, cfg)
	statsService := usecase.NewStatsService(usersRepo, logsRepo, cfg, roster)
	penalizeService := usecase.NewPenalizeService(usersRepo, logsRepo, cfg, roster)

	// An interface holding a typed nil would dodge the handler's nil check
	var cache handler.LeaderboardCache
	if services.GlobalLeaderboardCache != nil {
		cache = services.GlobalLeaderboardCache
	}
	statsHandler := handler.NewStatsHandler(statsService, cache)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		utils.Success(c, gin.H{
			"status":      "ok",
			"cpu_percent": utils.GetCPUUsage(),
			"mongo_pool":  utils.GetMongoMetrics(),
		})
	})

	api := router.Group("/api")
	{
		logs := api.Group("/logs")
		{
			logs.POST("/", func(c *gin.Context) {
				handler.SubmitLogHandler(c, logsService)
			})
			logs.POST("/preview", func(c *gin.Context) {
				handler.PreviewPointsHandler(c, logsService)
			})
			logs.GET("/:user", func(c *gin.Context) {
				handler.GetUserLogsHandler(c, logsService)
			})
			logs.GET("/:user/today", func(c *gin.Context) {
				handler.HasLoggedTodayHandler(c, logsService)
			})
		}

		users := api.Group("/users")
		{
			users.GET("/:user/progress", func(c *gin.Context) {
				handler.GetWeeklyProgressHandler(c, progressService)
			})
			users.GET("/:user/passes", func(c *gin.Context) {
				handler.GetFreePassesHandler(c, passService)
			})
			users.GET("/:user/streak", func(c *gin.Context) {
				handler.GetStreakHandler(c, streakService)
			})
			users.GET("/:user/stats", statsHandler.GetUserStats)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/leaderboard", statsHandler.GetLeaderboard)
			stats.GET("/group", statsHandler.GetGroupStats)
			stats.GET("/history", statsHandler.GetHistory)
		}

		challenge := api.Group("/challenge")
		challenge.Use(middleware.CacheControlMiddleware("public, max-age=300"))
		{
			challenge.GET("/today", func(c *gin.Context) {
				handler.GetDailyChallengeHandler(c, cfg)
			})
			challenge.GET("/info", func(c *gin.Context) {
				handler.GetChallengeInfoHandler(c, cfg)
			})
		}

		admin := api.Group("/admin")
		{
			admin.POST("/penalize", func(c *gin.Context) {
				handler.PenalizeHandler(c, penalizeService)
			})
		}
	}

	return router
}

func main() {
	cfg := config.LoadAppConfig()
	roster := config.LoadUsers()

	// Redis-backed leaderboard cache is optional
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewLeaderboardCache(redisURL)
		if err != nil {
			log.Printf("Warning: leaderboard cache disabled: %v", err)
		} else {
			services.GlobalLeaderboardCache = cache
		}
	}

	if db := os.Getenv("MONGO_DB"); db != "" {
		if err := repository.SetupIndexes(utils.MongoClient.Database(db)); err != nil {
			log.Printf("Warning: failed to set up indexes: %v", err)
		}
	}

	router := setupRouter(cfg, roster)

	penalizeService := usecase.NewPenalizeService(
		repository.GetUsersRepo(utils.MongoClient),
		repository.GetLogsRepo(utils.MongoClient),
		cfg,
		roster,
	)
	sched, err := scheduler.Start(penalizeService)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Feed the CPU gauge in the background
	sampleInterval := utils.GetEnvAsDuration("CPU_SAMPLE_INTERVAL", 15*time.Second)
	go func() {
		for {
			middleware.CPUUsage.Set(utils.GetCPUUsage())
			time.Sleep(sampleInterval)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		log.Printf("Caught signal %s, shutting down", sig)
		if err := sched.Shutdown(); err != nil {
			log.Printf("Scheduler shutdown error: %v", err)
		}
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
