package main

import (
	"log"
	"strconv"
	"time"

	"lightning-talks-backend/internal/cache"
	"lightning-talks-backend/internal/clock"
	"lightning-talks-backend/internal/config"
	"lightning-talks-backend/internal/database"
	"lightning-talks-backend/internal/handlers"
	"lightning-talks-backend/internal/middleware"
	"lightning-talks-backend/internal/notify"
	"lightning-talks-backend/internal/services"

	_ "lightning-talks-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Lightning Talks API
// @version         1.0
// @description     API for lightning talk submissions, session scheduling and the public schedule view
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	clk := &clock.DefaultClock{}

	ttlSec, _ := strconv.Atoi(cfg.CacheTTLSeconds)
	if ttlSec <= 0 {
		ttlSec = 60
	}
	readCache := cache.New(cfg.RedisAddr, time.Duration(ttlSec)*time.Second)
	if readCache == nil {
		log.Println("REDIS_ADDR not set, read cache disabled")
	}
	defer readCache.Close()

	notifier := notify.New(cfg.WebhookURL)
	if notifier == nil {
		log.Println("WEBHOOK_URL not set, submission notifications disabled")
	}
	notifier.Start()
	defer notifier.Close()

	sessionService := services.NewSessionService(db, readCache, clk)
	talkService := services.NewTalkService(db, readCache, clk, notifier, cfg.TrustedEmailDomain)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	talkHandler := handlers.NewTalkHandler(talkService)
	scheduleHandler := handlers.NewScheduleHandler(talkService)

	ident := middleware.NewIdentity(db, cfg.JWTSecret, cfg.AdminEmails)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/sessions", sessionHandler.ListSessions)
	r.POST("/sessions", ident.Required(), ident.AdminOnly(), sessionHandler.CreateSession)
	r.PUT("/sessions", ident.Required(), ident.AdminOnly(), sessionHandler.UpdateSession)
	r.DELETE("/sessions", ident.Required(), ident.AdminOnly(), sessionHandler.DeleteSession)
	r.GET("/available-sessions", sessionHandler.AvailableSessions)

	r.GET("/talks", talkHandler.ListTalks)
	r.POST("/talks", ident.Optional(), talkHandler.CreateTalk)
	r.GET("/my-talks", ident.Required(), talkHandler.MyTalks)
	r.GET("/talk/:id", talkHandler.GetTalk)
	r.PUT("/talk/:id", ident.Required(), talkHandler.UpdateTalk)
	r.DELETE("/talk/:id", ident.Required(), talkHandler.DeleteTalk)
	r.PATCH("/talk/:id", ident.Required(), ident.AdminOnly(), talkHandler.SetTalkStatus)

	r.GET("/daily-schedule", scheduleHandler.DailySchedule)
	r.POST("/daily-schedule", ident.Required(), ident.AdminOnly(), scheduleHandler.BulkSetStartTimes)
	r.GET("/schedule-dates", scheduleHandler.ScheduleDates)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
