package main

import (
	"context"
	"log"
	"time"

	"interview-service/internal/config"
	"interview-service/internal/db"
	"interview-service/internal/event"
	"interview-service/internal/handlers"
	"interview-service/internal/llm"
	"interview-service/internal/middleware"
	"interview-service/internal/models"
	"interview-service/internal/repository"
	"interview-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.EventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.EventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}
	publish := func(eventType string, payload interface{}) {
		if publisher != nil {
			if err := publisher.Publish(eventType, payload); err != nil {
				log.Printf("Failed to publish %s: %v", eventType, err)
			}
		}
	}

	generator := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	sessionRepo := repository.NewSessionRepository(database, "sessions")
	actualRepo := repository.NewSessionRepository(database, "actuals")
	questionRepo := repository.NewQuestionRepository(database)
	feedbackRepo := repository.NewFeedbackRepository(database)

	submitService := service.NewSubmitService(sessionRepo, actualRepo, questionRepo, feedbackRepo, generator)
	sessionService := service.NewSessionService(sessionRepo, actualRepo, questionRepo, cfg.TimerDuration)
	questionService := service.NewQuestionService(questionRepo, sessionRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	sessionHandler := handlers.NewSessionHandler(models.KindSession, sessionService, submitService)
	actualHandler := handlers.NewSessionHandler(models.KindActual, sessionService, submitService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	aiHandler := handlers.NewAIHandler(generator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)

	// Background timer sweep auto-submits expired sessions.
	sweeper := service.NewSweeper(submitService, cfg.SweepInterval)
	sweeper.OnAutoSubmit = func(kind, sessionID string) {
		publish(event.SessionExpired, gin.H{"kind": kind, "session_id": sessionID})
	}
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sweeper.Run(sweepCtx)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := middleware.Auth(cfg.JWTSecret)

	sessions := r.Group("/api/sessions", auth)
	{
		sessions.POST("/create", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			publish(event.SessionCreated, gin.H{"kind": models.KindSession, "user_id": c.GetString(middleware.UserIDKey)})
		})
		sessions.GET("/my-sessions", sessionHandler.GetMySessions)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.DELETE("/:id", sessionHandler.DeleteSession)
		sessions.POST("/:id/submit", func(c *gin.Context) {
			sessionHandler.SubmitSession(c)
			publish(event.SessionSubmitted, gin.H{"kind": models.KindSession, "session_id": c.Param("id")})
		})
		sessions.POST("/:id/user-feedback", sessionHandler.SetUserFeedback)
		sessions.GET("/:id/remaining-time", sessionHandler.GetRemainingTime)
	}

	actual := r.Group("/api/actual", auth)
	{
		actual.POST("/create", func(c *gin.Context) {
			actualHandler.CreateActualSession(c)
			publish(event.SessionCreated, gin.H{"kind": models.KindActual, "user_id": c.GetString(middleware.UserIDKey)})
		})
		actual.GET("/available-topics", actualHandler.GetAvailableTopics)
		actual.GET("/my-sessions", actualHandler.GetMySessions)
		actual.GET("/:id", actualHandler.GetSession)
		actual.DELETE("/:id", actualHandler.DeleteSession)
		actual.POST("/:id/submit", func(c *gin.Context) {
			actualHandler.SubmitSession(c)
			publish(event.SessionSubmitted, gin.H{"kind": models.KindActual, "session_id": c.Param("id")})
		})
		actual.POST("/:id/user-feedback", actualHandler.SetUserFeedback)
		actual.GET("/:id/remaining-time", actualHandler.GetRemainingTime)
		actual.POST("/answer/:id", questionHandler.SaveAnswer)
	}

	questions := r.Group("/api/questions", auth)
	{
		questions.POST("/add", questionHandler.AddToSession)
		questions.POST("/:id/answer", questionHandler.SaveAnswer)
		questions.POST("/:id/pin", questionHandler.TogglePin)
		questions.POST("/:id/note", questionHandler.UpdateNote)
	}

	ai := r.Group("/api/ai", auth)
	{
		ai.POST("/generate-questions", aiHandler.GenerateQuestions)
		ai.POST("/generate-explanation", aiHandler.GenerateExplanation)
		ai.POST("/check-answer", aiHandler.CheckAnswer)
		ai.POST("/generate-feedback", aiHandler.GenerateFeedback)
	}

	feedback := r.Group("/api/feedback", auth)
	{
		feedback.POST("/", func(c *gin.Context) {
			feedbackHandler.StoreFeedback(c)
			publish(event.FeedbackStored, gin.H{"user_id": c.GetString(middleware.UserIDKey)})
		})
		feedback.GET("/user", feedbackHandler.GetUserFeedback)
		feedback.GET("/:sessionType/:sessionId", feedbackHandler.GetFeedbackBySession)
		feedback.DELETE("/:id", feedbackHandler.DeleteFeedback)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Printf("Interview service listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
