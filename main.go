package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"planner-service/internal/db"
	"planner-service/internal/event"
	"planner-service/internal/handlers"
	"planner-service/internal/repository"
	"planner-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, planner events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	mongoClient := db.Client
	database := mongoClient.Database("planner_service")

	// Plans
	planRepo := repository.NewPlanRepository(database)
	planService := service.NewPlanService(planRepo)
	planHandler := handlers.NewPlanHandler(planService)

	// Disciplines and their weighted subjects
	disciplineRepo := repository.NewDisciplineRepository(database)
	disciplineService := service.NewDisciplineService(disciplineRepo)
	disciplineHandler := handlers.NewDisciplineHandler(disciplineService)

	// Weekly availability windows
	availabilityRepo := repository.NewAvailabilityRepository(database)
	availabilityService := service.NewAvailabilityService(availabilityRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	// Sessions, including the automatic generator
	sessionRepo := repository.NewSessionRepository(database)
	sessionService := service.NewSessionService(
		sessionRepo,
		planRepo,
		disciplineRepo,
		availabilityRepo,
	)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Public routes - read only plan views
	publicPlan := r.Group("/public/planner/plan")
	{
		publicPlan.GET("/:id", func(c *gin.Context) {
			planHandler.GetPlan(c)
			if publisher != nil {
				publisher.Publish("planner.plan.viewed", gin.H{"id": c.Param("id")})
			}
		})
		publicPlan.GET("/:id/sessions", func(c *gin.Context) {
			sessionHandler.ListPlanSessions(c)
			if publisher != nil {
				publisher.Publish("planner.plan.sessions_viewed", gin.H{"id": c.Param("id")})
			}
		})
	}

	setupProtectedRoutes(r, planHandler, disciplineHandler, availabilityHandler, sessionHandler, publisher)

	port := os.Getenv("PORT")
	if port == "" {
		port = "6667"
	}
	r.Run(":" + port)
}

func setupProtectedRoutes(
	r *gin.Engine,
	planHandler *handlers.PlanHandler,
	disciplineHandler *handlers.DisciplineHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	sessionHandler *handlers.SessionHandler,
	publisher *event.EventPublisher,
) {
	protected := r.Group("/protected/planner")

	// Authentication middleware: the gateway sets X-User-ID on every
	// authenticated request.
	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})

	// === PLANS ===
	plan := protected.Group("/plan")
	{
		plan.GET("/", planHandler.ListPlans)

		plan.POST("/", func(c *gin.Context) {
			planHandler.CreatePlan(c)
			if publisher != nil {
				publisher.Publish("planner.plan.created", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		plan.PUT("/:id", func(c *gin.Context) {
			planHandler.UpdatePlan(c)
			if publisher != nil {
				publisher.Publish("planner.plan.updated", gin.H{
					"plan_id": c.Param("id"),
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		plan.DELETE("/:id", func(c *gin.Context) {
			planHandler.DeletePlan(c)
			if publisher != nil {
				publisher.Publish("planner.plan.deleted", gin.H{
					"plan_id": c.Param("id"),
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		// Run the automatic scheduler over the plan's disciplines and
		// availability windows.
		plan.POST("/:id/generate", func(c *gin.Context) {
			sessionHandler.GenerateSessions(c)
			if publisher != nil {
				publisher.Publish("planner.sessions.generated", gin.H{
					"plan_id": c.Param("id"),
					"user_id": c.GetHeader("X-User-ID"),
				})
			}
		})

		plan.GET("/:id/sessions", sessionHandler.ListPlanSessions)
		plan.GET("/:id/progress", sessionHandler.GetPlanProgress)
	}

	// === DISCIPLINES ===
	discipline := protected.Group("/discipline")
	{
		discipline.GET("/", disciplineHandler.ListDisciplines)
		discipline.GET("/:id", disciplineHandler.GetDiscipline)
		discipline.POST("/", disciplineHandler.CreateDiscipline)
		discipline.PUT("/:id", disciplineHandler.UpdateDiscipline)
		discipline.DELETE("/:id", disciplineHandler.DeleteDiscipline)
	}

	// === AVAILABILITY ===
	availability := protected.Group("/availability")
	{
		availability.GET("/", availabilityHandler.ListWindows)
		availability.POST("/", availabilityHandler.CreateWindow)
		availability.PUT("/:id", availabilityHandler.UpdateWindow)
		availability.DELETE("/:id", availabilityHandler.DeleteWindow)
	}

	// === SESSIONS ===
	session := protected.Group("/session")
	{
		session.GET("/:id", sessionHandler.GetSession)
		session.POST("/", sessionHandler.CreateSession)
		session.PUT("/:id", sessionHandler.UpdateSession)
		session.DELETE("/:id", sessionHandler.DeleteSession)

		session.POST("/:id/complete", func(c *gin.Context) {
			sessionHandler.CompleteSession(c)
			if publisher != nil {
				publisher.Publish("planner.session.completed", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
				})
			}
		})
	}
}
