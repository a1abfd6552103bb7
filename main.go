package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"forum/internal/config"
	"forum/internal/handlers"
	"forum/internal/middleware"
	"forum/internal/models"
	"forum/internal/repositories"
	"forum/internal/services"
	"forum/internal/session"
	"forum/pkg/rabbitmq"
)

// NewApp wires repositories, services and handlers into a Fiber app. The
// configuration is read-only from here on; the only process-wide mutable
// state is inside the session storage.
func NewApp(cfg *config.Config, db *gorm.DB, mqClient *rabbitmq.Client) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	threadRepo := repositories.NewGORMThreadRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, mqClient, services.DefaultHashCost)
	userService := services.NewUserService(userRepo)
	threadService := services.NewThreadService(threadRepo)
	postService := services.NewPostService(postRepo, mqClient)
	commentService := services.NewCommentService(commentRepo, mqClient)

	// --- Session manager (cookie "session", absolute + sliding expiry) ---
	sessions := session.NewManager(session.Config{
		Duration:       cfg.SessionDuration,
		ActiveDuration: cfg.SessionActiveDuration,
		CookieSecure:   cfg.SessionCookieSecure,
	})
	authRequired := middleware.SessionRequired(sessions)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(authService, userService, sessions)
	threadHandler := handlers.NewThreadHandler(threadService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// --- Fiber app and middleware ---
	app := fiber.New()
	app.Use(helmet.New())     // Security headers
	app.Use(logger.New())     // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientOrigin,
		AllowCredentials: true,
	}))

	// --- Routes ---
	userHandler.RegisterRoutes(app)
	threadHandler.RegisterRoutes(app, authRequired)
	postHandler.RegisterRoutes(app, authRequired)
	commentHandler.RegisterRoutes(app, authRequired)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Static client build with SPA fallback ---
	// Registered last so API routes always win.
	app.Static("/", cfg.StaticDir)
	app.Get("*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return app
}

func main() {
	// --- Configuration ---
	// Built once from the environment; passed by reference, never mutated.
	cfg := config.Load()

	// --- Database ---
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Thread{}, &models.Post{}, &models.Comment{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ Client ---
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
	}
	defer mqClient.Close() // Ensure the connection is closed on exit

	app := NewApp(cfg, db, mqClient)

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for account lifecycle events. Consumers downstream would send
	// welcome emails or warm caches; here we only log deliveries.
	go func() {
		log.Println("Starting RabbitMQ consumer for user events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received User Event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}
		if consumerErr := mqClient.ConsumeUserEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
