package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/merajfaizan/gym-management-backend/internal/api"
	"github.com/merajfaizan/gym-management-backend/internal/events"
	"github.com/merajfaizan/gym-management-backend/internal/repository"
	"github.com/merajfaizan/gym-management-backend/internal/service"
	"github.com/merajfaizan/gym-management-backend/internal/token"
	"github.com/merajfaizan/gym-management-backend/internal/tracing"
	_ "github.com/merajfaizan/gym-management-backend/migrations"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Println("No .env file found, reading from environment variables")
	}

	api.SetupGlobalHandler("gym-management")

	shutdownTracer, err := tracing.InitTracerProvider("gym-management")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET is required")
	}
	tokens := token.NewService(secret, token.DefaultTTL)

	db := connectDB()
	defer db.Close()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	log.Println("Successfully connected to NATS.")

	userRepo := repository.NewPostgresUserRepository(db)
	trainerRepo := repository.NewPostgresTrainerRepository(db)
	classRepo := repository.NewPostgresClassRepository(db)

	authService := service.NewAuthService(userRepo, tokens)
	trainerService := service.NewTrainerService(trainerRepo)
	classService := service.NewClassService(classRepo, eventPublisher)
	scheduleService := service.NewScheduleService(classRepo, trainerRepo, userRepo)

	authHandler := api.NewAuthHandler(authService, tokens)
	trainerHandler := api.NewTrainerHandler(trainerService)
	classHandler := api.NewClassHandler(classService, scheduleService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Gym management server is online")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "gym-management"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/jwt", authHandler.IssueToken)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	requireAuth := api.RequireAuth(tokens)
	requireAdmin := api.RequireRole("admin")

	app.Post("/trainers", requireAuth, requireAdmin, trainerHandler.AddTrainer)
	app.Get("/trainers", trainerHandler.ListTrainers)
	app.Get("/trainers/:id", requireAuth, requireAdmin, trainerHandler.GetTrainer)
	app.Put("/trainers/:id", requireAuth, requireAdmin, trainerHandler.UpdateTrainer)
	app.Delete("/trainers/:id", requireAuth, requireAdmin, trainerHandler.DeleteTrainer)

	app.Post("/classes", requireAuth, requireAdmin, classHandler.CreateClass)
	app.Get("/classes", classHandler.ListClasses)
	app.Get("/classes/by-day", classHandler.ClassesByDay)
	app.Put("/classes/:classId/reserve", classHandler.ReserveClass)
	app.Get("/classes-with-trainees", classHandler.ClassesWithTrainees)
	app.Get("/booked-classes/:userId", classHandler.BookedClasses)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Gym management server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations() {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}

func databaseURL() string {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASS")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)
}
