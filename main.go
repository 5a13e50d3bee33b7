package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"voetbal-game-server/config"
	"voetbal-game-server/handlers"
	"voetbal-game-server/models"
	"voetbal-game-server/services"
	"voetbal-game-server/utils"
	"voetbal-game-server/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{})

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.GameStateSnapshot{}); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	balance, err := config.LoadBalance(os.Getenv("BALANCE_CONFIG_PATH"))
	if err != nil {
		log.Fatal("failed to load balance config:", err)
	}

	// Catalog data comes from the scraper's R2 bucket; a local directory
	// overrides it for development.
	var source services.CatalogSource
	if dir := os.Getenv("CATALOG_DATA_DIR"); dir != "" {
		log.Printf("Using local catalog data from %s", dir)
		source = services.LocalDirSource{Dir: dir}
	} else {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		source = services.R2Source{Prefix: "catalog/"}
	}
	catalog := services.NewCatalogService(source)

	manager := services.NewStateManager(db, balance, config.DefaultTableToClubMapping, catalog, services.DefaultRNG())
	manager.StartSnapshotScheduler(30 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalogWorker := workers.NewCatalogSyncWorker(catalog, 30*time.Second)
	go func() {
		log.Println("Starting Catalog Sync Worker...")
		catalogWorker.Start(ctx)
	}()

	// ✅ Setup routes — the gateway forwards /api/v1/game/s/* here
	handlers.SetupSessionRoutes(app, manager)
	handlers.SetupTournamentRoutes(app, manager)
	handlers.SetupCollectionRoutes(app, manager)
	handlers.SetupStaffRoutes(app, manager)
	handlers.SetupCatalogRoutes(app, catalog)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5200"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Catalog Sync Worker running")
	log.Println("✅ Snapshot autosave running (every 30s)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if flushed := manager.FlushAll(); flushed > 0 {
		log.Printf("💾 Saved %d game state(s) on shutdown", flushed)
	}
}
