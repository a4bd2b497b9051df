package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/auth"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/builder"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/cart"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/checkout"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/db"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/router"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/storage"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/styler"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── CART STORE ─────────────────────────
	var cartRepo cart.Repository
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal("Invalid REDIS_URL:", err)
		}
		cartRepo, err = cart.NewRedisRepository(context.Background(), redis.NewClient(opts))
		if err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Println("Carts stored in redis")
	} else {
		cartRepo = cart.NewInMemoryRepository()
		log.Println("REDIS_URL not set, carts are session-scoped in memory")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)

	builderService := builder.NewService()
	cartService := cart.NewService(cartRepo, builderService)

	orderRepo := checkout.NewPostgresRepository(pgDB)
	checkoutService := checkout.NewService(orderRepo, cartService)

	// ───────────────────────── HANDLERS ─────────────────────────
	deps := router.Deps{
		Auth:     auth.NewHandler(authService),
		Catalog:  catalog.NewHandler(),
		Builder:  builder.NewHandler(builderService),
		Cart:     cart.NewHandler(cartService),
		Checkout: checkout.NewHandler(checkoutService),
	}

	// ───────────────────────── STYLER (OPTIONAL) ─────────────────────────
	if os.Getenv("GEMINI_API_KEY") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		stylerService := styler.NewService(styler.NewGeminiClient(), r2Client)
		deps.Styler = styler.NewHandler(stylerService)
		log.Println("Styler enabled")
	}

	// ───────────────────────── START ─────────────────────────
	r := router.NewRouter(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
