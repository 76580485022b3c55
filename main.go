package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/catalog"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/checkout"
	orderControllers "github.com/vasanthdommeti/Kiranna-Mart-Task/controllers/order"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/location"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/metrics"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/routes"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

func init() {
	if os.Getenv("LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.SetLevel(log.InfoLevel)
}

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Snapshot persistence: Postgres when configured, in-memory otherwise
	storage := initStorage()

	// State containers (hydrated from storage on construction)
	cartStore := store.NewCartStore(storage)
	ordersStore := store.NewOrdersStore(storage)
	authStore := store.NewAuthStore(storage, cartStore)

	// Location + geocoding
	locationStore := location.NewStore()
	geocoder := location.NewHTTPGeocoder(getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"))
	suggester := location.NewSuggester(geocoder, location.DefaultDebounce)
	defer suggester.Close()

	// Checkout couples cart + location + orders
	checkoutSvc := checkout.NewService(cartStore, ordersStore, locationStore, checkoutDelay())

	// Websocket fan-out for order updates
	hub := orderControllers.NewHub()
	ordersStore.OnChange(hub.BroadcastOrder)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus middleware + endpoint
	r.Use(metrics.PrometheusMiddleware("storefront-api"))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Cart:      cartStore,
		Orders:    ordersStore,
		Auth:      authStore,
		Catalog:   catalog.Default(),
		Location:  locationStore,
		Geocoder:  geocoder,
		Suggester: suggester,
		Recent:    &location.RecentSearches{},
		Checkout:  checkoutSvc,
		Hub:       hub,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage connects the snapshot store to Postgres when a database is
// configured; without one, state lives in memory for the process lifetime.
func initStorage() store.Storage {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" && os.Getenv("DB_HOST") != "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}
	if dsn == "" {
		log.Warn("⚠️ No database configured, using in-memory storage")
		return store.NewMemoryStorage()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	storage, err := store.NewGormStorage(db)
	if err != nil {
		log.Fatalf("❌ Snapshot table migration failed: %v", err)
	}
	return storage
}

// checkoutDelay reads the simulated payment delay, default 500ms.
func checkoutDelay() time.Duration {
	ms, err := strconv.Atoi(getEnv("CHECKOUT_DELAY_MS", "500"))
	if err != nil || ms < 0 {
		ms = 500
	}
	return time.Duration(ms) * time.Millisecond
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
