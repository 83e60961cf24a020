package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/auth"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/catalog"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/inventory"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/pos"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/report"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/tax"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/user"
	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/warehouse"
	"github.com/fahrizalfarid/rider-pos-backend/pkg/events"
	"github.com/fahrizalfarid/rider-pos-backend/pkg/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Cross-cutting: events, metrics, idempotency ─────────
	publisher := events.NewKafkaPublisher(os.Getenv("KAFKA_BROKERS"), "riderpos.sales")
	defer publisher.Close()

	posMetrics := metrics.NewPOSMetrics()
	router.Handle("/metrics", metrics.Handler())

	idempotency := pos.NewNopIdempotencyStore()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis unavailable at %s: %v", addr, err)
		}
		idempotency = pos.NewRedisIdempotencyStore(rdb)
		defer rdb.Close()
	}

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(userRepo)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & Warehouse ─────────────────────────────────
	categoryRepo := catalog.NewCategoryPostgresRepository(db)
	productRepo := catalog.NewProductPostgresRepository(db)
	catalogService := catalog.NewService(categoryRepo, productRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	warehouseRepo := warehouse.NewPostgresRepository(db)
	warehouseService := warehouse.NewService(warehouseRepo)
	warehouse.NewHandler(warehouseService).RegisterRoutes(router)

	// ── Rider Inventory & Distribution ──────────────────────
	inventoryRepo := inventory.NewPostgresRepository(db)
	inventoryService := inventory.NewService(inventoryRepo, publisher)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	// ── Tax & POS Checkout ──────────────────────────────────
	taxRepo := tax.NewPostgresRepository(db)
	taxService := tax.NewService(taxRepo)
	tax.NewHandler(taxService).RegisterRoutes(router)

	posRepo := pos.NewPostgresRepository(db)
	posService := pos.NewService(posRepo, taxService, idempotency, publisher, posMetrics)
	pos.NewHandler(posService).RegisterRoutes(router)

	// ── Reporting ───────────────────────────────────────────
	reportRepo := report.NewPostgresRepository(db)
	reportService := report.NewService(reportRepo)
	report.NewHandler(reportService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Rider POS API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
