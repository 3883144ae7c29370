package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "supplydesk/internal/adapters/web"
	"supplydesk/internal/app"
	"supplydesk/internal/core"
	"supplydesk/internal/db"
	"supplydesk/internal/store/memory"
	"supplydesk/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var store core.Store
	if os.Getenv("DATABASE_URL") != "" {
		pool, err := db.NewPool(ctx)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		store = postgres.NewStore(pool)
	} else {
		log.Println("Warning: DATABASE_URL is not set, using in-memory store (data is not persisted)")
		store = memory.NewStore()
	}
	defer store.Close()

	svc := app.NewAppServiceFromStore(store)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
