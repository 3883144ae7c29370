package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"supplydesk/internal/db"
)

// Applies the schema in migrations/ (or the file given as the first argument)
// against DATABASE_URL. The schema is idempotent, so re-running is safe.
func main() {
	_ = godotenv.Load()

	path := "migrations/001_init.sql"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("apply %s: %v", path, err)
	}
	log.Printf("applied %s", path)
}
