package main

import (
	"log"
	"net/http"

	"excelence-server/src/api"
	"excelence-server/src/config"
	"excelence-server/src/db"
	sql "excelence-server/src/db/sql"
)

func main() {
	cfg := config.Load()

	// Apply schema migrations, including the stored aggregation functions
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	store := sql.NewStore(pool)

	// Router
	router := api.NewRouter(store, cfg)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
