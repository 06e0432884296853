// Command migrate applies the database schema for the backend.
//
// Connect runs AutoMigrate automatically outside production; this tool
// exists to apply the schema explicitly, including in production.
package main

import (
	"log"

	"anondo/internal/config"
	"anondo/internal/database"
	"anondo/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}
	log.Println("schema applied")

	if err := seed.Categories(db); err != nil {
		log.Fatalf("seed built-in categories failed: %v", err)
	}
	log.Println("built-in categories ensured")
}
