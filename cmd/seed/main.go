package main

import (
	"log"

	"sekolahku_backend/internals/configs"
	database "sekolahku_backend/internals/databases"
	"sekolahku_backend/internals/seeds"
)

// Standalone migrate + seed entrypoint: go run ./cmd/seed
func main() {
	configs.LoadEnv()
	database.ConnectDB()

	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}

	seeds.RunAllSeeds(database.DB)
	log.Println("[INFO] seeding done.")
}
