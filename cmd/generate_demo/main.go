// Command generate_demo creates a demo database with the seeded catalog and a
// sample account, useful for local frontend work.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/qazaqkitap/qazaqkitap/internal/auth"
	"github.com/qazaqkitap/qazaqkitap/internal/config"
	"github.com/qazaqkitap/qazaqkitap/internal/database"
	"github.com/qazaqkitap/qazaqkitap/internal/database/cart"
	"github.com/qazaqkitap/qazaqkitap/internal/database/favorites"
)

const defaultDemoDatabasePath = "./demo/demo.db"

const (
	demoUsername = "demo"
	demoEmail    = "demo@qazaqkitap.kz"
	demoPassword = "demo-password"
)

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if err := db.SeedCatalog(); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Low bcrypt cost is fine for throwaway demo data
	service := auth.NewService(db.DB, config.Auth{BcryptCost: 6})
	user, err := service.Register(demoUsername, demoEmail, demoPassword)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}
	log.Printf("Created demo user %s (%s), password %q", user.Username, user.Email, demoPassword)

	favoritesRepo := favorites.NewRepository(db.DB)
	cartRepo := cart.NewRepository(db.DB)

	for _, bookID := range []uint{1, 3, 5} {
		if _, err := favoritesRepo.CreateFavorite(user.ID, bookID); err != nil {
			log.Printf("Failed to favorite book %d: %v", bookID, err)
		}
	}
	for _, bookID := range []uint{2, 4} {
		if _, err := cartRepo.CreateItem(user.ID, bookID); err != nil {
			log.Printf("Failed to add book %d to cart: %v", bookID, err)
		}
	}

	log.Println("Demo database generated successfully!")
}
