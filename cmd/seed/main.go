package main

import (
	"log"
	"os"

	"rentmarket/internal/database"
	"rentmarket/internal/domain"
	"rentmarket/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rentmarket.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment_images")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM provider_profiles")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	providerHash, _ := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
	provider := domain.User{
		Email:        "provider@rentmarket.dev",
		PasswordHash: string(providerHash),
		Role:         domain.RoleProvider,
		Name:         "Nordic Machinery OÜ",
	}
	db.Create(&provider)
	log.Println("Provider created: provider@rentmarket.dev / provider123")

	renterHash, _ := bcrypt.GenerateFromPassword([]byte("renter123"), bcrypt.DefaultCost)
	renter := domain.User{
		Email:        "renter@rentmarket.dev",
		PasswordHash: string(renterHash),
		Role:         domain.RoleRenter,
		Name:         "Sam Carter",
	}
	db.Create(&renter)
	log.Println("Renter created: renter@rentmarket.dev / renter123")

	db.Exec(
		"INSERT INTO provider_profiles (user_id, company_name, full_name, email, created_at) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)",
		provider.ID, "Nordic Machinery", "Mikkel Sorensen", provider.Email,
	)

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	items := []struct {
		title    string
		category string
		location string
		rate     float64
		status   string
		features string
	}{
		{"Kubota KX019 mini excavator", "excavators", "Tallinn", 180, "available",
			`["1.9t operating weight","Rubber tracks","Three buckets included"]`},
		{"Husqvarna K770 power cutter", "power-tools", "Tartu", 45, "available",
			`["14in blade","Wet cutting kit"]`},
		{"Atlas Copco XAS 88 compressor", "compressors", "Tallinn", 95, "unavailable",
			`["5 m3/min","Road towable"]`},
	}

	for i, it := range items {
		db.Exec(
			`INSERT INTO equipment (owner_id, title, description, category, location, daily_rate, status, features, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
			provider.ID, it.title, "Well maintained, serviced before every rental.",
			it.category, it.location, it.rate, it.status, it.features,
		)

		var equipmentID int64
		db.Raw("SELECT id FROM equipment WHERE title = ?", it.title).Scan(&equipmentID)

		db.Exec(
			"INSERT INTO equipment_images (equipment_id, url, is_main) VALUES (?, ?, ?)",
			equipmentID, "https://images.rentmarket.dev/eq/"+it.category+"-front.jpg", false,
		)
		db.Exec(
			"INSERT INTO equipment_images (equipment_id, url, is_main) VALUES (?, ?, ?)",
			equipmentID, "https://images.rentmarket.dev/eq/"+it.category+"-main.jpg", true,
		)

		log.Printf("Equipment %d/%d created: %s", i+1, len(items), it.title)
	}

	log.Println("Seed complete.")
}
