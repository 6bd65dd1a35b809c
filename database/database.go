package database

import (
	"fmt"
	"log"
	"os"

	"southbound-app/internal/domain/cities"
	"southbound-app/internal/domain/countries"
	"southbound-app/internal/domain/leads"
	"southbound-app/internal/domain/routes"
	"southbound-app/internal/domain/trips"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&cities.City{},
		&countries.Country{},
		&routes.Route{},
		&leads.Lead{},
		&trips.TripTemplate{},
		&trips.RouteCard{},
		&trips.DefaultTrip{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
