package config

import (
	"log"
	"os"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// PlatformCommissionRate is the platform's cut of delivered-order revenue.
// Every revenue split in the system derives from this single constant.
const PlatformCommissionRate = 0.20

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) so local runs pick up overrides.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "food_ordering_super_secret_2024"))
}

func InitDB() {
	var err error
	dbPath := getEnv("DB_PATH", "food_ordering.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate applies the schema for all models. Split out so tests can run it
// against their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
