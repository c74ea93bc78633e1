package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment
// variables, enables PostGIS and migrates the marketplace schema.
func InitDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "gigboard")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Location queries need PostGIS
	db.Exec("CREATE EXTENSION IF NOT EXISTS postgis;")

	err = db.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Worker{},
		&models.Job{},
		&models.JobApplication{},
		&models.Employment{},
		&models.WorkRecord{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Proximity filtering on jobs.location
	db.Exec("CREATE INDEX IF NOT EXISTS idx_jobs_location ON jobs USING GIST (location);")

	DB = db
	return db
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
