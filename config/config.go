package config

import (
	"log"
	"os"

	"github.com/itsiftikar02/Hospital-Management-System/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the only external configuration surface: the store file path.
type Config struct {
	DBPath string
}

// Load reads .env if present, then the environment, with a local fallback.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		DBPath: getEnv("HOSPITAL_DB", "hospital.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Open opens (or creates) the SQLite store at path and migrates the schema.
// Re-running on an existing store is a no-op, never destructive.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Patient{},
		&models.Administrator{},
		&models.Appointment{},
		&models.MedicalReport{},
		&models.Billing{},
		&models.Receipt{},
		&models.PatientRegistration{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// MustOpen is Open with the startup abort path: a schema or storage failure
// here is unrecoverable.
func MustOpen(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	return db
}
