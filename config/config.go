package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/studyhub/studyhub-backend/models"
)

var DB *gorm.DB

// Getenv returns the env value or a fallback.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("cannot connect to database: ", err)
	}

	DB = db

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("cannot get sql.DB from gorm: ", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.Review{},
		&models.ChatHistory{},
		&models.Quiz{},
		&models.QuizResult{},
	)
	if err != nil {
		log.Fatal("autoMigrate failed: ", err)
	}
	log.Println("postgreSQL connected & migrated")

	if err := seedAdmin(DB); err != nil {
		log.Fatal("admin bootstrap failed: ", err)
	}
}

// seedAdmin makes sure the bootstrap admin exists as a real user row, so
// reviews, chat histories and quiz results always reference a uuid.
func seedAdmin(db *gorm.DB) error {
	usn := strings.ToUpper(Getenv("ADMIN_USN", "ADMIN"))
	dobStr := Getenv("ADMIN_DOB", "2005-02-01")
	dob, err := time.Parse("2006-01-02", dobStr)
	if err != nil {
		return fmt.Errorf("invalid ADMIN_DOB %q: %w", dobStr, err)
	}

	var existing models.User
	err = db.Where("usn = ?", usn).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	admin := models.User{
		Name:         "Admin",
		USN:          &usn,
		DateOfBirth:  dob,
		Role:         models.RoleAdmin,
		IsSubscribed: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded bootstrap admin user")
	return nil
}
