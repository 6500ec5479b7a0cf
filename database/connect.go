package database

import (
	"fmt"
	"strconv"

	"uni_booking/config"
	"uni_booking/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	// TranslateError so the unique slot index surfaces as gorm.ErrDuplicatedKey
	// instead of a driver-specific error.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic("failed to migrate database")
	}
	fmt.Println("Database Migrated")

	SeedData(DB)
}

// Migrate creates the schema. Kept separate from ConnectDB so tests can run it
// against their own connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AdminUser{},
		&model.Resource{},
		&model.Day{},
		&model.Hour{},
		&model.Booking{},
	)
}
