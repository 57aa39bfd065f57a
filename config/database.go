package config

import (
	"fmt"
	"log"

	"storeapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

func ConnectDB(cfg DBConfig) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return nil
}

// Migrate creates or updates the tables of every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}
