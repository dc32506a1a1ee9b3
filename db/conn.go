// Package db contains the database connection and schema setup
package db

import (
	"fmt"
	"studyvault/edu-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("database.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("database.dsn"))
	default:
		dial = sqlite.Open(viper.GetString("database.dsn"))
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		model.User{},
		model.Subject{},
		model.File{},
		model.Favorite{},
		model.Question{},
		model.Answer{},
	)
	if err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return nil
}
