// Package gormstore is the SQLite-backed alternative to jsonstore, mapping
// each collection to a table with per-record writes.
package gormstore

import (
	"github.com/Gav1n0112/keya/internal/domain"
	"github.com/Gav1n0112/keya/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Software{},
		&domain.Key{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:     NewUserRepository(db),
		Software: NewSoftwareRepository(db),
		Key:      NewKeyRepository(db),
	}
}
