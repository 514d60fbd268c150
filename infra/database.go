// Package infra wires the application to its backing services.
package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	infrarepo "github.com/msaleh83/investo/infra/repository"
)

// NewDBConnection opens a Postgres connection and migrates the schema.
func NewDBConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&infrarepo.User{},
		&infrarepo.Transaction{},
		&infrarepo.Payment{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
