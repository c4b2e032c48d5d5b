package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"storeapi/internal/models"
	"storeapi/internal/repo"
)

func newTestStore(t *testing.T) *repo.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// one connection, or every pooled connection would get its own empty db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}, &models.OrderProduct{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return repo.NewStore(db)
}
