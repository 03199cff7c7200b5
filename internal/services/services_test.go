package services

import (
	"testing"
	"time"

	"lightning-talks-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.Talk{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
func strPtr(s string) *string { return &s }
