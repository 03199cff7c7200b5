package database

import (
	"fmt"
	"log"

	"lightning-talks-backend/internal/config"
	"lightning-talks-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	// TranslateError turns driver-level constraint failures into
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated, which the services
	// remap to the conflict/validation errors the handlers report.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	// Relax NOT NULL on talks.session_id if an earlier schema set it; the
	// column must be nullable so deleting a session can orphan its talks.
	db.Exec(`DO $$
	BEGIN
		IF EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_name = 'talks' AND column_name = 'session_id' AND is_nullable = 'NO')
		THEN
			ALTER TABLE talks ALTER COLUMN session_id DROP NOT NULL;
		END IF;
	END $$;`)

	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Talk{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("database migrated")
}
