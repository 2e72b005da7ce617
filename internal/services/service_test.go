package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/hesapmarket/marketplace-backend/internal/config"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory database constrained to a single connection so
// concurrency tests exercise the conditional-update logic, not sqlite
// locking quirks.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GameAccount{},
		&models.Key{},
		&models.Suggestion{},
		&models.Purchase{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return &user
}

func seedGame(t *testing.T, db *gorm.DB, name string) *models.Game {
	t.Helper()
	game := models.Game{Name: name, Platform: "steam", Price: 49.99}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("failed to seed game %s: %v", name, err)
	}
	return &game
}

func seedAccount(t *testing.T, db *gorm.DB, gameID uint, username string) *models.GameAccount {
	t.Helper()
	account := models.GameAccount{
		GameID:   gameID,
		Username: username,
		Password: "account-pass",
		Email:    username + "@mail.com",
		Status:   models.AccountAvailable,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("failed to seed account %s: %v", username, err)
	}
	return &account
}

func seedKey(t *testing.T, db *gorm.DB, gameID uint, value string) *models.Key {
	t.Helper()
	key := models.Key{
		KeyValue: value,
		GameID:   gameID,
		KeyType:  "steam",
		Status:   models.KeyAvailable,
	}
	if err := db.Create(&key).Error; err != nil {
		t.Fatalf("failed to seed key %s: %v", value, err)
	}
	return &key
}
