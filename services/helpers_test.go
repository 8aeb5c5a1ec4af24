// file: services/helpers_test.go
package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"RunClub/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个测试一个独立的内存 SQLite 库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.Event{}, &models.Category{}, &models.Player{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func uintPtr(n uint) *uint {
	return &n
}

func seedEvent(t *testing.T, db *gorm.DB) models.Event {
	t.Helper()
	event := models.Event{
		Title:     "City Marathon 2026",
		StartDate: time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC),
		IsActive:  true,
		IsPublish: true,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatal(err)
	}
	return event
}

func seedCategory(t *testing.T, db *gorm.DB, eventID uint, title string, bibStart, bibEnd *uint) models.Category {
	t.Helper()
	category := models.Category{
		EventID:  eventID,
		Title:    title,
		IsActive: true,
		BibStart: bibStart,
		BibEnd:   bibEnd,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal(err)
	}
	return category
}

func seedPlayer(t *testing.T, db *gorm.DB, eventID uint, categoryID *uint, name, email string) models.Player {
	t.Helper()
	player := models.Player{
		FullName:           name,
		ContactNumber:      "9800000000",
		Email:              email,
		Gender:             models.GenderFemale,
		EventID:            eventID,
		CategoryID:         categoryID,
		VerificationStatus: models.VerificationPending,
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatal(err)
	}
	return player
}

// recordingNotifier 记录每次发送，可配置为总是失败
type recordingNotifier struct {
	sent []NotificationKind
	fail bool
}

func (n *recordingNotifier) Send(kind NotificationKind, payload NotificationPayload) error {
	n.sent = append(n.sent, kind)
	if n.fail {
		return fmt.Errorf("smtp unreachable")
	}
	return nil
}
