package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:contact-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ContactChannel{}); err != nil {
		t.Fatalf("failed to migrate contact channels: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestContactServiceUpsertDefaultsDisplayAndHref(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	channel, err := svc.UpsertChannel(ContactChannelInput{Type: "email", Value: "me@example.com"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if channel.DisplayText != "me@example.com" {
		t.Fatalf("expected display text to fall back to value, got %q", channel.DisplayText)
	}
	if channel.Href != "me@example.com" {
		t.Fatalf("expected href to fall back to value, got %q", channel.Href)
	}
}

func TestContactServiceUpsertKeepsSingleRowPerType(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	if _, err := svc.UpsertChannel(ContactChannelInput{Type: "github", Value: "octocat"}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	updated, err := svc.UpsertChannel(ContactChannelInput{Type: "github", Value: "hubber", Href: "https://github.com/hubber"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if updated.Value != "hubber" {
		t.Fatalf("expected second value to win, got %q", updated.Value)
	}
	if updated.Href != "https://github.com/hubber" {
		t.Fatalf("expected explicit href to be kept, got %q", updated.Href)
	}

	var count int64
	if err := gdb.Model(&db.ContactChannel{}).Where("type = ?", "github").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row for type github, got %d", count)
	}
}

func TestContactServiceUpsertValidation(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	if _, err := svc.UpsertChannel(ContactChannelInput{Type: "carrier-pigeon", Value: "coo"}); !errors.Is(err, ErrContactInvalidInput) {
		t.Fatalf("expected invalid input for unknown type, got %v", err)
	}
	if _, err := svc.UpsertChannel(ContactChannelInput{Type: "email", Value: "  "}); !errors.Is(err, ErrContactInvalidInput) {
		t.Fatalf("expected invalid input for blank value, got %v", err)
	}
}

func TestContactServiceTypeNormalization(t *testing.T) {
	gdb, cleanup := setupContactServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(gdb)

	channel, err := svc.UpsertChannel(ContactChannelInput{Type: " LinkedIn ", Value: "in/me"})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if channel.Type != db.ContactTypeLinkedIn {
		t.Fatalf("expected type to be normalized to linkedin, got %q", channel.Type)
	}
}
