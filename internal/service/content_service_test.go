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

func setupContentServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:content-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ContentField{}); err != nil {
		t.Fatalf("failed to migrate content fields: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestContentServiceUpsertInsertsThenUpdates(t *testing.T) {
	gdb, cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)

	first, err := svc.UpsertField("hero", "name", "Alice")
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.Value != "Alice" {
		t.Fatalf("expected value Alice, got %q", first.Value)
	}

	second, err := svc.UpsertField("hero", "name", "Bob")
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.Value != "Bob" {
		t.Fatalf("expected value Bob, got %q", second.Value)
	}
	if second.ID != first.ID {
		t.Fatalf("expected upsert to reuse row %d, got %d", first.ID, second.ID)
	}

	var count int64
	if err := gdb.Model(&db.ContentField{}).Where("section = ? AND field = ?", "hero", "name").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row for the key, got %d", count)
	}
}

func TestContentServiceUpsertValidation(t *testing.T) {
	gdb, cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)

	if _, err := svc.UpsertField("", "name", "x"); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input for empty section, got %v", err)
	}
	if _, err := svc.UpsertField("hero", "  ", "x"); !errors.Is(err, ErrContentInvalidInput) {
		t.Fatalf("expected invalid input for blank field, got %v", err)
	}
}

func TestContentServiceListSeesOwnWrites(t *testing.T) {
	gdb, cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)

	before, err := svc.ListFields()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(before))
	}

	if _, err := svc.UpsertField("footer", "description", "hello"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	after, err := svc.ListFields()
	if err != nil {
		t.Fatalf("list after upsert failed: %v", err)
	}
	if len(after) != 1 || after[0].Value != "hello" {
		t.Fatalf("expected cached list to be refreshed after write, got %#v", after)
	}
}
