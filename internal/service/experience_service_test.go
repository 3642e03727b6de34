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

func setupExperienceServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:experience-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.ExperienceEntry{}); err != nil {
		t.Fatalf("failed to migrate experience entries: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestExperienceServiceCreatePreservesBulletOrder(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	created, err := svc.CreateEntry(ExperienceInput{
		Company:     "Acme",
		Position:    "Engineer",
		Duration:    "2022 - Present",
		Location:    "Remote",
		Description: []string{"built the data layer", "", "led the migration"},
	})
	if err != nil {
		t.Fatalf("create entry failed: %v", err)
	}

	if len(created.Description) != 2 {
		t.Fatalf("expected empty bullets to be dropped, got %#v", created.Description)
	}
	if created.Description[0] != "built the data layer" || created.Description[1] != "led the migration" {
		t.Fatalf("expected bullets in input order, got %#v", created.Description)
	}

	entries, err := svc.ListEntries()
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Description[1] != "led the migration" {
		t.Fatalf("expected bullets to survive the round trip, got %#v", entries)
	}
}

func TestExperienceServiceValidation(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)

	cases := []ExperienceInput{
		{Position: "Engineer", Duration: "2022"},
		{Company: "Acme", Duration: "2022"},
		{Company: "Acme", Position: "Engineer"},
	}
	for _, input := range cases {
		if _, err := svc.CreateEntry(input); !errors.Is(err, ErrExperienceInvalidInput) {
			t.Fatalf("expected invalid input for %#v, got %v", input, err)
		}
	}
}

func TestExperienceServicePartialUpdate(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	created, err := svc.CreateEntry(ExperienceInput{Company: "Acme", Position: "Engineer", Duration: "2022"})
	if err != nil {
		t.Fatalf("create entry failed: %v", err)
	}

	position := "Senior Engineer"
	updated, err := svc.UpdateEntry(created.ID, ExperienceUpdateInput{Position: &position})
	if err != nil {
		t.Fatalf("update entry failed: %v", err)
	}

	if updated.Position != "Senior Engineer" {
		t.Fatalf("expected position to change, got %q", updated.Position)
	}
	if updated.Company != "Acme" || updated.Duration != "2022" {
		t.Fatalf("expected omitted fields to be preserved, got %#v", updated)
	}
}

func TestExperienceServiceUpdateMissingEntry(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	company := "Ghost"
	if _, err := svc.UpdateEntry(9999, ExperienceUpdateInput{Company: &company}); !errors.Is(err, ErrExperienceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExperienceServiceDeleteIsIdempotent(t *testing.T) {
	gdb, cleanup := setupExperienceServiceTestDB(t)
	defer cleanup()

	svc := NewExperienceService(gdb)
	if err := svc.DeleteEntry(8888); err != nil {
		t.Fatalf("deleting unknown id should be a no-op, got %v", err)
	}
}
