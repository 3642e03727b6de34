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

func setupSkillServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:skill-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Skill{}); err != nil {
		t.Fatalf("failed to migrate skills: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSkillServiceCreateAndListOrdering(t *testing.T) {
	gdb, cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)
	if _, err := svc.CreateSkill(SkillInput{Name: "React", Category: "Frontend", Level: 90}); err != nil {
		t.Fatalf("create skill failed: %v", err)
	}
	if _, err := svc.CreateSkill(SkillInput{Name: "Node", Category: "Backend", Level: 80}); err != nil {
		t.Fatalf("create skill failed: %v", err)
	}
	if _, err := svc.CreateSkill(SkillInput{Name: "Vue", Category: "Frontend", Level: 70}); err != nil {
		t.Fatalf("create skill failed: %v", err)
	}

	skills, err := svc.ListSkills()
	if err != nil {
		t.Fatalf("list skills failed: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}

	// 按分类聚拢，同分类内保持创建顺序
	if skills[0].Name != "Node" {
		t.Fatalf("expected Backend skill first, got %s", skills[0].Name)
	}
	if skills[1].Name != "React" || skills[2].Name != "Vue" {
		t.Fatalf("expected Frontend skills in creation order, got %s then %s", skills[1].Name, skills[2].Name)
	}
}

func TestSkillServiceValidation(t *testing.T) {
	gdb, cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)

	if _, err := svc.CreateSkill(SkillInput{Category: "Frontend", Level: 10}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected invalid input for missing name, got %v", err)
	}
	if _, err := svc.CreateSkill(SkillInput{Name: "React", Level: 10}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected invalid input for missing category, got %v", err)
	}
	if _, err := svc.CreateSkill(SkillInput{Name: "React", Category: "Frontend", Level: 101}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected invalid input for level above 100, got %v", err)
	}
	if _, err := svc.CreateSkill(SkillInput{Name: "React", Category: "Frontend", Level: -1}); !errors.Is(err, ErrSkillInvalidInput) {
		t.Fatalf("expected invalid input for negative level, got %v", err)
	}
}

func TestSkillServicePartialUpdate(t *testing.T) {
	gdb, cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)
	created, err := svc.CreateSkill(SkillInput{Name: "Go", Category: "Backend", Level: 60})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}

	level := 85
	updated, err := svc.UpdateSkill(created.ID, SkillUpdateInput{Level: &level})
	if err != nil {
		t.Fatalf("update skill failed: %v", err)
	}

	if updated.Level != 85 {
		t.Fatalf("expected level 85, got %d", updated.Level)
	}
	if updated.Name != "Go" || updated.Category != "Backend" {
		t.Fatalf("expected omitted fields to be preserved, got %#v", updated)
	}
}

func TestSkillServiceUpdateMissingSkill(t *testing.T) {
	gdb, cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)
	name := "Rust"
	if _, err := svc.UpdateSkill(9999, SkillUpdateInput{Name: &name}); !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSkillServiceDeleteIsIdempotent(t *testing.T) {
	gdb, cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	svc := NewSkillService(gdb)
	created, err := svc.CreateSkill(SkillInput{Name: "Go", Category: "Backend", Level: 60})
	if err != nil {
		t.Fatalf("create skill failed: %v", err)
	}

	if err := svc.DeleteSkill(created.ID); err != nil {
		t.Fatalf("delete skill failed: %v", err)
	}
	// 再次删除同一 id 以及删除从未存在的 id 都不是错误
	if err := svc.DeleteSkill(created.ID); err != nil {
		t.Fatalf("repeated delete should be a no-op, got %v", err)
	}
	if err := svc.DeleteSkill(424242); err != nil {
		t.Fatalf("deleting unknown id should be a no-op, got %v", err)
	}

	skills, err := svc.ListSkills()
	if err != nil {
		t.Fatalf("list skills failed: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(skills))
	}
}
