package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSkillNotFound 在指定的技能不存在时返回
	ErrSkillNotFound = errors.New("skill not found")
	// ErrSkillInvalidInput 在输入数据不完整或超出范围时返回
	ErrSkillInvalidInput = errors.New("invalid skill input")
)

// SkillService 负责维护技能列表
// 提供按分类排序的查询与增删改能力，与 handler 解耦

type SkillService struct {
	db    *gorm.DB
	cache listCache[db.Skill]
}

// NewSkillService 构造 SkillService
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// SkillInput 描述创建技能时必须提供的字段
type SkillInput struct {
	Name     string
	Category string
	Level    int
}

// SkillUpdateInput 描述更新技能时可修改的字段
// 指针为空表示保留原值
type SkillUpdateInput struct {
	Name     *string
	Category *string
	Level    *int
}

// ListSkills 返回技能集合，按分类聚拢、同分类内按创建先后排列
func (s *SkillService) ListSkills() ([]db.Skill, error) {
	return s.cache.get(func() ([]db.Skill, error) {
		var skills []db.Skill
		if err := s.db.Order("category ASC, id ASC").Find(&skills).Error; err != nil {
			return nil, fmt.Errorf("list skills: %w", err)
		}
		return skills, nil
	})
}

// CreateSkill 新建技能，名称与分类必填，熟练度限定在 0-100
func (s *SkillService) CreateSkill(input SkillInput) (*db.Skill, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrSkillInvalidInput)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrSkillInvalidInput)
	}
	if err := validateSkillLevel(input.Level); err != nil {
		return nil, err
	}

	skill := db.Skill{Name: name, Category: category, Level: input.Level}
	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	s.cache.invalidate()
	return &skill, nil
}

// UpdateSkill 更新指定技能，未提供的字段保持不变
func (s *SkillService) UpdateSkill(id uint, input SkillUpdateInput) (*db.Skill, error) {
	var skill db.Skill
	if err := s.db.First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrSkillInvalidInput)
		}
		skill.Name = name
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category is required", ErrSkillInvalidInput)
		}
		skill.Category = category
	}
	if input.Level != nil {
		if err := validateSkillLevel(*input.Level); err != nil {
			return nil, err
		}
		skill.Level = *input.Level
	}

	if err := s.db.Save(&skill).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}

	s.cache.invalidate()
	return &skill, nil
}

// DeleteSkill 删除指定技能；目标不存在时视为成功
func (s *SkillService) DeleteSkill(id uint) error {
	if err := s.db.Delete(&db.Skill{}, id).Error; err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}

	s.cache.invalidate()
	return nil
}

func validateSkillLevel(level int) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("%w: level must be between 0 and 100", ErrSkillInvalidInput)
	}
	return nil
}
