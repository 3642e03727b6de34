package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrExperienceNotFound 在指定的经历不存在时返回
	ErrExperienceNotFound = errors.New("experience entry not found")
	// ErrExperienceInvalidInput 在输入数据不完整时返回
	ErrExperienceInvalidInput = errors.New("invalid experience input")
)

// ExperienceService 负责维护工作经历
// 查询按创建时间倒序，最近添加的经历排在最前

type ExperienceService struct {
	db    *gorm.DB
	cache listCache[db.ExperienceEntry]
}

// NewExperienceService 构造 ExperienceService
func NewExperienceService(gdb *gorm.DB) *ExperienceService {
	return &ExperienceService{db: gdb}
}

// ExperienceInput 描述创建经历时可设置的字段
// 公司、职位与时间范围必填，要点列表保持录入顺序
type ExperienceInput struct {
	Company     string
	Position    string
	Duration    string
	Location    string
	Description []string
}

// ExperienceUpdateInput 描述更新经历时可修改的字段
// 指针为空表示保留原值
type ExperienceUpdateInput struct {
	Company     *string
	Position    *string
	Duration    *string
	Location    *string
	Description *[]string
}

// ListEntries 返回经历集合，按创建时间倒序
func (s *ExperienceService) ListEntries() ([]db.ExperienceEntry, error) {
	return s.cache.get(func() ([]db.ExperienceEntry, error) {
		var entries []db.ExperienceEntry
		if err := s.db.Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
			return nil, fmt.Errorf("list experience entries: %w", err)
		}
		return entries, nil
	})
}

// CreateEntry 新建经历，公司、职位与时间范围必填
func (s *ExperienceService) CreateEntry(input ExperienceInput) (*db.ExperienceEntry, error) {
	company := strings.TrimSpace(input.Company)
	position := strings.TrimSpace(input.Position)
	duration := strings.TrimSpace(input.Duration)
	if company == "" {
		return nil, fmt.Errorf("%w: company is required", ErrExperienceInvalidInput)
	}
	if position == "" {
		return nil, fmt.Errorf("%w: position is required", ErrExperienceInvalidInput)
	}
	if duration == "" {
		return nil, fmt.Errorf("%w: duration is required", ErrExperienceInvalidInput)
	}

	entry := db.ExperienceEntry{
		Company:     company,
		Position:    position,
		Duration:    duration,
		Location:    strings.TrimSpace(input.Location),
		Description: normalizeStringList(input.Description),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("create experience entry: %w", err)
	}

	s.cache.invalidate()
	return &entry, nil
}

// UpdateEntry 更新指定经历，未提供的字段保持不变
func (s *ExperienceService) UpdateEntry(id uint, input ExperienceUpdateInput) (*db.ExperienceEntry, error) {
	var entry db.ExperienceEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience entry: %w", err)
	}

	if input.Company != nil {
		company := strings.TrimSpace(*input.Company)
		if company == "" {
			return nil, fmt.Errorf("%w: company is required", ErrExperienceInvalidInput)
		}
		entry.Company = company
	}
	if input.Position != nil {
		position := strings.TrimSpace(*input.Position)
		if position == "" {
			return nil, fmt.Errorf("%w: position is required", ErrExperienceInvalidInput)
		}
		entry.Position = position
	}
	if input.Duration != nil {
		duration := strings.TrimSpace(*input.Duration)
		if duration == "" {
			return nil, fmt.Errorf("%w: duration is required", ErrExperienceInvalidInput)
		}
		entry.Duration = duration
	}
	if input.Location != nil {
		entry.Location = strings.TrimSpace(*input.Location)
	}
	if input.Description != nil {
		entry.Description = normalizeStringList(*input.Description)
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("update experience entry: %w", err)
	}

	s.cache.invalidate()
	return &entry, nil
}

// DeleteEntry 删除指定经历；目标不存在时视为成功
func (s *ExperienceService) DeleteEntry(id uint) error {
	if err := s.db.Delete(&db.ExperienceEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete experience entry: %w", err)
	}

	s.cache.invalidate()
	return nil
}
