package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrContentInvalidInput 在内容键不完整时返回
var ErrContentInvalidInput = errors.New("invalid content field input")

// ContentService 维护站点文案的键值集合
// 所有写入都走按 (section, field) 的原子 upsert，保证同一键至多一行

type ContentService struct {
	db    *gorm.DB
	cache listCache[db.ContentField]
}

// NewContentService 构造 ContentService
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// ListFields 返回全部文案行，结果在下一次写入前缓存
func (s *ContentService) ListFields() ([]db.ContentField, error) {
	return s.cache.get(func() ([]db.ContentField, error) {
		var fields []db.ContentField
		if err := s.db.Order("section ASC, field ASC").Find(&fields).Error; err != nil {
			return nil, fmt.Errorf("list content fields: %w", err)
		}
		return fields, nil
	})
}

// UpsertField 写入指定键的文案：存在则更新，不存在则插入。
// 借助 (section, field) 唯一索引上的 ON CONFLICT 完成，读写竞争下同一键也只会有一行。
func (s *ContentService) UpsertField(section, field, value string) (*db.ContentField, error) {
	trimmedSection := strings.TrimSpace(section)
	trimmedField := strings.TrimSpace(field)
	if trimmedSection == "" {
		return nil, fmt.Errorf("%w: section is required", ErrContentInvalidInput)
	}
	if trimmedField == "" {
		return nil, fmt.Errorf("%w: field is required", ErrContentInvalidInput)
	}

	row := db.ContentField{Section: trimmedSection, Field: trimmedField, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "section"}, {Name: "field"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert content field %s.%s: %w", trimmedSection, trimmedField, err)
	}

	s.cache.invalidate()

	var saved db.ContentField
	if err := s.db.Where("section = ? AND field = ?", trimmedSection, trimmedField).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload content field %s.%s: %w", trimmedSection, trimmedField, err)
	}
	return &saved, nil
}
