package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrContactInvalidInput 在联系渠道类型不在词表内或数据不完整时返回
var ErrContactInvalidInput = errors.New("invalid contact channel input")

var supportedContactTypes = []string{
	db.ContactTypeEmail,
	db.ContactTypePhone,
	db.ContactTypeLinkedIn,
	db.ContactTypeGithub,
	db.ContactTypeTwitter,
	db.ContactTypeLocation,
}

// SupportedContactTypes 返回联系渠道的固定词表，顺序即后台展示顺序。
func SupportedContactTypes() []string {
	types := make([]string, len(supportedContactTypes))
	copy(types, supportedContactTypes)
	return types
}

// ContactService 维护联系渠道集合
// 写入走按 Type 的原子 upsert，同一渠道至多一行

type ContactService struct {
	db    *gorm.DB
	cache listCache[db.ContactChannel]
}

// NewContactService 构造 ContactService
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactChannelInput 描述 upsert 联系渠道时的字段
// DisplayText 与 Href 留空时回退为原始值，保证渠道总是可展示、可点击
type ContactChannelInput struct {
	Type        string
	Value       string
	DisplayText string
	Href        string
}

// ListChannels 返回全部联系渠道，结果在下一次写入前缓存
func (s *ContactService) ListChannels() ([]db.ContactChannel, error) {
	return s.cache.get(func() ([]db.ContactChannel, error) {
		var channels []db.ContactChannel
		if err := s.db.Order("id ASC").Find(&channels).Error; err != nil {
			return nil, fmt.Errorf("list contact channels: %w", err)
		}
		return channels, nil
	})
}

// UpsertChannel 写入指定类型的联系渠道：存在则更新，不存在则插入。
// 借助 type 唯一索引上的 ON CONFLICT 完成，同一类型始终只有一行。
func (s *ContactService) UpsertChannel(input ContactChannelInput) (*db.ContactChannel, error) {
	channelType := normalizeContactType(input.Type)
	if channelType == "" {
		return nil, fmt.Errorf("%w: unknown type %q", ErrContactInvalidInput, input.Type)
	}

	value := strings.TrimSpace(input.Value)
	if value == "" {
		return nil, fmt.Errorf("%w: value is required", ErrContactInvalidInput)
	}

	displayText := strings.TrimSpace(input.DisplayText)
	if displayText == "" {
		displayText = value
	}
	href := strings.TrimSpace(input.Href)
	if href == "" {
		href = value
	}

	row := db.ContactChannel{Type: channelType, Value: value, DisplayText: displayText, Href: href}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":        value,
			"display_text": displayText,
			"href":         href,
			"updated_at":   gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert contact channel %s: %w", channelType, err)
	}

	s.cache.invalidate()

	var saved db.ContactChannel
	if err := s.db.Where("type = ?", channelType).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("reload contact channel %s: %w", channelType, err)
	}
	return &saved, nil
}

func normalizeContactType(channelType string) string {
	trimmed := strings.ToLower(strings.TrimSpace(channelType))
	for _, candidate := range supportedContactTypes {
		if trimmed == candidate {
			return candidate
		}
	}
	return ""
}
