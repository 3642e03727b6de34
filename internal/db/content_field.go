package db

import "gorm.io/gorm"

// ContentField 存储站点文案的一个命名标量，以 (section, field) 作为自然键。
// 同一键至多一行；缺失的行由读取侧用默认文案补齐，因此不存在删除操作。
type ContentField struct {
	gorm.Model
	Section string `gorm:"size:50;not null;uniqueIndex:idx_content_fields_section_field"`
	Field   string `gorm:"size:50;not null;uniqueIndex:idx_content_fields_section_field"`
	Value   string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (ContentField) TableName() string {
	return "content_fields"
}

const (
	// SectionHero 表示首屏区块。
	SectionHero = "hero"
	// SectionAbout 表示关于我区块。
	SectionAbout = "about"
	// SectionFooter 表示页脚区块。
	SectionFooter = "footer"
)

const (
	// FieldName 表示姓名。
	FieldName = "name"
	// FieldTitle 表示头衔。
	FieldTitle = "title"
	// FieldDescription 表示描述文案。
	FieldDescription = "description"
	// FieldJourneyTitle 表示个人经历标题。
	FieldJourneyTitle = "journey_title"
	// FieldJourneyDescription 表示个人经历正文。
	FieldJourneyDescription = "journey_description"
)
