package db

import "gorm.io/gorm"

// ExperienceEntry 表示一段工作经历
// Duration 为自由文本的时间范围（如 "2022 - Present"）
// Description 为按顺序保存的要点列表，以 JSON 序列化

type ExperienceEntry struct {
	gorm.Model
	Company     string   `gorm:"size:100;not null"`
	Position    string   `gorm:"size:100;not null"`
	Duration    string   `gorm:"size:100;not null"`
	Location    string   `gorm:"size:100"`
	Description []string `gorm:"serializer:json"`
}

// TableName 返回自定义表名，避免冲突
func (ExperienceEntry) TableName() string {
	return "experience_entries"
}
