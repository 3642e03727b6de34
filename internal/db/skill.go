package db

import "gorm.io/gorm"

// Skill 表示技能条目，Level 取值范围 0-100
// 同一分类下可以有多个技能，展示时按分类分组

type Skill struct {
	gorm.Model
	Name     string `gorm:"size:100;not null"`
	Category string `gorm:"size:50;not null"`
	Level    int    `gorm:"not null;default:0"`
}

// TableName 返回自定义表名，避免冲突
func (Skill) TableName() string {
	return "skills"
}
