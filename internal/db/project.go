package db

import "gorm.io/gorm"

// Project 表示作品集中的一个项目
// Technologies 以 JSON 序列化保存，保持录入顺序
// Featured 标记是否在前台置顶展示

type Project struct {
	gorm.Model
	Title        string   `gorm:"size:200;not null"`
	Description  string   `gorm:"type:text"`
	ImageURL     string   `gorm:"size:255"`
	Technologies []string `gorm:"serializer:json"`
	LiveURL      string   `gorm:"size:255"`
	GithubURL    string   `gorm:"size:255"`
	Featured     bool     `gorm:"default:false"`
}

// TableName 返回自定义表名，避免冲突
func (Project) TableName() string {
	return "projects"
}
