package db

import "gorm.io/gorm"

// ContactChannel 表示一种联系渠道，以 Type 作为自然键。
// 渠道类型是固定词表，前台按类型查找展示；行只会被插入或更新，不会删除。
type ContactChannel struct {
	gorm.Model
	Type        string `gorm:"size:30;uniqueIndex;not null"`
	Value       string `gorm:"size:255;not null"`
	DisplayText string `gorm:"size:255"`
	Href        string `gorm:"size:255"`
}

// TableName 自定义表名以保持命名一致。
func (ContactChannel) TableName() string {
	return "contact_channels"
}

const (
	// ContactTypeEmail 表示邮箱。
	ContactTypeEmail = "email"
	// ContactTypePhone 表示电话。
	ContactTypePhone = "phone"
	// ContactTypeLinkedIn 表示 LinkedIn 主页。
	ContactTypeLinkedIn = "linkedin"
	// ContactTypeGithub 表示 GitHub 主页。
	ContactTypeGithub = "github"
	// ContactTypeTwitter 表示 Twitter / X 主页。
	ContactTypeTwitter = "twitter"
	// ContactTypeLocation 表示所在地。
	ContactTypeLocation = "location"
)
