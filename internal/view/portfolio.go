package view

import "github.com/devfolio/internal/db"

// ContentValue 在已取回的文案集合中查找 (section, field) 对应的值。
// 缺失是正常状态（尚未配置或未预置），此时返回 fallback，绝不报错。
func ContentValue(fields []db.ContentField, section, field, fallback string) string {
	for _, item := range fields {
		if item.Section == section && item.Field == field {
			if item.Value == "" {
				return fallback
			}
			return item.Value
		}
	}
	return fallback
}

// SkillGroup 表示一个分类及其下按录入顺序排列的技能
type SkillGroup struct {
	Category string
	Skills   []db.Skill
}

// GroupSkillsByCategory 将技能按分类分组。
// 分类顺序取首次出现的顺序，分类内保持输入顺序；
// 对同一输入重复调用结果稳定。
func GroupSkillsByCategory(skills []db.Skill) []SkillGroup {
	groups := make([]SkillGroup, 0)
	index := make(map[string]int)

	for _, skill := range skills {
		at, ok := index[skill.Category]
		if !ok {
			at = len(groups)
			index[skill.Category] = at
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[at].Skills = append(groups[at].Skills, skill)
	}

	return groups
}

// FindContactByType 返回第一个匹配指定类型的联系渠道。
// 输入中出现重复类型时静默取第一行，不视为错误。
func FindContactByType(contacts []db.ContactChannel, contactType string) (db.ContactChannel, bool) {
	for _, contact := range contacts {
		if contact.Type == contactType {
			return contact, true
		}
	}
	return db.ContactChannel{}, false
}
