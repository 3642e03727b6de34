package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound 在指定的项目不存在时返回
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectInvalidInput 在输入数据不完整时返回
	ErrProjectInvalidInput = errors.New("invalid project input")
)

// ProjectService 负责维护项目作品集
// 查询按创建时间倒序，最新的项目排在最前

type ProjectService struct {
	db    *gorm.DB
	cache listCache[db.Project]
}

// NewProjectService 构造 ProjectService
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// ProjectInput 描述创建项目时可设置的字段，仅标题必填
type ProjectInput struct {
	Title        string
	Description  string
	ImageURL     string
	Technologies []string
	LiveURL      string
	GithubURL    string
	Featured     bool
}

// ProjectUpdateInput 描述更新项目时可修改的字段
// 指针为空表示保留原值
type ProjectUpdateInput struct {
	Title        *string
	Description  *string
	ImageURL     *string
	Technologies *[]string
	LiveURL      *string
	GithubURL    *string
	Featured     *bool
}

// ListProjects 返回项目集合，按创建时间倒序
func (s *ProjectService) ListProjects() ([]db.Project, error) {
	return s.cache.get(func() ([]db.Project, error) {
		var projects []db.Project
		if err := s.db.Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		return projects, nil
	})
}

// CreateProject 新建项目，标题必填
func (s *ProjectService) CreateProject(input ProjectInput) (*db.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
	}

	project := db.Project{
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Technologies: normalizeStringList(input.Technologies),
		LiveURL:      strings.TrimSpace(input.LiveURL),
		GithubURL:    strings.TrimSpace(input.GithubURL),
		Featured:     input.Featured,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.cache.invalidate()
	return &project, nil
}

// UpdateProject 更新指定项目，未提供的字段保持不变
func (s *ProjectService) UpdateProject(id uint, input ProjectUpdateInput) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrProjectInvalidInput)
		}
		project.Title = title
	}
	if input.Description != nil {
		project.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		project.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Technologies != nil {
		project.Technologies = normalizeStringList(*input.Technologies)
	}
	if input.LiveURL != nil {
		project.LiveURL = strings.TrimSpace(*input.LiveURL)
	}
	if input.GithubURL != nil {
		project.GithubURL = strings.TrimSpace(*input.GithubURL)
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}

	if err := s.db.Save(&project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.cache.invalidate()
	return &project, nil
}

// DeleteProject 删除指定项目；目标不存在时视为成功
func (s *ProjectService) DeleteProject(id uint) error {
	if err := s.db.Delete(&db.Project{}, id).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.cache.invalidate()
	return nil
}

// normalizeStringList 去掉首尾空白并丢弃空项，保持其余条目的顺序
func normalizeStringList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
