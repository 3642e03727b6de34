package handler

import (
	"github.com/devfolio/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	log        zerolog.Logger
	content    *service.ContentService
	skills     *service.SkillService
	projects   *service.ProjectService
	experience *service.ExperienceService
	contacts   *service.ContactService
	edits      *service.EditRegistry
	uploadDir  string
	uploadURL  string
}

const (
	sessionKeyUserID      = "user_id"
	sessionKeyUsername    = "username"
	sessionKeyEditSession = "edit_session"
)

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, log zerolog.Logger, uploadDir, uploadURL string) *API {
	return &API{
		db:         gdb,
		log:        log,
		content:    service.NewContentService(gdb),
		skills:     service.NewSkillService(gdb),
		projects:   service.NewProjectService(gdb),
		experience: service.NewExperienceService(gdb),
		contacts:   service.NewContactService(gdb),
		edits:      service.NewEditRegistry(),
		uploadDir:  uploadDir,
		uploadURL:  uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

// editSession 返回当前登录对应的编辑会话。
// 会话标识在登录时写入 cookie session，缺失时退回共享的默认会话。
func (a *API) editSession(c *gin.Context) *service.EditSession {
	session := sessions.Default(c)
	id, _ := session.Get(sessionKeyEditSession).(string)
	if id == "" {
		id = "default"
	}
	return a.edits.Session(id)
}
