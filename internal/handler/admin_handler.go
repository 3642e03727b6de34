package handler

import (
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "管理员登录",
	})
}

// Login 处理管理员登录请求
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	// 查找用户
	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"title": "管理员登录", "error": "用户名或密码错误"})
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"title": "管理员登录", "error": "用户名或密码错误"})
		return
	}

	// 设置会话，并为本次登录分配独立的编辑会话标识
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	session.Set(sessionKeyEditSession, uuid.New().String())
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"title": "管理员登录", "error": "会话保存失败"})
		return
	}

	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理管理员登出，同时清理对应的编辑会话
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if id, ok := session.Get(sessionKeyEditSession).(string); ok && id != "" {
		a.edits.Drop(id)
	}
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get(sessionKeyUsername)

	var skillCount int64
	a.db.Model(&db.Skill{}).Count(&skillCount)

	var projectCount int64
	a.db.Model(&db.Project{}).Count(&projectCount)

	var experienceCount int64
	a.db.Model(&db.ExperienceEntry{}).Count(&experienceCount)

	var contactCount int64
	a.db.Model(&db.ContactChannel{}).Count(&contactCount)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":           "管理面板",
		"username":        username,
		"skillCount":      skillCount,
		"projectCount":    projectCount,
		"experienceCount": experienceCount,
		"contactCount":    contactCount,
	})
}

// ShowContentManager 渲染文案管理页面
func (a *API) ShowContentManager(c *gin.Context) {
	c.HTML(http.StatusOK, "content_manager.html", gin.H{
		"title": "站点文案",
	})
}

// ShowSkillManager 渲染技能管理页面
func (a *API) ShowSkillManager(c *gin.Context) {
	c.HTML(http.StatusOK, "skill_manager.html", gin.H{
		"title": "技能管理",
	})
}

// ShowProjectManager 渲染项目管理页面
func (a *API) ShowProjectManager(c *gin.Context) {
	c.HTML(http.StatusOK, "project_manager.html", gin.H{
		"title": "项目管理",
	})
}

// ShowExperienceManager 渲染经历管理页面
func (a *API) ShowExperienceManager(c *gin.Context) {
	c.HTML(http.StatusOK, "experience_manager.html", gin.H{
		"title": "经历管理",
	})
}

// ShowContactManager 渲染联系方式管理页面
func (a *API) ShowContactManager(c *gin.Context) {
	c.HTML(http.StatusOK, "contact_manager.html", gin.H{
		"title":              "联系方式",
		"contactIconOptions": view.ContactIconOptions(),
		"contactIconSVGs":    view.ContactIconSVGMap(),
	})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionKeyUserID)
		if userID == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
