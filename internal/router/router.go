package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/devfolio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(loggingMiddleware(log), recoveryMiddleware(log))

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("devfolio_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"eq": func(a, b interface{}) bool {
			return a == b
		},
	})
	r.LoadHTMLGlob("web/template/*.html")

	// 静态文件服务
	r.Static("/static", "./web/static")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// 前台页面
	r.GET("/", api.ShowHome)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.ShowDashboard)
			auth.GET("/content", api.ShowContentManager)
			auth.GET("/skills", api.ShowSkillManager)
			auth.GET("/projects", api.ShowProjectManager)
			auth.GET("/experience", api.ShowExperienceManager)
			auth.GET("/contacts", api.ShowContactManager)

			// API路由
			apiGroup := auth.Group("/api")
			{
				apiGroup.GET("/content", api.ListContent)
				apiGroup.PUT("/content", api.UpsertContent)

				apiGroup.GET("/skills", api.ListSkills)
				apiGroup.POST("/skills", api.CreateSkill)
				apiGroup.PUT("/skills/:id", api.UpdateSkill)
				apiGroup.DELETE("/skills/:id", api.DeleteSkill)

				apiGroup.GET("/projects", api.ListProjects)
				apiGroup.POST("/projects", api.CreateProject)
				apiGroup.PUT("/projects/:id", api.UpdateProject)
				apiGroup.DELETE("/projects/:id", api.DeleteProject)

				apiGroup.GET("/experience", api.ListExperience)
				apiGroup.POST("/experience", api.CreateExperience)
				apiGroup.PUT("/experience/:id", api.UpdateExperience)
				apiGroup.DELETE("/experience/:id", api.DeleteExperience)

				apiGroup.GET("/contacts", api.ListContacts)
				apiGroup.PUT("/contacts", api.UpsertContact)

				apiGroup.GET("/edit", api.GetEditState)
				apiGroup.POST("/edit/start", api.StartEdit)
				apiGroup.PUT("/edit/draft", api.UpdateEditDraft)
				apiGroup.DELETE("/edit", api.CancelEdit)

				apiGroup.POST("/uploads", api.UploadImage)
			}
		}
	}

	return r
}

// loggingMiddleware 按请求输出结构化访问日志
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("request completed")
	}
}

// recoveryMiddleware 捕获 handler 中的 panic 并返回 500
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "服务器内部错误",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
