package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// editManagerProjects 是项目管理器在编辑会话中的标识
const editManagerProjects = "projects"

type projectCreateRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"live_url"`
	GithubURL    string   `json:"github_url"`
	Featured     bool     `json:"featured"`
}

type projectUpdateRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	Technologies *[]string `json:"technologies"`
	LiveURL      *string   `json:"live_url"`
	GithubURL    *string   `json:"github_url"`
	Featured     *bool     `json:"featured"`
}

// ListProjects 返回项目列表，最新的排在最前
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.ListProjects()
	if err != nil {
		a.log.Error().Err(err).Msg("list projects")
		respondError(c, http.StatusInternalServerError, "获取项目列表失败")
		return
	}

	items := make([]gin.H, 0, len(projects))
	for _, project := range projects {
		items = append(items, projectPayload(project))
	}

	c.JSON(http.StatusOK, gin.H{"projects": items})
}

// CreateProject 新增项目
func (a *API) CreateProject(c *gin.Context) {
	var payload projectCreateRequest
	if !bindJSON(c, &payload, "请填写完整的项目信息") {
		return
	}

	project, err := a.projects.CreateProject(service.ProjectInput{
		Title:        payload.Title,
		Description:  payload.Description,
		ImageURL:     payload.ImageURL,
		Technologies: payload.Technologies,
		LiveURL:      payload.LiveURL,
		GithubURL:    payload.GithubURL,
		Featured:     payload.Featured,
	})
	if err != nil {
		a.handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增项目",
		"project": projectPayload(*project),
	})
}

// UpdateProject 更新项目，未提供的字段保持不变
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	var payload projectUpdateRequest
	if !bindJSON(c, &payload, "请填写完整的项目信息") {
		return
	}

	project, err := a.projects.UpdateProject(id, service.ProjectUpdateInput{
		Title:        payload.Title,
		Description:  payload.Description,
		ImageURL:     payload.ImageURL,
		Technologies: payload.Technologies,
		LiveURL:      payload.LiveURL,
		GithubURL:    payload.GithubURL,
		Featured:     payload.Featured,
	})
	if err != nil {
		a.handleProjectError(c, err)
		return
	}

	a.editSession(c).Complete(editManagerProjects, strconv.FormatUint(uint64(id), 10))

	c.JSON(http.StatusOK, gin.H{
		"message": "项目已更新",
		"project": projectPayload(*project),
	})
}

// DeleteProject 删除项目；目标不存在时同样返回成功
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的项目ID")
		return
	}

	if err := a.projects.DeleteProject(id); err != nil {
		a.handleProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目已删除"})
}

func (a *API) handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProjectInvalidInput):
		respondError(c, http.StatusBadRequest, "项目标题不能为空")
	case errors.Is(err, service.ErrProjectNotFound):
		respondError(c, http.StatusNotFound, "项目不存在")
	default:
		a.log.Error().Err(err).Msg("project operation")
		respondError(c, http.StatusInternalServerError, "项目操作失败")
	}
}

func projectPayload(project db.Project) gin.H {
	technologies := project.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return gin.H{
		"id":           project.ID,
		"title":        project.Title,
		"description":  project.Description,
		"imageUrl":     project.ImageURL,
		"technologies": technologies,
		"liveUrl":      project.LiveURL,
		"githubUrl":    project.GithubURL,
		"featured":     project.Featured,
		"updatedAt":    project.UpdatedAt,
	}
}
