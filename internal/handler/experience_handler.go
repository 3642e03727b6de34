package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// editManagerExperience 是经历管理器在编辑会话中的标识
const editManagerExperience = "experience"

type experienceCreateRequest struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
}

type experienceUpdateRequest struct {
	Company     *string   `json:"company"`
	Position    *string   `json:"position"`
	Duration    *string   `json:"duration"`
	Location    *string   `json:"location"`
	Description *[]string `json:"description"`
}

// ListExperience 返回经历列表，最近添加的排在最前
func (a *API) ListExperience(c *gin.Context) {
	entries, err := a.experience.ListEntries()
	if err != nil {
		a.log.Error().Err(err).Msg("list experience entries")
		respondError(c, http.StatusInternalServerError, "获取经历列表失败")
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		items = append(items, experiencePayload(entry))
	}

	c.JSON(http.StatusOK, gin.H{"experience": items})
}

// CreateExperience 新增经历
func (a *API) CreateExperience(c *gin.Context) {
	var payload experienceCreateRequest
	if !bindJSON(c, &payload, "请填写完整的经历信息") {
		return
	}

	entry, err := a.experience.CreateEntry(service.ExperienceInput{
		Company:     payload.Company,
		Position:    payload.Position,
		Duration:    payload.Duration,
		Location:    payload.Location,
		Description: payload.Description,
	})
	if err != nil {
		a.handleExperienceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增经历",
		"entry":   experiencePayload(*entry),
	})
}

// UpdateExperience 更新经历，未提供的字段保持不变
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	var payload experienceUpdateRequest
	if !bindJSON(c, &payload, "请填写完整的经历信息") {
		return
	}

	entry, err := a.experience.UpdateEntry(id, service.ExperienceUpdateInput{
		Company:     payload.Company,
		Position:    payload.Position,
		Duration:    payload.Duration,
		Location:    payload.Location,
		Description: payload.Description,
	})
	if err != nil {
		a.handleExperienceError(c, err)
		return
	}

	a.editSession(c).Complete(editManagerExperience, strconv.FormatUint(uint64(id), 10))

	c.JSON(http.StatusOK, gin.H{
		"message": "经历已更新",
		"entry":   experiencePayload(*entry),
	})
}

// DeleteExperience 删除经历；目标不存在时同样返回成功
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的经历ID")
		return
	}

	if err := a.experience.DeleteEntry(id); err != nil {
		a.handleExperienceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "经历已删除"})
}

func (a *API) handleExperienceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExperienceInvalidInput):
		respondError(c, http.StatusBadRequest, "公司、职位与时间范围不能为空")
	case errors.Is(err, service.ErrExperienceNotFound):
		respondError(c, http.StatusNotFound, "经历不存在")
	default:
		a.log.Error().Err(err).Msg("experience operation")
		respondError(c, http.StatusInternalServerError, "经历操作失败")
	}
}

func experiencePayload(entry db.ExperienceEntry) gin.H {
	description := entry.Description
	if description == nil {
		description = []string{}
	}
	return gin.H{
		"id":          entry.ID,
		"company":     entry.Company,
		"position":    entry.Position,
		"duration":    entry.Duration,
		"location":    entry.Location,
		"description": description,
		"updatedAt":   entry.UpdatedAt,
	}
}
