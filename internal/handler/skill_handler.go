package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// editManagerSkills 是技能管理器在编辑会话中的标识
const editManagerSkills = "skills"

type skillCreateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

type skillUpdateRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
}

// ListSkills 返回技能列表
func (a *API) ListSkills(c *gin.Context) {
	skills, err := a.skills.ListSkills()
	if err != nil {
		a.log.Error().Err(err).Msg("list skills")
		respondError(c, http.StatusInternalServerError, "获取技能列表失败")
		return
	}

	items := make([]gin.H, 0, len(skills))
	for _, skill := range skills {
		items = append(items, skillPayload(skill))
	}

	c.JSON(http.StatusOK, gin.H{"skills": items})
}

// CreateSkill 新增技能
func (a *API) CreateSkill(c *gin.Context) {
	var payload skillCreateRequest
	if !bindJSON(c, &payload, "请填写完整的技能信息") {
		return
	}

	skill, err := a.skills.CreateSkill(service.SkillInput{
		Name:     payload.Name,
		Category: payload.Category,
		Level:    payload.Level,
	})
	if err != nil {
		a.handleSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "已新增技能",
		"skill":   skillPayload(*skill),
	})
}

// UpdateSkill 更新技能，未提供的字段保持不变
func (a *API) UpdateSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	var payload skillUpdateRequest
	if !bindJSON(c, &payload, "请填写完整的技能信息") {
		return
	}

	skill, err := a.skills.UpdateSkill(id, service.SkillUpdateInput{
		Name:     payload.Name,
		Category: payload.Category,
		Level:    payload.Level,
	})
	if err != nil {
		a.handleSkillError(c, err)
		return
	}

	a.editSession(c).Complete(editManagerSkills, strconv.FormatUint(uint64(id), 10))

	c.JSON(http.StatusOK, gin.H{
		"message": "技能已更新",
		"skill":   skillPayload(*skill),
	})
}

// DeleteSkill 删除技能；目标不存在时同样返回成功
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的技能ID")
		return
	}

	if err := a.skills.DeleteSkill(id); err != nil {
		a.handleSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "技能已删除"})
}

func (a *API) handleSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSkillInvalidInput):
		respondError(c, http.StatusBadRequest, "技能信息不完整或熟练度超出范围")
	case errors.Is(err, service.ErrSkillNotFound):
		respondError(c, http.StatusNotFound, "技能不存在")
	default:
		a.log.Error().Err(err).Msg("skill operation")
		respondError(c, http.StatusInternalServerError, "技能操作失败")
	}
}

func skillPayload(skill db.Skill) gin.H {
	return gin.H{
		"id":        skill.ID,
		"name":      skill.Name,
		"category":  skill.Category,
		"level":     skill.Level,
		"updatedAt": skill.UpdatedAt,
	}
}
