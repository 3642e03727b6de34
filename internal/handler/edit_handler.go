package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type editStartRequest struct {
	Manager string `json:"manager"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

type editDraftRequest struct {
	Value string `json:"value"`
}

// GetEditState 返回当前登录的编辑状态快照
func (a *API) GetEditState(c *gin.Context) {
	target, draft, editing := a.editSession(c).Current()
	if !editing {
		c.JSON(http.StatusOK, gin.H{"editing": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"editing": true,
		"manager": target.Manager,
		"key":     target.Key,
		"draft":   draft,
	})
}

// StartEdit 对指定条目进入编辑状态。
// 若已有其他条目在编辑中，其未保存的草稿会被丢弃。
func (a *API) StartEdit(c *gin.Context) {
	var payload editStartRequest
	if !bindJSON(c, &payload, "编辑请求格式不正确") {
		return
	}

	manager := strings.TrimSpace(payload.Manager)
	key := strings.TrimSpace(payload.Key)
	if manager == "" || key == "" {
		respondError(c, http.StatusBadRequest, "缺少管理器或条目标识")
		return
	}

	a.editSession(c).Begin(manager, key, payload.Value)

	c.JSON(http.StatusOK, gin.H{
		"editing": true,
		"manager": manager,
		"key":     key,
		"draft":   payload.Value,
	})
}

// UpdateEditDraft 更新当前草稿
func (a *API) UpdateEditDraft(c *gin.Context) {
	var payload editDraftRequest
	if !bindJSON(c, &payload, "草稿格式不正确") {
		return
	}

	if err := a.editSession(c).Draft(payload.Value); err != nil {
		if errors.Is(err, service.ErrNotEditing) {
			respondError(c, http.StatusConflict, "当前没有处于编辑中的条目")
			return
		}
		a.log.Error().Err(err).Msg("update edit draft")
		respondError(c, http.StatusInternalServerError, "保存草稿失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "草稿已更新"})
}

// CancelEdit 放弃草稿并退出编辑状态
func (a *API) CancelEdit(c *gin.Context) {
	a.editSession(c).Cancel()
	c.JSON(http.StatusOK, gin.H{"message": "已取消编辑"})
}
