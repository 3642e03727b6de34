package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// editManagerContent 是文案管理器在编辑会话中的标识
const editManagerContent = "content"

type contentFieldRequest struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// ListContent 返回全部站点文案行
func (a *API) ListContent(c *gin.Context) {
	fields, err := a.content.ListFields()
	if err != nil {
		a.log.Error().Err(err).Msg("list content fields")
		respondError(c, http.StatusInternalServerError, "获取站点文案失败")
		return
	}

	items := make([]gin.H, 0, len(fields))
	for _, field := range fields {
		items = append(items, contentFieldPayload(field))
	}

	c.JSON(http.StatusOK, gin.H{"fields": items})
}

// UpsertContent 写入单个文案键：存在则更新，不存在则插入
func (a *API) UpsertContent(c *gin.Context) {
	var payload contentFieldRequest
	if !bindJSON(c, &payload, "请填写完整的文案内容") {
		return
	}

	field, err := a.content.UpsertField(payload.Section, payload.Field, payload.Value)
	if err != nil {
		if errors.Is(err, service.ErrContentInvalidInput) {
			respondError(c, http.StatusBadRequest, "文案的区块与字段不能为空")
			return
		}
		a.log.Error().Err(err).Str("section", payload.Section).Str("field", payload.Field).Msg("upsert content field")
		respondError(c, http.StatusInternalServerError, "保存文案失败")
		return
	}

	// 保存成功后结束对应的编辑会话；失败路径保留草稿
	a.editSession(c).Complete(editManagerContent, field.Section+"."+field.Field)

	c.JSON(http.StatusOK, gin.H{
		"message": "文案已保存",
		"field":   contentFieldPayload(*field),
	})
}

func contentFieldPayload(field db.ContentField) gin.H {
	return gin.H{
		"id":        field.ID,
		"section":   field.Section,
		"field":     field.Field,
		"value":     field.Value,
		"updatedAt": field.UpdatedAt,
	}
}
