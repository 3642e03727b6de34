package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// editManagerContacts 是联系方式管理器在编辑会话中的标识
const editManagerContacts = "contacts"

type contactChannelRequest struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	DisplayText string `json:"display_text"`
	Href        string `json:"href"`
}

// ListContacts 返回全部联系渠道及可用的类型词表
func (a *API) ListContacts(c *gin.Context) {
	channels, err := a.contacts.ListChannels()
	if err != nil {
		a.log.Error().Err(err).Msg("list contact channels")
		respondError(c, http.StatusInternalServerError, "获取联系方式失败")
		return
	}

	items := make([]gin.H, 0, len(channels))
	for _, channel := range channels {
		items = append(items, contactChannelPayload(channel))
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": items,
		"types":    service.SupportedContactTypes(),
	})
}

// UpsertContact 写入指定类型的联系渠道：存在则更新，不存在则插入
func (a *API) UpsertContact(c *gin.Context) {
	var payload contactChannelRequest
	if !bindJSON(c, &payload, "请填写完整的联系方式") {
		return
	}

	channel, err := a.contacts.UpsertChannel(service.ContactChannelInput{
		Type:        payload.Type,
		Value:       payload.Value,
		DisplayText: payload.DisplayText,
		Href:        payload.Href,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactInvalidInput) {
			respondError(c, http.StatusBadRequest, "联系方式类型不支持或内容为空")
			return
		}
		a.log.Error().Err(err).Str("type", payload.Type).Msg("upsert contact channel")
		respondError(c, http.StatusInternalServerError, "保存联系方式失败")
		return
	}

	a.editSession(c).Complete(editManagerContacts, channel.Type)

	c.JSON(http.StatusOK, gin.H{
		"message": "联系方式已保存",
		"contact": contactChannelPayload(*channel),
	})
}

func contactChannelPayload(channel db.ContactChannel) gin.H {
	return gin.H{
		"id":          channel.ID,
		"type":        channel.Type,
		"value":       channel.Value,
		"displayText": channel.DisplayText,
		"href":        channel.Href,
		"createdAt":   channel.CreatedAt,
	}
}
