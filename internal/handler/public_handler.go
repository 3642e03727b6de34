package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// 前台在对应文案缺失时使用的默认值
const (
	defaultHeroName        = "Your Name"
	defaultHeroTitle       = "MCA Student & Full Stack Developer"
	defaultHeroDescription = "Passionate about creating innovative solutions and building scalable applications with modern technologies."
	defaultJourneyTitle    = "My Journey"
	defaultJourneyBody     = "Currently pursuing Master of Computer Applications (MCA), I am passionate about full-stack development and emerging technologies."
	defaultFooterText      = "MCA Student passionate about creating innovative solutions and building scalable applications with modern technologies."
)

// ShowHome 渲染前台作品集首页
// 所有区块都从数据库取数，缺失的文案回退到默认值
func (a *API) ShowHome(c *gin.Context) {
	fields, err := a.content.ListFields()
	if err != nil {
		a.showUnavailable(c, err)
		return
	}
	skills, err := a.skills.ListSkills()
	if err != nil {
		a.showUnavailable(c, err)
		return
	}
	projects, err := a.projects.ListProjects()
	if err != nil {
		a.showUnavailable(c, err)
		return
	}
	experience, err := a.experience.ListEntries()
	if err != nil {
		a.showUnavailable(c, err)
		return
	}
	contacts, err := a.contacts.ListChannels()
	if err != nil {
		a.showUnavailable(c, err)
		return
	}

	journeyBody := view.ContentValue(fields, db.SectionAbout, db.FieldJourneyDescription, defaultJourneyBody)
	journeyHTML, err := renderMarkdown(journeyBody)
	if err != nil {
		a.showUnavailable(c, err)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"heroName":        view.ContentValue(fields, db.SectionHero, db.FieldName, defaultHeroName),
		"heroTitle":       view.ContentValue(fields, db.SectionHero, db.FieldTitle, defaultHeroTitle),
		"heroDescription": view.ContentValue(fields, db.SectionHero, db.FieldDescription, defaultHeroDescription),
		"journeyTitle":    view.ContentValue(fields, db.SectionAbout, db.FieldJourneyTitle, defaultJourneyTitle),
		"journeyHTML":     journeyHTML,
		"footerText":      view.ContentValue(fields, db.SectionFooter, db.FieldDescription, defaultFooterText),
		"skillGroups":     view.GroupSkillsByCategory(skills),
		"projects":        projects,
		"experience":      experience,
		"contacts":        publicContacts(contacts),
	})
}

func (a *API) showUnavailable(c *gin.Context, err error) {
	a.log.Error().Err(err).Msg("render home")
	c.String(http.StatusInternalServerError, "服务暂不可用，请稍后再试")
}

// publicContacts 按固定词表顺序整理联系渠道，缺失的类型直接跳过
func publicContacts(channels []db.ContactChannel) []gin.H {
	items := make([]gin.H, 0, len(channels))
	for _, contactType := range service.SupportedContactTypes() {
		channel, ok := view.FindContactByType(channels, contactType)
		if !ok {
			continue
		}
		items = append(items, gin.H{
			"type":        channel.Type,
			"displayText": channel.DisplayText,
			"href":        channel.Href,
			"icon":        template.HTML(view.ContactIconSVG(channel.Type)),
		})
	}
	return items
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
