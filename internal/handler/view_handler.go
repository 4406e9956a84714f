package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// 四个页面对应的活动视图取值。
const (
	viewHome    = "HOME"
	viewPlan    = "PLAN"
	viewCheckIn = "CHECKIN"
	viewStats   = "STATS"
)

const sessionKeyActiveView = "active_view"

func validView(name string) bool {
	switch name {
	case viewHome, viewPlan, viewCheckIn, viewStats:
		return true
	}
	return false
}

func setActiveView(c *gin.Context, name string) {
	session := sessions.Default(c)
	session.Set(sessionKeyActiveView, name)
	// 会话保存失败不影响业务状态，导航在下一次请求回到默认页
	_ = session.Save()
}

// GetActiveView 返回会话中的活动页面，未设置时为首页。
func (a *API) GetActiveView(c *gin.Context) {
	session := sessions.Default(c)
	name, _ := session.Get(sessionKeyActiveView).(string)
	if !validView(name) {
		name = viewHome
	}
	c.JSON(http.StatusOK, gin.H{"view": name})
}

// SetActiveView 切换活动页面。
func (a *API) SetActiveView(c *gin.Context) {
	var payload struct {
		View string `json:"view"`
	}
	if !bindJSON(c, &payload, "无效的页面名称") {
		return
	}
	if !validView(payload.View) {
		respondError(c, http.StatusBadRequest, "未知的页面名称")
		return
	}

	setActiveView(c, payload.View)
	c.JSON(http.StatusOK, gin.H{"view": payload.View})
}

type squadMember struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Streak int    `json:"streak"`
}

// GetSquad 返回静态的小队示例数据。
// 纯展示用途：不持久化、没有互动契约。
func (a *API) GetSquad(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"squad": []squadMember{
		{Name: "阿杰", Status: "夜跑 5km 完成", Streak: 12},
		{Name: "Momo", Status: "力量日，状态拉满", Streak: 8},
		{Name: "老王", Status: "今天休息，明天见", Streak: 5},
		{Name: "Luna", Status: "晨游 1000m", Streak: 21},
	}})
}
