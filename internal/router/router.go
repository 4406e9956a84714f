package router

import (
	"net/http"

	"github.com/Hua202512/rundayapp/internal/handler"
	"github.com/Hua202512/rundayapp/internal/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 会话只承载当前活动页面
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("rundayapp_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/profile", api.GetProfile)
		apiGroup.PUT("/profile", api.UpdateProfile)
		apiGroup.POST("/data/clear", api.ClearAllData)

		apiGroup.GET("/commits", api.ListCommits)
		apiGroup.POST("/commits", api.CreateCommit)
		apiGroup.PUT("/commits/:id", api.UpdateCommit)
		apiGroup.DELETE("/commits/:id", api.DeleteCommit)

		apiGroup.GET("/plan", api.GetPlan)
		apiGroup.GET("/plan/today", api.GetTodayPlan)
		apiGroup.PUT("/plan/:index", api.UpdatePlanSlot)

		apiGroup.GET("/stats/summary", api.GetStatsSummary)
		apiGroup.GET("/stats/series", api.GetStatsSeries)
		apiGroup.GET("/stats/distribution", api.GetStatsDistribution)
		apiGroup.GET("/stats/sleep", api.GetStatsSleep)

		apiGroup.GET("/view", api.GetActiveView)
		apiGroup.PUT("/view", api.SetActiveView)
		apiGroup.GET("/squad", api.GetSquad)

		apiGroup.POST("/upload", api.UploadImage)

		apiGroup.GET("/meta/activities", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"activities": view.ActivityOptions()})
		})
	}

	return r
}
