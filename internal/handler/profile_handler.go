package handler

import (
	"net/http"

	"github.com/Hua202512/rundayapp/internal/service"
	"github.com/gin-gonic/gin"
)

type profilePayload struct {
	UserName      *string  `json:"userName"`
	SystemStatus  *string  `json:"systemStatus"`
	Avatar        *string  `json:"avatar"`
	InitialWeight *float64 `json:"initialWeight"`
	TargetWeight  *float64 `json:"targetWeight"`
	WeeklyGoal    *int     `json:"weeklyGoal"`
	MonthlyGoal   *int     `json:"monthlyGoal"`
}

// GetProfile 返回档案标量，缺失项为默认值。
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profile.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取档案失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile 按字段更新档案，未出现的字段保持原值。
func (a *API) UpdateProfile(c *gin.Context) {
	var payload profilePayload
	if !bindJSON(c, &payload, "无效的档案数据") {
		return
	}

	profile, err := a.profile.Update(service.ProfileInput{
		UserName:      payload.UserName,
		SystemStatus:  payload.SystemStatus,
		Avatar:        payload.Avatar,
		InitialWeight: payload.InitialWeight,
		TargetWeight:  payload.TargetWeight,
		WeeklyGoal:    payload.WeeklyGoal,
		MonthlyGoal:   payload.MonthlyGoal,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存档案失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ClearAllData 清空全部持久化状态，要求显式确认。
func (a *API) ClearAllData(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}

	if err := a.profile.ClearAll(); err != nil {
		respondError(c, http.StatusInternalServerError, "清空数据失败")
		return
	}

	// 内存态在下一次进程启动时从空存储恢复为默认值；
	// 这里直接重建账本与计划，保证接口立刻回到出厂态。
	if err := a.reloadState(); err != nil {
		respondError(c, http.StatusInternalServerError, "重置状态失败")
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *API) reloadState() error {
	ledger, err := service.NewLedgerService(a.store)
	if err != nil {
		return err
	}
	plan, err := service.NewPlanService(a.store)
	if err != nil {
		return err
	}
	a.ledger = ledger
	a.plan = plan
	return nil
}
