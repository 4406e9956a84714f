package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hua202512/rundayapp/internal/db"
	"github.com/Hua202512/rundayapp/internal/service"
	"github.com/Hua202512/rundayapp/internal/view"
	"github.com/gin-gonic/gin"
)

type planDayView struct {
	db.PlanDay
	Rest bool   `json:"rest"`
	Icon string `json:"icon"`
}

func newPlanDayView(day db.PlanDay) planDayView {
	return planDayView{PlanDay: day, Rest: day.Rest(), Icon: view.PlanTaskIcon(day)}
}

type planSlotPayload struct {
	Task        *string `json:"task"`
	TargetValue *string `json:"targetValue"`
	TargetUnit  *string `json:"targetUnit"`
	IsRest      *bool   `json:"isRest"`
}

// GetPlan 返回完整周计划，固定 7 个槽位。
func (a *API) GetPlan(c *gin.Context) {
	days := a.plan.Snapshot()
	views := make([]planDayView, 0, len(days))
	for _, day := range days {
		views = append(views, newPlanDayView(day))
	}
	c.JSON(http.StatusOK, gin.H{"plan": views})
}

// GetTodayPlan 返回今天对应的槽位。
func (a *API) GetTodayPlan(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"today": newPlanDayView(a.plan.Today(time.Now()))})
}

// UpdatePlanSlot 对单个槽位做局部更新。
func (a *API) UpdatePlanSlot(c *gin.Context) {
	index, err := parseIntParam(c, "index")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的槽位下标")
		return
	}

	var payload planSlotPayload
	if !bindJSON(c, &payload, "无效的计划数据") {
		return
	}

	patch := db.PlanDayPatch{
		Task:        payload.Task,
		TargetValue: payload.TargetValue,
		IsRest:      payload.IsRest,
	}
	if payload.TargetUnit != nil {
		unit := db.TargetUnit(*payload.TargetUnit)
		patch.TargetUnit = &unit
	}

	day, err := a.plan.UpdateSlot(index, patch)
	if err != nil {
		if errors.Is(err, service.ErrPlanSlotOutOfRange) {
			respondError(c, http.StatusBadRequest, "槽位下标超出 0..6")
			return
		}
		respondError(c, http.StatusInternalServerError, "更新计划失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"slot": newPlanDayView(day)})
}
