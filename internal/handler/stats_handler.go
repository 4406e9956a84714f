package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultSeriesRange = 7
	maxSeriesRange     = 30
)

type sleepPoint struct {
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// GetStatsSummary 汇总首页与统计页顶部需要的全部派生指标。
func (a *API) GetStatsSummary(c *gin.Context) {
	profile, err := a.profile.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取档案失败")
		return
	}

	ledger := a.ledger.Snapshot()
	now := time.Now()

	currentWeight := a.metrics.CurrentWeight(ledger, profile.InitialWeight)
	weeklyCount := a.metrics.WeeklyCommitCount(ledger, now)

	c.JSON(http.StatusOK, gin.H{
		"totalCalories":   a.metrics.TotalCalories(ledger),
		"totalDistance":   a.metrics.TotalDistance(ledger),
		"totalCommits":    len(ledger),
		"currentWeight":   currentWeight,
		"targetWeight":    profile.TargetWeight,
		"weightProgress":  a.metrics.WeightProgressPercent(profile.InitialWeight, currentWeight, profile.TargetWeight),
		"weeklyCommits":   weeklyCount,
		"weeklyGoal":      profile.WeeklyGoal,
		"weeklyProgress":  a.metrics.GoalCompletion(weeklyCount, profile.WeeklyGoal),
		"monthlyGoal":     profile.MonthlyGoal,
		"monthlyProgress": a.metrics.GoalCompletion(len(ledger), profile.MonthlyGoal),
	})
}

// GetStatsSeries 返回身体性能图表的数据序列，range 支持 7/30。
func (a *API) GetStatsSeries(c *gin.Context) {
	rangeDays := parseSeriesRange(c)

	profile, err := a.profile.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取档案失败")
		return
	}

	ledger := a.ledger.Snapshot()
	fallback := a.metrics.CurrentWeight(ledger, profile.InitialWeight)

	c.JSON(http.StatusOK, gin.H{
		"range":  rangeDays,
		"series": a.metrics.TimeSeries(ledger, rangeDays, fallback),
	})
}

// GetStatsDistribution 返回运动类型占比，按次数降序。
func (a *API) GetStatsDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"distribution": a.metrics.TypeDistribution(a.ledger.Snapshot()),
	})
}

// GetStatsSleep 返回睡眠时长序列，缺失睡眠记 0。
func (a *API) GetStatsSleep(c *gin.Context) {
	rangeDays := parseSeriesRange(c)

	profile, err := a.profile.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取档案失败")
		return
	}

	points := a.metrics.TimeSeries(a.ledger.Snapshot(), rangeDays, profile.InitialWeight)
	sleep := make([]sleepPoint, 0, len(points))
	for _, point := range points {
		sleep = append(sleep, sleepPoint{Label: point.Label, Hours: point.Sleep})
	}

	c.JSON(http.StatusOK, gin.H{"range": rangeDays, "sleep": sleep})
}

func parseSeriesRange(c *gin.Context) int {
	raw := c.Query("range")
	if raw == "" {
		return defaultSeriesRange
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return defaultSeriesRange
	}
	if value > maxSeriesRange {
		return maxSeriesRange
	}
	return value
}
