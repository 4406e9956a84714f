package handler

import (
	"net/http"
	"time"

	"github.com/Hua202512/rundayapp/internal/db"
	"github.com/Hua202512/rundayapp/internal/service"
	"github.com/gin-gonic/gin"
)

type commitCreatePayload struct {
	Date          string   `json:"date"`
	Type          string   `json:"type"`
	Duration      int      `json:"duration"`
	Weight        *float64 `json:"weight"`
	Distance      *float64 `json:"distance"`
	DistanceUnit  string   `json:"distanceUnit"`
	Note          string   `json:"note"`
	Image         string   `json:"image"`
	SleepDuration *float64 `json:"sleepDuration"`
	SleepQuality  string   `json:"sleepQuality"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

type commitUpdatePayload struct {
	Date          *string  `json:"date"`
	Type          *string  `json:"type"`
	Duration      *int     `json:"duration"`
	Weight        *float64 `json:"weight"`
	Distance      *float64 `json:"distance"`
	DistanceUnit  *string  `json:"distanceUnit"`
	Note          *string  `json:"note"`
	Image         *string  `json:"image"`
	SleepDuration *float64 `json:"sleepDuration"`
	SleepQuality  *string  `json:"sleepQuality"`
}

type commitView struct {
	db.CommitRecord
	NoteHTML string `json:"noteHtml"`
}

func newCommitView(record db.CommitRecord) commitView {
	return commitView{CommitRecord: record, NoteHTML: service.RenderNoteHTML(record.Note)}
}

// ListCommits 返回完整账本，最新的记录在前。
func (a *API) ListCommits(c *gin.Context) {
	records := a.ledger.Snapshot()
	views := make([]commitView, 0, len(records))
	for _, record := range records {
		views = append(views, newCommitView(record))
	}
	c.JSON(http.StatusOK, gin.H{"commits": views})
}

// CreateCommit 处理打卡提交。
// 携带定位时把坐标按文本约定写进备注前缀；带体重时同步档案体重；
// 完成后把会话里的活动页面切回首页。
func (a *API) CreateCommit(c *gin.Context) {
	var payload commitCreatePayload
	if !bindJSON(c, &payload, "无效的打卡数据") {
		return
	}

	activity := db.ActivityType(payload.Type)
	if !activity.Valid() {
		respondError(c, http.StatusBadRequest, "未知的运动类型")
		return
	}

	date := payload.Date
	if date == "" {
		date = time.Now().Format(db.CommitDateLayout)
	}

	note := payload.Note
	if payload.Latitude != nil && payload.Longitude != nil {
		note = service.PrependLocation(note, *payload.Latitude, *payload.Longitude)
	}

	record, err := a.ledger.Add(db.CommitDraft{
		Date:          date,
		Type:          activity,
		Duration:      payload.Duration,
		Weight:        payload.Weight,
		Distance:      payload.Distance,
		DistanceUnit:  db.DistanceUnit(payload.DistanceUnit),
		Note:          note,
		Image:         payload.Image,
		SleepDuration: payload.SleepDuration,
		SleepQuality:  db.SleepQuality(payload.SleepQuality),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存打卡失败")
		return
	}

	if payload.Weight != nil {
		if err := a.profile.RecordWeight(*payload.Weight); err != nil {
			respondError(c, http.StatusInternalServerError, "同步体重失败")
			return
		}
	}

	// 打卡完成固定回到首页
	setActiveView(c, viewHome)

	c.JSON(http.StatusCreated, gin.H{"commit": newCommitView(record), "view": viewHome})
}

// UpdateCommit 对记录做局部更新；id 不存在时保持账本不变，返回 204。
func (a *API) UpdateCommit(c *gin.Context) {
	id := c.Param("id")

	var payload commitUpdatePayload
	if !bindJSON(c, &payload, "无效的更新数据") {
		return
	}

	patch := db.CommitPatch{
		Date:          payload.Date,
		Duration:      payload.Duration,
		Weight:        payload.Weight,
		Distance:      payload.Distance,
		Note:          payload.Note,
		Image:         payload.Image,
		SleepDuration: payload.SleepDuration,
	}
	if payload.Type != nil {
		activity := db.ActivityType(*payload.Type)
		if !activity.Valid() {
			respondError(c, http.StatusBadRequest, "未知的运动类型")
			return
		}
		patch.Type = &activity
	}
	if payload.DistanceUnit != nil {
		unit := db.DistanceUnit(*payload.DistanceUnit)
		patch.DistanceUnit = &unit
	}
	if payload.SleepQuality != nil {
		quality := db.SleepQuality(*payload.SleepQuality)
		patch.SleepQuality = &quality
	}

	if err := a.ledger.Update(id, patch); err != nil {
		respondError(c, http.StatusInternalServerError, "更新打卡失败")
		return
	}

	if record, ok := a.ledger.Get(id); ok {
		c.JSON(http.StatusOK, gin.H{"commit": newCommitView(record)})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCommit 删除记录，要求显式确认；id 不存在时同样静默成功。
func (a *API) DeleteCommit(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}

	if err := a.ledger.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "删除打卡失败")
		return
	}
	c.Status(http.StatusNoContent)
}
