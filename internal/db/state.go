package db

import "gorm.io/gorm"

// StateEntry 存储按键划分的应用状态切片。
// 标量切片（用户名、体重等）直接存文本，结构化切片（打卡账本、周计划）存 JSON 文本。
type StateEntry struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (StateEntry) TableName() string {
	return "state_entries"
}

const (
	// StateKeyUserName 表示用户昵称。
	StateKeyUserName = "user_name"
	// StateKeySystemStatus 表示首页展示的个性口号。
	StateKeySystemStatus = "system_status"
	// StateKeyAvatar 表示头像的 data URI。
	StateKeyAvatar = "avatar"
	// StateKeyInitialWeight 表示当前/初始体重（kg）。
	StateKeyInitialWeight = "initial_weight"
	// StateKeyTargetWeight 表示目标体重（kg）。
	StateKeyTargetWeight = "target_weight"
	// StateKeyWeeklyGoal 表示每周打卡目标次数。
	StateKeyWeeklyGoal = "weekly_goal"
	// StateKeyMonthlyGoal 表示每月打卡目标次数。
	StateKeyMonthlyGoal = "monthly_goal"
	// StateKeyLedger 表示序列化后的打卡账本。
	StateKeyLedger = "commit_ledger"
	// StateKeyWeeklyPlan 表示序列化后的周计划。
	StateKeyWeeklyPlan = "weekly_plan"
)
