package view

import "github.com/Hua202512/rundayapp/internal/db"

// ActivityOption describes a selectable activity entry for pickers.
type ActivityOption struct {
	Type  db.ActivityType `json:"type"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
}

// 休息日与未知任务的兜底图标。
const (
	restIcon    = "coffee"
	defaultIcon = "circle-dot"
)

// ActivityIcon 返回运动类型对应的图标 key。
// switch 覆盖全部枚举值：新增类型时编译期就会暴露遗漏。
func ActivityIcon(t db.ActivityType) string {
	switch t {
	case db.ActivitySwimming:
		return "waves"
	case db.ActivityHiking:
		return "footprints"
	case db.ActivityClimbing:
		return "mountain"
	case db.ActivityCycling:
		return "bike"
	case db.ActivityRunning:
		return "running"
	case db.ActivityWeightedWalk:
		return "person-standing"
	case db.ActivityStrength:
		return "biceps-flexed"
	case db.ActivityBadminton:
		return "badminton"
	default:
		return defaultIcon
	}
}

// ActivityColor 返回运动类型对应的背景配色。
func ActivityColor(t db.ActivityType) string {
	switch t {
	case db.ActivitySwimming:
		return "bg-blue-100/50"
	case db.ActivityHiking:
		return "bg-emerald-100/50"
	case db.ActivityClimbing:
		return "bg-teal-100/50"
	case db.ActivityCycling:
		return "bg-sky-100/50"
	case db.ActivityRunning:
		return "bg-orange-100/50"
	case db.ActivityWeightedWalk:
		return "bg-amber-100/50"
	case db.ActivityStrength:
		return "bg-indigo-100/50"
	case db.ActivityBadminton:
		return "bg-rose-100/50"
	default:
		return "bg-slate-100/50"
	}
}

// PlanTaskIcon 解析计划槽位的图标。
// 休息与否统一走 Rest()，避免 IsRest 与 Task 不一致时图标口径漂移。
func PlanTaskIcon(day db.PlanDay) string {
	if day.Rest() {
		return restIcon
	}
	return ActivityIcon(db.ActivityType(day.Task))
}

// ActivityOptions 按固定顺序返回全部可选运动类型及展示元数据。
func ActivityOptions() []ActivityOption {
	types := db.AllActivityTypes()
	options := make([]ActivityOption, 0, len(types))
	for _, t := range types {
		options = append(options, ActivityOption{
			Type:  t,
			Icon:  ActivityIcon(t),
			Color: ActivityColor(t),
		})
	}
	return options
}
