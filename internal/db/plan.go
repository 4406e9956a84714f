package db

// PlanTaskRest 是计划任务位上的休息哨兵值。
const PlanTaskRest = "REST"

// WeeklyPlanLength 周计划固定为 7 个槽位，0=周一..6=周日。
const WeeklyPlanLength = 7

// PlanDay 是周计划中的一个槽位。
// Task 为 ActivityType 或哨兵 REST；TargetValue 保留文本形态，不在此处校验可解析性。
// IsRest 与 Task 在历史数据中可能不一致，判断休息日一律走 Rest() 方法。
type PlanDay struct {
	Day         string     `json:"day"`
	Task        string     `json:"task"`
	TargetValue string     `json:"targetValue"`
	TargetUnit  TargetUnit `json:"targetUnit"`
	IsRest      bool       `json:"isRest"`
}

// Rest 是"今天是否休息日"的唯一裁决：IsRest 优先于 Task。
func (p PlanDay) Rest() bool {
	return p.IsRest
}

// PlanDayPatch 描述对单个槽位的局部更新，nil 字段保持原值。
type PlanDayPatch struct {
	Task        *string
	TargetValue *string
	TargetUnit  *TargetUnit
	IsRest      *bool
}

// DefaultWeeklyPlan 返回出厂周计划模板。
func DefaultWeeklyPlan() []PlanDay {
	return []PlanDay{
		{Day: "Mon", Task: string(ActivityRunning), TargetValue: "5", TargetUnit: TargetUnitKilometers},
		{Day: "Tue", Task: string(ActivityStrength), TargetValue: "45", TargetUnit: TargetUnitMinutes},
		{Day: "Wed", Task: PlanTaskRest, TargetValue: "10000", TargetUnit: TargetUnitMeters, IsRest: true},
		{Day: "Thu", Task: string(ActivityWeightedWalk), TargetValue: "60", TargetUnit: TargetUnitMinutes},
		{Day: "Fri", Task: string(ActivityStrength), TargetValue: "45", TargetUnit: TargetUnitMinutes},
		{Day: "Sat", Task: string(ActivityHiking), TargetValue: "10", TargetUnit: TargetUnitKilometers},
		{Day: "Sun", Task: string(ActivitySwimming), TargetValue: "1000", TargetUnit: TargetUnitMeters},
	}
}
