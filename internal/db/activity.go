package db

// ActivityType 是封闭的运动类型枚举。
// 新增类型时需要同步扩展 internal/view 中的图标与配色映射。
type ActivityType string

const (
	ActivitySwimming     ActivityType = "游泳"
	ActivityHiking       ActivityType = "徒步"
	ActivityClimbing     ActivityType = "爬山"
	ActivityCycling      ActivityType = "骑行"
	ActivityRunning      ActivityType = "跑步"
	ActivityWeightedWalk ActivityType = "负重散步"
	ActivityStrength     ActivityType = "力量健身"
	ActivityBadminton    ActivityType = "羽毛球"
)

// AllActivityTypes 按固定顺序列出全部运动类型，供选择器与校验使用。
func AllActivityTypes() []ActivityType {
	return []ActivityType{
		ActivitySwimming,
		ActivityHiking,
		ActivityClimbing,
		ActivityCycling,
		ActivityRunning,
		ActivityWeightedWalk,
		ActivityStrength,
		ActivityBadminton,
	}
}

// Valid 判断是否属于已知运动类型。
func (t ActivityType) Valid() bool {
	for _, known := range AllActivityTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// TargetUnit 是计划目标值的单位集合。
type TargetUnit string

const (
	TargetUnitMinutes    TargetUnit = "min"
	TargetUnitKilometers TargetUnit = "km"
	TargetUnitMeters     TargetUnit = "m"
	TargetUnitCount      TargetUnit = "次"
)

// DistanceUnit 是打卡记录里距离字段的单位集合。
type DistanceUnit string

const (
	DistanceUnitKilometers DistanceUnit = "km"
	DistanceUnitMeters     DistanceUnit = "m"
	DistanceUnitCount      DistanceUnit = "次"
)

// SleepQuality 是睡眠质量的封闭取值。
type SleepQuality string

const (
	SleepExcellent SleepQuality = "极好"
	SleepGood      SleepQuality = "良好"
	SleepFair      SleepQuality = "一般"
	SleepPoor      SleepQuality = "较差"
)
