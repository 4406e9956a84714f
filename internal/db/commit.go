package db

// CommitDateLayout 是打卡日期的展示格式（zh-CN 年/月/日）。
// 日期既用于展示也用于"是否在最近 N 天内"的比较，比较前必须按该格式重新解析。
const CommitDateLayout = "2006/01/02"

// CommitRecord 是一条打卡记录。
// JSON 字段名与持久化切片的历史形状保持一致，不可随意改名。
// 记录只能经由 LedgerService 创建与修改，id 与 calories 均为派生字段。
type CommitRecord struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	Type          ActivityType  `json:"type"`
	Duration      int           `json:"duration"`
	Weight        *float64      `json:"weight,omitempty"`
	Distance      *float64      `json:"distance,omitempty"`
	DistanceUnit  DistanceUnit  `json:"distanceUnit,omitempty"`
	Calories      int           `json:"calories"`
	Note          string        `json:"note"`
	Image         string        `json:"image,omitempty"`
	SleepDuration *float64      `json:"sleepDuration,omitempty"`
	SleepQuality  SleepQuality  `json:"sleepQuality,omitempty"`
}

// CommitDraft 描述新打卡的输入，不含 ID 与 Calories 两个派生字段。
type CommitDraft struct {
	Date          string
	Type          ActivityType
	Duration      int
	Weight        *float64
	Distance      *float64
	DistanceUnit  DistanceUnit
	Note          string
	Image         string
	SleepDuration *float64
	SleepQuality  SleepQuality
}

// CommitPatch 描述对已有记录的局部更新，nil 字段表示保持原值。
// Calories 不在其中：热量始终由时长派生，调用方无法直接写入。
type CommitPatch struct {
	Date          *string
	Type          *ActivityType
	Duration      *int
	Weight        *float64
	Distance      *float64
	DistanceUnit  *DistanceUnit
	Note          *string
	Image         *string
	SleepDuration *float64
	SleepQuality  *SleepQuality
}
