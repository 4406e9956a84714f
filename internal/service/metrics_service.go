package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Hua202512/rundayapp/internal/db"
)

// MetricsService 把账本快照与档案标量折算成页面需要的派生指标。
// 全部方法都是纯函数，不持有状态、不触达存储。
type MetricsService struct{}

// NewMetricsService 构造 MetricsService。
func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// TypeShare 是单个运动类型的占比条目。
type TypeShare struct {
	Type    db.ActivityType `json:"type"`
	Count   int             `json:"count"`
	Percent int             `json:"percent"`
}

// SeriesPoint 是身体性能图表消费的一条数据。
// Label 为"N日"，weight 缺失时回退到当前体重，睡眠缺失记 0。
type SeriesPoint struct {
	Label    string  `json:"label"`
	Weight   float64 `json:"weight"`
	Duration int     `json:"duration"`
	Sleep    float64 `json:"sleep"`
}

// CurrentWeight 按账本存储顺序（最新在前）找第一条带体重的记录。
// 语义是"最近一次动作"而非"日期最近"：编辑日期不影响账本位置，保持该行为。
func (m *MetricsService) CurrentWeight(ledger []db.CommitRecord, initialWeight float64) float64 {
	for _, record := range ledger {
		if record.Weight != nil {
			return *record.Weight
		}
	}
	return initialWeight
}

// WeightProgressPercent 计算减重进度百分比并夹取到 0..100。
// initial == target 时按约定返回 0，避免除零后的无界值。
func (m *MetricsService) WeightProgressPercent(initial, current, target float64) float64 {
	denominator := initial - target
	if denominator == 0 {
		return 0
	}
	percent := (initial - current) / denominator * 100
	return math.Min(100, math.Max(0, percent))
}

// WeeklyCommitCount 统计 date 解析后落在 now 之前 7×24h 内的记录数。
// 无法解析的日期直接跳过，不算错误。
func (m *MetricsService) WeeklyCommitCount(ledger []db.CommitRecord, now time.Time) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	count := 0
	for _, record := range ledger {
		when, err := time.ParseInLocation(db.CommitDateLayout, strings.TrimSpace(record.Date), now.Location())
		if err != nil {
			continue
		}
		if when.After(cutoff) && !when.After(now) {
			count++
		}
	}
	return count
}

// GoalCompletion 把完成数折算成目标百分比，目标为 0 时返回 0。
func (m *MetricsService) GoalCompletion(count, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(goal) * 100))
}

// TypeDistribution 按类型聚合并按次数降序返回占比。
// 空账本返回空切片；分母为 0 时按 1 处理，保证"只产数组、从不抛错"。
func (m *MetricsService) TypeDistribution(ledger []db.CommitRecord) []TypeShare {
	counts := map[db.ActivityType]int{}
	for _, record := range ledger {
		counts[record.Type]++
	}

	total := len(ledger)
	if total == 0 {
		total = 1
	}

	shares := make([]TypeShare, 0, len(counts))
	for activity, count := range counts {
		shares = append(shares, TypeShare{
			Type:    activity,
			Count:   count,
			Percent: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Type < shares[j].Type
	})

	return shares
}

// TimeSeries 取最近 rangeDays 条记录并翻转为时间正序，映射成图表数据点。
func (m *MetricsService) TimeSeries(ledger []db.CommitRecord, rangeDays int, fallbackWeight float64) []SeriesPoint {
	recent := recentChronological(ledger, rangeDays)

	points := make([]SeriesPoint, 0, len(recent))
	for _, record := range recent {
		weight := fallbackWeight
		if record.Weight != nil {
			weight = *record.Weight
		}
		sleep := 0.0
		if record.SleepDuration != nil {
			sleep = *record.SleepDuration
		}
		points = append(points, SeriesPoint{
			Label:    dayLabel(record.Date),
			Weight:   weight,
			Duration: record.Duration,
			Sleep:    sleep,
		})
	}
	return points
}

// TotalCalories 返回全账本热量总和。
func (m *MetricsService) TotalCalories(ledger []db.CommitRecord) int {
	total := 0
	for _, record := range ledger {
		total += record.Calories
	}
	return total
}

// TotalDistance 返回全账本距离总和。
// 已知限制：km/m/次 混合相加，不做单位归一，保持原有口径。
func (m *MetricsService) TotalDistance(ledger []db.CommitRecord) float64 {
	total := 0.0
	for _, record := range ledger {
		if record.Distance != nil {
			total += *record.Distance
		}
	}
	return total
}

// recentChronological 取账本头部（最新的）n 条并翻转成时间正序。
func recentChronological(ledger []db.CommitRecord, n int) []db.CommitRecord {
	if n < 0 {
		n = 0
	}
	if n > len(ledger) {
		n = len(ledger)
	}

	out := make([]db.CommitRecord, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = ledger[i]
	}
	return out
}

// dayLabel 从 "2025/08/29" 这类日期取出日并拼成 "29日"；形状异常时原样返回。
func dayLabel(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) < 3 {
		return date
	}
	return parts[2] + "日"
}
