package service

import (
	"testing"
	"time"

	"github.com/Hua202512/rundayapp/internal/db"
)

func TestCurrentWeightUsesLedgerOrder(t *testing.T) {
	m := NewMetricsService()

	if got := m.CurrentWeight(nil, 82.1); got != 82.1 {
		t.Fatalf("expected initial weight for empty ledger, got %v", got)
	}

	// 账本顺序 = 最新在前；第一条带体重的记录胜出，与日期无关
	ledger := []db.CommitRecord{
		{ID: "a", Weight: floatPtr(80)},
		{ID: "b"},
		{ID: "c", Weight: floatPtr(82)},
	}
	if got := m.CurrentWeight(ledger, 82.1); got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
}

func TestWeightProgressPercent(t *testing.T) {
	m := NewMetricsService()

	if got := m.WeightProgressPercent(90, 85, 80); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := m.WeightProgressPercent(90, 95, 80); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := m.WeightProgressPercent(90, 70, 80); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
	// initial == target 约定返回 0
	if got := m.WeightProgressPercent(80, 75, 80); got != 0 {
		t.Fatalf("expected 0 when initial equals target, got %v", got)
	}
}

func TestWeeklyCommitCount(t *testing.T) {
	m := NewMetricsService()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	ledger := []db.CommitRecord{
		{Date: now.Format(db.CommitDateLayout)},
		{Date: now.Format(db.CommitDateLayout)},
		{Date: now.AddDate(0, 0, -3).Format(db.CommitDateLayout)},
		{Date: now.AddDate(0, 0, -10).Format(db.CommitDateLayout)},
		{Date: "not a date"},
	}

	if got := m.WeeklyCommitCount(ledger, now); got != 3 {
		t.Fatalf("expected 3 commits in the last week, got %d", got)
	}
}

func TestGoalCompletion(t *testing.T) {
	m := NewMetricsService()

	if got := m.GoalCompletion(3, 4); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
	if got := m.GoalCompletion(3, 0); got != 0 {
		t.Fatalf("expected 0 for zero goal, got %d", got)
	}
}

func TestTypeDistribution(t *testing.T) {
	m := NewMetricsService()

	if got := m.TypeDistribution(nil); len(got) != 0 {
		t.Fatalf("expected empty distribution, got %+v", got)
	}

	ledger := []db.CommitRecord{
		{Type: db.ActivityRunning},
		{Type: db.ActivityRunning},
		{Type: db.ActivitySwimming},
	}

	shares := m.TypeDistribution(ledger)
	if len(shares) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(shares))
	}
	if shares[0].Type != db.ActivityRunning || shares[0].Count != 2 || shares[0].Percent != 67 {
		t.Fatalf("unexpected first entry: %+v", shares[0])
	}
	if shares[1].Type != db.ActivitySwimming || shares[1].Count != 1 || shares[1].Percent != 33 {
		t.Fatalf("unexpected second entry: %+v", shares[1])
	}
}

func TestTimeSeries(t *testing.T) {
	m := NewMetricsService()

	// 账本最新在前：29 日、28 日、27 日
	ledger := []db.CommitRecord{
		{Date: "2026/08/29", Duration: 30, Weight: floatPtr(80.5), SleepDuration: floatPtr(7.5)},
		{Date: "2026/08/28", Duration: 45},
		{Date: "2026/08/27", Duration: 60, Weight: floatPtr(81)},
	}

	points := m.TimeSeries(ledger, 2, 82.1)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// 翻转为时间正序后是 28 日、29 日
	if points[0].Label != "28日" || points[1].Label != "29日" {
		t.Fatalf("unexpected chronological order: %+v", points)
	}
	if points[0].Weight != 82.1 {
		t.Fatalf("expected fallback weight, got %v", points[0].Weight)
	}
	if points[0].Sleep != 0 {
		t.Fatalf("expected sleep fallback 0, got %v", points[0].Sleep)
	}
	if points[1].Weight != 80.5 || points[1].Sleep != 7.5 || points[1].Duration != 30 {
		t.Fatalf("unexpected last point: %+v", points[1])
	}

	// range 大于账本长度时全量返回
	if got := m.TimeSeries(ledger, 30, 82.1); len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
}

func TestTotals(t *testing.T) {
	m := NewMetricsService()

	ledger := []db.CommitRecord{
		{Calories: 225, Distance: floatPtr(1)},
		{Calories: 450, Distance: floatPtr(5.5)},
		{Calories: 308},
	}

	if got := m.TotalCalories(ledger); got != 983 {
		t.Fatalf("expected 983 calories, got %d", got)
	}
	if got := m.TotalDistance(ledger); got != 6.5 {
		t.Fatalf("expected distance 6.5, got %v", got)
	}
}
