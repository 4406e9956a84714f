package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Hua202512/rundayapp/internal/db"
)

// ErrPlanSlotOutOfRange 在槽位下标不在 0..6 时返回
var ErrPlanSlotOutOfRange = errors.New("plan slot index out of range")

// PlanService 维护固定 7 槽位的周计划。
// 槽位只增改不增删，每次变更整体重写持久化切片。
type PlanService struct {
	mu    sync.Mutex
	store *StateStore
	days  []db.PlanDay
}

// NewPlanService 构造 PlanService 并从存储恢复周计划，缺失或损坏时回退出厂模板。
func NewPlanService(store *StateStore) (*PlanService, error) {
	s := &PlanService{store: store}
	err := store.LoadJSON(db.StateKeyWeeklyPlan, &s.days, func() {
		s.days = db.DefaultWeeklyPlan()
	})
	if err != nil {
		return nil, fmt.Errorf("restore weekly plan: %w", err)
	}
	// 存量数据长度异常同样视为损坏
	if len(s.days) != db.WeeklyPlanLength {
		s.days = db.DefaultWeeklyPlan()
	}
	return s, nil
}

// slotIndexForDate 把日历日期映射到计划槽位：周日(weekday 0)落到 6，周一..周六落到 0..5。
func slotIndexForDate(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 6
	}
	return weekday - 1
}

// ResolveSlotForDate 返回指定日期对应的槽位。
func (s *PlanService) ResolveSlotForDate(t time.Time) db.PlanDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.days[slotIndexForDate(t)]
}

// Today 返回今天的槽位。
func (s *PlanService) Today(now time.Time) db.PlanDay {
	return s.ResolveSlotForDate(now)
}

// UpdateSlot 将补丁浅合并到指定槽位。
// 不校验 TargetValue 是否可解析为数字，也不强制 IsRest 与 Task 一致，维持既有宽松契约。
func (s *PlanService) UpdateSlot(index int, patch db.PlanDayPatch) (db.PlanDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= db.WeeklyPlanLength {
		return db.PlanDay{}, ErrPlanSlotOutOfRange
	}

	next := make([]db.PlanDay, len(s.days))
	copy(next, s.days)

	day := &next[index]
	if patch.Task != nil {
		day.Task = *patch.Task
	}
	if patch.TargetValue != nil {
		day.TargetValue = *patch.TargetValue
	}
	if patch.TargetUnit != nil {
		day.TargetUnit = *patch.TargetUnit
	}
	if patch.IsRest != nil {
		day.IsRest = *patch.IsRest
	}

	if err := s.store.SaveJSON(db.StateKeyWeeklyPlan, next); err != nil {
		return db.PlanDay{}, fmt.Errorf("persist weekly plan: %w", err)
	}

	s.days = next
	return *day, nil
}

// Snapshot 返回周计划副本，长度恒为 7。
func (s *PlanService) Snapshot() []db.PlanDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]db.PlanDay, len(s.days))
	copy(out, s.days)
	return out
}
