package service

import (
	"fmt"
	"math"
	"sync"

	"github.com/Hua202512/rundayapp/internal/db"
	"github.com/google/uuid"
)

// CaloriesPerMinute 是固定的热量系数，对所有运动类型一视同仁。
// 这是产品有意的简化，不做 MET 表，不要"优化"。
const CaloriesPerMinute = 7.5

// LedgerService 是打卡账本的唯一拥有者。
// 账本在内存中按"最新在前"排列，他处只能通过 Snapshot 拿到副本；
// 每次变更后整体重写持久化切片。
type LedgerService struct {
	mu      sync.Mutex
	store   *StateStore
	commits []db.CommitRecord
}

// NewLedgerService 构造 LedgerService 并从存储恢复账本，缺失或损坏时为空账本。
func NewLedgerService(store *StateStore) (*LedgerService, error) {
	s := &LedgerService{store: store}
	err := store.LoadJSON(db.StateKeyLedger, &s.commits, func() {
		s.commits = nil
	})
	if err != nil {
		return nil, fmt.Errorf("restore commit ledger: %w", err)
	}
	if s.commits == nil {
		s.commits = []db.CommitRecord{}
	}
	return s, nil
}

// commitCalories 按时长派生热量。
func commitCalories(durationMinutes int) int {
	return int(math.Round(float64(durationMinutes) * CaloriesPerMinute))
}

// Add 接收不含派生字段的草稿，分配 ID、计算热量并把新记录放到账本头部。
func (s *LedgerService) Add(draft db.CommitDraft) (db.CommitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := db.CommitRecord{
		ID:            uuid.NewString(),
		Date:          draft.Date,
		Type:          draft.Type,
		Duration:      draft.Duration,
		Weight:        draft.Weight,
		Distance:      draft.Distance,
		DistanceUnit:  draft.DistanceUnit,
		Calories:      commitCalories(draft.Duration),
		Note:          draft.Note,
		Image:         draft.Image,
		SleepDuration: draft.SleepDuration,
		SleepQuality:  draft.SleepQuality,
	}

	next := make([]db.CommitRecord, 0, len(s.commits)+1)
	next = append(next, record)
	next = append(next, s.commits...)

	if err := s.store.SaveJSON(db.StateKeyLedger, next); err != nil {
		return db.CommitRecord{}, fmt.Errorf("persist commit ledger: %w", err)
	}

	s.commits = next
	return record, nil
}

// Update 将补丁浅合并到指定记录上；id 不存在时静默忽略。
// 补丁带 Duration 时热量一律重新计算，派生值永远压过调用方。
func (s *LedgerService) Update(id string, patch db.CommitPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.commits {
		if s.commits[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	next := make([]db.CommitRecord, len(s.commits))
	copy(next, s.commits)

	record := &next[index]
	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.Type != nil {
		record.Type = *patch.Type
	}
	if patch.Duration != nil {
		record.Duration = *patch.Duration
		record.Calories = commitCalories(*patch.Duration)
	}
	if patch.Weight != nil {
		record.Weight = patch.Weight
	}
	if patch.Distance != nil {
		record.Distance = patch.Distance
	}
	if patch.DistanceUnit != nil {
		record.DistanceUnit = *patch.DistanceUnit
	}
	if patch.Note != nil {
		record.Note = *patch.Note
	}
	if patch.Image != nil {
		record.Image = *patch.Image
	}
	if patch.SleepDuration != nil {
		record.SleepDuration = patch.SleepDuration
	}
	if patch.SleepQuality != nil {
		record.SleepQuality = *patch.SleepQuality
	}

	if err := s.store.SaveJSON(db.StateKeyLedger, next); err != nil {
		return fmt.Errorf("persist commit ledger: %w", err)
	}

	s.commits = next
	return nil
}

// Delete 删除指定记录；id 不存在时静默忽略。
func (s *LedgerService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]db.CommitRecord, 0, len(s.commits))
	removed := false
	for _, record := range s.commits {
		if record.ID == id {
			removed = true
			continue
		}
		next = append(next, record)
	}
	if !removed {
		return nil
	}

	if err := s.store.SaveJSON(db.StateKeyLedger, next); err != nil {
		return fmt.Errorf("persist commit ledger: %w", err)
	}

	s.commits = next
	return nil
}

// Get 按 id 查找记录，第二个返回值表示是否存在。
func (s *LedgerService) Get(id string) (db.CommitRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.commits {
		if record.ID == id {
			return record, true
		}
	}
	return db.CommitRecord{}, false
}

// Snapshot 返回账本副本，最新的记录在下标 0。
func (s *LedgerService) Snapshot() []db.CommitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]db.CommitRecord, len(s.commits))
	copy(out, s.commits)
	return out
}
