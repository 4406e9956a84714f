package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Hua202512/rundayapp/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateStore 是持久化状态切片的键值适配器。
// 每个顶层切片占用一个 key，每次变更整体重写该切片（数据量小，O(切片) 写入可接受）。
type StateStore struct {
	db *gorm.DB
}

// NewStateStore 构造 StateStore。
func NewStateStore(gdb *gorm.DB) *StateStore {
	return &StateStore{db: gdb}
}

// Load 读取指定 key 的文本值，第二个返回值表示是否存在。
func (s *StateStore) Load(key string) (string, bool, error) {
	var entry db.StateEntry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load state %s: %w", key, err)
	}
	return entry.Value, true, nil
}

// Save 写入指定 key 的文本值，存在时覆盖。
func (s *StateStore) Save(key, value string) error {
	entry := db.StateEntry{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("save state %s: %w", key, err)
	}
	return nil
}

// Clear 删除全部状态切片，用于"清空所有数据"。
func (s *StateStore) Clear() error {
	if err := s.db.Unscoped().Where("1 = 1").Delete(&db.StateEntry{}).Error; err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}

// LoadJSON 读取并反序列化结构化切片。
// key 缺失或存量数据无法解析时回退到 fallback 并打日志，启动永远不会因脏数据失败。
func (s *StateStore) LoadJSON(key string, dst interface{}, fallback func()) error {
	raw, ok, err := s.Load(key)
	if err != nil {
		return err
	}
	if !ok {
		fallback()
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("state slice %s is malformed, falling back to default: %v", key, err)
		fallback()
	}
	return nil
}

// SaveJSON 序列化并整体写入结构化切片。
func (s *StateStore) SaveJSON(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode state %s: %w", key, err)
	}
	return s.Save(key, string(raw))
}
