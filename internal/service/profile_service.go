package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Hua202512/rundayapp/internal/db"
)

// 出厂档案默认值，存储缺失对应 key 时使用。
const (
	defaultUserName      = "DevCoder"
	defaultSystemStatus  = "保持自律，代码与身材齐飞"
	defaultInitialWeight = 82.1
	defaultTargetWeight  = 76.0
	defaultWeeklyGoal    = 4
	defaultMonthlyGoal   = 16
)

// Profile 汇总全部档案标量。
type Profile struct {
	UserName      string  `json:"userName"`
	SystemStatus  string  `json:"systemStatus"`
	Avatar        string  `json:"avatar"`
	InitialWeight float64 `json:"initialWeight"`
	TargetWeight  float64 `json:"targetWeight"`
	WeeklyGoal    int     `json:"weeklyGoal"`
	MonthlyGoal   int     `json:"monthlyGoal"`
}

// ProfileInput 描述档案更新时可设置的字段，nil 表示保持原值。
type ProfileInput struct {
	UserName      *string
	SystemStatus  *string
	Avatar        *string
	InitialWeight *float64
	TargetWeight  *float64
	WeeklyGoal    *int
	MonthlyGoal   *int
}

// ProfileService 负责档案标量的读取与更新。
// 每个标量独立成一个存储 key，数字在边界处编解码为文本。
type ProfileService struct {
	mu    sync.Mutex
	store *StateStore
}

// NewProfileService 构造 ProfileService。
func NewProfileService(store *StateStore) *ProfileService {
	return &ProfileService{store: store}
}

// Get 读取档案，缺失的 key 回退默认值。
func (s *ProfileService) Get() (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ProfileService) load() (Profile, error) {
	profile := Profile{
		UserName:      defaultUserName,
		SystemStatus:  defaultSystemStatus,
		InitialWeight: defaultInitialWeight,
		TargetWeight:  defaultTargetWeight,
		WeeklyGoal:    defaultWeeklyGoal,
		MonthlyGoal:   defaultMonthlyGoal,
	}

	if value, ok, err := s.store.Load(db.StateKeyUserName); err != nil {
		return profile, err
	} else if ok && strings.TrimSpace(value) != "" {
		profile.UserName = value
	}

	if value, ok, err := s.store.Load(db.StateKeySystemStatus); err != nil {
		return profile, err
	} else if ok {
		profile.SystemStatus = value
	}

	if value, ok, err := s.store.Load(db.StateKeyAvatar); err != nil {
		return profile, err
	} else if ok {
		profile.Avatar = value
	}

	if value, err := s.loadFloat(db.StateKeyInitialWeight, defaultInitialWeight); err != nil {
		return profile, err
	} else {
		profile.InitialWeight = value
	}

	if value, err := s.loadFloat(db.StateKeyTargetWeight, defaultTargetWeight); err != nil {
		return profile, err
	} else {
		profile.TargetWeight = value
	}

	if value, err := s.loadInt(db.StateKeyWeeklyGoal, defaultWeeklyGoal); err != nil {
		return profile, err
	} else {
		profile.WeeklyGoal = value
	}

	if value, err := s.loadInt(db.StateKeyMonthlyGoal, defaultMonthlyGoal); err != nil {
		return profile, err
	} else {
		profile.MonthlyGoal = value
	}

	return profile, nil
}

func (s *ProfileService) loadFloat(key string, fallback float64) (float64, error) {
	raw, ok, err := s.store.Load(key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	value, parseErr := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if parseErr != nil {
		return fallback, nil
	}
	return value, nil
}

func (s *ProfileService) loadInt(key string, fallback int) (int, error) {
	raw, ok, err := s.store.Load(key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	value, parseErr := strconv.Atoi(strings.TrimSpace(raw))
	if parseErr != nil {
		return fallback, nil
	}
	return value, nil
}

// Update 按字段写入档案，未提供的字段不动。
func (s *ProfileService) Update(input ProfileInput) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.UserName != nil {
		if err := s.store.Save(db.StateKeyUserName, strings.TrimSpace(*input.UserName)); err != nil {
			return Profile{}, err
		}
	}
	if input.SystemStatus != nil {
		if err := s.store.Save(db.StateKeySystemStatus, *input.SystemStatus); err != nil {
			return Profile{}, err
		}
	}
	if input.Avatar != nil {
		if err := s.store.Save(db.StateKeyAvatar, *input.Avatar); err != nil {
			return Profile{}, err
		}
	}
	if input.InitialWeight != nil {
		if err := s.store.Save(db.StateKeyInitialWeight, formatFloat(*input.InitialWeight)); err != nil {
			return Profile{}, err
		}
	}
	if input.TargetWeight != nil {
		if err := s.store.Save(db.StateKeyTargetWeight, formatFloat(*input.TargetWeight)); err != nil {
			return Profile{}, err
		}
	}
	if input.WeeklyGoal != nil {
		if err := s.store.Save(db.StateKeyWeeklyGoal, strconv.Itoa(*input.WeeklyGoal)); err != nil {
			return Profile{}, err
		}
	}
	if input.MonthlyGoal != nil {
		if err := s.store.Save(db.StateKeyMonthlyGoal, strconv.Itoa(*input.MonthlyGoal)); err != nil {
			return Profile{}, err
		}
	}

	return s.load()
}

// RecordWeight 在带体重的打卡完成后同步档案体重，对齐打卡即更新当前体重的行为。
func (s *ProfileService) RecordWeight(weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(db.StateKeyInitialWeight, formatFloat(weight)); err != nil {
		return fmt.Errorf("record weight: %w", err)
	}
	return nil
}

// ClearAll 清空全部持久化状态，调用方需要先完成用户确认。
func (s *ProfileService) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
