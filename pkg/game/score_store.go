package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// ScoreStore 最高分持久化接口
type ScoreStore interface {
	// LoadBest 读取最高分，不存在或无法解析时返回 0
	LoadBest() int
	// SaveBest 写入最高分
	SaveBest(best int) error
}

// 存储路径常量
const (
	scoreObject   = "score"
	scoreProperty = "best"
)

// GdataScoreStore 基于 gdata 的最高分存储
//
// 存储内容是十进制整数字符串。
// gdataManager 为 nil 时进入降级模式：只保存在内存中，不报错。
type GdataScoreStore struct {
	gdataManager *gdata.Manager
	memory       int
}

// NewScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
func NewScoreStore(gdataManager *gdata.Manager) *GdataScoreStore {
	return &GdataScoreStore{gdataManager: gdataManager}
}

// LoadBest 读取最高分
//
// 文件不存在、读取失败或内容不是非负整数时都返回 0（静默恢复）
func (s *GdataScoreStore) LoadBest() int {
	if s.gdataManager == nil {
		return s.memory
	}

	if !s.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return 0
	}

	data, err := s.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		log.Printf("[ScoreStore] Warning: failed to load best score: %v (using 0)", err)
		return 0
	}

	return ParseBestScore(string(data))
}

// SaveBest 写入最高分
func (s *GdataScoreStore) SaveBest(best int) error {
	if s.gdataManager == nil {
		s.memory = best
		return nil
	}

	if err := s.gdataManager.SaveObjectProp(scoreObject, scoreProperty, []byte(strconv.Itoa(best))); err != nil {
		return fmt.Errorf("failed to save best score: %w", err)
	}

	log.Printf("[ScoreStore] Best score saved: %d", best)
	return nil
}

// ParseBestScore 解析持久化的最高分字符串
// 空串、非数字和负数都视为 0
func ParseBestScore(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
