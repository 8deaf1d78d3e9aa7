package game

// Spawner 基于时间的障碍物生成计时器
type Spawner struct {
	intervalMs float64
	timerMs    float64
}

// NewSpawner 创建生成计时器
func NewSpawner(intervalMs float64) Spawner {
	return Spawner{intervalMs: intervalMs}
}

// Advance 累加经过的时间，超过生成间隔时返回 true 并将计时器归零
func (s *Spawner) Advance(dtMs float64) bool {
	s.timerMs += dtMs
	if s.timerMs > s.intervalMs {
		s.timerMs = 0
		return true
	}
	return false
}

// Reset 计时器归零
func (s *Spawner) Reset() {
	s.timerMs = 0
}

// Elapsed 返回当前累计时间（毫秒）
func (s *Spawner) Elapsed() float64 {
	return s.timerMs
}
