package game

// State 游戏流程状态
//
// 状态转换：
//
//	Ready    --操作--> Playing（不改变速度）
//	Playing  --操作--> Playing（立即跳跃）
//	Playing  --碰撞--> GameOver（更新最高分，显示结算层和重新开始按钮）
//	GameOver --操作/重新开始--> Playing（完全重置后立即跳跃）
type State int

const (
	// StateReady 初始状态：小鸟原地浮动，不模拟物理
	StateReady State = iota
	// StatePlaying 完整模拟
	StatePlaying
	// StateGameOver 模拟冻结，显示结算层
	StateGameOver
)

// String 返回状态名称（用于日志）
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
