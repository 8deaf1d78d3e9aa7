package game

// Box 轴对齐包围盒
type Box struct {
	Left, Top, Right, Bottom float64
}

// OverlapsX 检查水平方向是否与 [left, right) 区间重叠
func (b Box) OverlapsX(left, right float64) bool {
	return b.Right > left && b.Left < right
}

// Collision 碰撞类型
type Collision int

const (
	CollisionNone Collision = iota
	CollisionFloor
	CollisionCeiling
	CollisionPipe
)

// String 返回碰撞类型名称（用于日志）
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionFloor:
		return "floor"
	case CollisionCeiling:
		return "ceiling"
	case CollisionPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// DetectCollision 检测小鸟碰撞盒与边界、管道的碰撞
//
// 检查顺序：地面、天花板、按生成顺序的每根管道，第一次命中即停止。
//
// 返回：
//   - Collision: 碰撞类型
//   - int: 命中的管道下标（非管道碰撞时为 -1）
func DetectCollision(box Box, pipes []Pipe, floorY, pipeWidth, gapHeight float64) (Collision, int) {
	if box.Bottom >= floorY {
		return CollisionFloor, -1
	}
	if box.Top <= 0 {
		return CollisionCeiling, -1
	}

	for i, p := range pipes {
		if !box.OverlapsX(p.X, p.TrailingEdge(pipeWidth)) {
			continue
		}
		if box.Top < p.GapTop || box.Bottom > p.GapBottom(gapHeight) {
			return CollisionPipe, i
		}
	}

	return CollisionNone, -1
}
