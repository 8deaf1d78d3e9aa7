package utils

import "testing"

func TestToLayout(t *testing.T) {
	tests := []struct {
		x, y   int
		scale  float64
		wx, wy float64
	}{
		{100, 200, 1, 100, 200},
		{100, 200, 2, 50, 100},
		{30, 45, 1.5, 20, 30},
		{10, 20, 0, 10, 20},  // 非法缩放按 1 处理
		{10, 20, -2, 10, 20}, // 非法缩放按 1 处理
	}

	for _, tt := range tests {
		x, y := ToLayout(tt.x, tt.y, tt.scale)
		if x != tt.wx || y != tt.wy {
			t.Errorf("ToLayout(%d, %d, %v): got (%v, %v), want (%v, %v)", tt.x, tt.y, tt.scale, x, y, tt.wx, tt.wy)
		}
	}
}
