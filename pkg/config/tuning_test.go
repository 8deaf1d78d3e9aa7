package config

import (
	"os"
	"strings"
	"testing"
)

// TestDefaultTuningIsValid 测试内置默认配置本身通过验证
func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning().Validate() error: %v", err)
	}
}

// TestShippedTuningMatchesDefaults 测试 data/tuning.yaml 与内置默认值一致
func TestShippedTuningMatchesDefaults(t *testing.T) {
	data, err := os.ReadFile("../../data/tuning.yaml")
	if err != nil {
		t.Skipf("tuning.yaml not found: %v", err)
	}

	got, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning() error: %v", err)
	}

	if *got != *DefaultTuning() {
		t.Errorf("data/tuning.yaml drifted from DefaultTuning():\n got  %+v\n want %+v", *got, *DefaultTuning())
	}
}

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Tuning)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
physics:
  gravity: 0.3
pipes:
  speed: 3
`,
			validate: func(t *testing.T, tu *Tuning) {
				if tu.Physics.Gravity != 0.3 {
					t.Errorf("Gravity: got %v, want 0.3", tu.Physics.Gravity)
				}
				if tu.Pipes.Speed != 3 {
					t.Errorf("Speed: got %v, want 3", tu.Pipes.Speed)
				}
				if tu.Pipes.GapHeight != 150 {
					t.Errorf("GapHeight: got %v, want default 150", tu.Pipes.GapHeight)
				}
			},
		},
		{
			name: "parallax order violated",
			yamlContent: `
parallax:
  clouds: 0.5
  hills: 0.25
`,
			wantErr:     true,
			errContains: "parallax",
		},
		{
			name: "ground faster than pipes",
			yamlContent: `
parallax:
  ground: 1.2
`,
			wantErr:     true,
			errContains: "parallax",
		},
		{
			name: "fallback larger than clamp",
			yamlContent: `
physics:
  maxDeltaMs: 10
  fallbackDeltaMs: 16
`,
			wantErr:     true,
			errContains: "fallbackDeltaMs",
		},
		{
			name: "upward flap must be negative",
			yamlContent: `
physics:
  flapVelocity: 8
`,
			wantErr:     true,
			errContains: "flapVelocity",
		},
		{
			name: "gap does not fit",
			yamlContent: `
playfield:
  height: 200
  groundHeight: 60
`,
			wantErr:     true,
			errContains: "cannot fit",
		},
		{
			name: "zero sound cap",
			yamlContent: `
audio:
  maxConcurrentSounds: 0
`,
			wantErr:     true,
			errContains: "maxConcurrentSounds",
		},
		{
			name:        "malformed yaml",
			yamlContent: "physics: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu, err := ParseTuning([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, tu)
			}
		})
	}
}
