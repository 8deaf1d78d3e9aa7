package embedded

import (
	"testing"
	"testing/fstest"
)

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile("data/tuning.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试通过 data/ 前缀读取文件
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"tuning.yaml": &fstest.MapFile{Data: []byte("gravity: 0.5\n")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "plain path", path: "data/tuning.yaml"},
		{name: "dot slash prefix", path: "./data/tuning.yaml"},
		{name: "unknown prefix", path: "assets/tuning.yaml", wantErr: true},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q): expected error, got nil", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "gravity: 0.5\n" {
				t.Errorf("ReadFile(%q): got %q", tt.path, data)
			}
		})
	}
}

// TestExists 测试文件存在性检查
func TestExists(t *testing.T) {
	Init(fstest.MapFS{
		"prompts.yaml": &fstest.MapFile{Data: []byte("en: {}\n")},
	})
	defer Init(nil)

	if !Exists("data/prompts.yaml") {
		t.Error("Expected data/prompts.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected data/nope.yaml not to exist")
	}
}
