//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在 gdata 打开存储前创建 /data/data/{包名}/saves
//
// gdata 在 Android 上不会预先创建子目录，第一次保存最高分会因此失败。
//
// 返回：
//   - error: 无法确定包名、创建目录失败或目录不可写时返回错误
func EnsureStorageDir() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to read process name: %w", err)
	}
	pkg, err := packageFromCmdline(cmdline)
	if err != nil {
		return err
	}

	dir := filepath.Join("/data/data", pkg, savesSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}
