package utils

import (
	"bytes"
	"errors"
)

// savesSubdir gdata 在应用数据目录下使用的子目录
const savesSubdir = "saves"

// packageFromCmdline 从 /proc/self/cmdline 内容中取出进程名（Android 上即应用包名）
// cmdline 以 NUL 分隔各个参数，只取第一个
func packageFromCmdline(data []byte) (string, error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", errors.New("empty process name in /proc/self/cmdline")
	}
	return name, nil
}
