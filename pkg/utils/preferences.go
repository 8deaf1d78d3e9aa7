package utils

import (
	"os"
	"strings"
)

// 环境变量
const (
	// EnvReducedMotion 设为 1/true/reduce 时视为系统要求减少动态效果
	EnvReducedMotion = "FLAPPYKAHO_REDUCED_MOTION"
	// EnvLanguage 覆盖画布语言
	EnvLanguage = "FLAPPYKAHO_LANG"
)

// ReducedMotionFromEnv 读取 "减少动态效果" 偏好
//
// 桌面系统没有统一的查询接口，因此通过环境变量传入；
// 未设置时返回 false。
func ReducedMotionFromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvReducedMotion))) {
	case "1", "true", "yes", "reduce":
		return true
	}
	return false
}

// SystemLanguage 返回系统语言代码（例如 "ja_JP.UTF-8" → "ja-JP"）
//
// 查找顺序：FLAPPYKAHO_LANG → LC_ALL → LC_MESSAGES → LANG。
// "C" / "POSIX" 视为未设置，返回空串。
func SystemLanguage() string {
	for _, key := range []string{EnvLanguage, "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		if i := strings.IndexByte(v, '@'); i >= 0 {
			v = v[:i]
		}
		if v == "C" || v == "POSIX" || v == "" {
			return ""
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}
