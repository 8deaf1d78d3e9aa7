// Package data 嵌入游戏的 YAML 数据文件
//
// 桌面端（main.go）、终端版（cmd/flappykaho-term）和移动端（mobile/）
// 都通过 embedded.Init(data.FS) 共用这份数据。
package data

import "embed"

// FS 包含 tuning.yaml 和 prompts.yaml
//
//go:embed *.yaml
var FS embed.FS
