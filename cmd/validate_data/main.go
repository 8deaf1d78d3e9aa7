// validate_data 检查嵌入的数值配置和提示文本
//
// 用法:
//
//	go run ./cmd/validate_data
//
// 数值配置非法或缺少翻译时以非零状态退出。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/flappykaho/data"
	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/embedded"
)

func main() {
	embedded.Init(data.FS)
	failed := false

	tuning, err := config.LoadTuning(config.TuningPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", config.TuningPath, err)
		failed = true
	} else {
		fmt.Printf("✅ %s 格式正确（场地 %.0fx%.0f，缺口 %.0f）\n", config.TuningPath,
			tuning.Playfield.Width, tuning.Playfield.Height, tuning.Pipes.GapHeight)
	}

	prompts, err := config.LoadPromptTable(config.PromptsPath)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", config.PromptsPath, err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s 格式正确，语言: %v\n", config.PromptsPath, prompts.Codes())

	if missing := prompts.Missing(); len(missing) > 0 {
		for _, m := range missing {
			fmt.Printf("❌ 缺少翻译: %s\n", m)
		}
		failed = true
	} else {
		fmt.Printf("✅ 所有语言的文本都已填写\n")
	}

	if failed {
		os.Exit(1)
	}
}
