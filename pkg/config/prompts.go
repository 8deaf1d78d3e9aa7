package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/decker502/flappykaho/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PromptsPath 是嵌入的提示文本文件路径
const PromptsPath = "data/prompts.yaml"

// FallbackLanguage 在配置未指定默认语言时使用
const FallbackLanguage = "en"

// Prompts 单一语言的画布内文本
type Prompts struct {
	Ready          string `yaml:"ready"`
	GameOver       string `yaml:"gameOver"`
	Restart        string `yaml:"restart"`
	Score          string `yaml:"score"`
	Best           string `yaml:"best"`
	MotionNotice   string `yaml:"motionNotice"`
	MotionOverride string `yaml:"motionOverride"`
}

// PromptTable 语言代码 -> 文本
type PromptTable struct {
	DefaultLanguage string             `yaml:"defaultLanguage"`
	Languages       map[string]Prompts `yaml:"languages"`
}

// LoadPromptTable 从嵌入资源加载提示文本表
func LoadPromptTable(path string) (*PromptTable, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts: %w", err)
	}
	return ParsePromptTable(data)
}

// ParsePromptTable 解析 YAML 提示文本表
//
// 语言代码统一转为小写；默认语言必须存在于表中。
func ParsePromptTable(data []byte) (*PromptTable, error) {
	var raw PromptTable
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	table := &PromptTable{
		DefaultLanguage: normalizeLanguage(raw.DefaultLanguage),
		Languages:       make(map[string]Prompts, len(raw.Languages)),
	}
	if table.DefaultLanguage == "" {
		table.DefaultLanguage = FallbackLanguage
	}
	for code, p := range raw.Languages {
		table.Languages[normalizeLanguage(code)] = p
	}

	if _, ok := table.Languages[table.DefaultLanguage]; !ok {
		return nil, fmt.Errorf("default language %q missing from prompts", table.DefaultLanguage)
	}

	return table, nil
}

// Lookup 返回指定语言的文本
//
// 查找顺序：完整代码 → 主语言子标签（"zh-TW" → "zh"）→ 默认语言。
// 无法识别的代码总是回退到默认语言。
func (pt *PromptTable) Lookup(language string) Prompts {
	code := normalizeLanguage(language)
	if p, ok := pt.Languages[code]; ok {
		return p
	}
	if i := strings.IndexByte(code, '-'); i > 0 {
		if p, ok := pt.Languages[code[:i]]; ok {
			return p
		}
	}
	return pt.Languages[pt.DefaultLanguage]
}

// Codes 返回表中所有语言代码，默认语言排在第一位，其余按字母序
func (pt *PromptTable) Codes() []string {
	codes := []string{pt.DefaultLanguage}
	rest := make([]string, 0, len(pt.Languages))
	for code := range pt.Languages {
		if code != pt.DefaultLanguage {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)
	return append(codes, rest...)
}

// Next 返回 current 之后的语言代码（按 Codes() 顺序循环）
// current 不在表中时（例如系统语言没有翻译）从第一个开始
func (pt *PromptTable) Next(current string) string {
	codes := pt.Codes()
	current = normalizeLanguage(current)
	for i, code := range codes {
		if code == current {
			return codes[(i+1)%len(codes)]
		}
	}
	return codes[0]
}

// Missing 返回缺少翻译的条目，格式为 "语言.字段"，按语言顺序排列
func (pt *PromptTable) Missing() []string {
	var missing []string
	for _, code := range pt.Codes() {
		p := pt.Languages[code]
		fields := []struct {
			name  string
			value string
		}{
			{"ready", p.Ready},
			{"gameOver", p.GameOver},
			{"restart", p.Restart},
			{"score", p.Score},
			{"best", p.Best},
			{"motionNotice", p.MotionNotice},
			{"motionOverride", p.MotionOverride},
		}
		for _, f := range fields {
			if strings.TrimSpace(f.value) == "" {
				missing = append(missing, code+"."+f.name)
			}
		}
	}
	return missing
}

// normalizeLanguage 统一语言代码格式："zh_TW" / "ZH-tw" → "zh-tw"
func normalizeLanguage(code string) string {
	code = strings.TrimSpace(strings.ToLower(code))
	// 环境变量形式 "ja_JP.UTF-8" 去掉编码部分
	if i := strings.IndexByte(code, '.'); i >= 0 {
		code = code[:i]
	}
	return strings.ReplaceAll(code, "_", "-")
}
