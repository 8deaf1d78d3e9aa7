package game

import (
	"fmt"
	"log"
	"time"

	synth "github.com/decker502/flappykaho/internal/audio"
	"github.com/decker502/flappykaho/pkg/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

// voice 正在播放的一个提示音
// 由 *audio.Player 实现，测试中可替换
type voice interface {
	Play()
	IsPlaying() bool
	Close() error
}

// voiceFactory 根据 PCM 数据创建播放器
type voiceFactory func(pcm []byte) (voice, error)

// AudioManager 得分提示音管理器
// 职责：
//   - 用户第一次操作时才创建音频上下文（遵守平台自动播放限制）
//   - 合成并缓存提示音 PCM（按当前音量）
//   - 限制同时播放的提示音数量，达到上限时静默跳过
//
// 并发上限通过轮询播放器的真实播放状态回收，不依赖定时器，
// 因此所有状态都只在渲染循环线程中修改。
type AudioManager struct {
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置，可为 nil）
	chime           synth.Chime
	maxVoices       int

	newVoice  voiceFactory // 上下文创建后才非 nil
	pcm       []byte       // 缓存的提示音 PCM
	pcmVolume float64      // pcm 对应的音量
	active    []voice      // 正在播放的提示音
	unlocked  bool
}

// NewAudioManager 创建音频管理器（此时不创建音频上下文）
//
// 参数：
//   - at: 提示音参数
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(at config.AudioTuning, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		settingsManager: sm,
		chime:           NewChime(at),
		maxVoices: at.MaxConcurrentSounds,
		pcmVolume: -1,
	}
}

// NewChime 按配置构造得分提示音参数
func NewChime(at config.AudioTuning) synth.Chime {
	return synth.Chime{
		Duration:  time.Duration(at.ChimeDurationMs * float64(time.Millisecond)),
		StartHz:   at.ChimeStartHz,
		EndHz:     at.ChimeEndHz,
		StartGain: at.ChimeStartGain,
		EndGain:   at.ChimeEndGain,
	}
}

// Unlock 创建或复用音频上下文
//
// 由第一次用户操作触发；失败时只记录日志，之后的得分事件保持静音。
func (am *AudioManager) Unlock() {
	if am.unlocked {
		return
	}
	am.unlocked = true

	ctx, err := currentOrNewContext()
	if err != nil {
		log.Printf("[AudioManager] Warning: audio unavailable: %v", err)
		return
	}

	am.newVoice = func(pcm []byte) (voice, error) {
		return ctx.NewPlayerF32FromBytes(pcm), nil
	}
	log.Printf("[AudioManager] Audio context ready (%d Hz)", ctx.SampleRate())
}

// currentOrNewContext 返回进程内唯一的音频上下文
// ebiten 不允许创建第二个上下文，平台拒绝时 NewContext 会 panic
func currentOrNewContext() (ctx *audio.Context, err error) {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx, nil
	}
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("create audio context: %v", r)
		}
	}()
	return audio.NewContext(SampleRate), nil
}

// PlayScore 播放得分提示音
//
// 返回：
//   - bool: 是否真正播放（未解锁、已禁用、达到并发上限或创建失败时为 false）
func (am *AudioManager) PlayScore() bool {
	if am.newVoice == nil {
		return false
	}

	volume := am.settingsManager.EffectiveVolume()
	if volume <= 0 {
		return false
	}

	am.reap()
	if len(am.active) >= am.maxVoices {
		return false
	}

	v, err := am.newVoice(am.chimePCM(volume))
	if err != nil {
		log.Printf("[AudioManager] Warning: failed to create player: %v", err)
		return false
	}
	v.Play()
	am.active = append(am.active, v)
	return true
}

// ActiveVoices 返回当前仍在播放的提示音数量
func (am *AudioManager) ActiveVoices() int {
	am.reap()
	return len(am.active)
}

// reap 回收已播放完毕的提示音
func (am *AudioManager) reap() {
	kept := am.active[:0]
	for _, v := range am.active {
		if v.IsPlaying() {
			kept = append(kept, v)
			continue
		}
		if err := v.Close(); err != nil {
			log.Printf("[AudioManager] Warning: failed to close player: %v", err)
		}
	}
	// 清除尾部引用
	for i := len(kept); i < len(am.active); i++ {
		am.active[i] = nil
	}
	am.active = kept
}

// chimePCM 返回指定音量的提示音 PCM，音量不变时复用缓存
func (am *AudioManager) chimePCM(volume float64) []byte {
	if am.pcm == nil || am.pcmVolume != volume {
		am.pcm = am.chime.Render(beep.SampleRate(SampleRate), volume)
		am.pcmVolume = volume
	}
	return am.pcm
}
