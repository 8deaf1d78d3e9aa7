package game

import (
	"errors"
	"testing"

	"github.com/decker502/flappykaho/pkg/config"
)

// fakeVoice 可手动结束的播放器
type fakeVoice struct {
	playing bool
	closed  bool
}

func (v *fakeVoice) Play()           { v.playing = true }
func (v *fakeVoice) IsPlaying() bool { return v.playing }
func (v *fakeVoice) Close() error {
	v.closed = true
	return nil
}

// newTestAudioManager 创建使用假播放器的音频管理器
func newTestAudioManager(sm *SettingsManager) (*AudioManager, *[]*fakeVoice) {
	am := NewAudioManager(config.DefaultTuning().Audio, sm)
	voices := &[]*fakeVoice{}
	am.unlocked = true
	am.newVoice = func(pcm []byte) (voice, error) {
		v := &fakeVoice{}
		*voices = append(*voices, v)
		return v, nil
	}
	return am, voices
}

func TestAudioManagerLockedIsSilent(t *testing.T) {
	am := NewAudioManager(config.DefaultTuning().Audio, nil)
	if am.PlayScore() {
		t.Error("PlayScore() before Unlock should not play")
	}
}

// TestAudioManagerCap 并发数量从不超过上限
func TestAudioManagerCap(t *testing.T) {
	am, voices := newTestAudioManager(nil)
	limit := config.DefaultTuning().Audio.MaxConcurrentSounds

	played := 0
	for i := 0; i < limit+3; i++ {
		if am.PlayScore() {
			played++
		}
		if am.ActiveVoices() > limit {
			t.Fatalf("active voices %d exceed limit %d", am.ActiveVoices(), limit)
		}
	}
	if played != limit {
		t.Errorf("played: got %d, want %d", played, limit)
	}

	// 一个提示音结束后腾出位置
	(*voices)[0].playing = false
	if !am.PlayScore() {
		t.Error("PlayScore() should succeed after a voice finished")
	}
	if !(*voices)[0].closed {
		t.Error("finished voice should be closed")
	}
	if am.ActiveVoices() != limit {
		t.Errorf("active voices: got %d, want %d", am.ActiveVoices(), limit)
	}
}

func TestAudioManagerDisabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am, voices := newTestAudioManager(sm)

	if am.PlayScore() || len(*voices) != 0 {
		t.Error("PlayScore() should be silent when sound is disabled")
	}

	sm.SetSoundEnabled(true)
	sm.SetSoundVolume(0)
	if am.PlayScore() {
		t.Error("PlayScore() should be silent at zero volume")
	}
}

func TestAudioManagerPlayerError(t *testing.T) {
	am := NewAudioManager(config.DefaultTuning().Audio, nil)
	am.unlocked = true
	am.newVoice = func(pcm []byte) (voice, error) {
		return nil, errors.New("device busy")
	}

	if am.PlayScore() {
		t.Error("PlayScore() should report failure")
	}
	if am.ActiveVoices() != 0 {
		t.Errorf("active voices: got %d, want 0", am.ActiveVoices())
	}
}

func TestAudioManagerPCMCache(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am, _ := newTestAudioManager(sm)

	first := am.chimePCM(0.8)
	if len(first) == 0 {
		t.Fatal("chime PCM is empty")
	}
	if &am.chimePCM(0.8)[0] != &first[0] {
		t.Error("same volume should reuse the cached PCM")
	}
	am.chimePCM(0.4)
	if am.pcmVolume != 0.4 {
		t.Errorf("cached volume: got %v, want 0.4", am.pcmVolume)
	}
}
