package control

import (
	"testing"
	"time"

	"github.com/Faultbox/orrery/internal/engine/input"
)

// fakeMusic records calls the way the audio player would apply them.
type fakeMusic struct {
	muted   bool
	playing bool
	level   float64
}

func (m *fakeMusic) ToggleMute() bool        { m.muted = !m.muted; return m.muted }
func (m *fakeMusic) SetPaused(paused bool)   { m.playing = !paused }
func (m *fakeMusic) Playing() bool           { return m.playing }
func (m *fakeMusic) SetVolume(level float64) { m.level = min(max(level, 0), 1) }
func (m *fakeMusic) Volume() float64         { return m.level }

func TestMusicKeys(t *testing.T) {
	tests := []struct {
		name        string
		key         input.Key
		wantPlaying bool
		wantMuted   bool
		wantLevel   float64
	}{
		{"p pauses", input.KeyP, false, false, 0.5},
		{"m mutes", input.KeyM, true, true, 0.5},
		{"] raises volume", input.KeyRightBracket, true, false, 0.6},
		{"[ lowers volume", input.KeyLeftBracket, true, false, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sys, in := setup(t)
			m := &fakeMusic{playing: true, level: 0.5}

			act := frame(c, sys, in, time.Now(), keyDown(tt.key))
			if !ApplyMusic(act, m) {
				t.Fatal("ApplyMusic reported no change")
			}
			if m.playing != tt.wantPlaying || m.muted != tt.wantMuted {
				t.Errorf("playing %v muted %v, want %v %v", m.playing, m.muted, tt.wantPlaying, tt.wantMuted)
			}
			if d := m.level - tt.wantLevel; d > 1e-9 || d < -1e-9 {
				t.Errorf("volume = %v, want %v", m.level, tt.wantLevel)
			}
		})
	}
}

func TestMusicPauseResumes(t *testing.T) {
	c, sys, in := setup(t)
	m := &fakeMusic{playing: true, level: 1}

	ApplyMusic(frame(c, sys, in, time.Now(), keyDown(input.KeyP)), m)
	if m.playing {
		t.Fatal("first P did not pause the music")
	}
	ApplyMusic(frame(c, sys, in, time.Now(), keyUp(input.KeyP)), m)
	ApplyMusic(frame(c, sys, in, time.Now(), keyDown(input.KeyP)), m)
	if !m.playing {
		t.Error("second P did not resume the music")
	}
}

func TestMusicIdleFrame(t *testing.T) {
	c, sys, in := setup(t)
	m := &fakeMusic{playing: true, level: 0.7}

	if ApplyMusic(frame(c, sys, in, time.Now()), m) {
		t.Error("idle frame changed the music")
	}
	if !m.playing || m.muted || m.level != 0.7 {
		t.Errorf("music state changed: %+v", m)
	}
}
