// Package audio plays looping background music for the viewer.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playback is requested before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Player streams one music track through the speaker.
type Player struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	path     string
	playing  bool

	level float64 // 0.0 to 1.0
	muted bool
}

// New creates a player with the given volume level.
func New(level float64, muted bool) *Player {
	return &Player{
		level: clamp(level, 0, 1),
		muted: muted,
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	p.sampleRate = DefaultSampleRate
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Close stops playback and releases the track.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	if p.initialized {
		speaker.Close()
	}
	p.initialized = false
}

// PlayFile decodes a WAV file and starts it looping.
func (p *Player) PlayFile(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}

	streamer, format, err := openWAV(path)
	if err != nil {
		return err
	}

	p.stopLocked()

	var s beep.Streamer = &loopStreamer{source: streamer, sampleRate: format.SampleRate, target: p.sampleRate}
	p.ctrl = &beep.Ctrl{Streamer: s}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2}
	p.applyVolumeLocked()

	p.streamer = streamer
	p.path = path
	p.playing = true

	speaker.Play(p.volume)
	return nil
}

// Stop stops the current track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.initialized {
		speaker.Clear()
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.path = ""
	p.playing = false
}

// SetPaused pauses or resumes the current track.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
	p.playing = !paused
}

// SetVolume sets the volume level (0.0 to 1.0).
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = clamp(level, 0, 1)
	p.applyVolumeLocked()
}

// ToggleMute flips the mute state and returns the new state.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	p.applyVolumeLocked()
	return p.muted
}

// Volume returns the volume level.
func (p *Player) Volume() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.muted
}

// Playing reports whether a track is playing and not paused.
func (p *Player) Playing() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.playing
}

// Path returns the path of the current track.
func (p *Player) Path() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.path
}

func (p *Player) applyVolumeLocked() {
	if p.volume == nil {
		return
	}
	silent, exp := gain(p.level, p.muted)
	speaker.Lock()
	p.volume.Silent = silent
	p.volume.Volume = exp
	speaker.Unlock()
}

// gain maps a linear level to effects.Volume settings with Base 2.
// Full level is exponent 0; each halving lowers it by one.
func gain(level float64, muted bool) (silent bool, exponent float64) {
	if muted || level <= 0 {
		return true, 0
	}
	return false, math.Log2(level)
}

func openWAV(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open music: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode wav %s: %w", path, err)
	}
	return streamer, format, nil
}

// loopStreamer plays source forever, resampling to the speaker rate.
type loopStreamer struct {
	source     beep.StreamSeeker
	sampleRate beep.SampleRate
	target     beep.SampleRate
	resampled  beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	if l.resampled == nil {
		l.resampled = l.resample()
	}

	filled := 0
	rewound := false
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if ok {
			rewound = false
			continue
		}
		// An empty track would rewind forever.
		if n == 0 && rewound {
			break
		}
		if err := l.source.Seek(0); err != nil {
			break
		}
		l.resampled = l.resample()
		rewound = true
	}
	return filled, filled > 0
}

func (l *loopStreamer) Err() error {
	return l.source.Err()
}

func (l *loopStreamer) resample() beep.Streamer {
	if l.sampleRate == l.target || l.target == 0 {
		return l.source
	}
	return beep.Resample(4, l.sampleRate, l.target, l.source)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
