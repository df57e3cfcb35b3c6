package control

// Music is the part of the audio player the controls drive.
type Music interface {
	ToggleMute() bool
	SetPaused(paused bool)
	Playing() bool
	SetVolume(level float64)
	Volume() float64
}

// ApplyMusic performs the music requests of one frame on m. It reports
// whether anything changed.
func ApplyMusic(act Actions, m Music) bool {
	changed := false
	if act.ToggleMute {
		m.ToggleMute()
		changed = true
	}
	if act.ToggleMusic {
		m.SetPaused(m.Playing())
		changed = true
	}
	if act.VolumeStep != 0 {
		m.SetVolume(m.Volume() + act.VolumeStep)
		changed = true
	}
	return changed
}
