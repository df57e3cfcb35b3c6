package solar

// BodyState is the public state of one body at an instant.
type BodyState struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Parent   string     `json:"parent,omitempty"`
	Position [3]float32 `json:"position"`
	Size     float32    `json:"size"`
	Orbit    float32    `json:"orbit_angle"`
	Spin     float32    `json:"spin_angle"`
}

// Snapshot is a copy of the whole system state, safe to hand to other goroutines.
type Snapshot struct {
	Time      float64     `json:"time"`
	TimeScale float32     `json:"time_scale"`
	Paused    bool        `json:"paused"`
	Bodies    []BodyState `json:"bodies"`
}

// Snapshot copies the current state.
func (s *System) Snapshot() Snapshot {
	snap := Snapshot{
		Time:      s.time,
		TimeScale: s.timeScale,
		Paused:    s.paused,
		Bodies:    make([]BodyState, len(s.bodies)),
	}
	for i, b := range s.bodies {
		st := BodyState{
			Name:     b.Name,
			Kind:     b.Kind,
			Position: b.Position.Array(),
			Size:     b.Size,
			Orbit:    b.OrbitAngle,
			Spin:     b.SpinAngle,
		}
		if b.Parent != nil {
			st.Parent = b.Parent.Name
		}
		snap.Bodies[i] = st
	}
	return snap
}
