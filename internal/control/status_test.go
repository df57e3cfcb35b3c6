package control

import "testing"

func TestTitle(t *testing.T) {
	_, sys, _ := setup(t)

	if got, want := Title("Orrery", 60, sys, ""), "Orrery | 60 fps | t=0.0s x1 | paused"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}

	sys.SetPaused(false)
	sys.ScaleTime(0.5)
	sys.Update(3)
	if got, want := Title("Orrery", 59, sys, "Earth"), "Orrery | 59 fps | t=1.5s x0.5 | following Earth"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
}
