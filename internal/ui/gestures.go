package ui

import (
	"time"

	"DragBoard/internal/state"

	"fyne.io/fyne/v2"
)

// wheelGesture turns a burst of scroll events into one continuous gesture.
// The first event begins it, every event reports the cumulative value, and
// the gesture ends once the wheel has been idle for the configured time.
type wheelGesture struct {
	identity float64
	step     float64
	idle     time.Duration
	handle   func(phase state.Phase, cumulative float64)

	active bool
	value  float64
	gen    int
	timer  *time.Timer
}

func newWheelGesture(identity, step float64, idle time.Duration, handle func(state.Phase, float64)) *wheelGesture {
	return &wheelGesture{identity: identity, step: step, idle: idle, handle: handle}
}

// Scroll feeds one wheel delta into the gesture.
func (g *wheelGesture) Scroll(amount float32) {
	if amount == 0 {
		return
	}
	if !g.active {
		g.active = true
		g.value = g.identity
		g.handle(state.PhaseBegan, g.value)
	}
	g.value += float64(amount) * g.step
	g.handle(state.PhaseChanged, g.value)

	g.gen++
	gen := g.gen
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = time.AfterFunc(g.idle, func() {
		// Timers fire off the UI goroutine.
		fyne.Do(func() {
			if g.gen == gen {
				g.End()
			}
		})
	})
}

// End finishes the gesture, if one is running.
func (g *wheelGesture) End() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	if !g.active {
		return
	}
	g.active = false
	g.handle(state.PhaseEnded, g.value)
}

// Active reports whether a gesture is in progress.
func (g *wheelGesture) Active() bool { return g.active }
