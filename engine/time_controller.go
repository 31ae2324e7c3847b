package engine

import (
	"fmt"
	"time"
)

// speedPresets is the fixed ladder of simulation speed multipliers.
// Speed changes step through it one entry at a time and saturate at
// the ends.
var speedPresets = []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 20.0, 50.0}

const defaultSpeedIndex = 2 // 1.0x

// TimeController owns the simulation clock: pause state, speed
// multiplier, and accumulated simulation time. Wall-clock frame deltas
// are scaled by the multiplier; no time accumulates while paused.
type TimeController struct {
	paused     bool
	speedIndex int
	simTime    time.Duration
	lastSample time.Time
	targetFPS  int
	clock      TimeProvider
}

// NewTimeController creates a controller that starts paused at 1.0x
// with zero accumulated simulation time.
func NewTimeController(targetFPS int, clock TimeProvider) *TimeController {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &TimeController{
		paused:     true,
		speedIndex: defaultSpeedIndex,
		targetFPS:  targetFPS,
		clock:      clock,
		lastSample: clock.Now(),
	}
}

// IsPaused reports the pause flag.
func (tc *TimeController) IsPaused() bool {
	return tc.paused
}

// TogglePause flips the pause flag. The wall-clock sample is reset so
// time spent paused never leaks into the next delta on resume.
func (tc *TimeController) TogglePause() {
	tc.paused = !tc.paused
	tc.lastSample = tc.clock.Now()
}

// SpeedMultiplier returns the active multiplier.
func (tc *TimeController) SpeedMultiplier() float64 {
	return speedPresets[tc.speedIndex]
}

// IncreaseSpeed steps one preset up the ladder. Saturates at the top;
// returns false when already there.
func (tc *TimeController) IncreaseSpeed() bool {
	if tc.speedIndex == len(speedPresets)-1 {
		return false
	}
	tc.speedIndex++
	return true
}

// DecreaseSpeed steps one preset down the ladder. Saturates at the
// bottom; returns false when already there.
func (tc *TimeController) DecreaseSpeed() bool {
	if tc.speedIndex == 0 {
		return false
	}
	tc.speedIndex--
	return true
}

// SimulationTime returns the accumulated simulation time.
func (tc *TimeController) SimulationTime() time.Duration {
	return tc.simTime
}

// Step samples the wall clock and, when running, applies the scaled
// delta to simulation time. Returns the simulation delta actually
// applied; zero while paused. The returned delta is the authoritative
// input to the world update.
func (tc *TimeController) Step() time.Duration {
	now := tc.clock.Now()
	real := now.Sub(tc.lastSample)
	tc.lastSample = now

	if tc.paused || real <= 0 {
		return 0
	}

	delta := time.Duration(float64(real) * speedPresets[tc.speedIndex])
	tc.simTime += delta
	return delta
}

// TargetFPS returns the configured frame rate.
func (tc *TimeController) TargetFPS() int {
	return tc.targetFPS
}

// TargetFrameDuration returns the frame period for the configured FPS.
func (tc *TimeController) TargetFrameDuration() time.Duration {
	return time.Second / time.Duration(tc.targetFPS)
}

// FormatTime renders accumulated simulation time as a days/hours/
// minutes/seconds breakdown, eliding leading zero units.
func (tc *TimeController) FormatTime() string {
	total := int64(tc.simTime.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
