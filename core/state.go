// Package core holds the controller's runtime state: the discrete machine
// state, the raw step position mutated by the motion subsystem, and the
// status/alarm/feedback code spaces shared with the report layer.
package core

import "sync"

// NAxis is the number of controlled axes.
const NAxis = 3

// Axis indices.
const (
	AxisX = iota
	AxisY
	AxisZ
)

// AxisName returns the lowercase axis letter used in settings dumps.
func AxisName(axis int) string {
	switch axis {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// State is the discrete machine state reported in the realtime status line.
type State uint8

const (
	StateIdle State = iota
	StateQueued
	StateCycle
	StateHold
	StateHoming
	StateAlarm
	StateCheckMode
)

// System is the shared runtime state block. The raw step position is
// mutated concurrently by the step-generation subsystem, so readers must
// take a snapshot through SnapshotPosition before doing any multi-step
// arithmetic on it; the lock guarantees the copy is never torn across axes.
type System struct {
	mu            sync.Mutex
	state         State
	position      [NAxis]int32
	probePosition [NAxis]int32
}

// State returns the current discrete machine state.
func (s *System) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState transitions the machine to a new discrete state.
func (s *System) SetState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// SnapshotPosition returns an un-torn copy of the raw step position.
func (s *System) SnapshotPosition() [NAxis]int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// SetPosition replaces the raw step position.
func (s *System) SetPosition(pos [NAxis]int32) {
	s.mu.Lock()
	s.position = pos
	s.mu.Unlock()
}

// AddSteps offsets a single axis of the raw step position. This is the
// entry point the step-generation subsystem drives.
func (s *System) AddSteps(axis int, steps int32) {
	s.mu.Lock()
	s.position[axis] += steps
	s.mu.Unlock()
}

// SnapshotProbePosition returns an un-torn copy of the last probe result,
// in raw steps. The values persist until the controller is reset.
func (s *System) SnapshotProbePosition() [NAxis]int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probePosition
}

// SetProbePosition records a probe result in raw steps.
func (s *System) SetProbePosition(pos [NAxis]int32) {
	s.mu.Lock()
	s.probePosition = pos
	s.mu.Unlock()
}

// BlockProvider reports the line number of the currently executing motion
// block, when one is active. The planner implements this; reports omit the
// Ln: field entirely when ok is false.
type BlockProvider interface {
	CurrentLineNumber() (n int32, ok bool)
}
