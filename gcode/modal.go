// Package gcode models the parser's modal state: one active value per
// independent category, plus the scalar tool and feed-rate fields. The
// parser itself lives outside this core; reports consume this struct as a
// read-only snapshot.
package gcode

import "carver/core"

// MotionMode is the active motion modal (G0/G1/G2/G3/G80).
type MotionMode uint8

const (
	MotionSeek MotionMode = iota // G0
	MotionLinear                 // G1
	MotionCWArc                  // G2
	MotionCCWArc                 // G3
	MotionNone                   // G80
)

// Plane is the active plane-select modal (G17/G18/G19).
type Plane uint8

const (
	PlaneXY Plane = iota // G17
	PlaneZX              // G18
	PlaneYZ              // G19
)

// Units is the active units modal (G20/G21).
type Units uint8

const (
	UnitsMM     Units = iota // G21
	UnitsInches              // G20
)

// Distance is the active distance modal (G90/G91).
type Distance uint8

const (
	DistanceAbsolute    Distance = iota // G90
	DistanceIncremental                 // G91
)

// FeedRateMode is the active feed-rate modal (G93/G94).
type FeedRateMode uint8

const (
	FeedRateUnitsPerMin FeedRateMode = iota // G94
	FeedRateInverseTime                     // G93
)

// ProgramFlow is the program-flow modal (M0/M1/M2).
type ProgramFlow uint8

const (
	FlowRunning ProgramFlow = iota // M0
	FlowPaused                     // M1
	FlowCompleted                  // M2
)

// Spindle is the spindle-state modal (M3/M4/M5).
type Spindle uint8

const (
	SpindleDisable Spindle = iota // M5
	SpindleCW                     // M3
	SpindleCCW                    // M4
)

// Coolant is the coolant-state modal (M7/M8/M9).
type Coolant uint8

const (
	CoolantDisable Coolant = iota // M9
	CoolantFlood                  // M8
	CoolantMist                   // M7
)

// ParserState is a read-only snapshot of the g-code parser's modal state.
// Exactly one value per category is active at any time. CoordSelect indexes
// the work coordinate systems (0..5 for G54..G59). CoordSystem is the active
// work offset vector in mm; CoordOffset is the non-persistent G92 offset.
type ParserState struct {
	Motion       MotionMode
	CoordSelect  uint8
	Plane        Plane
	Units        Units
	Distance     Distance
	FeedRateMode FeedRateMode
	ProgramFlow  ProgramFlow
	Spindle      Spindle
	Coolant      Coolant

	Tool     uint8
	FeedRate float64

	CoordSystem [core.NAxis]float64
	CoordOffset [core.NAxis]float64
}
