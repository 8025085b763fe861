// Package settings owns the persistent configuration table and the
// coordinate-system storage. The numeric index printed next to each field
// ($0..$30) is a frozen external contract: host parsers key on it.
package settings

import "carver/core"

// InchPerMM converts millimeter values to inches at report time. The
// conversion happens only at the moment of printing and never mutates
// stored state.
const InchPerMM = 0.0393701

// Boolean flags packed into the Flags bitmask.
const (
	FlagReportInches uint8 = 1 << iota
	FlagAutoStart
	FlagInvertStEnable
	FlagInvertLimitPins
	FlagSoftLimitEnable
	FlagHardLimitEnable
	FlagHomingEnable
)

// NIndexes is the number of assigned setting indexes ($0..$30).
const NIndexes = 31

// Settings is the controller configuration table. Accelerations are stored
// in mm/min^2 and divided by 3600 for display; max travel is stored negative
// and negated for display.
type Settings struct {
	StepsPerMM   [core.NAxis]float64 `json:"steps_per_mm"`
	MaxRate      [core.NAxis]float64 `json:"max_rate"`
	Acceleration [core.NAxis]float64 `json:"acceleration"`
	MaxTravel    [core.NAxis]float64 `json:"max_travel"`

	PulseMicroseconds   uint8   `json:"pulse_microseconds"`
	StepInvertMask      uint8   `json:"step_invert_mask"`
	DirInvertMask       uint8   `json:"dir_invert_mask"`
	StepperIdleLockTime uint8   `json:"stepper_idle_lock_time"`
	JunctionDeviation   float64 `json:"junction_deviation"`
	ArcTolerance        float64 `json:"arc_tolerance"`
	DecimalPlaces       uint8   `json:"decimal_places"`
	Flags               uint8   `json:"flags"`

	HomingDirMask       uint8   `json:"homing_dir_mask"`
	HomingFeedRate      float64 `json:"homing_feed_rate"`
	HomingSeekRate      float64 `json:"homing_seek_rate"`
	HomingDebounceDelay uint16  `json:"homing_debounce_delay"`
	HomingPulloff       float64 `json:"homing_pulloff"`
}

// Defaults returns the stock machine profile.
func Defaults() Settings {
	s := Settings{
		PulseMicroseconds:   10,
		StepperIdleLockTime: 25,
		JunctionDeviation:   0.01,
		ArcTolerance:        0.002,
		DecimalPlaces:       3,
		HomingFeedRate:      25.0,
		HomingSeekRate:      500.0,
		HomingDebounceDelay: 250,
		HomingPulloff:       1.0,
	}
	for i := 0; i < core.NAxis; i++ {
		s.StepsPerMM[i] = 250.0
		s.MaxRate[i] = 500.0
		s.Acceleration[i] = 10.0 * 60 * 60 // 10 mm/sec^2, stored as mm/min^2
		s.MaxTravel[i] = -200.0            // stored negative
	}
	return s
}

// Flag reports whether a single bit of the packed flags field is set.
func (s *Settings) Flag(bit uint8) bool {
	return s.Flags&bit != 0
}

// ReportInches reports whether positional values convert to inches at
// print time.
func (s *Settings) ReportInches() bool {
	return s.Flag(FlagReportInches)
}

func (s *Settings) setFlag(bit uint8, on bool) {
	if on {
		s.Flags |= bit
	} else {
		s.Flags &^= bit
	}
}

// SetByIndex applies a `$<index>=<value>` assignment and returns the
// confirmation status. Values arrive in display units: accelerations in
// mm/sec^2, travel as a positive magnitude. Unknown indexes report an
// invalid statement; nothing here is fatal.
func (s *Settings) SetByIndex(index uint8, value float64) core.StatusCode {
	if value < 0 {
		return core.StatusNegativeValue
	}

	switch {
	case index < 3:
		s.StepsPerMM[index] = value
	case index < 6:
		s.MaxRate[index-3] = value
	case index < 9:
		s.Acceleration[index-6] = value * 60 * 60
	case index < 12:
		s.MaxTravel[index-9] = -value
	default:
		switch index {
		case 12:
			if value < 3 {
				return core.StatusSettingStepPulseMin
			}
			s.PulseMicroseconds = uint8(value)
		case 13:
			s.StepInvertMask = uint8(value)
		case 14:
			s.DirInvertMask = uint8(value)
		case 15:
			s.StepperIdleLockTime = uint8(value)
		case 16:
			s.JunctionDeviation = value
		case 17:
			s.ArcTolerance = value
		case 18:
			s.DecimalPlaces = uint8(value)
		case 19:
			s.setFlag(FlagReportInches, value != 0)
		case 20:
			s.setFlag(FlagAutoStart, value != 0)
		case 21:
			s.setFlag(FlagInvertStEnable, value != 0)
		case 22:
			s.setFlag(FlagInvertLimitPins, value != 0)
		case 23:
			// Soft limits need homing so machine zero is known.
			if value != 0 && !s.Flag(FlagHomingEnable) {
				return core.StatusSoftLimitError
			}
			s.setFlag(FlagSoftLimitEnable, value != 0)
		case 24:
			s.setFlag(FlagHardLimitEnable, value != 0)
		case 25:
			s.setFlag(FlagHomingEnable, value != 0)
			if value == 0 {
				s.setFlag(FlagSoftLimitEnable, false)
			}
		case 26:
			s.HomingDirMask = uint8(value)
		case 27:
			s.HomingFeedRate = value
		case 28:
			s.HomingSeekRate = value
		case 29:
			s.HomingDebounceDelay = uint16(value)
		case 30:
			s.HomingPulloff = value
		default:
			return core.StatusInvalidStatement
		}
	}
	return core.StatusOK
}
