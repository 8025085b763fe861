package report

import (
	"carver/core"
	"carver/protocol"
	"carver/settings"
)

// Settings dumps the whole configuration table, one `$<n>=<value> (<name>,
// <unit>)` line per field. The index numbering is a frozen external
// contract; reordering anything here breaks host parsers. Derived
// transforms happen at print time only: accelerations divide by 3600 to
// show mm/sec^2, travel limits negate to show positive magnitudes, and
// masks print both as decimal and as a full-width binary string.
func (r *Reporter) Settings(st *settings.Settings) {
	for i := 0; i < core.NAxis; i++ {
		r.settingFloat(uint8(i), st.StepsPerMM[i], st, core.AxisName(i)+", step/mm")
	}
	for i := 0; i < core.NAxis; i++ {
		r.settingFloat(uint8(3+i), st.MaxRate[i], st, core.AxisName(i)+" max rate, mm/min")
	}
	for i := 0; i < core.NAxis; i++ {
		// Stored in mm/min^2 for the planner; shown in mm/sec^2.
		r.settingFloat(uint8(6+i), st.Acceleration[i]/(60*60), st, core.AxisName(i)+" accel, mm/sec^2")
	}
	for i := 0; i < core.NAxis; i++ {
		// Stored negative; shown as a positive magnitude.
		r.settingFloat(uint8(9+i), -st.MaxTravel[i], st, core.AxisName(i)+" max travel, mm")
	}

	r.settingUint8(12, st.PulseMicroseconds, "step pulse, usec")
	r.settingMask(13, st.StepInvertMask, "step port invert mask")
	r.settingMask(14, st.DirInvertMask, "dir port invert mask")
	r.settingUint8(15, st.StepperIdleLockTime, "step idle delay, msec")
	r.settingFloat(16, st.JunctionDeviation, st, "junction deviation, mm")
	r.settingFloat(17, st.ArcTolerance, st, "arc tolerance, mm")
	r.settingUint8(18, st.DecimalPlaces, "n-decimals, int")

	r.settingBool(19, st.Flag(settings.FlagReportInches), "report inches")
	r.settingBool(20, st.Flag(settings.FlagAutoStart), "auto start")
	r.settingBool(21, st.Flag(settings.FlagInvertStEnable), "invert step enable")
	r.settingBool(22, st.Flag(settings.FlagInvertLimitPins), "invert limit pins")
	r.settingBool(23, st.Flag(settings.FlagSoftLimitEnable), "soft limits")
	r.settingBool(24, st.Flag(settings.FlagHardLimitEnable), "hard limits")
	r.settingBool(25, st.Flag(settings.FlagHomingEnable), "homing cycle")

	r.settingMask(26, st.HomingDirMask, "homing dir invert mask")
	r.settingFloat(27, st.HomingFeedRate, st, "homing feed, mm/min")
	r.settingFloat(28, st.HomingSeekRate, st, "homing seek, mm/min")
	r.settingInteger(29, int32(st.HomingDebounceDelay), "homing debounce, msec")
	r.settingFloat(30, st.HomingPulloff, st, "homing pull-off, mm")
}

func (r *Reporter) settingPrefix(index uint8) {
	protocol.PrintString(r.out, "$")
	protocol.PrintUint8(r.out, index)
	protocol.PrintString(r.out, "=")
}

func (r *Reporter) settingFloat(index uint8, value float64, st *settings.Settings, label string) {
	r.settingPrefix(index)
	protocol.PrintFloat(r.out, value, st.DecimalPlaces)
	protocol.PrintString(r.out, " ("+label+")\r\n")
}

func (r *Reporter) settingUint8(index uint8, value uint8, label string) {
	r.settingPrefix(index)
	protocol.PrintUint8(r.out, value)
	protocol.PrintString(r.out, " ("+label+")\r\n")
}

func (r *Reporter) settingInteger(index uint8, value int32, label string) {
	r.settingPrefix(index)
	protocol.PrintInteger(r.out, value)
	protocol.PrintString(r.out, " ("+label+")\r\n")
}

func (r *Reporter) settingBool(index uint8, value bool, label string) {
	r.settingPrefix(index)
	if value {
		protocol.PrintString(r.out, "1")
	} else {
		protocol.PrintString(r.out, "0")
	}
	protocol.PrintString(r.out, " ("+label+", bool)\r\n")
}

// settingMask prints a bitmask twice: as an unsigned decimal and as a
// full-width binary string, MSB first.
func (r *Reporter) settingMask(index uint8, value uint8, label string) {
	r.settingPrefix(index)
	protocol.PrintUint8(r.out, value)
	protocol.PrintString(r.out, " ("+label+":")
	protocol.PrintBase2(r.out, uint32(value), 8)
	protocol.PrintString(r.out, ")\r\n")
}
