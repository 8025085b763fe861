package report

import (
	"carver/gcode"
	"carver/protocol"
	"carver/settings"
)

// GCodeModes emits the parser's modal state as a single bracketed line of
// g-code tokens in frozen order, ending with the active tool and feed rate.
// A category whose value maps to no token simply contributes nothing; the
// order of the remaining tokens does not change.
func (r *Reporter) GCodeModes(parser *gcode.ParserState, st *settings.Settings) {
	switch parser.Motion {
	case gcode.MotionSeek:
		protocol.PrintString(r.out, "[G0")
	case gcode.MotionLinear:
		protocol.PrintString(r.out, "[G1")
	case gcode.MotionCWArc:
		protocol.PrintString(r.out, "[G2")
	case gcode.MotionCCWArc:
		protocol.PrintString(r.out, "[G3")
	case gcode.MotionNone:
		protocol.PrintString(r.out, "[G80")
	}

	protocol.PrintString(r.out, " G")
	protocol.PrintUint8(r.out, parser.CoordSelect+54)

	switch parser.Plane {
	case gcode.PlaneXY:
		protocol.PrintString(r.out, " G17")
	case gcode.PlaneZX:
		protocol.PrintString(r.out, " G18")
	case gcode.PlaneYZ:
		protocol.PrintString(r.out, " G19")
	}

	if parser.Units == gcode.UnitsMM {
		protocol.PrintString(r.out, " G21")
	} else {
		protocol.PrintString(r.out, " G20")
	}

	if parser.Distance == gcode.DistanceAbsolute {
		protocol.PrintString(r.out, " G90")
	} else {
		protocol.PrintString(r.out, " G91")
	}

	if parser.FeedRateMode == gcode.FeedRateInverseTime {
		protocol.PrintString(r.out, " G93")
	} else {
		protocol.PrintString(r.out, " G94")
	}

	switch parser.ProgramFlow {
	case gcode.FlowRunning:
		protocol.PrintString(r.out, " M0")
	case gcode.FlowPaused:
		protocol.PrintString(r.out, " M1")
	case gcode.FlowCompleted:
		protocol.PrintString(r.out, " M2")
	}

	switch parser.Spindle {
	case gcode.SpindleCW:
		protocol.PrintString(r.out, " M3")
	case gcode.SpindleCCW:
		protocol.PrintString(r.out, " M4")
	case gcode.SpindleDisable:
		protocol.PrintString(r.out, " M5")
	}

	switch parser.Coolant {
	case gcode.CoolantDisable:
		protocol.PrintString(r.out, " M9")
	case gcode.CoolantFlood:
		protocol.PrintString(r.out, " M8")
	case gcode.CoolantMist:
		protocol.PrintString(r.out, " M7")
	}

	protocol.PrintString(r.out, " T")
	protocol.PrintUint8(r.out, parser.Tool)

	protocol.PrintString(r.out, " F")
	protocol.PrintFloat(r.out, parser.FeedRate, st.DecimalPlaces)

	protocol.PrintString(r.out, "]\r\n")
}
