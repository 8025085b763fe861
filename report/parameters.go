package report

import (
	"carver/core"
	"carver/gcode"
	"carver/protocol"
	"carver/settings"
)

// NGCParameters dumps the work coordinate systems in slot order
// (G54..G59, G28, G30), then the non-persistent G92 offset, then the probe
// result. The first failed coordinate read aborts the remainder of the dump
// and surfaces through the status path instead: a partial dump with
// fabricated data is worse than no dump.
func (r *Reporter) NGCParameters(src CoordSource, parser *gcode.ParserState, sys *core.System, st *settings.Settings) {
	for slot := uint8(0); slot < settings.NCoordSystems; slot++ {
		coord, err := src.ReadCoordData(slot)
		if err != nil {
			r.StatusMessage(core.StatusSettingReadFail)
			return
		}
		protocol.PrintString(r.out, "[G")
		switch slot {
		case settings.SlotG28:
			protocol.PrintString(r.out, "28")
		case settings.SlotG30:
			protocol.PrintString(r.out, "30")
		default:
			protocol.PrintUint8(r.out, slot+54) // G54-G59
		}
		protocol.PrintString(r.out, ":")
		r.printAxisVector(coord, st)
		protocol.PrintString(r.out, "]\r\n")
	}

	// G92 lives only in the parser state, never in the store.
	protocol.PrintString(r.out, "[G92:")
	r.printAxisVector(parser.CoordOffset, st)
	protocol.PrintString(r.out, "]\r\n")

	r.ProbeParameters(sys, st)
}

// ProbeParameters reports the last probe result in the configured display
// unit. The raw steps persist in the system block until reset; conversion
// happens only here.
func (r *Reporter) ProbeParameters(sys *core.System, st *settings.Settings) {
	probe := sys.SnapshotProbePosition()

	protocol.PrintString(r.out, "[Probe:")
	for i := 0; i < core.NAxis; i++ {
		r.printAxisFloat(float64(probe[i])/st.StepsPerMM[i], st)
		if i < core.NAxis-1 {
			protocol.PrintString(r.out, ",")
		}
	}
	protocol.PrintString(r.out, "]\r\n")
}

// printAxisVector prints a comma-separated offset vector with unit
// conversion applied per component.
func (r *Reporter) printAxisVector(vec [core.NAxis]float64, st *settings.Settings) {
	for i := 0; i < core.NAxis; i++ {
		r.printAxisFloat(vec[i], st)
		if i < core.NAxis-1 {
			protocol.PrintString(r.out, ",")
		}
	}
}
