package report

import (
	"carver/core"
	"carver/gcode"
	"carver/protocol"
	"carver/settings"
)

// RealtimeStatus emits the latency-critical status line. It is meant to run
// at 5-20 Hz inside the control loop, so it stays allocation-free and its
// cost is bounded by one pass per axis. The raw step position is snapshotted
// once, before any arithmetic, because the step-generation side mutates it
// concurrently; work coordinates are then derived from the already-converted
// machine coordinates. The Ln: field appears only while a block with a line
// number is actually executing.
func (r *Reporter) RealtimeStatus(sys *core.System, parser *gcode.ParserState, st *settings.Settings, blocks core.BlockProvider) {
	raw := sys.SnapshotPosition()

	switch sys.State() {
	case core.StateIdle:
		protocol.PrintString(r.out, "<Idle")
	case core.StateQueued:
		protocol.PrintString(r.out, "<Queue")
	case core.StateCycle:
		protocol.PrintString(r.out, "<Run")
	case core.StateHold:
		protocol.PrintString(r.out, "<Hold")
	case core.StateHoming:
		protocol.PrintString(r.out, "<Home")
	case core.StateAlarm:
		protocol.PrintString(r.out, "<Alarm")
	case core.StateCheckMode:
		protocol.PrintString(r.out, "<Check")
	}

	// Machine position: raw steps scaled per axis.
	var pos [core.NAxis]float64
	protocol.PrintString(r.out, ",MPos:")
	for i := 0; i < core.NAxis; i++ {
		pos[i] = float64(raw[i]) / st.StepsPerMM[i]
		if st.ReportInches() {
			pos[i] *= settings.InchPerMM
		}
		protocol.PrintFloat(r.out, pos[i], st.DecimalPlaces)
		protocol.PrintString(r.out, ",")
	}

	// Work position: machine position minus the active coordinate-system
	// and G92 offsets, in the same display unit.
	protocol.PrintString(r.out, "WPos:")
	for i := 0; i < core.NAxis; i++ {
		offset := parser.CoordSystem[i] + parser.CoordOffset[i]
		if st.ReportInches() {
			offset *= settings.InchPerMM
		}
		pos[i] -= offset
		protocol.PrintFloat(r.out, pos[i], st.DecimalPlaces)
		if i < core.NAxis-1 {
			protocol.PrintString(r.out, ",")
		}
	}

	if blocks != nil {
		if ln, ok := blocks.CurrentLineNumber(); ok {
			protocol.PrintString(r.out, ",Ln:")
			protocol.PrintInteger(r.out, ln)
		}
	}

	protocol.PrintString(r.out, ">\r\n")
}
