// Package report is the primary feedback interface of the controller: it
// maps typed machine state onto the fixed ASCII line protocol consumed by
// host software. Every function owns the literal punctuation of one message
// type and sequences the protocol print primitives to emit it; none of them
// read or mutate the snapshots they are handed.
package report

import (
	"time"

	"carver/core"
	"carver/protocol"
	"carver/settings"
)

// alarmSettleDelay is the deliberate stall after an alarm message. It
// guarantees the message physically clears a slow transport before the
// caller transitions into a locked state; removing it reintroduces the race
// it was added for.
const alarmSettleDelay = 500 * time.Millisecond

// CoordSource supplies coordinate-system offset vectors by slot. Reads can
// fail; a single failed slot invalidates the whole parameter dump.
type CoordSource interface {
	ReadCoordData(slot uint8) ([core.NAxis]float64, error)
}

// Reporter emits protocol messages into a byte sink. It holds no state
// beyond the sink and a sleep hook, so identical inputs always produce
// byte-identical output.
type Reporter struct {
	out   protocol.Sink
	sleep func(time.Duration)
}

// New creates a Reporter writing to out.
func New(out protocol.Sink) *Reporter {
	return &Reporter{out: out, sleep: time.Sleep}
}

// InitMessage emits the welcome banner shown after reset.
func (r *Reporter) InitMessage() {
	protocol.PrintString(r.out, "\r\n"+protocol.Name+" "+protocol.Version+" ['$' for help]\r\n")
}

// HelpMessage emits the `$` command summary.
func (r *Reporter) HelpMessage() {
	protocol.PrintString(r.out,
		"$$ (view Carver settings)\r\n"+
			"$# (view # parameters)\r\n"+
			"$G (view parser state)\r\n"+
			"$I (view build info)\r\n"+
			"$N (view startup blocks)\r\n"+
			"$x=value (save Carver setting)\r\n"+
			"$Nx=line (save startup block)\r\n"+
			"$C (check gcode mode)\r\n"+
			"$X (kill alarm lock)\r\n"+
			"$H (run homing cycle)\r\n"+
			"~ (cycle start)\r\n"+
			"! (feed hold)\r\n"+
			"? (current status)\r\n"+
			"ctrl-x (reset Carver)\r\n")
}

// StartupLine echoes one stored startup block as `$N<n>=<line>`.
func (r *Reporter) StartupLine(n uint8, line string) {
	protocol.PrintString(r.out, "$N")
	protocol.PrintUint8(r.out, n)
	protocol.PrintString(r.out, "=")
	protocol.PrintString(r.out, line)
	protocol.PrintEOL(r.out)
}

// BuildInfo echoes the version/build pair and the stored note.
func (r *Reporter) BuildInfo(line string) {
	protocol.PrintString(r.out, "["+protocol.Version+"."+protocol.Build+":")
	protocol.PrintString(r.out, line)
	protocol.PrintString(r.out, "]\r\n")
}

// printAxisFloat prints one positional value, converting mm to inches at
// print time when the report-inches flag is set.
func (r *Reporter) printAxisFloat(value float64, st *settings.Settings) {
	if st.ReportInches() {
		value *= settings.InchPerMM
	}
	protocol.PrintFloat(r.out, value, st.DecimalPlaces)
}
