// Package control glues the runtime pieces together and executes `$` system
// lines against the report layer. It owns the decision of WHEN a report
// runs; the report package owns WHAT the bytes look like.
package control

import (
	"strings"

	"carver/core"
	"carver/gcode"
	"carver/protocol"
	"carver/report"
	"carver/settings"
)

// Controller coordinates the system state block, the settings store, the
// parser modal snapshot, and the reporter. One Controller serves one
// serial session.
type Controller struct {
	sys    *core.System
	store  *settings.Store
	parser *gcode.ParserState
	rpt    *report.Reporter
	blocks core.BlockProvider

	checkMode bool
}

// New creates a Controller reporting into out and persisting through store.
func New(out protocol.Sink, store *settings.Store) *Controller {
	return &Controller{
		sys:    &core.System{},
		store:  store,
		parser: &gcode.ParserState{},
		rpt:    report.New(out),
	}
}

// System returns the shared runtime state block.
func (c *Controller) System() *core.System {
	return c.sys
}

// Parser returns the live parser modal-state snapshot.
func (c *Controller) Parser() *gcode.ParserState {
	return c.parser
}

// Reporter returns the session's reporter.
func (c *Controller) Reporter() *report.Reporter {
	return c.rpt
}

// SetBlockProvider wires in the planner's current-block accessor. Reports
// omit the Ln: field while no provider is set.
func (c *Controller) SetBlockProvider(blocks core.BlockProvider) {
	c.blocks = blocks
}

// Boot emits the welcome banner, and the settings-read-fail error when the
// store came up on defaults.
func (c *Controller) Boot(readFailed bool) {
	c.rpt.InitMessage()
	if readFailed {
		c.rpt.StatusMessage(core.StatusSettingReadFail)
	}
}

// RealtimeReport emits the realtime status line. The transport layer calls
// this whenever it plucks a '?' out of the input stream; no ok/error
// confirmation follows it.
func (c *Controller) RealtimeReport() {
	c.rpt.RealtimeStatus(c.sys, c.parser, c.store.Settings(), c.blocks)
}

// CycleStart handles the '~' realtime command: resume from hold or start
// queued motion.
func (c *Controller) CycleStart() {
	switch c.sys.State() {
	case core.StateHold, core.StateQueued:
		c.sys.SetState(core.StateCycle)
	}
}

// FeedHold handles the '!' realtime command: decelerate and hold.
func (c *Controller) FeedHold() {
	if c.sys.State() == core.StateCycle {
		c.sys.SetState(core.StateHold)
	}
}

// RaiseAlarm reports an alarm, moves the machine into the alarm state, and
// tells the user how to get out. Called for limit trips, probe failures,
// and aborts mid-cycle.
func (c *Controller) RaiseAlarm(code core.AlarmCode) {
	c.rpt.AlarmMessage(code)
	c.sys.SetState(core.StateAlarm)
	c.rpt.FeedbackMessage(core.MessageAlarmLock)
}

// ExecuteLine runs one completed input line and returns the confirmation
// status. The caller reports that status exactly once per line. G-code
// execution is the motion subsystem's job; non-`$` lines are only accepted
// for syntax in check mode.
func (c *Controller) ExecuteLine(line string) core.StatusCode {
	line = strings.TrimSpace(line)
	if line == "" {
		return core.StatusOK
	}

	if line[0] == '$' {
		return c.executeSystemLine(line[1:])
	}

	if c.sys.State() == core.StateAlarm {
		return core.StatusAlarmLock
	}
	if c.checkMode {
		return core.StatusOK
	}
	return core.StatusUnsupportedCommand
}

func (c *Controller) executeSystemLine(body string) core.StatusCode {
	st := c.store.Settings()

	if body == "" {
		c.rpt.HelpMessage()
		return core.StatusOK
	}

	switch toUpper(body[0]) {
	case '$':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		c.rpt.Settings(st)
		return core.StatusOK

	case '#':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		c.rpt.NGCParameters(c.store, c.parser, c.sys, st)
		return core.StatusOK

	case 'G':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		c.rpt.GCodeModes(c.parser, st)
		return core.StatusOK

	case 'I':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		c.rpt.BuildInfo(c.store.BuildInfoLine())
		return core.StatusOK

	case 'C':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		return c.toggleCheckMode()

	case 'X':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		if c.sys.State() == core.StateAlarm {
			c.rpt.FeedbackMessage(core.MessageAlarmUnlock)
			c.sys.SetState(core.StateIdle)
		}
		return core.StatusOK

	case 'H':
		if len(body) > 1 {
			return core.StatusInvalidStatement
		}
		return c.runHoming(st)

	case 'N':
		return c.executeStartupLine(body[1:])

	default:
		return c.executeSettingAssignment(body)
	}
}

func (c *Controller) toggleCheckMode() core.StatusCode {
	if c.checkMode {
		c.checkMode = false
		if c.sys.State() == core.StateCheckMode {
			c.sys.SetState(core.StateIdle)
		}
		c.rpt.FeedbackMessage(core.MessageDisabled)
	} else {
		if c.sys.State() != core.StateIdle {
			return core.StatusIdleError
		}
		c.checkMode = true
		c.sys.SetState(core.StateCheckMode)
		c.rpt.FeedbackMessage(core.MessageEnabled)
	}
	return core.StatusOK
}

// runHoming drives the homing state transitions. The actual seek/locate
// motion belongs to the motion subsystem; from this layer's point of view
// homing ends with the position re-zeroed at machine origin.
func (c *Controller) runHoming(st *settings.Settings) core.StatusCode {
	if !st.Flag(settings.FlagHomingEnable) {
		return core.StatusSettingDisabled
	}
	// Homing is the sanctioned way out of an alarm, so it runs from the
	// alarm state as well as from idle.
	if s := c.sys.State(); s != core.StateIdle && s != core.StateAlarm {
		return core.StatusIdleError
	}
	c.sys.SetState(core.StateHoming)
	c.sys.SetPosition([core.NAxis]int32{})
	c.sys.SetState(core.StateIdle)
	return core.StatusOK
}

// executeStartupLine handles `$N`, `$N<n>` and `$N<n>=<line>`.
func (c *Controller) executeStartupLine(rest string) core.StatusCode {
	if rest == "" {
		// View all startup blocks.
		for n := uint8(0); n < settings.NStartupLines; n++ {
			line, err := c.store.StartupLine(n)
			if err != nil {
				return core.StatusSettingReadFail
			}
			c.rpt.StartupLine(n, line)
		}
		return core.StatusOK
	}

	slot, pos, ok := scanUint(rest, 0)
	if !ok || slot >= settings.NStartupLines {
		return core.StatusInvalidStatement
	}
	if pos >= len(rest) || rest[pos] != '=' {
		return core.StatusInvalidStatement
	}
	if c.sys.State() != core.StateIdle {
		return core.StatusIdleError
	}
	if err := c.store.SetStartupLine(uint8(slot), rest[pos+1:]); err != nil {
		return core.StatusSettingReadFail
	}
	return core.StatusOK
}

// executeSettingAssignment handles `$<index>=<value>`.
func (c *Controller) executeSettingAssignment(body string) core.StatusCode {
	index, pos, ok := scanUint(body, 0)
	if !ok {
		return core.StatusInvalidStatement
	}
	if pos >= len(body) || body[pos] != '=' {
		return core.StatusInvalidStatement
	}
	value, end, ok := scanFloat(body, pos+1)
	if !ok {
		return core.StatusBadNumberFormat
	}
	if end != len(body) {
		return core.StatusInvalidStatement
	}
	if index > 255 {
		return core.StatusInvalidStatement
	}
	if c.sys.State() != core.StateIdle && c.sys.State() != core.StateCheckMode {
		return core.StatusIdleError
	}

	st := c.store.Settings()
	if code := st.SetByIndex(uint8(index), value); code != core.StatusOK {
		return code
	}
	if err := c.store.Save(); err != nil {
		return core.StatusSettingReadFail
	}
	return core.StatusOK
}
