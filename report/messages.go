package report

import (
	"carver/core"
	"carver/protocol"
)

// StatusMessage is the per-line confirmation protocol. The dispatcher calls
// it exactly once per completed input line: `ok` accepts the line, `error:`
// rejects it. Unmapped codes never go silent; they render generically with
// the raw number attached.
func (r *Reporter) StatusMessage(code core.StatusCode) {
	if code == core.StatusOK {
		protocol.PrintLine(r.out, "ok")
		return
	}

	protocol.PrintString(r.out, "error: ")
	switch code {
	case core.StatusExpectedCommandLetter:
		protocol.PrintString(r.out, "Expected command letter")
	case core.StatusBadNumberFormat:
		protocol.PrintString(r.out, "Bad number format")
	case core.StatusInvalidStatement:
		protocol.PrintString(r.out, "Invalid statement")
	case core.StatusNegativeValue:
		protocol.PrintString(r.out, "Value < 0")
	case core.StatusSettingDisabled:
		protocol.PrintString(r.out, "Setting disabled")
	case core.StatusSettingStepPulseMin:
		protocol.PrintString(r.out, "Value < 3 usec")
	case core.StatusSettingReadFail:
		protocol.PrintString(r.out, "Settings read fail. Using defaults")
	case core.StatusIdleError:
		protocol.PrintString(r.out, "Not idle")
	case core.StatusAlarmLock:
		protocol.PrintString(r.out, "Alarm lock")
	case core.StatusSoftLimitError:
		protocol.PrintString(r.out, "Homing not enabled")
	case core.StatusOverflow:
		protocol.PrintString(r.out, "Line overflow")

	// Common g-code parser errors.
	case core.StatusModalGroupViolation:
		protocol.PrintString(r.out, "Modal group violation")
	case core.StatusUnsupportedCommand:
		protocol.PrintString(r.out, "Unsupported command")
	case core.StatusUndefinedFeedRate:
		protocol.PrintString(r.out, "Undefined feed rate")
	default:
		// Remaining g-code parser errors carry their numeric code.
		protocol.PrintString(r.out, "Invalid gcode ID:")
		protocol.PrintUint8(r.out, uint8(code))
	}
	protocol.PrintEOL(r.out)
}

// AlarmMessage emits an alarm line, then stalls for the settling delay so
// the message clears the output buffer before any subsequent state
// transition can race a slow transport. The stall is a documented contract.
// Unknown codes keep the ALARM wrapper with an empty body.
func (r *Reporter) AlarmMessage(code core.AlarmCode) {
	protocol.PrintString(r.out, "ALARM: ")
	switch code {
	case core.AlarmLimitError:
		protocol.PrintString(r.out, "Hard/soft limit")
	case core.AlarmAbortCycle:
		protocol.PrintString(r.out, "Abort during cycle")
	case core.AlarmProbeFail:
		protocol.PrintString(r.out, "Probe fail")
	}
	protocol.PrintEOL(r.out)
	r.sleep(alarmSettleDelay)
}

// FeedbackMessage emits bracketed user feedback outside the status/alarm
// protocol: setup warnings, mode toggles, and how to exit alarms. Unknown
// codes produce an empty bracketed body.
func (r *Reporter) FeedbackMessage(code core.FeedbackCode) {
	protocol.PrintString(r.out, "[")
	switch code {
	case core.MessageCriticalEvent:
		protocol.PrintString(r.out, "Reset to continue")
	case core.MessageAlarmLock:
		protocol.PrintString(r.out, "'$H'|'$X' to unlock")
	case core.MessageAlarmUnlock:
		protocol.PrintString(r.out, "Caution: Unlocked")
	case core.MessageEnabled:
		protocol.PrintString(r.out, "Enabled")
	case core.MessageDisabled:
		protocol.PrintString(r.out, "Disabled")
	}
	protocol.PrintString(r.out, "]\r\n")
}
