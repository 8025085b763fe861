package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carver/core"
	"carver/protocol"
)

// newTestReporter returns a reporter whose sink is inspectable and whose
// alarm settling delay is recorded instead of slept.
func newTestReporter() (*Reporter, *protocol.ScratchOutput, *[]time.Duration) {
	out := protocol.NewScratchOutput()
	r := New(out)
	var slept []time.Duration
	r.sleep = func(d time.Duration) { slept = append(slept, d) }
	return r, out, &slept
}

func TestStatusMessageOK(t *testing.T) {
	r, out, _ := newTestReporter()
	r.StatusMessage(core.StatusOK)
	assert.Equal(t, "ok\r\n", out.String())
}

func TestStatusMessageMapped(t *testing.T) {
	cases := map[core.StatusCode]string{
		core.StatusExpectedCommandLetter: "error: Expected command letter\r\n",
		core.StatusBadNumberFormat:       "error: Bad number format\r\n",
		core.StatusInvalidStatement:      "error: Invalid statement\r\n",
		core.StatusNegativeValue:         "error: Value < 0\r\n",
		core.StatusSettingDisabled:       "error: Setting disabled\r\n",
		core.StatusSettingStepPulseMin:   "error: Value < 3 usec\r\n",
		core.StatusSettingReadFail:       "error: Settings read fail. Using defaults\r\n",
		core.StatusIdleError:             "error: Not idle\r\n",
		core.StatusAlarmLock:             "error: Alarm lock\r\n",
		core.StatusSoftLimitError:        "error: Homing not enabled\r\n",
		core.StatusOverflow:              "error: Line overflow\r\n",
		core.StatusModalGroupViolation:   "error: Modal group violation\r\n",
		core.StatusUnsupportedCommand:    "error: Unsupported command\r\n",
		core.StatusUndefinedFeedRate:     "error: Undefined feed rate\r\n",
	}

	for code, want := range cases {
		r, out, _ := newTestReporter()
		r.StatusMessage(code)
		assert.Equal(t, want, out.String(), "code %d", code)
	}
}

// Every non-OK code, mapped or not, renders as a CRLF-terminated error
// line. Unmapped codes must never fall to silence.
func TestStatusMessageShapeLaw(t *testing.T) {
	for code := 1; code <= 255; code++ {
		r, out, _ := newTestReporter()
		r.StatusMessage(core.StatusCode(code))
		got := out.String()
		assert.True(t, strings.HasPrefix(got, "error: "), "code %d: %q", code, got)
		assert.True(t, strings.HasSuffix(got, "\r\n"), "code %d: %q", code, got)
		assert.Greater(t, len(got), len("error: \r\n"), "code %d rendered empty", code)
	}
}

func TestStatusMessageUnmappedCarriesCode(t *testing.T) {
	r, out, _ := newTestReporter()
	r.StatusMessage(core.StatusCode(47))
	assert.Equal(t, "error: Invalid gcode ID:47\r\n", out.String())
}

func TestAlarmMessage(t *testing.T) {
	cases := map[core.AlarmCode]string{
		core.AlarmLimitError: "ALARM: Hard/soft limit\r\n",
		core.AlarmAbortCycle: "ALARM: Abort during cycle\r\n",
		core.AlarmProbeFail:  "ALARM: Probe fail\r\n",
		// Unmapped codes keep the wrapper with an empty body.
		core.AlarmCode(-99): "ALARM: \r\n",
	}

	for code, want := range cases {
		r, out, slept := newTestReporter()
		r.AlarmMessage(code)
		assert.Equal(t, want, out.String(), "code %d", code)
		// The settling stall is part of the contract, even for unmapped codes.
		assert.Equal(t, []time.Duration{alarmSettleDelay}, *slept, "code %d", code)
	}
}

func TestFeedbackMessage(t *testing.T) {
	cases := map[core.FeedbackCode]string{
		core.MessageCriticalEvent: "[Reset to continue]\r\n",
		core.MessageAlarmLock:     "['$H'|'$X' to unlock]\r\n",
		core.MessageAlarmUnlock:   "[Caution: Unlocked]\r\n",
		core.MessageEnabled:       "[Enabled]\r\n",
		core.MessageDisabled:      "[Disabled]\r\n",
		core.FeedbackCode(200):    "[]\r\n",
	}

	for code, want := range cases {
		r, out, slept := newTestReporter()
		r.FeedbackMessage(code)
		assert.Equal(t, want, out.String(), "code %d", code)
		assert.Empty(t, *slept, "feedback must not stall")
	}
}

func TestInitMessage(t *testing.T) {
	r, out, _ := newTestReporter()
	r.InitMessage()
	assert.Equal(t, "\r\nCarver "+protocol.Version+" ['$' for help]\r\n", out.String())
}

func TestStartupLine(t *testing.T) {
	r, out, _ := newTestReporter()
	r.StartupLine(1, "G20 G54")
	assert.Equal(t, "$N1=G20 G54\r\n", out.String())
}

func TestBuildInfo(t *testing.T) {
	r, out, _ := newTestReporter()
	r.BuildInfo("shop router")
	assert.Equal(t, "["+protocol.Version+"."+protocol.Build+":shop router]\r\n", out.String())
}

// Reporters hold no hidden mutable state: the same call twice yields
// byte-identical output.
func TestReporterIdempotent(t *testing.T) {
	r, out, _ := newTestReporter()
	r.StatusMessage(core.StatusAlarmLock)
	first := out.String()
	out.Reset()
	r.StatusMessage(core.StatusAlarmLock)
	assert.Equal(t, first, out.String())
}
