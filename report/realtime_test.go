package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carver/core"
	"carver/gcode"
	"carver/settings"
)

type fakeBlocks struct {
	ln     int32
	active bool
}

func (f *fakeBlocks) CurrentLineNumber() (int32, bool) {
	return f.ln, f.active
}

func realtimeFixture() (*core.System, *gcode.ParserState, settings.Settings) {
	sys := &core.System{}
	sys.SetPosition([core.NAxis]int32{800, 1600, 400})
	parser := &gcode.ParserState{}
	st := settings.Defaults()
	for i := 0; i < core.NAxis; i++ {
		st.StepsPerMM[i] = 80
	}
	return sys, parser, st
}

func TestRealtimeStatus(t *testing.T) {
	sys, parser, st := realtimeFixture()

	r, out, _ := newTestReporter()
	r.RealtimeStatus(sys, parser, &st, nil)
	assert.Equal(t, "<Idle,MPos:10.000,20.000,5.000,WPos:10.000,20.000,5.000>\r\n", out.String())
}

func TestRealtimeStatusWorkOffsets(t *testing.T) {
	sys, parser, st := realtimeFixture()
	parser.CoordSystem = [core.NAxis]float64{10, 10, 0}
	parser.CoordOffset = [core.NAxis]float64{0, 5, 0} // G92

	r, out, _ := newTestReporter()
	r.RealtimeStatus(sys, parser, &st, nil)
	assert.Equal(t, "<Idle,MPos:10.000,20.000,5.000,WPos:0.000,5.000,5.000>\r\n", out.String())
}

func TestRealtimeStatusStates(t *testing.T) {
	cases := map[core.State]string{
		core.StateIdle:      "<Idle",
		core.StateQueued:    "<Queue",
		core.StateCycle:     "<Run",
		core.StateHold:      "<Hold",
		core.StateHoming:    "<Home",
		core.StateAlarm:     "<Alarm",
		core.StateCheckMode: "<Check",
	}

	for state, prefix := range cases {
		sys, parser, st := realtimeFixture()
		sys.SetState(state)
		r, out, _ := newTestReporter()
		r.RealtimeStatus(sys, parser, &st, nil)
		assert.Contains(t, out.String(), prefix+",MPos:", "state %d", state)
	}
}

func TestRealtimeStatusLineNumber(t *testing.T) {
	sys, parser, st := realtimeFixture()

	// Active block: the Ln: field appears.
	r, out, _ := newTestReporter()
	r.RealtimeStatus(sys, parser, &st, &fakeBlocks{ln: 25, active: true})
	assert.Equal(t, "<Idle,MPos:10.000,20.000,5.000,WPos:10.000,20.000,5.000,Ln:25>\r\n", out.String())

	// No active block: the field is omitted entirely, never a placeholder.
	out.Reset()
	r.RealtimeStatus(sys, parser, &st, &fakeBlocks{active: false})
	assert.Equal(t, "<Idle,MPos:10.000,20.000,5.000,WPos:10.000,20.000,5.000>\r\n", out.String())
}

func TestRealtimeStatusInches(t *testing.T) {
	sys, parser, st := realtimeFixture()
	sys.SetPosition([core.NAxis]int32{2032, 0, 0}) // 25.4 mm
	st.Flags |= settings.FlagReportInches

	r, out, _ := newTestReporter()
	r.RealtimeStatus(sys, parser, &st, nil)
	assert.Equal(t, "<Idle,MPos:1.000,0.000,0.000,WPos:1.000,0.000,0.000>\r\n", out.String())
}

func TestRealtimeStatusIdempotent(t *testing.T) {
	sys, parser, st := realtimeFixture()

	r, out, _ := newTestReporter()
	r.RealtimeStatus(sys, parser, &st, nil)
	first := out.String()
	out.Reset()
	r.RealtimeStatus(sys, parser, &st, nil)
	assert.Equal(t, first, out.String())
}
