package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carver/core"
	"carver/gcode"
	"carver/settings"
)

// fakeCoordSource serves fixed vectors, optionally failing at one slot.
type fakeCoordSource struct {
	data     [settings.NCoordSystems][core.NAxis]float64
	failSlot int // -1 for never
}

func (f *fakeCoordSource) ReadCoordData(slot uint8) ([core.NAxis]float64, error) {
	if int(slot) == f.failSlot {
		return [core.NAxis]float64{}, settings.ErrReadFail
	}
	return f.data[slot], nil
}

func TestNGCParameters(t *testing.T) {
	src := &fakeCoordSource{failSlot: -1}
	src.data[0] = [core.NAxis]float64{10, 20, 5}
	src.data[settings.SlotG28] = [core.NAxis]float64{-1, -2, -3}

	parser := &gcode.ParserState{}
	parser.CoordOffset = [core.NAxis]float64{0.5, 0, 0}
	sys := &core.System{}
	st := settings.Defaults()

	r, out, _ := newTestReporter()
	r.NGCParameters(src, parser, sys, &st)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	require.Len(t, lines, settings.NCoordSystems+2) // coord systems + G92 + Probe

	assert.Equal(t, "[G54:10.000,20.000,5.000]", lines[0])
	assert.Equal(t, "[G55:0.000,0.000,0.000]", lines[1])
	assert.Equal(t, "[G59:0.000,0.000,0.000]", lines[5])
	assert.Equal(t, "[G28:-1.000,-2.000,-3.000]", lines[6])
	assert.Equal(t, "[G30:0.000,0.000,0.000]", lines[7])
	assert.Equal(t, "[G92:0.500,0.000,0.000]", lines[8])
	assert.Equal(t, "[Probe:0.000,0.000,0.000]", lines[9])
}

// A failed coordinate read invalidates the whole dump: nothing after the
// failure point prints, and the read-fail status takes its place.
func TestNGCParametersAbortOnReadFailure(t *testing.T) {
	src := &fakeCoordSource{failSlot: settings.SlotG28} // the 7th system
	parser := &gcode.ParserState{}
	sys := &core.System{}
	st := settings.Defaults()

	r, out, _ := newTestReporter()
	r.NGCParameters(src, parser, sys, &st)

	text := out.String()
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
	require.Len(t, lines, 7) // six coordinate lines, then the error
	assert.Equal(t, "[G59:0.000,0.000,0.000]", lines[5])
	assert.Equal(t, "error: Settings read fail. Using defaults", lines[6])
	assert.NotContains(t, text, "G28")
	assert.NotContains(t, text, "G92")
	assert.NotContains(t, text, "Probe")
}

func TestProbeParameters(t *testing.T) {
	sys := &core.System{}
	sys.SetProbePosition([core.NAxis]int32{800, 1600, 400})
	st := settings.Defaults()
	for i := 0; i < core.NAxis; i++ {
		st.StepsPerMM[i] = 80
	}

	r, out, _ := newTestReporter()
	r.ProbeParameters(sys, &st)
	assert.Equal(t, "[Probe:10.000,20.000,5.000]\r\n", out.String())
}

// Unit conversion happens at print time and never touches the snapshot.
func TestProbeParametersInches(t *testing.T) {
	sys := &core.System{}
	sys.SetProbePosition([core.NAxis]int32{2032, 0, 0})
	st := settings.Defaults()
	for i := 0; i < core.NAxis; i++ {
		st.StepsPerMM[i] = 80
	}
	st.Flags |= settings.FlagReportInches

	r, out, _ := newTestReporter()
	r.ProbeParameters(sys, &st)
	// 2032 steps / 80 = 25.4 mm = 1 inch.
	assert.Equal(t, "[Probe:1.000,0.000,0.000]\r\n", out.String())

	assert.Equal(t, [core.NAxis]int32{2032, 0, 0}, sys.SnapshotProbePosition())
}
