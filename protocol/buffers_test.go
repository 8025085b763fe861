package protocol

import (
	"errors"
	"testing"
)

func TestScratchOutput(t *testing.T) {
	out := NewScratchOutput()
	out.Output([]byte("ok"))
	out.Output([]byte("\r\n"))

	if got := out.String(); got != "ok\r\n" {
		t.Errorf("unexpected result %q", got)
	}

	out.Reset()
	if len(out.Result()) != 0 {
		t.Error("Reset did not clear the buffer")
	}
}

func TestScratchOutputTruncates(t *testing.T) {
	out := NewScratchOutput()
	big := make([]byte, ScratchMax+100)
	for i := range big {
		big[i] = 'x'
	}
	out.Output(big)
	out.Output([]byte("more"))

	if len(out.Result()) != ScratchMax {
		t.Errorf("expected truncation at %d bytes, got %d", ScratchMax, len(out.Result()))
	}
}

type failWriter struct {
	failAfter int
	writes    int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.failAfter {
		return 0, errors.New("port gone")
	}
	return len(p), nil
}

func TestWriterSinkCountsDrops(t *testing.T) {
	w := &failWriter{failAfter: 2}
	sink := NewWriterSink(w)

	sink.Output([]byte("ok"))
	sink.Output([]byte("\r\n"))
	if sink.Dropped() != 0 {
		t.Errorf("expected no drops, got %d", sink.Dropped())
	}

	sink.Output([]byte("late"))
	if sink.Dropped() != 1 {
		t.Errorf("expected 1 drop, got %d", sink.Dropped())
	}
}
