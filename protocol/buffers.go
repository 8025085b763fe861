package protocol

import "io"

// Sink is the byte sink every formatter in this package writes into.
// Implementations never return errors to the formatting layer: the wire
// protocol has no error channel, so a sink either delivers the bytes or
// accounts for the loss itself.
type Sink interface {
	// Output writes data to the sink.
	Output(data []byte)
}

// ScratchMax is the capacity of a ScratchOutput. A full report line is far
// shorter than this; a complete settings dump still fits.
const ScratchMax = 2048

// ScratchOutput implements Sink using a fixed-size scratch buffer. It is the
// bounded-allocation sink used by the realtime status path and by tests.
// Writes past the end of the buffer are silently truncated.
type ScratchOutput struct {
	buf [ScratchMax]byte
	pos int
}

// NewScratchOutput creates a new ScratchOutput
func NewScratchOutput() *ScratchOutput {
	return &ScratchOutput{pos: 0}
}

func (s *ScratchOutput) Output(data []byte) {
	n := copy(s.buf[s.pos:], data)
	s.pos += n
}

// Result returns the accumulated output data
func (s *ScratchOutput) Result() []byte {
	return s.buf[:s.pos]
}

// String returns the accumulated output as a string
func (s *ScratchOutput) String() string {
	return string(s.buf[:s.pos])
}

// Reset clears the buffer
func (s *ScratchOutput) Reset() {
	s.pos = 0
}

// WriterSink adapts an io.Writer (serial port, stdout) to the Sink
// interface. Transport write errors cannot be surfaced through the line
// protocol, so they are counted instead; callers that care can poll
// Dropped after a report completes.
type WriterSink struct {
	w       io.Writer
	dropped int
}

// NewWriterSink creates a Sink that forwards to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Output(data []byte) {
	n, err := s.w.Write(data)
	if err != nil || n < len(data) {
		s.dropped++
	}
}

// Dropped returns the number of Output calls that failed to deliver fully.
func (s *WriterSink) Dropped() int {
	return s.dropped
}
