// carverd runs the Carver controller core over a serial device or stdio:
// a read-line / dispatch / confirm loop with realtime characters plucked
// out of the stream before they reach the line buffer.
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"carver/control"
	"carver/core"
	"carver/host/serial"
	"carver/protocol"
	"carver/settings"
)

// lineBufferSize bounds one input line; longer lines answer with the
// overflow status instead of growing the buffer.
const lineBufferSize = 80

// Realtime command characters, handled outside the line buffer.
const (
	charStatusReport = '?'
	charCycleStart   = '~'
	charFeedHold     = '!'
	charReset        = 0x18 // ctrl-x
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	// .env is optional; explicit environment still wins over its contents.
	// Loaded before the flag defaults are resolved so it can supply them.
	_ = godotenv.Load()

	device := flag.String("device", envOr("CARVER_DEVICE", "-"), "Serial device path, or - for stdio")
	baud := flag.Int("baud", envIntOr("CARVER_BAUD", 115200), "Baud rate")
	settingsPath := flag.String("settings", envOr("CARVER_SETTINGS", "carver.json"), "Settings file path")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr) // stdout may be the protocol stream
	if lvl, err := logrus.ParseLevel(envOr("CARVER_LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	store, storeErr := settings.Open(*settingsPath, log)
	if storeErr != nil {
		log.WithError(storeErr).Warn("running on default settings")
	}

	var r io.Reader
	var w io.Writer
	if *device == "-" {
		r, w = os.Stdin, os.Stdout
	} else {
		cfg := serial.DefaultConfig(*device)
		cfg.Baud = *baud
		port, err := serial.Open(cfg)
		if err != nil {
			log.WithError(err).Fatal("cannot open serial device")
		}
		defer port.Close()
		r, w = port, port
	}
	log.WithField("device", *device).Info("carverd listening")

	sink := protocol.NewWriterSink(w)
	ctrl := control.New(sink, store)
	ctrl.Boot(storeErr != nil)

	if err := run(bufio.NewReader(r), ctrl, storeErr != nil); err != nil {
		log.WithError(err).Fatal("transport error")
	}
}

// run drives the read-line / dispatch / confirm loop until the transport
// closes. Each completed line is confirmed exactly once.
func run(in *bufio.Reader, ctrl *control.Controller, readFailed bool) error {
	line := make([]byte, 0, lineBufferSize)
	overflow := false
	lastCR := false

	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		// Either CR or LF terminates a line; a CRLF pair counts once.
		if b == '\n' && lastCR {
			lastCR = false
			continue
		}
		lastCR = b == '\r'

		switch b {
		case charStatusReport:
			ctrl.RealtimeReport()
		case charCycleStart:
			ctrl.CycleStart()
		case charFeedHold:
			ctrl.FeedHold()
		case charReset:
			line = line[:0]
			overflow = false
			ctrl.System().SetState(core.StateIdle)
			ctrl.Boot(readFailed)
		case '\r', '\n':
			if overflow {
				ctrl.Reporter().StatusMessage(core.StatusOverflow)
			} else {
				ctrl.Reporter().StatusMessage(ctrl.ExecuteLine(string(line)))
			}
			line = line[:0]
			overflow = false
		default:
			if len(line) < lineBufferSize {
				line = append(line, b)
			} else {
				overflow = true
			}
		}
	}
}
