package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"carver/core"
)

// Coordinate-system slots: G54..G59 occupy 0..5, then G28 and G30.
const (
	NCoordSystems = 8
	SlotG28       = 6
	SlotG30       = 7
)

// NStartupLines is the number of stored startup blocks ($N0, $N1).
const NStartupLines = 2

// ErrReadFail marks a store that could not be read; defaults are in effect.
var ErrReadFail = errors.New("settings read fail")

// ErrBadSlot marks a coordinate or startup-line index out of range.
var ErrBadSlot = errors.New("slot out of range")

// image is the on-disk layout: the whole persistent state in one JSON
// document, standing in for the EEPROM block of the original controller.
type image struct {
	Settings     Settings                           `json:"settings"`
	CoordData    [NCoordSystems][core.NAxis]float64 `json:"coord_data"`
	StartupLines [NStartupLines]string              `json:"startup_lines"`
	BuildInfo    string                             `json:"build_info"`
}

// Store persists the settings table, coordinate systems, and startup lines
// to a JSON file. It is safe for concurrent use. Reads of coordinate data
// can fail (missing file, truncated write) and callers must treat a failure
// as invalidating the whole parameter dump.
type Store struct {
	mu    sync.Mutex
	path  string
	img   image
	log   *logrus.Logger
	stale bool // load failed; defaults in effect until next Save
}

// Open loads the store at path, or seeds it with defaults when the file
// does not exist yet. A present-but-unreadable file yields a usable store
// with defaults plus ErrReadFail, so the caller can surface the read
// failure on the protocol and keep running.
func Open(path string, log *logrus.Logger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	st := &Store{path: path, log: log}
	st.img.Settings = Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Info("settings file missing, writing defaults")
		if err := st.Save(); err != nil {
			return st, err
		}
		return st, nil
	}
	if err != nil {
		st.stale = true
		log.WithError(err).Warn("settings read failed, using defaults")
		return st, fmt.Errorf("%w: %v", ErrReadFail, err)
	}

	if err := json.Unmarshal(data, &st.img); err != nil {
		st.img = image{Settings: Defaults()}
		st.stale = true
		log.WithError(err).Warn("settings file corrupt, using defaults")
		return st, fmt.Errorf("%w: %v", ErrReadFail, err)
	}
	return st, nil
}

// NewMemoryStore returns a store with no backing file, for check mode and
// tests. Save is a no-op.
func NewMemoryStore() *Store {
	return &Store{
		log: logrus.StandardLogger(),
		img: image{Settings: Defaults()},
	}
}

// Settings returns a pointer to the live settings table. The table is only
// written from the command dispatcher; reports treat it as read-only.
func (st *Store) Settings() *Settings {
	return &st.img.Settings
}

// Save writes the full image back to disk.
func (st *Store) Save() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(&st.img, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(st.path, data, 0644); err != nil {
		st.log.WithError(err).Error("settings save failed")
		return err
	}
	st.stale = false
	return nil
}

// ReadCoordData returns the offset vector for one coordinate-system slot.
// It fails when the slot is out of range or the store never loaded; a
// failure here aborts the whole parameter dump upstream.
func (st *Store) ReadCoordData(slot uint8) ([core.NAxis]float64, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var zero [core.NAxis]float64
	if slot >= NCoordSystems {
		return zero, ErrBadSlot
	}
	if st.stale {
		return zero, ErrReadFail
	}
	return st.img.CoordData[slot], nil
}

// WriteCoordData stores the offset vector for one coordinate-system slot.
func (st *Store) WriteCoordData(slot uint8, data [core.NAxis]float64) error {
	st.mu.Lock()
	if slot >= NCoordSystems {
		st.mu.Unlock()
		return ErrBadSlot
	}
	st.img.CoordData[slot] = data
	st.mu.Unlock()
	return st.Save()
}

// StartupLine returns one stored startup block.
func (st *Store) StartupLine(n uint8) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if n >= NStartupLines {
		return "", ErrBadSlot
	}
	return st.img.StartupLines[n], nil
}

// SetStartupLine stores one startup block and persists it.
func (st *Store) SetStartupLine(n uint8, line string) error {
	st.mu.Lock()
	if n >= NStartupLines {
		st.mu.Unlock()
		return ErrBadSlot
	}
	st.img.StartupLines[n] = line
	st.mu.Unlock()
	return st.Save()
}

// BuildInfoLine returns the user-editable note echoed by the build-info
// report.
func (st *Store) BuildInfoLine() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.img.BuildInfo
}

// SetBuildInfoLine stores the build-info note and persists it.
func (st *Store) SetBuildInfoLine(line string) error {
	st.mu.Lock()
	st.img.BuildInfo = line
	st.mu.Unlock()
	return st.Save()
}
