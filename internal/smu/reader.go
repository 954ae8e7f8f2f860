// Package smu reads AMD SMU telemetry through the sysfs interface
// exposed by the ryzen_smu kernel module.
package smu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zenmetrics/zenmon/internal/family"
	"github.com/zenmetrics/zenmon/internal/model"
	"github.com/zenmetrics/zenmon/internal/pmtable"
	"github.com/zenmetrics/zenmon/internal/topo"
)

// DefaultSysfsPath is where ryzen_smu publishes its attributes.
const DefaultSysfsPath = "/sys/kernel/ryzen_smu_drv"

// Reader fetches raw PM table blobs and the small text attributes that
// accompany them. It holds no cached state; every Read hits sysfs.
type Reader struct {
	path string
}

// New opens a Reader on the default sysfs path.
func New() (*Reader, error) {
	return NewAtPath(DefaultSysfsPath)
}

// NewAtPath opens a Reader on a custom sysfs directory, typically a
// fixture in tests.
func NewAtPath(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ModuleNotLoadedError{Path: path}
	}
	return &Reader{path: path}, nil
}

// Version returns the SMU firmware version string.
func (r *Reader) Version() (string, error) {
	s, err := r.readString("version")
	return strings.TrimSpace(s), err
}

// DriverVersion returns the ryzen_smu driver version string.
func (r *Reader) DriverVersion() (string, error) {
	s, err := r.readString("drv_version")
	return strings.TrimSpace(s), err
}

// Family resolves the processor family from the codename attribute.
// Malformed or unknown ids degrade to family.Unsupported.
func (r *Reader) Family() (family.Family, error) {
	s, err := r.readString("codename")
	if err != nil {
		return family.Unsupported, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return family.Unsupported, nil
	}
	return family.FromID(uint32(id)), nil
}

// TableVersion returns the PM table format version. The attribute is
// textual and may be decimal or 0x-prefixed hexadecimal.
func (r *Reader) TableVersion() (uint32, error) {
	s, err := r.readString("pm_table_version")
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(s)
	var v uint64
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		v, err = strconv.ParseUint(trimmed[2:], 16, 32)
	} else {
		v, err = strconv.ParseUint(trimmed, 10, 32)
	}
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// TableSize returns the PM table size in bytes as reported by the driver.
func (r *Reader) TableSize() (int, error) {
	s, err := r.readString("pm_table_size")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Table returns the raw PM table blob.
func (r *Reader) Table() ([]byte, error) {
	return r.readBytes("pm_table")
}

// Read fetches a fresh blob and decodes it into a Reading. The core
// count comes from OS topology with the family topology as fallback;
// OS clocks backfill frequencies for tables that lack them.
func (r *Reader) Read() (*model.Reading, error) {
	version, err := r.TableVersion()
	if err != nil {
		return nil, err
	}
	fam, err := r.Family()
	if err != nil {
		return nil, err
	}
	raw, err := r.Table()
	if err != nil {
		return nil, err
	}
	return pmtable.Decode(raw, version, fam, topo.CoreCount(fam), topo.Clocks{})
}

func (r *Reader) readString(name string) (string, error) {
	b, err := r.readBytes(name)
	return string(b), err
}

func (r *Reader) readBytes(name string) ([]byte, error) {
	path := filepath.Join(r.path, name)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, &ModuleNotLoadedError{Path: path}
	case errors.Is(err, fs.ErrPermission):
		return nil, &PermissionError{Path: path}
	default:
		return nil, err
	}
}
