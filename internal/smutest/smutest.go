// Package smutest builds mock ryzen_smu sysfs directories for tests.
package smutest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// TableSize matches the blob size a Vermeer part reports.
const TableSize = 6832

// WriteFloat encodes a little-endian float32 at offset.
func WriteFloat(data []byte, offset int, value float32) {
	binary.LittleEndian.PutUint32(data[offset:], math.Float32bits(value))
}

// Table builds a version 0x240903 blob with the canonical fixture
// values used across packages: ppt 89.5/142.0, tdc 62.3/95.0,
// thm 65.2/90.0, edc 98.7/140.0, and ascending per-core series for
// eight cores.
func Table() []byte {
	data := make([]byte, TableSize)

	WriteFloat(data, 0x000, 142.0) // PPT limit
	WriteFloat(data, 0x004, 89.5)  // PPT value
	WriteFloat(data, 0x008, 95.0)  // TDC limit
	WriteFloat(data, 0x00C, 62.3)  // TDC value
	WriteFloat(data, 0x010, 90.0)  // THM limit
	WriteFloat(data, 0x014, 65.2)  // Tctl
	WriteFloat(data, 0x020, 140.0) // EDC limit
	WriteFloat(data, 0x024, 98.7)  // EDC value
	WriteFloat(data, 0x060, 88.5)  // package power
	WriteFloat(data, 0x064, 12.4)  // SoC power
	WriteFloat(data, 0x0A0, 1.35)  // core voltage
	WriteFloat(data, 0x0B4, 1.10)  // SoC voltage
	WriteFloat(data, 0x0C0, 1800.0)
	WriteFloat(data, 0x0CC, 1800.0)
	WriteFloat(data, 0x1CC, 42.1) // SoC temp

	for i := 0; i < 8; i++ {
		WriteFloat(data, 0x24C+i*4, 8.0+float32(i)*0.5)
		WriteFloat(data, 0x28C+i*4, 60.0+float32(i)*0.5)
		WriteFloat(data, 0x2EC+i*4, 4500.0+float32(i)*50.0)
		WriteFloat(data, 0x30C+i*4, 4400.0+float32(i)*50.0)
		WriteFloat(data, 0x32C+i*4, 90.0+float32(i))
	}
	return data
}

// Dir writes a full mock sysfs tree into a temp directory and returns
// its path.
func Dir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()

	files := map[string]string{
		"version":          "SMU v46.54.0\n",
		"drv_version":      "0.1.7\n",
		"codename":         "12\n", // Vermeer
		"pm_table_version": "0x240903\n",
		"pm_table_size":    "6832\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			tb.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "pm_table"), Table(), 0o644); err != nil {
		tb.Fatal(err)
	}
	return dir
}
