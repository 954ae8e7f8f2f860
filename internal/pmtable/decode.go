package pmtable

import (
	"encoding/binary"
	"math"

	"github.com/zenmetrics/zenmon/internal/family"
	"github.com/zenmetrics/zenmon/internal/model"
)

// FrequencySource supplies per-core clock values (MHz) for table
// generations that do not publish frequencies themselves. One value per
// logical core, in core order.
type FrequencySource interface {
	CoreClocks(n int) ([]float64, error)
}

// Decode parses a raw PM table blob into a Reading. It is a pure
// function of its inputs: no state is shared between calls and
// concurrent calls on distinct buffers are safe.
//
// Scalar fields are structural: a scalar read past the end of the blob
// fails the whole decode. Per-core entries are best-effort: a sentinel
// base or an out-of-range element yields 0 for that element, because
// per-core availability varies across silicon revisions sharing a
// nominal format version.
func Decode(raw []byte, version uint32, fam family.Family, coreCount int, clocks FrequencySource) (*model.Reading, error) {
	layout, ok := Lookup(version)
	if !ok {
		return nil, &UnsupportedVersionError{Version: version}
	}

	if min := layout.minSize(coreCount); len(raw) < min {
		return nil, &InvalidSizeError{Expected: min, Actual: len(raw)}
	}

	r := &model.Reading{
		Version:    version,
		Family:     fam,
		FamilyName: fam.String(),
	}

	scalars := []struct {
		dst    *float64
		offset int
	}{
		{&r.PPTLimit, layout.PPTLimit},
		{&r.PPTValue, layout.PPTValue},
		{&r.TDCLimit, layout.TDCLimit},
		{&r.TDCValue, layout.TDCValue},
		{&r.THMLimit, layout.THMLimit},
		{&r.Tctl, layout.THMValue},
		{&r.EDCLimit, layout.EDCLimit},
		{&r.EDCValue, layout.EDCValue},
		{&r.PackagePower, layout.PackagePower},
		{&r.SocPower, layout.SocPower},
		{&r.CoreVoltage, layout.CoreVoltage},
		{&r.SocVoltage, layout.SocVoltage},
		{&r.FCLK, layout.FCLK},
		{&r.MCLK, layout.MCLK},
		{&r.SocTemp, layout.SocTemp},
	}
	for _, s := range scalars {
		v, err := readFloat(raw, s.offset)
		if err != nil {
			return nil, err
		}
		*s.dst = v
	}

	cores := coreCount
	if cores > layout.MaxCores {
		cores = layout.MaxCores
	}
	r.CorePower = make([]float64, 0, cores)
	r.CoreTemps = make([]float64, 0, cores)
	for i := 0; i < cores; i++ {
		r.CorePower = append(r.CorePower, readFloatLenient(raw, layout.CorePowerBase+i*4))
		r.CoreTemps = append(r.CoreTemps, readFloatLenient(raw, layout.CoreTempBase+i*4))

		if layout.CoreFreqBase != Sentinel {
			r.CoreFreqs = append(r.CoreFreqs, readFloatLenient(raw, layout.CoreFreqBase+i*4))
			r.CoreFreqsEff = append(r.CoreFreqsEff, readFloatLenient(raw, layout.CoreFreqEffBase+i*4))
		}
		if layout.CoreC0Base != Sentinel {
			r.CoreC0 = append(r.CoreC0, readFloatLenient(raw, layout.CoreC0Base+i*4))
		}
	}

	// Tables without frequency arrays fall back to OS-reported clocks.
	// Values are never fabricated from other fields: no source means
	// the sequences stay empty.
	if layout.CoreFreqBase == Sentinel && cores > 0 && clocks != nil {
		if freqs, err := clocks.CoreClocks(cores); err == nil {
			r.CoreFreqs = freqs
			r.CoreFreqsEff = append([]float64(nil), freqs...)
		}
	}

	return r, nil
}

// readFloat reads a little-endian IEEE-754 float32 at offset. Failing
// the bounds check is a structural error.
func readFloat(raw []byte, offset int) (float64, error) {
	if offset+4 > len(raw) {
		return 0, &InvalidSizeError{Expected: offset + 4, Actual: len(raw)}
	}
	bits := binary.LittleEndian.Uint32(raw[offset:])
	return float64(math.Float32frombits(bits)), nil
}

// readFloatLenient reads like readFloat but absorbs sentinel and
// out-of-range offsets as 0.
func readFloatLenient(raw []byte, offset int) float64 {
	if offset >= Sentinel || offset+4 > len(raw) {
		return 0
	}
	bits := binary.LittleEndian.Uint32(raw[offset:])
	return float64(math.Float32frombits(bits))
}
