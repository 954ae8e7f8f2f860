package pmtable

// Sentinel marks a field that does not exist in a given table
// generation, as opposed to one that merely falls outside the blob.
const Sentinel = 0xFFFF

// Layout records the byte offset of every field for one PM table format
// version. Offsets are empirically derived from live hardware captures;
// they are configuration, not vendor-documented fact, so new generations
// are added by inserting a table entry plus a fixture, never by touching
// decode logic.
type Layout struct {
	PPTLimit int
	PPTValue int
	TDCLimit int
	TDCValue int
	THMLimit int
	THMValue int // Tctl junction temperature
	EDCLimit int
	EDCValue int

	PackagePower int
	SocPower     int
	CoreVoltage  int
	SocVoltage   int
	FCLK         int
	MCLK         int
	SocTemp      int

	CorePowerBase   int
	CoreTempBase    int
	CoreFreqBase    int
	CoreFreqEffBase int
	CoreC0Base      int

	MaxCores int
}

// layouts maps a PM table format version to its offset layout.
var layouts = map[uint32]Layout{
	// Matisse / Vermeer (Zen 2/3)
	0x240903: {
		PPTLimit:        0x000,
		PPTValue:        0x004,
		TDCLimit:        0x008,
		TDCValue:        0x00C,
		THMLimit:        0x010,
		THMValue:        0x014,
		EDCLimit:        0x020,
		EDCValue:        0x024,
		PackagePower:    0x060,
		SocPower:        0x064,
		CoreVoltage:     0x0A0,
		SocVoltage:      0x0B4,
		FCLK:            0x0C0,
		MCLK:            0x0CC,
		SocTemp:         0x1CC,
		CorePowerBase:   0x24C,
		CoreTempBase:    0x28C,
		CoreFreqBase:    0x2EC,
		CoreFreqEffBase: 0x30C,
		CoreC0Base:      0x32C,
		MaxCores:        16,
	},
	// Granite Ridge (Zen 5), reverse-engineered on a 9950X3D. Per-core
	// frequencies and C0 residency are not published in this table;
	// clocks come from the OS instead.
	0x00620205: {
		PPTLimit:        0x020,
		PPTValue:        0x024,
		TDCLimit:        0x028,
		TDCValue:        0x02C,
		THMLimit:        0x008,
		THMValue:        0x00C,
		EDCLimit:        0x0FC,
		EDCValue:        0x100,
		PackagePower:    0x024, // same word as PPTValue
		SocPower:        0x054,
		CoreVoltage:     0x048,
		SocVoltage:      0x04C,
		FCLK:            0x11C,
		MCLK:            0x12C,
		SocTemp:         0x0F8,
		CorePowerBase:   0x4B4,
		CoreTempBase:    0x534,
		CoreFreqBase:    Sentinel,
		CoreFreqEffBase: Sentinel,
		CoreC0Base:      Sentinel,
		MaxCores:        16,
	},
}

// Lookup returns the layout for a PM table format version. The second
// return is false when the version is unknown.
func Lookup(version uint32) (Layout, bool) {
	l, ok := layouts[version]
	return l, ok
}

// maxPerCoreBase returns the largest per-core array base offset that is
// actually present in the layout.
func (l Layout) maxPerCoreBase() int {
	max := 0
	for _, base := range [...]int{
		l.CorePowerBase,
		l.CoreTempBase,
		l.CoreFreqBase,
		l.CoreFreqEffBase,
		l.CoreC0Base,
	} {
		if base < Sentinel && base > max {
			max = base
		}
	}
	return max
}

// minSize is the smallest blob that can hold every present per-core
// array for coreCount cores. Scalar offsets are bounded by construction
// and do not enter the minimum.
func (l Layout) minSize(coreCount int) int {
	return l.maxPerCoreBase() + coreCount*4
}
