package topo

import (
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/zenmetrics/zenmon/internal/family"
)

// CoreCount resolves the number of active cores, preferring OS topology
// enumeration and falling back to the family's package topology when
// enumeration fails or reports zero.
func CoreCount(fam family.Family) int {
	n, err := cpu.Counts(true)
	return resolveCount(n, err, fam)
}

func resolveCount(n int, err error, fam family.Family) int {
	if err != nil || n <= 0 {
		return fam.CoresPerCCD() * fam.MaxCCDs()
	}
	return n
}

// Clocks reports per-core clock values from the OS. It backs the
// decoder's frequency fallback for PM table generations that do not
// publish frequencies.
type Clocks struct{}

// CoreClocks returns n per-core clock values in MHz, padded with zeros
// when the OS reports fewer cores than requested.
func (Clocks) CoreClocks(n int) ([]float64, error) {
	infos, err := cpu.Info()
	if err != nil {
		return nil, err
	}
	freqs := make([]float64, 0, n)
	for _, info := range infos {
		if len(freqs) >= n {
			break
		}
		freqs = append(freqs, info.Mhz)
	}
	return padClocks(freqs, n), nil
}

func padClocks(freqs []float64, n int) []float64 {
	for len(freqs) < n {
		freqs = append(freqs, 0)
	}
	return freqs
}
