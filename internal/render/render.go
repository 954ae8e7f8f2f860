// Package render turns Readings into human-readable text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zenmetrics/zenmon/internal/model"
)

// Options selects which sections the text renderer emits. All false
// means everything.
type Options struct {
	TempsOnly bool
	PowerOnly bool
	FreqOnly  bool
}

func (o Options) showAll() bool {
	return !o.TempsOnly && !o.PowerOnly && !o.FreqOnly
}

const coresPerCCD = 8

// Text renders a Reading as grouped human-readable sections.
func Text(r *model.Reading, smuVersion string, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "AMD Ryzen (%s)\n", r.FamilyName)
	fmt.Fprintf(&b, "%s | PM Table v%#x\n\n", smuVersion, r.Version)

	if opts.showAll() || opts.TempsOnly {
		b.WriteString("Temperatures:\n")
		fmt.Fprintf(&b, "  Tctl:           %+.1f°C  (limit: %.1f°C)\n", r.Tctl, r.THMLimit)
		fmt.Fprintf(&b, "  SoC:            %+.1f°C\n", r.SocTemp)
		writeCoreTemps(&b, r.CoreTemps)
		b.WriteByte('\n')
	}

	if opts.showAll() || opts.PowerOnly {
		b.WriteString("Power:\n")
		fmt.Fprintf(&b, "  Package:        %.1fW / %.1fW (PPT)\n", r.PPTValue, r.PPTLimit)
		fmt.Fprintf(&b, "  TDC:            %.1fA / %.1fA\n", r.TDCValue, r.TDCLimit)
		fmt.Fprintf(&b, "  EDC:            %.1fA / %.1fA\n", r.EDCValue, r.EDCLimit)
		fmt.Fprintf(&b, "  SoC:            %.1fW\n", r.SocPower)
		for i, p := range r.CorePower {
			if p > 0 {
				fmt.Fprintf(&b, "  Core %2d:        %.2fW\n", i, p)
			}
		}
		b.WriteByte('\n')
	}

	if opts.showAll() || opts.FreqOnly {
		b.WriteString("Frequencies:\n")
		fmt.Fprintf(&b, "  FCLK:           %.0f MHz\n", r.FCLK)
		fmt.Fprintf(&b, "  MCLK:           %.0f MHz\n", r.MCLK)
		for i, freq := range r.CoreFreqs {
			if freq <= 0 {
				continue
			}
			var eff, c0 float64
			if i < len(r.CoreFreqsEff) {
				eff = r.CoreFreqsEff[i]
			}
			if i < len(r.CoreC0) {
				c0 = r.CoreC0[i]
			}
			fmt.Fprintf(&b, "  Core %2d:        %.0f MHz (eff: %.0f)  C0: %.1f%%\n", i, freq, eff, c0)
		}
		b.WriteByte('\n')
	}

	if opts.showAll() {
		b.WriteString("Voltages:\n")
		fmt.Fprintf(&b, "  VCore:          %.3fV\n", r.CoreVoltage)
		fmt.Fprintf(&b, "  VSoC:           %.3fV\n", r.SocVoltage)
	}

	return b.String()
}

// writeCoreTemps groups cores by CCD, skipping cores that report 0
// (parked or absent on this package).
func writeCoreTemps(b *strings.Builder, temps []float64) {
	numCCDs := (len(temps) + coresPerCCD - 1) / coresPerCCD
	for ccd := 0; ccd < numCCDs; ccd++ {
		start := ccd * coresPerCCD
		end := start + coresPerCCD
		if end > len(temps) {
			end = len(temps)
		}
		active := false
		for _, t := range temps[start:end] {
			if t > 0 {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		fmt.Fprintf(b, "  CCD%d:\n", ccd)
		for i, t := range temps[start:end] {
			if t > 0 {
				fmt.Fprintf(b, "    Core %2d:      %+.1f°C\n", start+i, t)
			}
		}
	}
}

// JSON renders a Reading as indented JSON.
func JSON(r *model.Reading) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
