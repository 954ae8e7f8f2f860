package model

import "github.com/zenmetrics/zenmon/internal/family"

// Reading is one decoded PM table snapshot exchanged between the decoder,
// the renderers, the TUI, and the Prometheus collector. It is fully
// populated on construction and never mutated afterwards. The five
// per-core slices always have identical length.
type Reading struct {
	Version    uint32        `json:"version"`
	Family     family.Family `json:"-"`
	FamilyName string        `json:"codename"`

	// Limits
	PPTLimit float64 `json:"ppt_limit"` // W
	TDCLimit float64 `json:"tdc_limit"` // A
	EDCLimit float64 `json:"edc_limit"` // A
	THMLimit float64 `json:"thm_limit"` // °C

	// Current values
	PPTValue float64 `json:"ppt_value"`
	TDCValue float64 `json:"tdc_value"`
	EDCValue float64 `json:"edc_value"`

	// Temperatures (°C)
	Tctl      float64   `json:"tctl"`
	SocTemp   float64   `json:"soc_temp"`
	CoreTemps []float64 `json:"core_temps"`

	// Frequencies (MHz)
	CoreFreqs    []float64 `json:"core_freqs"`
	CoreFreqsEff []float64 `json:"core_freqs_eff"`
	FCLK         float64   `json:"fclk"`
	MCLK         float64   `json:"mclk"`

	// Power (W)
	CorePower    []float64 `json:"core_power"`
	PackagePower float64   `json:"package_power"`
	SocPower     float64   `json:"soc_power"`

	// Voltages (V) and C0 residency (%)
	CoreVoltage float64   `json:"core_voltage"`
	SocVoltage  float64   `json:"soc_voltage"`
	CoreC0      []float64 `json:"core_c0"`
}
