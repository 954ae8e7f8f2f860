package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmetrics/zenmon/internal/family"
	"github.com/zenmetrics/zenmon/internal/model"
)

func fixtureReading() *model.Reading {
	return &model.Reading{
		Version:      0x240903,
		Family:       family.Vermeer,
		FamilyName:   "Vermeer",
		PPTLimit:     142.0,
		PPTValue:     89.5,
		TDCLimit:     95.0,
		TDCValue:     62.3,
		EDCLimit:     140.0,
		EDCValue:     98.7,
		THMLimit:     90.0,
		Tctl:         65.2,
		SocTemp:      42.1,
		CoreTemps:    []float64{60.0, 60.5, 61.0, 61.5, 62.0, 62.5, 63.0, 63.5},
		CoreFreqs:    []float64{4500, 4550, 4600, 4650, 4700, 4750, 4800, 4850},
		CoreFreqsEff: []float64{4400, 4450, 4500, 4550, 4600, 4650, 4700, 4750},
		FCLK:         1800.0,
		MCLK:         1800.0,
		CorePower:    []float64{8.0, 8.5, 9.0, 9.5, 10.0, 10.5, 11.0, 11.5},
		PackagePower: 88.5,
		SocPower:     12.4,
		CoreVoltage:  1.35,
		SocVoltage:   1.10,
		CoreC0:       []float64{90, 91, 92, 93, 94, 95, 96, 97},
	}
}

func TestTextAllSections(t *testing.T) {
	out := Text(fixtureReading(), "SMU v46.54.0", Options{})

	assert.Contains(t, out, "AMD Ryzen (Vermeer)")
	assert.Contains(t, out, "SMU v46.54.0 | PM Table v0x240903")
	assert.Contains(t, out, "Temperatures:")
	assert.Contains(t, out, "Power:")
	assert.Contains(t, out, "Frequencies:")
	assert.Contains(t, out, "Voltages:")
	assert.Contains(t, out, "CCD0:")
	assert.Contains(t, out, "Tctl:           +65.2°C  (limit: 90.0°C)")
	assert.Contains(t, out, "Package:        89.5W / 142.0W (PPT)")
	assert.Contains(t, out, "FCLK:           1800 MHz")
	assert.Contains(t, out, "VCore:          1.350V")
}

func TestTextSectionFilters(t *testing.T) {
	r := fixtureReading()

	temps := Text(r, "SMU", Options{TempsOnly: true})
	assert.Contains(t, temps, "Temperatures:")
	assert.NotContains(t, temps, "Power:")
	assert.NotContains(t, temps, "Voltages:")

	power := Text(r, "SMU", Options{PowerOnly: true})
	assert.Contains(t, power, "Power:")
	assert.NotContains(t, power, "Temperatures:")

	freq := Text(r, "SMU", Options{FreqOnly: true})
	assert.Contains(t, freq, "Frequencies:")
	assert.NotContains(t, freq, "Power:")
}

func TestTextSkipsIdleCores(t *testing.T) {
	r := fixtureReading()
	r.CoreTemps = []float64{0, 0, 0, 0, 0, 0, 0, 0}
	r.CorePower = []float64{0, 0, 0, 0, 0, 0, 0, 0}

	out := Text(r, "SMU", Options{})
	assert.NotContains(t, out, "CCD0:")
	assert.NotContains(t, out, "Core  0:        0.00W")
}

func TestJSON(t *testing.T) {
	out, err := JSON(fixtureReading())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "Vermeer", decoded["codename"])
	assert.InDelta(t, 142.0, decoded["ppt_limit"].(float64), 0.01)
	assert.Len(t, decoded["core_temps"], 8)
	_, hasFamily := decoded["Family"]
	assert.False(t, hasFamily)
}
