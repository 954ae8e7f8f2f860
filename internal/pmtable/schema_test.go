package pmtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownVersions(t *testing.T) {
	zen3, ok := Lookup(0x240903)
	require.True(t, ok)
	assert.Equal(t, 0x000, zen3.PPTLimit)
	assert.Equal(t, 0x1CC, zen3.SocTemp)
	assert.Equal(t, 0x32C, zen3.CoreC0Base)
	assert.Equal(t, 16, zen3.MaxCores)

	zen5, ok := Lookup(0x00620205)
	require.True(t, ok)
	assert.Equal(t, 0x020, zen5.PPTLimit)
	assert.Equal(t, zen5.PPTValue, zen5.PackagePower)
	assert.Equal(t, Sentinel, zen5.CoreFreqBase)
	assert.Equal(t, Sentinel, zen5.CoreFreqEffBase)
	assert.Equal(t, Sentinel, zen5.CoreC0Base)
}

func TestLookupUnknownVersion(t *testing.T) {
	_, ok := Lookup(0xDEADBEEF)
	assert.False(t, ok)
}

func TestMinSizeExcludesSentinelBases(t *testing.T) {
	zen5, ok := Lookup(0x00620205)
	require.True(t, ok)
	// Largest present base is the core temp array, not the sentinel.
	assert.Equal(t, 0x534+8*4, zen5.minSize(8))

	zen3, ok := Lookup(0x240903)
	require.True(t, ok)
	assert.Equal(t, 0x32C+16*4, zen3.minSize(16))
}
