package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromID(t *testing.T) {
	tests := []struct {
		id   uint32
		want Family
	}{
		{0, Unsupported},
		{4, Matisse},
		{12, Vermeer},
		{20, Raphael},
		{23, GraniteRidge},
		{25, StormPeak},
		{26, Unsupported},
		{999, Unsupported},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromID(tt.id), "id %d", tt.id)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Vermeer", Vermeer.String())
	assert.Equal(t, "Granite Ridge", GraniteRidge.String())
	assert.Equal(t, "Castle Peak", CastlePeak.String())
	assert.Equal(t, "Unsupported", Unsupported.String())
	assert.Equal(t, "Unsupported", Family(200).String())
}

func TestTopology(t *testing.T) {
	assert.Equal(t, 16, Vermeer.CoresPerCCD()*Vermeer.MaxCCDs())
	assert.Equal(t, 64, Milan.CoresPerCCD()*Milan.MaxCCDs())
	assert.Equal(t, 32, Threadripper.CoresPerCCD()*Threadripper.MaxCCDs())
	assert.Equal(t, 8, Cezanne.CoresPerCCD()*Cezanne.MaxCCDs())
	assert.Equal(t, 8, Unsupported.CoresPerCCD()*Unsupported.MaxCCDs())
}
