package topo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenmetrics/zenmon/internal/family"
)

func TestResolveCount(t *testing.T) {
	// Enumeration wins when it works.
	assert.Equal(t, 12, resolveCount(12, nil, family.Vermeer))

	// Errors and zero fall back to the family topology.
	assert.Equal(t, 16, resolveCount(0, nil, family.Vermeer))
	assert.Equal(t, 16, resolveCount(24, errors.New("no procfs"), family.Vermeer))
	assert.Equal(t, 8, resolveCount(0, nil, family.Cezanne))
	assert.Equal(t, 8, resolveCount(0, nil, family.Unsupported))
}

func TestPadClocks(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 0, 0}, padClocks([]float64{1, 2}, 4))
	assert.Equal(t, []float64{1, 2}, padClocks([]float64{1, 2}, 2))
	assert.Equal(t, []float64{1, 2}, padClocks([]float64{1, 2}, 1))
}

func TestCoreCountNeverZero(t *testing.T) {
	// Whatever the host reports, the resolved count is positive.
	assert.Greater(t, CoreCount(family.Vermeer), 0)
}
