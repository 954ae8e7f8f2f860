package smu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenmetrics/zenmon/internal/family"
	"github.com/zenmetrics/zenmon/internal/smutest"
)

func TestReaderAttributes(t *testing.T) {
	reader, err := NewAtPath(smutest.Dir(t))
	require.NoError(t, err)

	version, err := reader.Version()
	require.NoError(t, err)
	assert.Equal(t, "SMU v46.54.0", version)

	drv, err := reader.DriverVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.1.7", drv)

	fam, err := reader.Family()
	require.NoError(t, err)
	assert.Equal(t, family.Vermeer, fam)

	tableVersion, err := reader.TableVersion()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x240903), tableVersion)

	size, err := reader.TableSize()
	require.NoError(t, err)
	assert.Equal(t, smutest.TableSize, size)
}

func TestTableVersionDecimal(t *testing.T) {
	dir := smutest.Dir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pm_table_version"), []byte("2361603\n"), 0o644))

	reader, err := NewAtPath(dir)
	require.NoError(t, err)
	v, err := reader.TableVersion()
	require.NoError(t, err)
	assert.Equal(t, uint32(2361603), v) // 0x240903
}

func TestTableVersionMalformed(t *testing.T) {
	dir := smutest.Dir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pm_table_version"), []byte("banana\n"), 0o644))

	reader, err := NewAtPath(dir)
	require.NoError(t, err)
	_, err = reader.TableVersion()
	assert.Error(t, err)
}

func TestFamilyUnknownIDDegrades(t *testing.T) {
	dir := smutest.Dir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codename"), []byte("99\n"), 0o644))

	reader, err := NewAtPath(dir)
	require.NoError(t, err)
	fam, err := reader.Family()
	require.NoError(t, err)
	assert.Equal(t, family.Unsupported, fam)
}

func TestRead(t *testing.T) {
	reader, err := NewAtPath(smutest.Dir(t))
	require.NoError(t, err)

	r, err := reader.Read()
	require.NoError(t, err)

	assert.InDelta(t, 65.2, r.Tctl, 0.01)
	assert.InDelta(t, 42.1, r.SocTemp, 0.01)
	assert.InDelta(t, 142.0, r.PPTLimit, 0.01)
	assert.InDelta(t, 1800.0, r.FCLK, 0.01)
	assert.Equal(t, family.Vermeer, r.Family)

	// Core count comes from the host's topology, clamped to the layout.
	assert.NotEmpty(t, r.CoreTemps)
	assert.LessOrEqual(t, len(r.CoreTemps), 16)
	assert.Equal(t, len(r.CoreTemps), len(r.CorePower))
}

func TestModuleNotLoaded(t *testing.T) {
	_, err := NewAtPath("/nonexistent/path")
	var notLoaded *ModuleNotLoadedError
	assert.ErrorAs(t, err, &notLoaded)
}

func TestMissingAttribute(t *testing.T) {
	dir := smutest.Dir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "pm_table")))

	reader, err := NewAtPath(dir)
	require.NoError(t, err)
	_, err = reader.Table()
	var notLoaded *ModuleNotLoadedError
	assert.ErrorAs(t, err, &notLoaded)
}
