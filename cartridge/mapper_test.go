package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapperUnknownID(t *testing.T) {
	_, err := NewMapper(7, 1)
	assert.Error(t, err)
}

func TestMapper0MultiBankNotMirrored(t *testing.T) {
	m, err := NewMapper(0, 2)
	require.NoError(t, err)

	lo, ok := m.Read(0x8000)
	require.True(t, ok)
	hi, ok := m.Read(0xC000)
	require.True(t, ok)
	assert.NotEqual(t, lo, hi)
}

func TestMapper0BelowWindowUnclaimed(t *testing.T) {
	m, _ := NewMapper(0, 1)
	_, ok := m.Read(0x7FFF)
	assert.False(t, ok)
}

func TestMapper0PPUReadPassthrough(t *testing.T) {
	m, _ := NewMapper(0, 1)
	idx, ok := m.PPURead(0x0123)
	require.True(t, ok)
	assert.Equal(t, uint32(0x0123), idx)

	_, ok = m.PPURead(0x2000)
	assert.False(t, ok)
}
