package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCircleMap(t *testing.T) *azimuthMap {
	t.Helper()
	m := &azimuthMap{}
	for i := 0; i < 720; i++ { // 0.0, 0.5, ..., 359.5
		az := float32(i) * 0.5
		require.NoError(t, m.insert(az, SimpleRadial{Azimuth: az}))
	}
	return m
}

func TestAzimuthMapLowerBound(t *testing.T) {
	m := fullCircleMap(t)

	pos := m.lowerBound(10.3)
	az, _ := m.at(pos)
	assert.Equal(t, float32(10.5), az)

	pos = m.lowerBound(359.9)
	assert.Equal(t, m.len(), pos)

	pos = m.lowerBound(0.0)
	az, _ = m.at(pos)
	assert.Equal(t, float32(0.0), az)
}

func TestAzimuthMapAtWrapsAround(t *testing.T) {
	m := fullCircleMap(t)
	last := m.len() - 1
	az, _ := m.at(last + 1)
	assert.Equal(t, float32(0.0), az)
}

func TestAzimuthMapCollision(t *testing.T) {
	m := &azimuthMap{}
	require.NoError(t, m.insert(10.0, SimpleRadial{Azimuth: 10.0}))
	err := m.insert(10.05, SimpleRadial{Azimuth: 10.05})
	require.Error(t, err)
}

func TestAzimuthMapAscendingOrder(t *testing.T) {
	m := &azimuthMap{}
	require.NoError(t, m.insert(180.0, SimpleRadial{Azimuth: 180.0}))
	require.NoError(t, m.insert(10.0, SimpleRadial{Azimuth: 10.0}))
	require.NoError(t, m.insert(90.0, SimpleRadial{Azimuth: 90.0}))

	az0, _ := m.at(0)
	az1, _ := m.at(1)
	az2, _ := m.at(2)
	assert.Equal(t, float32(10.0), az0)
	assert.Equal(t, float32(90.0), az1)
	assert.Equal(t, float32(180.0), az2)
}
