package cut

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCut(t *testing.T) *Cut {
	t.Helper()
	c := &Cut{
		RadarIdentifier: "KLVX",
		Latitude:        38.0,
		Longitude:       -85.9,
		GeoElevation:    510,
		VCP:             212,
		StartTimestamp:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTimestamp:    time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC),
		radials:         &azimuthMap{},
	}
	for i := 0; i < 10; i++ {
		az := float32(i) * 2.0
		require.NoError(t, c.radials.insert(az, SimpleRadial{
			AzimuthNr: uint16(i), Azimuth: az, Elevation: 0.5,
			StartRangeM: 2125, RangeResM: 250, Scale: 2, Offset: 66,
			Gates: []byte{byte(i + 2), byte(i + 3)},
		}))
	}
	return c
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := buildCut(t)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, c))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, c.RadarIdentifier, loaded.RadarIdentifier)
	assert.Equal(t, c.Latitude, loaded.Latitude)
	assert.Equal(t, c.Longitude, loaded.Longitude)
	assert.Equal(t, c.VCP, loaded.VCP)
	assert.True(t, c.StartTimestamp.Equal(loaded.StartTimestamp))
	require.Equal(t, c.Len(), loaded.Len())

	for i := 0; i < c.Len(); i++ {
		want := c.At(i)
		got := loaded.At(i)
		assert.Equal(t, want.Azimuth, got.Azimuth)
		assert.Equal(t, want.Gates, got.Gates)
	}

	// The index is rebuilt, not serialised, so lookups still work after load.
	pos := loaded.LowerBound(5.0)
	assert.Equal(t, float32(6.0), loaded.At(pos).Azimuth)
}

func TestLoadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX\x00\x01")
	_, err := Load(buf)
	require.Error(t, err)
}
