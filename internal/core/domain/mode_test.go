package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHAModeTranslation(t *testing.T) {
	assert := assert.New(t)

	for vs, expected := range map[string]string{
		VesyncModeAuto:     HAModeAuto,
		VesyncModeHumidity: HAModeAuto,
		VesyncModeManual:   HAModeNormal,
		VesyncModeSleep:    HAModeSleep,
	} {
		ha, ok := HAMode(vs)
		assert.True(ok)
		assert.Equal(expected, ha)
	}

	_, ok := HAMode("turbo")
	assert.False(ok)
}

func TestVesyncModeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, vs := range []string{VesyncModeAuto, VesyncModeManual, VesyncModeSleep} {
		ha, ok := HAMode(vs)
		assert.True(ok)
		back, ok := VesyncMode(ha)
		assert.True(ok)
		assert.Equal(vs, back)
	}

	// the "humidity" alias maps back to canonical "auto"
	ha, ok := HAMode(VesyncModeHumidity)
	assert.True(ok)
	back, ok := VesyncMode(ha)
	assert.True(ok)
	assert.Equal(VesyncModeAuto, back)

	_, ok = VesyncMode("eco")
	assert.False(ok)
}
