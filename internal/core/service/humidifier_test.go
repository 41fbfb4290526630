package service

import (
	"testing"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClassicAccessors(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	entity, err := NewHumidifierEntity(vesync.NewTestClassicHumidifier(client), "vs_humidifier_1", zap.NewNop())
	assert.NoError(err)

	assert.True(entity.IsOn())
	target, ok := entity.TargetHumidity()
	assert.True(ok)
	assert.Equal(50, target)
	mode, ok := entity.Mode()
	assert.True(ok)
	assert.Equal(domain.HAModeNormal, mode)
	assert.Equal([]string{domain.HAModeAuto, domain.HAModeNormal, domain.HAModeSleep}, entity.AvailableModes())
}

func TestSuperiorAccessors(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	entity, err := NewHumidifierEntity(vesync.NewTestSuperiorHumidifier(client), "vs_humidifier_2", zap.NewNop())
	assert.NoError(err)

	assert.True(entity.IsOn())
	target, ok := entity.TargetHumidity()
	assert.True(ok)
	assert.Equal(55, target)
	// "humidity" is the Superior alias for auto mode
	mode, ok := entity.Mode()
	assert.True(ok)
	assert.Equal(domain.HAModeAuto, mode)
}

func TestUnknownVariantRejected(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	device := vesync.NewTestClassicHumidifier(client)
	device.Variant = vesync.VariantUnknown

	_, err := NewHumidifierEntity(device, "vs_humidifier_1", zap.NewNop())
	assert.Error(err)
}

func TestExtraStateAttributesReKeying(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	entity, err := NewHumidifierEntity(vesync.NewTestClassicHumidifier(client), "vs_humidifier_1", zap.NewNop())
	assert.NoError(err)

	attrs := entity.ExtraStateAttributes()

	// rename table wins over the reserved-key prefix
	assert.Equal(float64(45), attrs["current_humidity"])
	assert.NotContains(attrs, "humidity")
	assert.NotContains(attrs, "vs_humidity")
	// reserved host keys get the vendor prefix
	assert.Equal("manual", attrs["vs_mode"])
	assert.NotContains(attrs, "mode")
	// everything else passes through unchanged
	assert.Equal(float64(3), attrs["mist_virtual_level"])
	assert.Equal(false, attrs["water_lacks"])
}

func TestSetHumidityBounds(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	entity, err := NewHumidifierEntity(vesync.NewTestClassicHumidifier(client), "vs_humidifier_1", zap.NewNop())
	assert.NoError(err)

	assert.Error(entity.SetHumidity(domain.MinHumidity - 1))
	assert.Error(entity.SetHumidity(domain.MaxHumidity + 1))
	// out of range targets are rejected before any vendor call
	assert.Empty(client.Calls)

	assert.NoError(entity.SetHumidity(60))
	assert.Equal([]string{"setTargetHumidity"}, client.Calls)
	target, ok := entity.TargetHumidity()
	assert.True(ok)
	assert.Equal(60, target)
}

func TestSetModeValidatesAndTranslates(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	entity, err := NewHumidifierEntity(vesync.NewTestClassicHumidifier(client), "vs_humidifier_1", zap.NewNop())
	assert.NoError(err)

	assert.Error(entity.SetMode("eco"))
	assert.Empty(client.Calls)

	assert.NoError(entity.SetMode(domain.HAModeNormal))
	assert.Equal([]string{"setHumidityMode"}, client.Calls)
	assert.Equal(domain.VesyncModeManual, entity.Device().Mode)
}

func TestSetModeUsesDeviceAlias(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	entity, err := NewHumidifierEntity(vesync.NewTestSuperiorHumidifier(client), "vs_humidifier_2", zap.NewNop())
	assert.NoError(err)

	// Superior advertises "humidity" instead of "auto"
	assert.NoError(entity.SetMode(domain.HAModeAuto))
	assert.Equal(domain.VesyncModeHumidity, entity.Device().Mode)
}

func TestCommandFailureKeepsState(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{FailMethods: map[string]bool{"setSwitch": true}}
	entity, err := NewHumidifierEntity(vesync.NewTestClassicHumidifier(client), "vs_humidifier_1", zap.NewNop())
	assert.NoError(err)

	assert.Error(entity.TurnOff())
	assert.True(entity.IsOn())
}
