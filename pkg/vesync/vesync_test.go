package vesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumidifierVariantForModel(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(VariantClassic200300S, humidifierVariantForModel("Classic300S"))
	assert.Equal(VariantClassic200300S, humidifierVariantForModel("LUH-A602S-WUS"))
	assert.Equal(VariantSuperior6000S, humidifierVariantForModel("LEH-S601S-WEU"))
	assert.Equal(VariantUnknown, humidifierVariantForModel("ESW15-USA"))
}

func TestApplyStatusSplitsConfiguration(t *testing.T) {

	assert := assert.New(t)

	h := NewTestClassicHumidifier(&TestBypassClient{})

	assert.True(h.DetailBool("enabled"))
	assert.False(h.HasDetail("configuration"), "configuration submap moved to Config")

	target, ok := h.ConfigInt("auto_target_humidity")
	assert.True(ok)
	assert.Equal(50, target)

	assert.Equal("manual", h.Mode)
	assert.Equal("on", h.DeviceStatus)
}

func TestSetHumidityUpdatesLocalState(t *testing.T) {

	assert := assert.New(t)

	client := &TestBypassClient{}
	classic := NewTestClassicHumidifier(client)
	superior := NewTestSuperiorHumidifier(client)

	assert.NoError(classic.SetHumidity(60))
	target, _ := classic.ConfigInt("auto_target_humidity")
	assert.Equal(60, target)

	assert.NoError(superior.SetHumidity(65))
	target, _ = superior.DetailInt("target_humidity")
	assert.Equal(65, target)

	assert.Equal([]string{"setTargetHumidity", "setTargetHumidity"}, client.Calls)
}

func TestCommandFailureSurfaces(t *testing.T) {

	assert := assert.New(t)

	client := &TestBypassClient{FailMethods: map[string]bool{"setSwitch": true}}
	h := NewTestClassicHumidifier(client)

	err := h.TurnOff()
	assert.Error(err)
	assert.Equal("on", h.DeviceStatus, "local state untouched on failure")
}

func TestAirFryerStatusFlags(t *testing.T) {

	assert := assert.New(t)

	f := NewTestAirFryer(&TestBypassClient{})

	assert.True(f.StatusFlag("is_heating"))
	assert.False(f.StatusFlag("is_cooking"))
	assert.True(f.StatusFlag("is_running"))
	assert.False(f.StatusFlag("unknown_flag"))

	f.CookStatus = "cookEnd"
	assert.False(f.IsRunning())
}
