package service

import (
	"testing"

	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/stretchr/testify/assert"
)

func TestHumidifierBinarySensorsFollowDetails(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}

	// the classic fixture reports water_lacks and water_tank_lifted but no
	// filter_open_state
	classic := vesync.NewTestClassicHumidifier(client)
	sensors := HumidifierBinarySensors(classic)
	assert.Len(sensors, 2)
	assert.Equal("out_of_water", sensors[0].Kind.Id)
	assert.Equal("water_tank_lifted", sensors[1].Kind.Id)
	assert.False(sensors[0].IsOn())
	assert.Equal("cid-classic300s-1-out_of_water", sensors[0].UniqueId())
	assert.Equal("Bedroom humidifier Out of Water", sensors[0].Name())

	superior := vesync.NewTestSuperiorHumidifier(client)
	sensors = HumidifierBinarySensors(superior)
	assert.Len(sensors, 1)
	assert.Equal("out_of_water", sensors[0].Kind.Id)
	assert.True(sensors[0].IsOn())
}

func TestAirFryerBinarySensors(t *testing.T) {
	assert := assert.New(t)

	client := &vesync.TestBypassClient{}
	fryer := vesync.NewTestAirFryer(client)

	sensors := AirFryerBinarySensors(fryer)
	assert.Len(sensors, 3)

	byId := map[string]*BinarySensorEntity{}
	for _, s := range sensors {
		byId[s.Kind.Id] = s
	}
	assert.True(byId["is_heating"].IsOn())
	assert.False(byId["is_cooking"].IsOn())
	assert.True(byId["is_running"].IsOn())

	fryer.CookStatus = "cookEnd"
	assert.False(byId["is_heating"].IsOn())
	assert.False(byId["is_running"].IsOn())
}
