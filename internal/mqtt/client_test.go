package mqtt

import (
	"encoding/json"
	"testing"

	"github.com/berfenger/vesync2mqtt/internal/config"
	"github.com/berfenger/vesync2mqtt/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestPowerCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/humidifier/my_device/command"
	r := powerCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "my_device", "device extract")
}

func TestPowerCommandParseFail(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/humidifier/my_device/state"
	r := powerCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(len(matches), 0, "no matches")
}

func TestModeCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/humidifier/my_device/mode/set"
	r := modeCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "my_device", "device extract")
}

func TestHumidityCommandParse(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/humidifier/my_device/humidity/set"
	r := humidityCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(matches[0][1], "my_device", "device extract")
}

func TestHumidityCommandParseFail(t *testing.T) {

	assert := assert.New(t)

	baseTopic := "loremTopic"
	topic := "loremTopic/humidifier/my_device/command"
	r := humidityCommandExtractor(baseTopic)
	matches := r.FindAllStringSubmatch(topic, 1)

	assert.Equal(len(matches), 0, "no matches")
}

func TestHumidifierDiscoveryMessage(t *testing.T) {

	assert := assert.New(t)

	cfg := &config.Config{
		MQTT: config.MQTTConfig{
			BaseTopic: "vesync2mqtt",
		},
	}
	client := CreateMQTTClient(cfg, OptsFromConfig(cfg), nil, nil)

	humidifier := domain.GenericHumidifier{
		Device: domain.Device{
			Id:   "vs_humidifier_abcd1234",
			Name: "Bedroom humidifier",
		},
		Id:          "vs_humidifier_abcd1234",
		Name:        "Bedroom humidifier",
		UniqueId:    "uid_vs_humidifier_abcd1234_humidifier",
		Modes:       []string{"auto", "normal", "sleep"},
		MinHumidity: 30,
		MaxHumidity: 80,
	}
	msg := GenericHumidifierToHADiscoveryMessage(client, humidifier)

	assert.Equal("vesync2mqtt/humidifier/vs_humidifier_abcd1234/state", msg.StateTopic)
	assert.Equal("vesync2mqtt/humidifier/vs_humidifier_abcd1234/command", msg.CommandTopic)
	assert.Equal("vesync2mqtt/humidifier/vs_humidifier_abcd1234/mode/set", msg.ModeCommandTopic)
	assert.Equal("vesync2mqtt/humidifier/vs_humidifier_abcd1234/humidity/set", msg.TargetHumidityCommandTopic)
	assert.Equal("vesync2mqtt/humidifier/vs_humidifier_abcd1234/attributes", msg.JsonAttributesTopic)
	assert.Equal("vesync2mqtt/bridge/state", msg.AvTopic)
	assert.Equal("homeassistant/humidifier/vs_humidifier_abcd1234/vs_humidifier_abcd1234/config",
		HADiscoveryHumidifierTopic(humidifier))

	payload, err := json.Marshal(msg)
	assert.NoError(err)
	assert.Contains(string(payload), `"modes":["auto","normal","sleep"]`)
	assert.Contains(string(payload), `"min_humidity":30`)
	assert.NotContains(string(payload), "state_class")
}
