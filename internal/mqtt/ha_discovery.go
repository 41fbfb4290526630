package mqtt

import (
	"fmt"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
)

type HADiscoveryConfig struct {
	Device                     HADiscoveryDevice `json:"device"`
	StateTopic                 string            `json:"state_topic"`
	CommandTopic               string            `json:"command_topic,omitempty"`
	StateClass                 string            `json:"state_class,omitempty"`
	DeviceClass                string            `json:"device_class,omitempty"`
	UnitOfMeasurement          string            `json:"unit_of_measurement,omitempty"`
	AvTopic                    string            `json:"availability_topic,omitempty"`
	EntityCategory             string            `json:"entity_category,omitempty"`
	Name                       string            `json:"name"`
	UniqueId                   string            `json:"unique_id"`
	Platform                   string            `json:"platform"`
	EnabledByDefault           *bool             `json:"enabled_by_default,omitempty"`
	PayloadOn                  string            `json:"payload_on,omitempty"`
	PayloadOff                 string            `json:"payload_off,omitempty"`
	Icon                       string            `json:"icon,omitempty"`
	Modes                      []string          `json:"modes,omitempty"`
	ModeStateTopic             string            `json:"mode_state_topic,omitempty"`
	ModeCommandTopic           string            `json:"mode_command_topic,omitempty"`
	TargetHumidityStateTopic   string            `json:"target_humidity_state_topic,omitempty"`
	TargetHumidityCommandTopic string            `json:"target_humidity_command_topic,omitempty"`
	JsonAttributesTopic        string            `json:"json_attributes_topic,omitempty"`
	MinHumidity                int               `json:"min_humidity,omitempty"`
	MaxHumidity                int               `json:"max_humidity,omitempty"`
}

type HADiscoveryDevice struct {
	Id           []string `json:"identifiers"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Version      string   `json:"sw_version,omitempty"`
	Model        string   `json:"model,omitempty"`
	Name         string   `json:"name,omitempty"`
	ViaDevice    string   `json:"via_device,omitempty"`
}

func HADiscoverySensorTopic(sensor domain.GenericSensor) string {
	return fmt.Sprintf("homeassistant/%s/%s/%s/config", sensor.SensorType, sensor.Device.Id, sensor.Id)
}

func HADiscoveryHumidifierTopic(humidifier domain.GenericHumidifier) string {
	return fmt.Sprintf("homeassistant/humidifier/%s/%s/config", humidifier.Device.Id, humidifier.Id)
}

func GenericSensorToHADiscoveryMessage(client *MQTTClient, sensor domain.GenericSensor) HADiscoveryConfig {
	dev := device(sensor.Device)
	var topic string
	switch {
	case sensor.Id == domain.SENSOR_ID_BRIDGE_STATE:
		topic = client.BridgeStateTopic()
	case sensor.SensorType == domain.SENSOR_TYPE_SENSOR:
		topic = client.SensorStateTopic(sensor.Id)
	case sensor.SensorType == domain.SENSOR_TYPE_BINARY:
		topic = client.BinarySensorStateTopic(sensor.Id)
	}
	disConfig := HADiscoveryConfig{
		Device:            dev,
		StateTopic:        topic,
		StateClass:        sensor.StateClass,
		DeviceClass:       sensor.DeviceClass,
		UnitOfMeasurement: sensor.UnitOfMeasurement,
		AvTopic:           client.BridgeStateTopic(),
		EntityCategory:    sensor.EntityCategory,
		Name:              sensor.Name,
		UniqueId:          sensor.UniqueId,
		Icon:              sensor.Icon,
		EnabledByDefault:  sensor.EnabledByDefault,
		Platform:          "mqtt",
	}
	if sensor.Id == domain.SENSOR_ID_BRIDGE_STATE {
		disConfig.PayloadOn = MQTT_PAYLOAD_ONLINE
		disConfig.PayloadOff = MQTT_PAYLOAD_OFFLINE
	} else if sensor.SensorType == domain.SENSOR_TYPE_BINARY {
		disConfig.PayloadOn = MQTT_PAYLOAD_ON
		disConfig.PayloadOff = MQTT_PAYLOAD_OFF
	}
	return disConfig
}

func GenericHumidifierToHADiscoveryMessage(client *MQTTClient, humidifier domain.GenericHumidifier) HADiscoveryConfig {
	dev := device(humidifier.Device)
	disConfig := HADiscoveryConfig{
		Device:                     dev,
		StateTopic:                 client.HumidifierStateTopic(humidifier.Id),
		CommandTopic:               client.HumidifierCommandTopic(humidifier.Id),
		ModeStateTopic:             client.HumidifierModeStateTopic(humidifier.Id),
		ModeCommandTopic:           client.HumidifierModeCommandTopic(humidifier.Id),
		TargetHumidityStateTopic:   client.HumidifierTargetHumidityStateTopic(humidifier.Id),
		TargetHumidityCommandTopic: client.HumidifierTargetHumidityCommandTopic(humidifier.Id),
		JsonAttributesTopic:        client.HumidifierAttributesTopic(humidifier.Id),
		AvTopic:                    client.BridgeStateTopic(),
		Name:                       humidifier.Name,
		UniqueId:                   humidifier.UniqueId,
		Icon:                       humidifier.Icon,
		Platform:                   "mqtt",
		Modes:                      humidifier.Modes,
		MinHumidity:                humidifier.MinHumidity,
		MaxHumidity:                humidifier.MaxHumidity,
		PayloadOn:                  MQTT_PAYLOAD_ON,
		PayloadOff:                 MQTT_PAYLOAD_OFF,
	}
	return disConfig
}

func device(d domain.Device) HADiscoveryDevice {
	return HADiscoveryDevice{
		Id:           []string{d.Id},
		Manufacturer: d.Manufacturer,
		Version:      d.Version,
		Model:        d.Model,
		Name:         d.Name,
		ViaDevice:    d.ViaDevice,
	}
}
