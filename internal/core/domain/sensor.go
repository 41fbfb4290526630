package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/carlmjohnson/versioninfo"
)

const (
	SENSOR_ID_BRIDGE_STATE              = "bridge"
	SENSOR_ID_HUMIDIFIER                = "humidifier"
	SENSOR_ID_HUMIDITY                  = "humidity"
	SENSOR_ID_FILTER_LIFE               = "filter_life"
	SENSOR_ID_AIRFRYER_CURRENT_TEMP     = "current_temperature"
	SENSOR_ID_AIRFRYER_TARGET_TEMP      = "target_temperature"
	SENSOR_ID_AIRFRYER_COOK_TIME_LEFT   = "cook_time_remaining"
	SENSOR_ID_AIRFRYER_COOK_STATUS      = "cook_status"
	STATE_CLASS_DURATION                = "duration"
	STATE_CLASS_MEASUREMENT             = "measurement"
	DEVICE_CLASS_HUMIDITY               = "humidity"
	DEVICE_CLASS_TEMPERATURE            = "temperature"
	DEVICE_CLASS_DURATION               = "duration"
	DEVICE_CLASS_CONNECTIVITY           = "connectivity"
	ENTITY_CLASS_DIAGNOSTIC             = "diagnostic"
	ENTITY_CLASS_CONFIG                 = "config"
	SENSOR_TYPE_SENSOR                  = "sensor"
	SENSOR_TYPE_BINARY                  = "binary_sensor"
)

func BridgeDevice(baseTopic string) Device {
	return Device{
		Id:           fmt.Sprintf("vesync_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: "ACasal",
		Model:        "VeSync2MQTT",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("VeSync2MQTT %s", md5HashShort(baseTopic)),
	}
}

func HumidifierDevice(h *vesync.Humidifier) Device {
	return Device{
		Id:           fmt.Sprintf("vs_humidifier_%s", md5HashShort(h.CID)),
		Manufacturer: "VeSync",
		Model:        h.DeviceType,
		Name:         h.DeviceName,
	}
}

func AirFryerDevice(f *vesync.AirFryer) Device {
	return Device{
		Id:           fmt.Sprintf("vs_airfryer_%s", md5HashShort(f.CID)),
		Manufacturer: "VeSync",
		Model:        f.DeviceType,
		Name:         f.DeviceName,
	}
}

func IdDevice(device Device) Device {
	return Device{
		Id:   device.Id,
		Name: device.Name,
	}
}

func BridgeSensors(bridgeDevice Device) []GenericSensor {

	var sensors []GenericSensor

	// Bridge connection state
	sensors = append(sensors, GenericSensor{
		Device:         bridgeDevice,
		Id:             SENSOR_ID_BRIDGE_STATE,
		SensorType:     SENSOR_TYPE_BINARY,
		Name:           "Connection state",
		DeviceClass:    DEVICE_CLASS_CONNECTIVITY,
		EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
		UniqueId:       uniqueId(bridgeDevice.Id, SENSOR_ID_BRIDGE_STATE),
	})

	return sensors
}

// HumidifierComponent builds the host humidifier descriptor for a device.
// The advertised modes are the host translations of the vendor mist modes.
func HumidifierComponent(device Device, h *vesync.Humidifier) GenericHumidifier {
	var modes []string
	for _, vendorMode := range h.MistModes {
		haMode, ok := HAMode(vendorMode)
		if !ok {
			continue
		}
		if !containsString(modes, haMode) {
			modes = append(modes, haMode)
		}
	}
	return GenericHumidifier{
		Device:      device,
		Id:          device.Id,
		Name:        h.DeviceName,
		UniqueId:    uniqueId(device.Id, SENSOR_ID_HUMIDIFIER),
		Modes:       modes,
		MinHumidity: MinHumidity,
		MaxHumidity: MaxHumidity,
		Icon:        "mdi:air-humidifier",
	}
}

// HumidifierSensors builds the diagnostic sensors a humidifier exposes.
// Numeric sensors and binary kinds are included only when the device's state
// payload carries the backing detail key.
func HumidifierSensors(device Device, h *vesync.Humidifier) []GenericSensor {

	var sensors []GenericSensor

	if h.HasDetail("humidity") {
		sensors = append(sensors, GenericSensor{
			Device:            device,
			Id:                SensorId(device.Id, SENSOR_ID_HUMIDITY),
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Current humidity",
			StateClass:        STATE_CLASS_MEASUREMENT,
			DeviceClass:       DEVICE_CLASS_HUMIDITY,
			UnitOfMeasurement: "%",
			UniqueId:          uniqueId(device.Id, SENSOR_ID_HUMIDITY),
		})
	}

	if h.HasDetail("filter_life") {
		sensors = append(sensors, GenericSensor{
			Device:            device,
			Id:                SensorId(device.Id, SENSOR_ID_FILTER_LIFE),
			SensorType:        SENSOR_TYPE_SENSOR,
			Name:              "Filter life",
			StateClass:        STATE_CLASS_MEASUREMENT,
			UnitOfMeasurement: "%",
			EntityCategory:    ENTITY_CLASS_DIAGNOSTIC,
			Icon:              "mdi:air-filter",
			UniqueId:          uniqueId(device.Id, SENSOR_ID_FILTER_LIFE),
		})
	}

	for _, kind := range HumidifierBinarySensorKinds {
		if !h.HasDetail(kind.DetailKey) {
			continue
		}
		sensors = append(sensors, GenericSensor{
			Device:         device,
			Id:             SensorId(device.Id, kind.Id),
			SensorType:     SENSOR_TYPE_BINARY,
			Name:           kind.Name,
			EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
			Icon:           kind.Icon,
			UniqueId:       uniqueId(device.Id, kind.Id),
		})
	}

	return sensors
}

func AirFryerSensors(device Device, f *vesync.AirFryer) []GenericSensor {

	var sensors []GenericSensor

	sensors = append(sensors, GenericSensor{
		Device:     device,
		Id:         SensorId(device.Id, SENSOR_ID_AIRFRYER_COOK_STATUS),
		SensorType: SENSOR_TYPE_SENSOR,
		Name:       "Cook status",
		Icon:       "mdi:pot-steam",
		UniqueId:   uniqueId(device.Id, SENSOR_ID_AIRFRYER_COOK_STATUS),
	})

	sensors = append(sensors, GenericSensor{
		Device:            device,
		Id:                SensorId(device.Id, SENSOR_ID_AIRFRYER_CURRENT_TEMP),
		SensorType:        SENSOR_TYPE_SENSOR,
		Name:              "Current temperature",
		StateClass:        STATE_CLASS_MEASUREMENT,
		DeviceClass:       DEVICE_CLASS_TEMPERATURE,
		UnitOfMeasurement: "°C",
		UniqueId:          uniqueId(device.Id, SENSOR_ID_AIRFRYER_CURRENT_TEMP),
	})

	sensors = append(sensors, GenericSensor{
		Device:            device,
		Id:                SensorId(device.Id, SENSOR_ID_AIRFRYER_TARGET_TEMP),
		SensorType:        SENSOR_TYPE_SENSOR,
		Name:              "Target temperature",
		StateClass:        STATE_CLASS_MEASUREMENT,
		DeviceClass:       DEVICE_CLASS_TEMPERATURE,
		UnitOfMeasurement: "°C",
		UniqueId:          uniqueId(device.Id, SENSOR_ID_AIRFRYER_TARGET_TEMP),
	})

	sensors = append(sensors, GenericSensor{
		Device:            device,
		Id:                SensorId(device.Id, SENSOR_ID_AIRFRYER_COOK_TIME_LEFT),
		SensorType:        SENSOR_TYPE_SENSOR,
		Name:              "Cook time remaining",
		StateClass:        STATE_CLASS_MEASUREMENT,
		DeviceClass:       DEVICE_CLASS_DURATION,
		UnitOfMeasurement: "s",
		Icon:              "mdi:timer-outline",
		UniqueId:          uniqueId(device.Id, SENSOR_ID_AIRFRYER_COOK_TIME_LEFT),
	})

	for _, kind := range AirFryerBinarySensorKinds {
		sensors = append(sensors, GenericSensor{
			Device:         device,
			Id:             SensorId(device.Id, kind.Id),
			SensorType:     SENSOR_TYPE_BINARY,
			Name:           kind.Name,
			EntityCategory: ENTITY_CLASS_DIAGNOSTIC,
			Icon:           kind.Icon,
			UniqueId:       uniqueId(device.Id, kind.Id),
		})
	}

	return sensors
}

// SensorId builds the published id of a per-device sensor. Sensor ids name
// MQTT state topics, so they must be unique across devices.
func SensorId(deviceId, id string) string {
	return fmt.Sprintf("%s_%s", deviceId, id)
}

func uniqueId(baseId, id string) string {
	return fmt.Sprintf("uid_%s_%s", baseId, id)
}

func md5Hash(text string) string {
	hash := md5.Sum([]byte(text))
	return hex.EncodeToString(hash[:])
}

func md5HashShort(text string) string {
	hash := md5Hash(text)
	return hash[0:8]
}

func containsString(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}
