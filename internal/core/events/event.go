package events

import (
	. "github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/internal/core/service"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"
)

func HumidifierToUpdateEvents(deviceId string, entity *service.HumidifierEntity) []any {
	var events []any

	// Power state
	events = append(events, HumidifierPowerUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: deviceId,
		},
		On: entity.IsOn(),
	})
	// Mode, skipped when the vendor mode is unknown
	if mode, ok := entity.Mode(); ok {
		events = append(events, HumidifierModeUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: deviceId,
			},
			Mode: mode,
		})
	}
	// Target humidity
	if target, ok := entity.TargetHumidity(); ok {
		events = append(events, HumidifierTargetHumidityUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: deviceId,
			},
			Humidity: target,
		})
	}
	// Extra state attributes
	events = append(events, HumidifierAttributesUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: deviceId,
		},
		Attributes: entity.ExtraStateAttributes(),
	})

	device := entity.Device()

	// Current humidity
	if humidity, ok := device.DetailInt("humidity"); ok {
		events = append(events, FloatSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SensorId(deviceId, SENSOR_ID_HUMIDITY),
			},
			Value:    float64(humidity),
			Decimals: 0,
		})
	}
	// Filter life
	if filterLife, ok := device.DetailInt("filter_life"); ok {
		events = append(events, FloatSensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SensorId(deviceId, SENSOR_ID_FILTER_LIFE),
			},
			Value:    float64(filterLife),
			Decimals: 0,
		})
	}
	// Diagnostic binary sensors
	for _, sensor := range service.HumidifierBinarySensors(device) {
		events = append(events, BinarySensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SensorId(deviceId, sensor.Kind.Id),
			},
			Value: sensor.IsOn(),
		})
	}

	return events
}

func AirFryerToUpdateEvents(deviceId string, fryer *vesync.AirFryer) []any {
	var events []any

	// Cook status
	events = append(events, TextSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SensorId(deviceId, SENSOR_ID_AIRFRYER_COOK_STATUS),
		},
		Value: fryer.CookStatus,
	})
	// Current temperature
	events = append(events, FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SensorId(deviceId, SENSOR_ID_AIRFRYER_CURRENT_TEMP),
		},
		Value:    float64(fryer.CurrentTempC),
		Decimals: 0,
	})
	// Target temperature
	events = append(events, FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SensorId(deviceId, SENSOR_ID_AIRFRYER_TARGET_TEMP),
		},
		Value:    float64(fryer.TargetTempC),
		Decimals: 0,
	})
	// Cook time remaining
	events = append(events, FloatSensorUpdateEvent{
		SensorUpdateEventMixIn: SensorUpdateEventMixIn{
			Id: SensorId(deviceId, SENSOR_ID_AIRFRYER_COOK_TIME_LEFT),
		},
		Value:    float64(fryer.CookLastTime),
		Decimals: 0,
	})
	// Cook status flags
	for _, sensor := range service.AirFryerBinarySensors(fryer) {
		events = append(events, BinarySensorUpdateEvent{
			SensorUpdateEventMixIn: SensorUpdateEventMixIn{
				Id: SensorId(deviceId, sensor.Kind.Id),
			},
			Value: sensor.IsOn(),
		})
	}

	return events
}
