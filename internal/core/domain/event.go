package domain

import (
	"fmt"

	"github.com/berfenger/vesync2mqtt/pkg/vesync"
)

type SensorUpdateEventMixIn struct {
	Id string
}

type SensorUpdateEvent interface {
	SensorUpdateEvent() string
	SensorId() string
}

func (e SensorUpdateEventMixIn) SensorUpdateEvent() string {
	return fmt.Sprintf("%T", e)
}

func (e SensorUpdateEventMixIn) SensorId() string {
	return e.Id
}

type FloatSensorUpdateEvent struct {
	SensorUpdateEventMixIn
	Value    float64
	Decimals uint
}

type BinarySensorUpdateEvent struct {
	SensorUpdateEventMixIn
	Value bool
}

type TextSensorUpdateEvent struct {
	SensorUpdateEventMixIn
	Value string
}

type BridgeStateUpdateEvent struct {
	SensorUpdateEventMixIn
	Value bool
}

type HumidifierPowerUpdateEvent struct {
	SensorUpdateEventMixIn
	On bool
}

type HumidifierModeUpdateEvent struct {
	SensorUpdateEventMixIn
	Mode string
}

type HumidifierTargetHumidityUpdateEvent struct {
	SensorUpdateEventMixIn
	Humidity int
}

type HumidifierAttributesUpdateEvent struct {
	SensorUpdateEventMixIn
	Attributes map[string]any
}

// DevicesDiscoveredEvent is published on the actor system event stream when
// a refresh finds devices that were not known before.
type DevicesDiscoveredEvent struct {
	Humidifiers []*vesync.Humidifier
	AirFryers   []*vesync.AirFryer
}
