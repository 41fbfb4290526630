package domain

import "github.com/berfenger/vesync2mqtt/pkg/vesync"

const (
	ACTOR_ID_MASTER       = "master"
	ACTOR_ID_VESYNC       = "vesync"
	ACTOR_ID_POLL         = "poll"
	ACTOR_ID_MQTT         = "mqtt"
	ACTOR_ID_HA_DISCOVERY = "hadiscovery"
)

type GetDevicesRequest struct {
	ActorRequestMixIn
}

type GetDevicesResponse struct {
	ActorResponseMixIn
	Humidifiers []*vesync.Humidifier
	AirFryers   []*vesync.AirFryer
}

// RefreshDevicesRequest asks for a cloud refresh of the whole fleet before
// returning it. GetDevicesRequest returns the last known state.
type RefreshDevicesRequest struct {
	ActorRequestMixIn
}

type PublishMessageRequest struct {
	ActorRequestMixIn
	Topic   string
	Payload string
	Retain  bool
}

type PublishMessageResponse struct {
	ActorResponseMixIn
}

type PublishSensorUpdateRequest struct {
	ActorRequestMixIn
	Retain bool
	Event  SensorUpdateEvent
}

type PublishSensorUpdateResponse struct {
	ActorResponseMixIn
}

type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	Sensors     []GenericSensor
	Humidifiers []GenericHumidifier
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}
