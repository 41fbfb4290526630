package domain

import "fmt"

// HumidifierCommandRequest

type HumidifierCommandRequest interface {
	ActorRequest
	HumidifierCommand() string
	EntityId() string
}

type HumidifierCommandRequestMixIn struct {
	ActorRequestMixIn
	Id string
}

func (r HumidifierCommandRequestMixIn) HumidifierCommand() string {
	return fmt.Sprintf("%T", r)
}

func (r HumidifierCommandRequestMixIn) EntityId() string {
	return r.Id
}

// Humidifier commands. Id is the published entity id the command topic
// carries, not the vendor device uuid.

type HumidifierPowerRequest struct {
	HumidifierCommandRequestMixIn
	On bool
}

type HumidifierSetModeRequest struct {
	HumidifierCommandRequestMixIn
	Mode string
}

type HumidifierSetHumidityRequest struct {
	HumidifierCommandRequestMixIn
	Humidity int
}

type HumidifierCommandResponse struct {
	ActorResponseMixIn
	Id string
}

// ensure interface compliance
var _ HumidifierCommandRequest = (*HumidifierPowerRequest)(nil)
