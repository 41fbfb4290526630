package actor

import (
	"errors"
	"fmt"
	"time"

	"github.com/berfenger/vesync2mqtt/internal/config"
	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/internal/util/actorutil"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"go.uber.org/zap"
)

// HADiscoveryActor publishes Home Assistant discovery messages once the
// vesync and mqtt actors are healthy, then keeps listening for devices that
// appear on later refreshes.
type HADiscoveryActor struct {
	config             *config.Config
	behavior           actor.Behavior
	stash              *actorutil.Stash
	vesyncActor        *actor.PID
	mqttActor          *actor.PID
	eventStream        *eventstream.EventStream
	eventStreamSub     *eventstream.Subscription
	vesyncActorHealthy bool
	mqttActorHealthy   bool
	healthyRecv        int

	logger *zap.Logger
}

func NewHADiscoveryActor(config *config.Config, vesyncActor *actor.PID, mqttActor *actor.PID, eventStream *eventstream.EventStream, logger *zap.Logger) *HADiscoveryActor {
	act := &HADiscoveryActor{
		config:      config,
		vesyncActor: vesyncActor,
		mqttActor:   mqttActor,
		eventStream: eventStream,
		behavior:    actor.NewBehavior(),
		stash:       &actorutil.Stash{},
		logger:      actorutil.ActorLogger(domain.ACTOR_ID_HA_DISCOVERY, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *HADiscoveryActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *HADiscoveryActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("hadiscovery@starting started")

		state.eventStreamSub = state.eventStream.Subscribe(func(value any) {
			if event, ok := value.(domain.DevicesDiscoveredEvent); ok {
				ctx.Send(ctx.Self(), event)
			}
		})

		// Check VeSync and MQTT actor healthy
		state.healthyRecv = 0
		state.vesyncActorHealthy = false
		state.mqttActorHealthy = false
		// VeSync Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.vesyncActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_VESYNC,
				Healthy: false,
			}
		})
		// MQTT Actor Request
		actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.mqttActor, domain.ActorHealthRequest{}, 2*time.Second), func(err error) any {
			return domain.ActorHealthResponse{
				Id:      domain.ACTOR_ID_MQTT,
				Healthy: false,
			}
		})
		state.behavior.Become(state.WaitingHealthyReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("hadiscovery@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingHealthyReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthResponse:
		state.logger.Debug("hadiscovery@healthcheck ActorHealthResponse", zap.String("sender", msg.Id), zap.Bool("healthy", msg.Healthy))
		state.healthyRecv++
		if msg.Healthy {
			switch msg.Id {
			case domain.ACTOR_ID_VESYNC:
				state.vesyncActorHealthy = true
			case domain.ACTOR_ID_MQTT:
				state.mqttActorHealthy = true
			}
		}
		if state.healthyRecv == 2 {

			if state.vesyncActorHealthy && state.mqttActorHealthy {
				// Ask VeSync GetDevicesRequest
				actorutil.PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.vesyncActor, domain.GetDevicesRequest{}, 5*time.Second), func(err error) any {
					return domain.GetDevicesResponse{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					}
				})
				state.behavior.Become(state.WaitingDevicesReceive)
				state.stash.UnstashAll(ctx)
			} else {
				panic(errors.New("MQTT Actor or VeSync Actor are not healthy"))
			}
		}
	default:
		state.logger.Debug("hadiscovery@healthcheck: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HADiscoveryActor) WaitingDevicesReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetDevicesResponse:
		if msg.HasResponseError() {
			panic(msg.GetResponseError())
		}
		state.logger.Debug("hadiscovery@devices: GetDevicesResponse",
			zap.Int("humidifiers", len(msg.Humidifiers)), zap.Int("airfryers", len(msg.AirFryers)))

		bridgeDevice := domain.BridgeDevice(state.config.MQTT.BaseTopic)
		sensors := domain.BridgeSensors(bridgeDevice)

		deviceSensors, humidifiers := state.deviceDiscovery(bridgeDevice, msg.Humidifiers, msg.AirFryers)
		sensors = append(sensors, deviceSensors...)

		ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
			Sensors:     sensors,
			Humidifiers: humidifiers,
		})
		state.behavior.Become(state.Done)

	default:
		state.logger.Debug("hadiscovery@devices: default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *HADiscoveryActor) Done(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.DevicesDiscoveredEvent:
		state.logger.Info("hadiscovery@done new devices",
			zap.Int("humidifiers", len(msg.Humidifiers)), zap.Int("airfryers", len(msg.AirFryers)))

		bridgeDevice := domain.BridgeDevice(state.config.MQTT.BaseTopic)
		sensors, humidifiers := state.deviceDiscovery(bridgeDevice, msg.Humidifiers, msg.AirFryers)
		if len(sensors) == 0 && len(humidifiers) == 0 {
			return
		}
		ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
			Sensors:     sensors,
			Humidifiers: humidifiers,
		})
	case *actor.Stopping:
		if state.eventStreamSub != nil {
			state.eventStream.Unsubscribe(state.eventStreamSub)
			state.eventStreamSub = nil
		}
	default:
	}
}

// deviceDiscovery builds the discovery descriptors for a set of devices.
// The first descriptor of each device carries the full device block, the
// rest reference it by id.
func (state *HADiscoveryActor) deviceDiscovery(bridgeDevice domain.Device, humidifiers []*vesync.Humidifier, airFryers []*vesync.AirFryer) ([]domain.GenericSensor, []domain.GenericHumidifier) {

	var sensors []domain.GenericSensor
	var components []domain.GenericHumidifier

	for _, h := range humidifiers {
		device := domain.HumidifierDevice(h)
		device.ViaDevice = bridgeDevice.Id
		components = append(components, domain.HumidifierComponent(device, h))
		humSensors := domain.HumidifierSensors(domain.IdDevice(device), h)
		sensors = append(sensors, humSensors...)
	}

	for _, f := range airFryers {
		device := domain.AirFryerDevice(f)
		device.ViaDevice = bridgeDevice.Id
		fryerSensors := domain.AirFryerSensors(device, f)
		for i := range fryerSensors {
			if i > 0 {
				fryerSensors[i].Device = domain.IdDevice(device)
			}
			sensors = append(sensors, fryerSensors[i])
		}
	}

	return sensors, components
}
