package actor

import (
	"fmt"
	"time"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/internal/core/events"
	"github.com/berfenger/vesync2mqtt/internal/core/service"
	"github.com/berfenger/vesync2mqtt/internal/util/actorutil"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"go.uber.org/zap"
)

// VeSyncActor owns the cloud session and the device fleet. Humidifier
// entities are built once per device at discovery and reused afterwards;
// the manager keeps device pointers stable across refreshes.
type VeSyncActor struct {
	behavior actor.Behavior
	stash    *actorutil.Stash

	devices     vesync.DeviceService
	eventStream *eventstream.EventStream
	entities    map[string]*service.HumidifierEntity
	knownCIDs   map[string]bool

	logger *zap.Logger
}

type refreshDone struct {
	replyTo *actor.PID
	err     error
}

type commandDone struct {
	entityId string
	replyTo  *actor.PID
	err      error
}

func NewVeSyncActor(devices vesync.DeviceService, eventStream *eventstream.EventStream, logger *zap.Logger) *VeSyncActor {
	act := &VeSyncActor{
		devices:     devices,
		eventStream: eventStream,
		behavior:    actor.NewBehavior(),
		stash:       &actorutil.Stash{},
		entities:    map[string]*service.HumidifierEntity{},
		knownCIDs:   map[string]bool{},
		logger:      actorutil.ActorLogger(domain.ACTOR_ID_VESYNC, logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *VeSyncActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *VeSyncActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("vesync@starting started")
		// login and load the fleet once. on failure the supervisor restarts
		// this actor with backoff.
		if err := state.devices.Login(); err != nil {
			panic(err)
		}
		if err := state.devices.Update(); err != nil {
			panic(err)
		}
		state.trackDevices()
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	case *actor.Restarting:
	default:
		state.logger.Debug("vesync@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *VeSyncActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("vesync@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_VESYNC,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetDevicesRequest:
		state.logger.Debug("vesync@default: GetDevicesRequest")
		actorutil.ForRequest(msg).Respond(ctx, domain.GetDevicesResponse{
			Humidifiers: state.devices.Humidifiers(),
			AirFryers:   state.devices.AirFryers(),
		})
	case domain.RefreshDevicesRequest:
		state.logger.Debug("vesync@default: RefreshDevicesRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		actorutil.NewBackgroundTaskNoError(ctx, func() *refreshDone {
			return &refreshDone{
				replyTo: sender,
				err:     state.devices.Update(),
			}
		}).WithTimeout(30 * time.Second).Recover(func(err error) refreshDone {
			return refreshDone{
				replyTo: sender,
				err:     err,
			}
		}).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.HumidifierCommandRequest:
		state.logger.Debug("vesync@default: HumidifierCommandRequest",
			zap.String("command", msg.HumidifierCommand()), zap.String("entity", msg.EntityId()))
		state.handleCommand(ctx, msg)
	case *actor.Stopping:
	default:
		state.logger.Debug("vesync@default default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *VeSyncActor) WaitingCloud(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case refreshDone:
		if msg.err != nil {
			state.logger.Error("vesync@waiting refresh error", zap.Error(msg.err))
		} else {
			state.trackDevices()
			state.publishDeviceUpdates()
		}
		if msg.replyTo != nil {
			ctx.Send(msg.replyTo, domain.GetDevicesResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: msg.err,
				},
				Humidifiers: state.devices.Humidifiers(),
				AirFryers:   state.devices.AirFryers(),
			})
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	case commandDone:
		if msg.err != nil {
			state.logger.Error("vesync@waiting command error",
				zap.String("entity", msg.entityId), zap.Error(msg.err))
		} else if entity, ok := state.entities[msg.entityId]; ok {
			// push the locally applied state right away instead of waiting
			// for the next poll
			for _, ev := range events.HumidifierToUpdateEvents(msg.entityId, entity) {
				state.eventStream.Publish(ev)
			}
		}
		if msg.replyTo != nil {
			ctx.Send(msg.replyTo, domain.HumidifierCommandResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: msg.err,
				},
				Id: msg.entityId,
			})
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	case *actor.Stopping:
	default:
		state.logger.Debug("vesync@waiting stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *VeSyncActor) handleCommand(ctx actor.Context, msg domain.HumidifierCommandRequest) {
	sender := actorutil.ForRequest(msg).ReplyTo(ctx)
	entity, ok := state.entities[msg.EntityId()]
	if !ok {
		ctx.Send(sender, domain.HumidifierCommandResponse{
			ActorResponseMixIn: domain.ActorResponseMixIn{
				ResponseError: fmt.Errorf("unknown humidifier %s", msg.EntityId()),
			},
			Id: msg.EntityId(),
		})
		return
	}
	run := func() error {
		switch cmd := msg.(type) {
		case domain.HumidifierPowerRequest:
			if cmd.On {
				return entity.TurnOn()
			}
			return entity.TurnOff()
		case domain.HumidifierSetModeRequest:
			return entity.SetMode(cmd.Mode)
		case domain.HumidifierSetHumidityRequest:
			return entity.SetHumidity(cmd.Humidity)
		default:
			return fmt.Errorf("unsupported command %T", msg)
		}
	}
	entityId := msg.EntityId()
	actorutil.NewBackgroundTaskNoError(ctx, func() *commandDone {
		return &commandDone{
			entityId: entityId,
			replyTo:  sender,
			err:      run(),
		}
	}).WithTimeout(15 * time.Second).Recover(func(err error) commandDone {
		return commandDone{
			entityId: entityId,
			replyTo:  sender,
			err:      err,
		}
	}).PipeTo(ctx.Self())
	state.behavior.BecomeStacked(state.WaitingCloud)
}

// trackDevices builds entities for new devices and announces them on the
// event stream.
func (state *VeSyncActor) trackDevices() {
	discovered := domain.DevicesDiscoveredEvent{}
	for _, h := range state.devices.Humidifiers() {
		if state.knownCIDs[h.CID] {
			continue
		}
		entityId := domain.HumidifierDevice(h).Id
		entity, err := service.NewHumidifierEntity(h, entityId, state.logger)
		if err != nil {
			state.logger.Warn("vesync: skipping device", zap.String("device", h.DeviceName), zap.Error(err))
			continue
		}
		state.knownCIDs[h.CID] = true
		state.entities[entityId] = entity
		discovered.Humidifiers = append(discovered.Humidifiers, h)
	}
	for _, f := range state.devices.AirFryers() {
		if state.knownCIDs[f.CID] {
			continue
		}
		state.knownCIDs[f.CID] = true
		discovered.AirFryers = append(discovered.AirFryers, f)
	}
	if len(discovered.Humidifiers) > 0 || len(discovered.AirFryers) > 0 {
		state.eventStream.Publish(discovered)
	}
}

func (state *VeSyncActor) publishDeviceUpdates() {
	for entityId, entity := range state.entities {
		for _, ev := range events.HumidifierToUpdateEvents(entityId, entity) {
			state.eventStream.Publish(ev)
		}
	}
	for _, f := range state.devices.AirFryers() {
		deviceId := domain.AirFryerDevice(f).Id
		for _, ev := range events.AirFryerToUpdateEvents(deviceId, f) {
			state.eventStream.Publish(ev)
		}
	}
}
