package actor

import (
	"fmt"
	"time"

	"github.com/berfenger/vesync2mqtt/internal/config"
	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	. "github.com/berfenger/vesync2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

// PollActor periodically asks the vesync actor for a cloud refresh. State
// updates reach MQTT through the event stream, so the poll loop only has to
// keep the refresh cadence and surface errors.
type PollActor struct {
	behavior  actor.Behavior
	stash     *Stash
	scheduler *scheduler.TimerScheduler

	vesyncActor *actor.PID
	config      *config.Config

	logger *zap.Logger
}

type pollTick struct {
}

func NewPollActor(config *config.Config, vesyncActor *actor.PID, logger *zap.Logger) *PollActor {
	act := &PollActor{
		config:      config,
		vesyncActor: vesyncActor,
		behavior:    actor.NewBehavior(),
		stash:       &Stash{},
		logger:      ActorLogger(domain.ACTOR_ID_POLL, logger),
	}
	act.behavior.Become(act.DefaultReceive)
	return act
}

func (state *PollActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *PollActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("poll@default started")
		if state.config.MonitorConfig.PollIntervalMillis > 0 {
			state.scheduler = scheduler.NewTimerScheduler(ctx)
			state.scheduler.RequestOnce(time.Duration(state.config.MonitorConfig.PollIntervalMillis)*time.Millisecond, ctx.Self(), pollTick{})
		}
	case domain.ActorHealthRequest:
		state.logger.Debug("poll@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_POLL,
			Healthy: true,
			State:   "idle",
		})
	case pollTick:
		state.logger.Debug("poll@default tick")
		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.vesyncActor, domain.RefreshDevicesRequest{}, 30*time.Second), func(err error) any {
			return domain.GetDevicesResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})
		// schedule next tick
		state.scheduler.RequestOnce(time.Duration(state.config.MonitorConfig.PollIntervalMillis)*time.Millisecond, ctx.Self(), pollTick{})
		state.behavior.BecomeStacked(state.WaitingRefreshReceive)
	case *actor.Stopping:
	default:
		state.logger.Debug("poll@default: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollActor) WaitingRefreshReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetDevicesResponse:
		if msg.HasResponseError() {
			state.logger.Error("poll@waiting refresh error", zap.Error(msg.GetResponseError()))
		} else {
			state.logger.Debug("poll@waiting refresh done",
				zap.Int("humidifiers", len(msg.Humidifiers)), zap.Int("airfryers", len(msg.AirFryers)))
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("poll@waiting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}
