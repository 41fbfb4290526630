package actorutil

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/internal/mqtt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"
	"go.uber.org/zap"
)

func PipeToSelfWithRecover(ctx actor.Context, future *actor.Future, mapFn func(error) any) {
	ctx.ReenterAfter(future, func(msg any, err error) {
		if err != nil {
			ctx.Send(ctx.Self(), mapFn(err))
			return
		}
		ctx.Send(ctx.Self(), msg)
	})
}

func NewActorSystemWithZapLogger(logger *zap.Logger) *actor.ActorSystem {
	stdOutLogger := zap.NewStdLog(logger)

	var slogLevel slog.Level = slog.LevelInfo

	switch logger.Level() {
	case zap.DebugLevel:
		slogLevel = slog.LevelDebug
	case zap.InfoLevel:
		slogLevel = slog.LevelInfo
	case zap.WarnLevel:
		slogLevel = slog.LevelWarn
	case zap.ErrorLevel:
		slogLevel = slog.LevelError
	case zap.PanicLevel:
		slogLevel = slog.LevelError
	}

	return actor.NewActorSystem(actor.WithLoggerFactory(func(system *actor.ActorSystem) *slog.Logger {

		// create a new logger
		return slog.New(tint.NewHandler(stdOutLogger.Writer(), &tint.Options{
			Level:      slogLevel,
			TimeFormat: time.DateTime,
		}))
	}))
}

func ActorLogger(actorName string, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("actor", actorName))
}

// ParsedMQTTCommandToCommand maps an inbound MQTT command to the domain
// request the vesync actor understands. A nil request with a nil error means
// the command is not for us.
func ParsedMQTTCommandToCommand(cmd mqtt.ParsedMQTTCommand) (domain.ActorRequest, error) {
	switch cmd.Command {
	case mqtt.COMMAND_POWER:
		return domain.HumidifierPowerRequest{
			HumidifierCommandRequestMixIn: domain.HumidifierCommandRequestMixIn{
				Id: cmd.DeviceId,
			},
			On: cmd.Payload == mqtt.MQTT_PAYLOAD_ON,
		}, nil
	case mqtt.COMMAND_MODE:
		return domain.HumidifierSetModeRequest{
			HumidifierCommandRequestMixIn: domain.HumidifierCommandRequestMixIn{
				Id: cmd.DeviceId,
			},
			Mode: cmd.Payload,
		}, nil
	case mqtt.COMMAND_HUMIDITY:
		value, err := strconv.Atoi(cmd.Payload)
		if err != nil {
			return nil, err
		}
		return domain.HumidifierSetHumidityRequest{
			HumidifierCommandRequestMixIn: domain.HumidifierCommandRequestMixIn{
				Id: cmd.DeviceId,
			},
			Humidity: value,
		}, nil
	}
	return nil, nil
}
