package actor

import (
	"testing"
	"time"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/internal/util/actorutil"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetDevicesVeSyncActor(t *testing.T) {

	assert := assert.New(t)

	devices := vesync.NewTestDeviceService()
	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	eventStream := &eventstream.EventStream{}

	props := actor.PropsFromProducer(func() actor.Actor { return NewVeSyncActor(devices, eventStream, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	msg := domain.GetDevicesRequest{}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.GetDevicesResponse)

	assert.Len(resp.Humidifiers, 2, "humidifier count")
	assert.Len(resp.AirFryers, 1, "air fryer count")
	assert.Equal(resp.Humidifiers[0].DeviceName, "Bedroom humidifier", "humidifier name")
	assert.Equal(resp.AirFryers[0].DeviceType, "CS158-AF", "air fryer model")

	context.Stop(pid)

	as.Shutdown()
}

func TestDiscoveredEventOnStartVeSyncActor(t *testing.T) {

	assert := assert.New(t)

	devices := vesync.NewTestDeviceService()
	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	eventStream := &eventstream.EventStream{}
	discovered := make(chan domain.DevicesDiscoveredEvent, 1)
	sub := eventStream.Subscribe(func(value any) {
		if event, ok := value.(domain.DevicesDiscoveredEvent); ok {
			discovered <- event
		}
	})
	defer eventStream.Unsubscribe(sub)

	props := actor.PropsFromProducer(func() actor.Actor { return NewVeSyncActor(devices, eventStream, logger) })
	pid := context.Spawn(props)

	select {
	case event := <-discovered:
		assert.Len(event.Humidifiers, 2, "discovered humidifiers")
		assert.Len(event.AirFryers, 1, "discovered air fryers")
	case <-time.After(5 * time.Second):
		t.Error("no DevicesDiscoveredEvent on start")
	}

	context.Stop(pid)

	as.Shutdown()
}

func TestHumidifierCommandVeSyncActor(t *testing.T) {

	assert := assert.New(t)

	devices := vesync.NewTestDeviceService()
	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)
	context := as.Root

	eventStream := &eventstream.EventStream{}

	props := actor.PropsFromProducer(func() actor.Actor { return NewVeSyncActor(devices, eventStream, logger) })
	pid := context.Spawn(props)

	time.Sleep(1 * time.Second)

	classic := devices.Humidifiers()[0]
	entityId := domain.HumidifierDevice(classic).Id

	msg := domain.HumidifierSetHumidityRequest{
		HumidifierCommandRequestMixIn: domain.HumidifierCommandRequestMixIn{Id: entityId},
		Humidity:                      60,
	}
	result, err := context.RequestFuture(pid, msg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp := result.(domain.HumidifierCommandResponse)

	assert.False(resp.HasResponseError(), "command error")
	assert.Equal(resp.Id, entityId, "response entity id")
	assert.Contains(devices.Client.Calls, "setTargetHumidity", "cloud call")

	// unknown entity ids are rejected without a cloud call
	calls := len(devices.Client.Calls)
	badMsg := domain.HumidifierPowerRequest{
		HumidifierCommandRequestMixIn: domain.HumidifierCommandRequestMixIn{Id: "vs_humidifier_deadbeef"},
		On:                            true,
	}
	result, err = context.RequestFuture(pid, badMsg, 15*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	badResp := result.(domain.HumidifierCommandResponse)
	assert.True(badResp.HasResponseError(), "unknown entity error")
	assert.Len(devices.Client.Calls, calls, "no cloud call for unknown entity")

	context.Stop(pid)

	as.Shutdown()
}
