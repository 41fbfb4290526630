package actor

import (
	"fmt"
	"testing"
	"time"

	adactor "github.com/berfenger/vesync2mqtt/internal/adapter/actor"
	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/internal/util"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMasterActor(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	cfg := util.LoadTestConfig()
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger := zap.Must(logCfg.Build())

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMasterOfPuppetsActor(cfg, func(es *eventstream.EventStream) *adactor.VeSyncActor {
			return adactor.NewVeSyncActor(vesync.NewTestDeviceService(), es, logger)
		}, func(es *eventstream.EventStream) *adactor.MQTTActor {
			return adactor.NewTestMQTTActor(&cfg, es, logger)
		}, logger)
	})
	pid, err := context.SpawnNamed(props, "master")
	if err != nil {
		t.Error(err)
		return
	}

	time.Sleep(2 * time.Second)

	res, err := context.RequestFuture(pid, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		t.Error(err)
		//return
	}
	healthResp, ok := res.(domain.ActorHealthResponse)
	assert.True(t, ok)
	fmt.Printf("Health response: %+v\n", healthResp)
	assert.NotNil(t, healthResp)

	assert.True(t, healthResp.Healthy, "healthy is true")

	context.Stop(pid)

	as.Shutdown()
}

func TestMasterActorListsDevices(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	cfg := util.LoadTestConfig()
	logger := zap.Must(zap.NewDevelopment())

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMasterOfPuppetsActor(cfg, func(es *eventstream.EventStream) *adactor.VeSyncActor {
			return adactor.NewVeSyncActor(vesync.NewTestDeviceService(), es, logger)
		}, func(es *eventstream.EventStream) *adactor.MQTTActor {
			return adactor.NewTestMQTTActor(&cfg, es, logger)
		}, logger)
	})
	pid, err := context.SpawnNamed(props, "master")
	if err != nil {
		t.Error(err)
		return
	}

	time.Sleep(2 * time.Second)

	res, err := context.RequestFuture(pid, domain.GetDevicesRequest{}, 10*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	devicesResp, ok := res.(domain.GetDevicesResponse)
	assert.True(t, ok)
	assert.Len(t, devicesResp.Humidifiers, 2, "humidifier count")
	assert.Len(t, devicesResp.AirFryers, 1, "air fryer count")

	context.Stop(pid)

	as.Shutdown()
}
