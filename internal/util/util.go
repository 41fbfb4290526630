package util

import (
	"github.com/berfenger/vesync2mqtt/internal/config"

	"go.uber.org/zap"
)

func LoadTestConfig() config.Config {
	return config.Config{
		LogLevel: zap.DebugLevel,
		VeSync: config.VeSyncConfig{
			Username: "test@example.com",
			Password: "secret",
			TimeZone: "Europe/Madrid",
		},
		MQTT: config.MQTTConfig{
			Host:      "localhost",
			Port:      1883,
			BaseTopic: "vesync2mqtt",
		},
		MonitorConfig: config.MonitorConfig{
			PollIntervalMillis: 5000,
		},
		Port: 8080,
	}
}
