package server

import (
	"net/http"
	"time"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type deviceInfo struct {
	CID        string `json:"cid"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	DeviceType string `json:"device_type"`
	Connected  bool   `json:"connected"`
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	if s.httpLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.GET("/healthcheck", s.HealthCheckHandler)
	e.GET("/devices", s.DevicesHandler)

	return e
}

func (s *Server) HealthCheckHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
	}
	if response, ok := res.(domain.ActorHealthResponse); ok && response.Healthy {
		return c.String(http.StatusOK, "health_check: OK")
	}
	return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
}

func (s *Server) DevicesHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.GetDevicesRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "devices: FAIL")
	}
	response, ok := res.(domain.GetDevicesResponse)
	if !ok || response.HasResponseError() {
		return c.String(http.StatusServiceUnavailable, "devices: FAIL")
	}
	devices := make([]deviceInfo, 0, len(response.Humidifiers)+len(response.AirFryers))
	for _, h := range response.Humidifiers {
		devices = append(devices, deviceInfo{
			CID:        h.CID,
			Name:       h.DeviceName,
			Type:       "humidifier",
			DeviceType: h.DeviceType,
			Connected:  h.IsOnline(),
		})
	}
	for _, f := range response.AirFryers {
		devices = append(devices, deviceInfo{
			CID:        f.CID,
			Name:       f.DeviceName,
			Type:       "airfryer",
			DeviceType: f.DeviceType,
			Connected:  f.IsOnline(),
		})
	}
	return c.JSON(http.StatusOK, devices)
}
