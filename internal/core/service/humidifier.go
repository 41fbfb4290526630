package service

import (
	"fmt"
	"slices"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"

	"go.uber.org/zap"
)

// Vendor detail keys renamed to the host's preferred attribute name.
var vesyncToHAAttributes = map[string]string{
	"humidity": "current_humidity",
}

// Attribute keys the host humidifier platform already claims. Vendor details
// colliding with these are published under a "vs_" prefix instead.
var reservedHAAttributes = map[string]struct{}{
	"mode":            {},
	"action":          {},
	"available_modes": {},
	"min_humidity":    {},
	"max_humidity":    {},
	"humidity":        {},
}

// HumidifierEntity adapts one VeSync humidifier to the host humidifier
// model. The variant-specific attribute paths are resolved once at
// construction; everything after that goes through the accessors.
type HumidifierEntity struct {
	device *vesync.Humidifier
	id     string
	logger *zap.Logger

	modes []string

	targetHumidity func() (int, bool)
	vendorMode     func() (string, bool)
	isOn           func() bool
}

func NewHumidifierEntity(device *vesync.Humidifier, id string, logger *zap.Logger) (*HumidifierEntity, error) {
	entity := &HumidifierEntity{
		device: device,
		id:     id,
		logger: logger,
	}

	switch device.Variant {
	case vesync.VariantSuperior6000S:
		entity.targetHumidity = func() (int, bool) {
			return device.DetailInt("target_humidity")
		}
		entity.vendorMode = func() (string, bool) {
			if device.Mode == "" {
				return "", false
			}
			return device.Mode, true
		}
		entity.isOn = device.Enabled
	case vesync.VariantClassic200300S:
		entity.targetHumidity = func() (int, bool) {
			return device.ConfigInt("auto_target_humidity")
		}
		entity.vendorMode = func() (string, bool) {
			mode, ok := device.Details["mode"].(string)
			return mode, ok
		}
		entity.isOn = func() bool {
			return device.DetailBool("enabled")
		}
	default:
		return nil, fmt.Errorf("unsupported humidifier model %s", device.DeviceType)
	}

	for _, vendorMode := range device.MistModes {
		haMode, ok := domain.HAMode(vendorMode)
		if !ok {
			logger.Warn("dropping unsupported vendor mist mode",
				zap.String("device", device.DeviceName), zap.String("mode", vendorMode))
			continue
		}
		if !slices.Contains(entity.modes, haMode) {
			entity.modes = append(entity.modes, haMode)
		}
	}

	return entity, nil
}

func (e *HumidifierEntity) Id() string {
	return e.id
}

func (e *HumidifierEntity) Device() *vesync.Humidifier {
	return e.device
}

func (e *HumidifierEntity) Name() string {
	return e.device.DeviceName
}

func (e *HumidifierEntity) UniqueId() string {
	return e.device.CID
}

// AvailableModes lists the host modes this device supports, in the order the
// vendor advertises them.
func (e *HumidifierEntity) AvailableModes() []string {
	return e.modes
}

func (e *HumidifierEntity) IsOn() bool {
	return e.isOn()
}

// Mode returns the host mode, or ok == false when the vendor mode is missing
// or unknown.
func (e *HumidifierEntity) Mode() (string, bool) {
	vendorMode, ok := e.vendorMode()
	if !ok {
		return "", false
	}
	haMode, ok := domain.HAMode(vendorMode)
	if !ok {
		e.logger.Warn("device reported unknown mist mode",
			zap.String("device", e.device.DeviceName), zap.String("mode", vendorMode))
		return "", false
	}
	return haMode, true
}

func (e *HumidifierEntity) TargetHumidity() (int, bool) {
	return e.targetHumidity()
}

// ExtraStateAttributes re-keys the vendor detail map for publication.
// Precedence per key: rename table first, then "vs_" prefix for reserved
// host attributes, then pass-through.
func (e *HumidifierEntity) ExtraStateAttributes() map[string]any {
	attrs := map[string]any{}
	for k, v := range e.device.Details {
		if renamed, ok := vesyncToHAAttributes[k]; ok {
			attrs[renamed] = v
		} else if _, ok := reservedHAAttributes[k]; ok {
			attrs["vs_"+k] = v
		} else {
			attrs[k] = v
		}
	}
	return attrs
}

// SetHumidity validates the target against the supported range before any
// vendor call is made.
func (e *HumidifierEntity) SetHumidity(target int) error {
	if target < domain.MinHumidity || target > domain.MaxHumidity {
		return fmt.Errorf("target humidity %d is not between %d and %d",
			target, domain.MinHumidity, domain.MaxHumidity)
	}
	return e.device.SetHumidity(target)
}

// SetMode validates the host mode against AvailableModes, then applies the
// vendor mode this device uses for it.
func (e *HumidifierEntity) SetMode(haMode string) error {
	if !slices.Contains(e.modes, haMode) {
		return fmt.Errorf("mode %s is not one of the available modes %v", haMode, e.modes)
	}
	vendorMode, ok := e.vendorModeFor(haMode)
	if !ok {
		return fmt.Errorf("no vendor mode for %s", haMode)
	}
	return e.device.SetHumidityMode(vendorMode)
}

func (e *HumidifierEntity) TurnOn() error {
	return e.device.TurnOn()
}

func (e *HumidifierEntity) TurnOff() error {
	return e.device.TurnOff()
}

// vendorModeFor picks the vendor mode to send for a host mode. The canonical
// translation wins when the device advertises it; otherwise the device's own
// alias is used (the Superior series says "humidity" where others say "auto").
func (e *HumidifierEntity) vendorModeFor(haMode string) (string, bool) {
	canonical, ok := domain.VesyncMode(haMode)
	if !ok {
		return "", false
	}
	if slices.Contains(e.device.MistModes, canonical) {
		return canonical, true
	}
	for _, m := range e.device.MistModes {
		if ha, ok := domain.HAMode(m); ok && ha == haMode {
			return m, true
		}
	}
	return "", false
}
