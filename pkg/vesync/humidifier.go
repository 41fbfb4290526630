package vesync

import (
	"fmt"
	"strings"
)

// HumidifierVariant distinguishes the two humidifier families the cloud API
// exposes through slightly different state schemas.
type HumidifierVariant int

const (
	VariantUnknown HumidifierVariant = iota
	// VariantClassic200300S covers the Classic 200S/300S and the LUH series.
	VariantClassic200300S
	// VariantSuperior6000S covers the LEH-S601S series.
	VariantSuperior6000S
)

func (v HumidifierVariant) String() string {
	switch v {
	case VariantClassic200300S:
		return "classic200300s"
	case VariantSuperior6000S:
		return "superior6000s"
	default:
		return "unknown"
	}
}

var classicModels = []string{
	"Classic300S", "Classic200S", "Dual200S",
	"LUH-A601S", "LUH-A602S", "LUH-D301S", "LUH-O451S",
}

var superiorModels = []string{
	"LEH-S601S",
}

var mistModesByVariant = map[HumidifierVariant][]string{
	VariantClassic200300S: {"auto", "manual", "sleep"},
	VariantSuperior6000S:  {"humidity", "manual", "sleep"},
}

func humidifierVariantForModel(deviceType string) HumidifierVariant {
	for _, m := range classicModels {
		if strings.HasPrefix(deviceType, m) {
			return VariantClassic200300S
		}
	}
	for _, m := range superiorModels {
		if strings.HasPrefix(deviceType, m) {
			return VariantSuperior6000S
		}
	}
	return VariantUnknown
}

// Humidifier is one VeSync humidifier. The Variant tag is resolved once from
// the device model at discovery; the two variants report target humidity,
// mode and power through different attribute paths.
type Humidifier struct {
	Device

	Variant   HumidifierVariant
	MistModes []string
}

func newHumidifier(rec *DeviceRecord, variant HumidifierVariant, client bypassCaller) *Humidifier {
	return &Humidifier{
		Device:    newDevice(rec, client),
		Variant:   variant,
		MistModes: mistModesByVariant[variant],
	}
}

// UpdateDetails refreshes the reported state mapping from the cloud.
func (h *Humidifier) UpdateDetails() error {
	var status map[string]any
	if err := h.client.CallBypassV2(h.CID, h.ConfigModule, "getHumidifierStatus", nil, &status); err != nil {
		return err
	}
	h.applyStatus(status)
	return nil
}

func (h *Humidifier) applyStatus(status map[string]any) {
	details := map[string]any{}
	config := map[string]any{}
	for k, v := range status {
		if k == "configuration" {
			if sub, ok := v.(map[string]any); ok {
				config = sub
			}
			continue
		}
		details[k] = v
	}
	h.Details = details
	h.Config = config

	if mode, ok := details["mode"].(string); ok {
		h.Mode = mode
	}
	if enabled, ok := details["enabled"].(bool); ok {
		if enabled {
			h.DeviceStatus = "on"
		} else {
			h.DeviceStatus = "off"
		}
	}
}

// SetHumidity sets the target humidity percentage on the device. Range
// validation is the caller's responsibility; the cloud rejects values it
// does not accept.
func (h *Humidifier) SetHumidity(target int) error {
	err := h.client.CallBypassV2(h.CID, h.ConfigModule, "setTargetHumidity", map[string]any{
		"target_humidity": target,
	}, nil)
	if err != nil {
		return fmt.Errorf("set humidity: %w", err)
	}
	if h.Variant == VariantSuperior6000S {
		h.Details["target_humidity"] = float64(target)
	} else {
		h.Config["auto_target_humidity"] = float64(target)
	}
	return nil
}

// SetHumidityMode sets the vendor mist mode. The mode string must be one of
// MistModes.
func (h *Humidifier) SetHumidityMode(mode string) error {
	err := h.client.CallBypassV2(h.CID, h.ConfigModule, "setHumidityMode", map[string]any{
		"mode": mode,
	}, nil)
	if err != nil {
		return fmt.Errorf("set humidity mode: %w", err)
	}
	h.Mode = mode
	h.Details["mode"] = mode
	return nil
}

func (h *Humidifier) TurnOn() error {
	return h.setSwitch(true)
}

func (h *Humidifier) TurnOff() error {
	return h.setSwitch(false)
}

func (h *Humidifier) setSwitch(enabled bool) error {
	err := h.client.CallBypassV2(h.CID, h.ConfigModule, "setSwitch", map[string]any{
		"enabled": enabled,
		"id":      0,
	}, nil)
	if err != nil {
		return fmt.Errorf("set switch: %w", err)
	}
	h.Details["enabled"] = enabled
	if enabled {
		h.DeviceStatus = "on"
	} else {
		h.DeviceStatus = "off"
	}
	return nil
}
