package vesync

import (
	"go.uber.org/zap"
)

// DeviceService is the surface the bridge consumes. Manager is the cloud
// implementation; test fixtures provide an offline one.
type DeviceService interface {
	Login() error
	Update() error
	Humidifiers() []*Humidifier
	AirFryers() []*AirFryer
}

// Manager owns the cloud client and the categorized device fleet.
type Manager struct {
	client *Client
	logger *zap.Logger

	humidifiers []*Humidifier
	airFryers   []*AirFryer
}

func NewManager(client *Client, logger *zap.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger,
	}
}

func (m *Manager) Login() error {
	return m.client.Login()
}

// Update refreshes the device list and the per-device state. Devices already
// known keep their identity (same pointer) so downstream adapters observe
// state changes in place.
func (m *Manager) Update() error {
	records, err := m.client.GetDevices()
	if err != nil {
		return err
	}

	knownHumidifiers := map[string]*Humidifier{}
	for _, h := range m.humidifiers {
		knownHumidifiers[h.CID] = h
	}
	knownFryers := map[string]*AirFryer{}
	for _, f := range m.airFryers {
		knownFryers[f.CID] = f
	}

	var humidifiers []*Humidifier
	var airFryers []*AirFryer
	for _, rec := range records {
		switch {
		case humidifierVariantForModel(rec.DeviceType) != VariantUnknown:
			h, ok := knownHumidifiers[rec.CID]
			if !ok {
				h = newHumidifier(rec, humidifierVariantForModel(rec.DeviceType), m.client)
			} else {
				h.DeviceRecord = *rec
			}
			humidifiers = append(humidifiers, h)
		case isAirFryerModel(rec.DeviceType):
			f, ok := knownFryers[rec.CID]
			if !ok {
				f = newAirFryer(rec, m.client)
			} else {
				f.DeviceRecord = *rec
			}
			airFryers = append(airFryers, f)
		default:
			m.logger.Debug("vesync: skipping unsupported device",
				zap.String("deviceType", rec.DeviceType), zap.String("name", rec.DeviceName))
		}
	}

	for _, h := range humidifiers {
		if err := h.UpdateDetails(); err != nil {
			m.logger.Warn("vesync: humidifier detail update failed",
				zap.String("name", h.DeviceName), zap.Error(err))
		}
	}
	for _, f := range airFryers {
		if err := f.UpdateCookStatus(); err != nil {
			m.logger.Warn("vesync: air fryer status update failed",
				zap.String("name", f.DeviceName), zap.Error(err))
		}
	}

	m.humidifiers = humidifiers
	m.airFryers = airFryers
	return nil
}

func (m *Manager) Humidifiers() []*Humidifier {
	return m.humidifiers
}

func (m *Manager) AirFryers() []*AirFryer {
	return m.airFryers
}
