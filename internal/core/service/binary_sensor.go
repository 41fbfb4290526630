package service

import (
	"fmt"

	"github.com/berfenger/vesync2mqtt/internal/core/domain"
	"github.com/berfenger/vesync2mqtt/pkg/vesync"
)

// BinarySensorEntity is one boolean diagnostic exposed by a device. The
// read function is bound at construction so evaluation is just a lookup.
type BinarySensorEntity struct {
	Kind       domain.BinarySensorKind
	DeviceName string

	uniqueId string
	isOn     func() bool
}

func (s *BinarySensorEntity) UniqueId() string {
	return s.uniqueId
}

func (s *BinarySensorEntity) Name() string {
	return fmt.Sprintf("%s %s", s.DeviceName, s.Kind.Name)
}

func (s *BinarySensorEntity) IsOn() bool {
	return s.isOn()
}

// HumidifierBinarySensors builds the sensors a humidifier exposes. A kind is
// included only when the device's state payload carries its detail key.
func HumidifierBinarySensors(device *vesync.Humidifier) []*BinarySensorEntity {
	var sensors []*BinarySensorEntity
	for _, kind := range domain.HumidifierBinarySensorKinds {
		if !device.HasDetail(kind.DetailKey) {
			continue
		}
		kind := kind
		sensors = append(sensors, &BinarySensorEntity{
			Kind:       kind,
			DeviceName: device.DeviceName,
			uniqueId:   fmt.Sprintf("%s-%s", device.CID, kind.Id),
			isOn: func() bool {
				return device.DetailBool(kind.DetailKey)
			},
		})
	}
	return sensors
}

// AirFryerBinarySensors builds the cook status sensors. All kinds are always
// exposed; a flag that cannot be resolved reads as off.
func AirFryerBinarySensors(device *vesync.AirFryer) []*BinarySensorEntity {
	var sensors []*BinarySensorEntity
	for _, kind := range domain.AirFryerBinarySensorKinds {
		kind := kind
		sensors = append(sensors, &BinarySensorEntity{
			Kind:       kind,
			DeviceName: device.DeviceName,
			uniqueId:   fmt.Sprintf("%s-%s", device.CID, kind.Id),
			isOn: func() bool {
				return device.StatusFlag(kind.Id)
			},
		})
	}
	return sensors
}
