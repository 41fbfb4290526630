package domain

type Device struct {
	Id           string
	Name         string
	Version      string
	Model        string
	Manufacturer string
	ViaDevice    string
}

type GenericSensor struct {
	Device            Device
	Id                string
	SensorType        string
	Name              string
	UniqueId          string
	UnitOfMeasurement string
	StateClass        string // measurement, duration, total_increasing
	DeviceClass       string // humidity, temperature, connectivity
	EntityCategory    string // diagnostic, config, nil
	EnabledByDefault  *bool
	Icon              string
}

// GenericHumidifier is the host-facing humidifier control surface: state and
// mode plus a command surface for power, mode and target humidity.
type GenericHumidifier struct {
	Device      Device
	Id          string
	Name        string
	UniqueId    string
	Modes       []string
	MinHumidity int
	MaxHumidity int
	Icon        string
}
