package vesync

// DeviceRecord is one entry of the cloud device list response.
type DeviceRecord struct {
	CID              string `json:"cid"`
	UUID             string `json:"uuid"`
	DeviceName       string `json:"deviceName"`
	DeviceType       string `json:"deviceType"`
	DeviceStatus     string `json:"deviceStatus"`
	ConnectionStatus string `json:"connectionStatus"`
	ConfigModule     string `json:"configModule"`
	Mode             string `json:"mode"`
	SubDeviceNo      int    `json:"subDeviceNo"`
}

// bypassCaller is the slice of the cloud client devices need for state and
// command calls. Test fixtures substitute an offline implementation.
type bypassCaller interface {
	CallBypassV2(cid, configModule, method string, data map[string]any, out any) error
}

// Device is the in-memory representation of one appliance. Typed devices
// (Humidifier, AirFryer) embed it. Details holds the last reported state
// mapping; Config holds the device configuration submap.
type Device struct {
	DeviceRecord

	Details map[string]any
	Config  map[string]any

	client bypassCaller
}

func newDevice(rec *DeviceRecord, client bypassCaller) Device {
	return Device{
		DeviceRecord: *rec,
		Details:      map[string]any{},
		Config:       map[string]any{},
		client:       client,
	}
}

// Enabled reports whether the device itself says it is powered on.
func (d *Device) Enabled() bool {
	return d.DeviceStatus == "on"
}

func (d *Device) IsOnline() bool {
	return d.ConnectionStatus == "online"
}

// DetailBool reads a boolean state key from the Details mapping. Missing or
// non-boolean values read as false.
func (d *Device) DetailBool(key string) bool {
	v, ok := d.Details[key].(bool)
	return ok && v
}

// DetailInt reads a numeric state key from the Details mapping. JSON numbers
// decode as float64, so both forms are accepted.
func (d *Device) DetailInt(key string) (int, bool) {
	switch v := d.Details[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func (d *Device) HasDetail(key string) bool {
	_, ok := d.Details[key]
	return ok
}

// ConfigInt reads a numeric key from the Config mapping.
func (d *Device) ConfigInt(key string) (int, bool) {
	switch v := d.Config[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}
