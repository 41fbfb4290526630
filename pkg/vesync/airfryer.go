package vesync

import "strings"

var airFryerModels = []string{
	"CS137-AF", "CS158-AF", "CS358-AF",
}

func isAirFryerModel(deviceType string) bool {
	for _, m := range airFryerModels {
		if strings.HasPrefix(deviceType, m) {
			return true
		}
	}
	return false
}

// AirFryer is one Cosori air fryer. The cloud reports a single cook status
// string; the boolean status accessors derive from it.
type AirFryer struct {
	Device

	CookStatus     string
	CookSetTime    int
	CookLastTime   int
	CurrentTempC   int
	TargetTempC    int
	PreheatLastSec int
}

func newAirFryer(rec *DeviceRecord, client bypassCaller) *AirFryer {
	return &AirFryer{
		Device: newDevice(rec, client),
	}
}

// UpdateCookStatus refreshes the fryer status from the cloud.
func (f *AirFryer) UpdateCookStatus() error {
	var status struct {
		CookStatus     string `json:"cookStatus"`
		CookSetTime    int    `json:"cookSetTime"`
		CookLastTime   int    `json:"cookLastTime"`
		CurrentTemp    int    `json:"currentTemp"`
		TargetTemp     int    `json:"targetTemp"`
		PreheatLastSec int    `json:"preheatLastTime"`
	}
	if err := f.client.CallBypassV2(f.CID, f.ConfigModule, "getAirFryerStatus", nil, &status); err != nil {
		return err
	}
	f.CookStatus = status.CookStatus
	f.CookSetTime = status.CookSetTime
	f.CookLastTime = status.CookLastTime
	f.CurrentTempC = status.CurrentTemp
	f.TargetTempC = status.TargetTemp
	f.PreheatLastSec = status.PreheatLastSec
	return nil
}

func (f *AirFryer) IsHeating() bool {
	return f.CookStatus == "heating" || f.CookStatus == "preheatStop"
}

func (f *AirFryer) IsCooking() bool {
	return f.CookStatus == "cooking" || f.CookStatus == "cookStop"
}

func (f *AirFryer) IsRunning() bool {
	return f.IsHeating() || f.IsCooking()
}

// StatusFlag resolves a named boolean status attribute. Unknown names read
// as false.
func (f *AirFryer) StatusFlag(name string) bool {
	switch name {
	case "is_heating":
		return f.IsHeating()
	case "is_cooking":
		return f.IsCooking()
	case "is_running":
		return f.IsRunning()
	default:
		return false
	}
}
