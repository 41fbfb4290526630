package domain

// Vendor mist modes as reported by the VeSync API.
const (
	VesyncModeAuto     = "auto"
	VesyncModeHumidity = "humidity"
	VesyncModeManual   = "manual"
	VesyncModeSleep    = "sleep"
)

// Host (Home Assistant) humidifier modes.
const (
	HAModeAuto   = "auto"
	HAModeNormal = "normal"
	HAModeSleep  = "sleep"
)

// Target humidity bounds accepted by all supported humidifier models.
const (
	MinHumidity = 30
	MaxHumidity = 80
)

var vesyncToHAMode = map[string]string{
	VesyncModeAuto:     HAModeAuto,
	VesyncModeHumidity: HAModeAuto,
	VesyncModeManual:   HAModeNormal,
	VesyncModeSleep:    HAModeSleep,
}

// haToVesyncMode holds the canonical vendor mode for each host mode.
// "humidity" is an alias of "auto" on some models, so the reverse of
// HAModeAuto is always VesyncModeAuto; callers translate per device
// when the device only advertises the alias.
var haToVesyncMode = map[string]string{
	HAModeAuto:   VesyncModeAuto,
	HAModeNormal: VesyncModeManual,
	HAModeSleep:  VesyncModeSleep,
}

// HAMode translates a vendor mist mode to its host mode. Unknown vendor
// modes return ok == false and must not be surfaced to the host.
func HAMode(vesyncMode string) (string, bool) {
	m, ok := vesyncToHAMode[vesyncMode]
	return m, ok
}

// VesyncMode translates a host mode to the canonical vendor mode.
func VesyncMode(haMode string) (string, bool) {
	m, ok := haToVesyncMode[haMode]
	return m, ok
}
