package domain

// BinarySensorKind describes one boolean condition a device can expose.
// Humidifier kinds read a detail key from the vendor state payload;
// air fryer kinds are resolved by name against the cook status flags.
type BinarySensorKind struct {
	Id          string
	Name        string
	DeviceClass string
	Icon        string
	DetailKey   string
}

// Humidifier binary sensor kinds. A device exposes a kind only when the
// vendor state payload actually carries its detail key.
var HumidifierBinarySensorKinds = []BinarySensorKind{
	{
		Id:        "out_of_water",
		Name:      "Out of Water",
		Icon:      "mdi:water-alert",
		DetailKey: "water_lacks",
	},
	{
		Id:        "water_tank_lifted",
		Name:      "Water Tank Lifted",
		Icon:      "mdi:cup-water",
		DetailKey: "water_tank_lifted",
	},
	{
		Id:        "filter_open_state",
		Name:      "Filter Open",
		Icon:      "mdi:air-filter",
		DetailKey: "filter_open_state",
	},
}

// Air fryer binary sensor kinds, derived from the cook status machine.
var AirFryerBinarySensorKinds = []BinarySensorKind{
	{
		Id:   "is_heating",
		Name: "Heating",
		Icon: "mdi:radiator",
	},
	{
		Id:   "is_cooking",
		Name: "Cooking",
		Icon: "mdi:pot-steam",
	},
	{
		Id:   "is_running",
		Name: "Running",
		Icon: "mdi:play-circle",
	},
}
