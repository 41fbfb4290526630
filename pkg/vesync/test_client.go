package vesync

import (
	"fmt"
)

// TestBypassClient records command calls instead of hitting the cloud.
// Methods listed in FailMethods report an API error.
type TestBypassClient struct {
	Calls       []string
	FailMethods map[string]bool
}

func (c *TestBypassClient) CallBypassV2(cid, configModule, method string, data map[string]any, out any) error {
	c.Calls = append(c.Calls, method)
	if c.FailMethods[method] {
		return fmt.Errorf("vesync: API error -11300030: device offline")
	}
	return nil
}

func NewTestClassicHumidifier(client *TestBypassClient) *Humidifier {
	h := newHumidifier(&DeviceRecord{
		CID:              "cid-classic300s-1",
		UUID:             "11111111-2222-3333-4444-555555555555",
		DeviceName:       "Bedroom humidifier",
		DeviceType:       "Classic300S",
		DeviceStatus:     "on",
		ConnectionStatus: "online",
		ConfigModule:     "WiFiBTOnboardingNotify_AirHumidifier_Classic300S_US",
	}, VariantClassic200300S, client)
	h.applyStatus(map[string]any{
		"enabled":                     true,
		"mode":                        "manual",
		"humidity":                    float64(45),
		"mist_virtual_level":          float64(3),
		"water_lacks":                 false,
		"water_tank_lifted":           false,
		"automatic_stop_reach_target": true,
		"configuration": map[string]any{
			"auto_target_humidity": float64(50),
			"display":              true,
			"automatic_stop":       true,
		},
	})
	return h
}

func NewTestSuperiorHumidifier(client *TestBypassClient) *Humidifier {
	h := newHumidifier(&DeviceRecord{
		CID:              "cid-superior6000s-1",
		UUID:             "66666666-7777-8888-9999-aaaaaaaaaaaa",
		DeviceName:       "Living room humidifier",
		DeviceType:       "LEH-S601S-WUS",
		DeviceStatus:     "on",
		ConnectionStatus: "online",
		ConfigModule:     "WiFiBTOnboardingNotify_AirHumidifier_LEH-S601S-WUS_US",
	}, VariantSuperior6000S, client)
	h.applyStatus(map[string]any{
		"enabled":         true,
		"mode":            "humidity",
		"humidity":        float64(40),
		"target_humidity": float64(55),
		"temperature":     float64(21),
		"filter_life":     float64(93),
		"water_lacks":     true,
		"drying_mode":     map[string]any{"dryingLevel": float64(1)},
	})
	return h
}

func NewTestAirFryer(client *TestBypassClient) *AirFryer {
	f := newAirFryer(&DeviceRecord{
		CID:              "cid-airfryer158-1",
		UUID:             "bbbbbbbb-cccc-dddd-eeee-ffffffffffff",
		DeviceName:       "Kitchen air fryer",
		DeviceType:       "CS158-AF",
		DeviceStatus:     "on",
		ConnectionStatus: "online",
		ConfigModule:     "WiFiBTOnboarding_AirFryer_CS158-AF_US",
	}, client)
	f.CookStatus = "heating"
	f.TargetTempC = 180
	f.CurrentTempC = 95
	return f
}

// TestDeviceService is an offline DeviceService with one device of each
// supported kind.
type TestDeviceService struct {
	Client *TestBypassClient

	humidifiers []*Humidifier
	airFryers   []*AirFryer
}

func NewTestDeviceService() *TestDeviceService {
	client := &TestBypassClient{}
	return &TestDeviceService{
		Client: client,
		humidifiers: []*Humidifier{
			NewTestClassicHumidifier(client),
			NewTestSuperiorHumidifier(client),
		},
		airFryers: []*AirFryer{
			NewTestAirFryer(client),
		},
	}
}

func (s *TestDeviceService) Login() error {
	return nil
}

func (s *TestDeviceService) Update() error {
	return nil
}

func (s *TestDeviceService) Humidifiers() []*Humidifier {
	return s.humidifiers
}

func (s *TestDeviceService) AirFryers() []*AirFryer {
	return s.airFryers
}
