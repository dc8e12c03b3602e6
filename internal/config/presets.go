package config

var Presets = map[string]map[string]*Config{
	"spread": {
		"default": {
			Scenario: "spread", N: 41, K: 1.0, Dt: 0.1, Steps: 1000, Slices: 6,
		},
		"fine": {
			Scenario: "spread", N: 101, K: 1.0, Dt: 0.02, Steps: 10000, Slices: 6,
		},
		"edge": {
			// long run on a short domain, probability piles against the walls
			Scenario: "spread", N: 11, K: 1.0, Dt: 0.1, Steps: 5000, Slices: 8,
		},
	},
	"frap": {
		"classic": {
			Scenario: "frap", N: 40, K: 1.0, Dt: 0.1, Steps: 5000, Gap: 8, Slices: 6,
		},
		"wide": {
			Scenario: "frap", N: 80, K: 1.0, Dt: 0.1, Steps: 20000, Gap: 30, Slices: 8,
		},
		"narrow": {
			Scenario: "frap", N: 40, K: 1.0, Dt: 0.1, Steps: 1500, Gap: 2, Slices: 6,
		},
	},
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
