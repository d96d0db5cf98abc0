package simulate

// Preset defines a named population scale for generation.
type Preset string

const (
	// PresetSmoke is the reference scale used by the downstream causal
	// validation fixtures: 120 customers, 15 carriers, 800 shipments.
	PresetSmoke Preset = "smoke"

	// PresetStandard is a mid-sized population for pipeline development.
	PresetStandard Preset = "standard"

	// PresetStress is a large population for load and tolerance testing.
	PresetStress Preset = "stress"
)

// PresetConfig holds the population counts for a preset.
type PresetConfig struct {
	Customers int
	Carriers  int
	Shipments int
}

// GetPresetConfig returns the population counts for a preset.
func GetPresetConfig(preset Preset) PresetConfig {
	switch preset {
	case PresetSmoke:
		return PresetConfig{Customers: 120, Carriers: 15, Shipments: 800}
	case PresetStandard:
		return PresetConfig{Customers: 500, Carriers: 25, Shipments: 10000}
	case PresetStress:
		return PresetConfig{Customers: 2000, Carriers: 40, Shipments: 100000}
	default:
		return GetPresetConfig(PresetSmoke)
	}
}

// ValidPresets lists the presets accepted by the CLI.
var ValidPresets = []Preset{PresetSmoke, PresetStandard, PresetStress}
