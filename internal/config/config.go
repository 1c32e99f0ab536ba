package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the track data generator.
type Config struct {
	Wago    Wago    `yaml:"wago"`
	Tables  Tables  `yaml:"tables"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Wago holds endpoints and timeouts for the wago.tools API.
type Wago struct {
	BaseURL      string `yaml:"base_url"`
	BuildsURL    string `yaml:"builds_url"`
	BuildChannel string `yaml:"build_channel"`

	// Timeouts in seconds: a short one for the lightweight builds probe and
	// a longer one for full table exports.
	BuildTimeoutSec int `yaml:"build_timeout_sec"`
	TableTimeoutSec int `yaml:"table_timeout_sec"`
}

// Tables names the two DB2 tables the mapping is joined from.
type Tables struct {
	GroupTrack GroupTrackTable `yaml:"group_track"`
	GroupBonus GroupBonusTable `yaml:"group_bonus"`
}

// GroupTrackTable locates the group → track-number association. The track
// column is a raw schema-dump name (Field_*) that wago renames across game
// builds, which is why it is configuration rather than a constant.
type GroupTrackTable struct {
	Name       string `yaml:"name"`
	GroupField string `yaml:"group_field"`
	TrackField string `yaml:"track_field"`
}

// GroupBonusTable locates the group → bonus-ID association.
type GroupBonusTable struct {
	Name       string `yaml:"name"`
	GroupField string `yaml:"group_field"`
	BonusField string `yaml:"bonus_field"`
}

// Output holds the generated artifact path and its template.
type Output struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template"`
}

// Logging configures the application logger.
type Logging struct {
	Level string `yaml:"level"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the compiled-in configuration. config/trackdata.yaml ships
// with the same values; the file only needs editing when wago renames a
// schema-dump column or the addon moves its output.
func Default() *Config {
	return &Config{
		Wago: Wago{
			BaseURL:         "https://wago.tools/db2",
			BuildsURL:       "https://wago.tools/api/builds",
			BuildChannel:    "wow",
			BuildTimeoutSec: 10,
			TableTimeoutSec: 30,
		},
		Tables: Tables{
			GroupTrack: GroupTrackTable{
				Name:       "ItemBonusSeasonBonusListGroup",
				GroupField: "ItemBonusListGroupID",
				TrackField: "Field_10_1_0_48898_002",
			},
			GroupBonus: GroupBonusTable{
				Name:       "ItemBonusListGroupEntry",
				GroupField: "ItemBonusListGroupID",
				BonusField: "ItemBonusListID",
			},
		},
		Output: Output{
			Path:     "TrackData.lua",
			Template: "templates/TrackData.lua.tmpl",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Load reads the YAML configuration file at the given path and overlays it
// on the defaults. A missing file is not an error: the defaults are returned
// unchanged. A file that exists but cannot be read or parsed is a broken
// deployment and is reported as an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
