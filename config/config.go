package config

import (
	"os"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-shooter/parameter"
)

// World is the immutable game configuration
// Layering: compiled defaults, then the optional YAML file, then VISHOOTER_* environment variables
type World struct {
	Title string `yaml:"title" config:"VISHOOTER_TITLE"`

	// Arena rectangle centred on the origin
	BoundsWidth  float64 `yaml:"bounds_width" config:"VISHOOTER_BOUNDS_WIDTH"`
	BoundsHeight float64 `yaml:"bounds_height" config:"VISHOOTER_BOUNDS_HEIGHT"`

	// Enemy waves
	SpawnInterval float64 `yaml:"spawn_interval" config:"VISHOOTER_SPAWN_INTERVAL"`
	ScrollSpeed   float64 `yaml:"scroll_speed" config:"VISHOOTER_SCROLL_SPEED"`

	// Combat values shared by ships and lasers
	StartingHealth  int `yaml:"starting_health" config:"VISHOOTER_STARTING_HEALTH"`
	CollisionDamage int `yaml:"collision_damage" config:"VISHOOTER_COLLISION_DAMAGE"`

	// Player ship and weapon
	PlayerSpeed    float64 `yaml:"player_speed" config:"VISHOOTER_PLAYER_SPEED"`
	LaserSpeed     float64 `yaml:"laser_speed" config:"VISHOOTER_LASER_SPEED"`
	WeaponCooldown float64 `yaml:"weapon_cooldown" config:"VISHOOTER_WEAPON_COOLDOWN"`

	// Collision broad phase: "pairwise" or "grid"
	BroadPhase   string  `yaml:"broad_phase" config:"VISHOOTER_BROAD_PHASE"`
	GridCellSize float64 `yaml:"grid_cell_size" config:"VISHOOTER_GRID_CELL_SIZE"`

	// Loop
	TickRate int `yaml:"tick_rate" config:"VISHOOTER_TICK_RATE"`

	// Audio
	Audio       bool    `yaml:"audio" config:"VISHOOTER_AUDIO"`
	AudioVolume float64 `yaml:"audio_volume" config:"VISHOOTER_AUDIO_VOLUME"`
}

// Default returns the compiled defaults
func Default() World {
	return World{
		Title:           "vi-shooter",
		BoundsWidth:     parameter.BoundsWidth,
		BoundsHeight:    parameter.BoundsHeight,
		SpawnInterval:   parameter.EnemySpawnInterval,
		ScrollSpeed:     parameter.EnvironmentScrollSpeed,
		StartingHealth:  parameter.StartingHealth,
		CollisionDamage: parameter.CollisionDamage,
		PlayerSpeed:     parameter.PlayerSpeed,
		LaserSpeed:      parameter.LaserSpeed,
		WeaponCooldown:  parameter.WeaponCooldown,
		BroadPhase:      parameter.BroadPhasePairwise,
		TickRate:        int(time.Second / parameter.TickInterval),
		Audio:           true,
		AudioVolume:     parameter.AudioMasterVolume,
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped when empty) and the environment
func Load(path string) (World, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return World{}, eris.Wrapf(err, "failed to read config file %s", path)
		}
		if err := Parse(data, &cfg); err != nil {
			return World{}, eris.Wrapf(err, "failed to parse config file %s", path)
		}
	}

	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return World{}, eris.Wrap(err, "failed to apply environment overrides")
	}

	if err := cfg.Validate(); err != nil {
		return World{}, err
	}
	return cfg, nil
}

// Parse overlays YAML data on cfg; keys absent from data keep their current values
func Parse(data []byte, cfg *World) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return eris.Wrap(err, "invalid yaml")
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with
func (c World) Validate() error {
	switch {
	case c.BoundsWidth <= 0 || c.BoundsHeight <= 0:
		return eris.Errorf("bounds must be positive, got %gx%g", c.BoundsWidth, c.BoundsHeight)
	case c.SpawnInterval <= 0:
		return eris.Errorf("spawn interval must be positive, got %g", c.SpawnInterval)
	case c.WeaponCooldown < 0:
		return eris.Errorf("weapon cooldown must not be negative, got %g", c.WeaponCooldown)
	case c.TickRate <= 0 || c.TickRate > 1000:
		return eris.Errorf("tick rate must be in 1..1000, got %d", c.TickRate)
	case c.AudioVolume < 0 || c.AudioVolume > 1:
		return eris.Errorf("audio volume must be in 0..1, got %g", c.AudioVolume)
	case c.BroadPhase != parameter.BroadPhasePairwise && c.BroadPhase != parameter.BroadPhaseGrid:
		return eris.Errorf("unknown broad phase %q", c.BroadPhase)
	}
	return nil
}

// TickInterval returns the wall-clock period of one tick
func (c World) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
