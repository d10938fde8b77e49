package game

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration
type Config struct {
	Screen ScreenConfig `mapstructure:"screen"`
	World  WorldConfig  `mapstructure:"world"`
	Player PlayerConfig `mapstructure:"player"`
	Camera CameraConfig `mapstructure:"camera"`
	Waves  WaveConfig   `mapstructure:"waves"`

	// Seed for the round random source (0 = seed from the clock)
	Seed int64 `mapstructure:"seed"`

	// Debug starts with collider outlines visible
	Debug bool `mapstructure:"debug"`

	// ProfileOnStall captures a CPU profile when the frame rate drops
	ProfileOnStall bool `mapstructure:"profile_on_stall"`
}

// ScreenConfig describes the window
type ScreenConfig struct {
	// Width is the logical screen width in pixels
	Width int `mapstructure:"width"`

	// Height is the logical screen height in pixels
	Height int `mapstructure:"height"`

	Title string `mapstructure:"title"`
}

// WorldConfig describes the playfield
type WorldConfig struct {
	// Width of the playfield in world pixels
	Width float64 `mapstructure:"width"`

	// Height of the playfield in world pixels
	Height float64 `mapstructure:"height"`

	// OutOfBoundsMargin is how far past the playfield projectiles may travel before removal
	OutOfBoundsMargin float64 `mapstructure:"out_of_bounds_margin"`

	// CellSize is the collision broadphase cell size in pixels
	CellSize int `mapstructure:"cell_size"`

	// MaxParticles caps the shared particle buffer
	MaxParticles int `mapstructure:"max_particles"`
}

// PlayerConfig holds the player ship tuning
type PlayerConfig struct {
	Health int `mapstructure:"health"`

	// MaxSpeed in pixels per second
	MaxSpeed float64 `mapstructure:"max_speed"`

	// Acceleration in pixels per second squared
	Acceleration float64 `mapstructure:"acceleration"`

	// Friction is the velocity damping rate per second
	Friction float64 `mapstructure:"friction"`

	DashMultiplier float64 `mapstructure:"dash_multiplier"`
	DashDuration   float64 `mapstructure:"dash_duration"`
	DashCooldown   float64 `mapstructure:"dash_cooldown"`

	// Invulnerability is the window after a hit during which damage is ignored
	Invulnerability float64 `mapstructure:"invulnerability"`

	// Weapons lists the starting inventory by weapon name
	Weapons []string `mapstructure:"weapons"`
}

// CameraConfig holds the world camera tuning
type CameraConfig struct {
	Scale    float64 `mapstructure:"scale"`
	MinScale float64 `mapstructure:"min_scale"`
	MaxScale float64 `mapstructure:"max_scale"`

	// PanStrength divides the distance to the target each 60 Hz frame
	PanStrength float64 `mapstructure:"pan_strength"`

	// ZoomSpeed is the fraction of the remaining zoom covered each 60 Hz frame
	ZoomSpeed float64 `mapstructure:"zoom_speed"`

	// FollowMargin pads the multi-target bounding box
	FollowMargin float64 `mapstructure:"follow_margin"`

	// ShakeDecay is how much shake magnitude is lost per second
	ShakeDecay float64 `mapstructure:"shake_decay"`
}

// WaveConfig holds spawn scheduling
type WaveConfig struct {
	FirstAsteroids int `mapstructure:"first_asteroids"`
	FirstUFOs      int `mapstructure:"first_ufos"`

	// StartBonus is the upper bound of the random extra added per kind when a wave starts
	StartBonus int `mapstructure:"start_bonus"`

	// CountBonus is the upper bound of the random extra added to the quadratic count
	CountBonus int `mapstructure:"count_bonus"`

	MinInterval float64 `mapstructure:"min_interval"`
	MaxInterval float64 `mapstructure:"max_interval"`

	// IntervalStep shortens spawn intervals per wave number
	IntervalStep float64 `mapstructure:"interval_step"`

	// UFOGrace is how long a UFO waits at the edge before moving
	UFOGrace float64 `mapstructure:"ufo_grace"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1440,
			Height: 810,
			Title:  "Space Waves",
		},
		World: WorldConfig{
			Width:             960,
			Height:            540,
			OutOfBoundsMargin: 64,
			CellSize:          32,
			MaxParticles:      4096,
		},
		Player: PlayerConfig{
			Health:          200,
			MaxSpeed:        150,
			Acceleration:    900,
			Friction:        4,
			DashMultiplier:  3,
			DashDuration:    0.15,
			DashCooldown:    1.0,
			Invulnerability: 0.3,
			Weapons:         []string{WeaponBlaster, WeaponLance, WeaponScatter, WeaponLauncher},
		},
		Camera: CameraConfig{
			Scale:        3,
			MinScale:     2,
			MaxScale:     3,
			PanStrength:  10,
			ZoomSpeed:    0.05,
			FollowMargin: 100,
			ShakeDecay:   30,
		},
		Waves: WaveConfig{
			FirstAsteroids: 20,
			FirstUFOs:      8,
			StartBonus:     5,
			CountBonus:     2,
			MinInterval:    0.5,
			MaxInterval:    2.0,
			IntervalStep:   0.002,
			UFOGrace:       1.0,
		},
	}
}

// Validate checks the values the simulation divides by or loops over.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.World.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.World.CellSize)
	case c.Camera.MinScale <= 0 || c.Camera.MinScale > c.Camera.MaxScale:
		return fmt.Errorf("%w: camera scale bounds [%g, %g]", ErrInvalidConfig, c.Camera.MinScale, c.Camera.MaxScale)
	case c.Camera.PanStrength < 1:
		return fmt.Errorf("%w: pan_strength %g", ErrInvalidConfig, c.Camera.PanStrength)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player health %d", ErrInvalidConfig, c.Player.Health)
	case c.Waves.MinInterval <= 0 || c.Waves.MaxInterval < c.Waves.MinInterval:
		return fmt.Errorf("%w: wave interval [%g, %g]", ErrInvalidConfig, c.Waves.MinInterval, c.Waves.MaxInterval)
	}
	for _, name := range c.Player.Weapons {
		if _, ok := LookupWeapon(name); !ok {
			return fmt.Errorf("%w: unknown weapon %q", ErrInvalidConfig, name)
		}
	}
	if len(c.Player.Weapons) == 0 {
		return fmt.Errorf("%w: player has no weapons", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads configuration from path on top of DefaultConfig.
// An empty path only applies defaults and SPACEWAVES_* environment overrides.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix("SPACEWAVES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		log.Printf("config: loaded %s", v.ConfigFileUsed())
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("screen.width", d.Screen.Width)
	v.SetDefault("screen.height", d.Screen.Height)
	v.SetDefault("screen.title", d.Screen.Title)

	v.SetDefault("world.width", d.World.Width)
	v.SetDefault("world.height", d.World.Height)
	v.SetDefault("world.out_of_bounds_margin", d.World.OutOfBoundsMargin)
	v.SetDefault("world.cell_size", d.World.CellSize)
	v.SetDefault("world.max_particles", d.World.MaxParticles)

	v.SetDefault("player.health", d.Player.Health)
	v.SetDefault("player.max_speed", d.Player.MaxSpeed)
	v.SetDefault("player.acceleration", d.Player.Acceleration)
	v.SetDefault("player.friction", d.Player.Friction)
	v.SetDefault("player.dash_multiplier", d.Player.DashMultiplier)
	v.SetDefault("player.dash_duration", d.Player.DashDuration)
	v.SetDefault("player.dash_cooldown", d.Player.DashCooldown)
	v.SetDefault("player.invulnerability", d.Player.Invulnerability)
	v.SetDefault("player.weapons", d.Player.Weapons)

	v.SetDefault("camera.scale", d.Camera.Scale)
	v.SetDefault("camera.min_scale", d.Camera.MinScale)
	v.SetDefault("camera.max_scale", d.Camera.MaxScale)
	v.SetDefault("camera.pan_strength", d.Camera.PanStrength)
	v.SetDefault("camera.zoom_speed", d.Camera.ZoomSpeed)
	v.SetDefault("camera.follow_margin", d.Camera.FollowMargin)
	v.SetDefault("camera.shake_decay", d.Camera.ShakeDecay)

	v.SetDefault("waves.first_asteroids", d.Waves.FirstAsteroids)
	v.SetDefault("waves.first_ufos", d.Waves.FirstUFOs)
	v.SetDefault("waves.start_bonus", d.Waves.StartBonus)
	v.SetDefault("waves.count_bonus", d.Waves.CountBonus)
	v.SetDefault("waves.min_interval", d.Waves.MinInterval)
	v.SetDefault("waves.max_interval", d.Waves.MaxInterval)
	v.SetDefault("waves.interval_step", d.Waves.IntervalStep)
	v.SetDefault("waves.ufo_grace", d.Waves.UFOGrace)

	v.SetDefault("seed", d.Seed)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("profile_on_stall", d.ProfileOnStall)
}
