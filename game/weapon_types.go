package game

import "image/color"

// Weapon names
const (
	WeaponBlaster  = "blaster"
	WeaponLance    = "lance"
	WeaponScatter  = "scatter"
	WeaponLauncher = "launcher"
)

// ProjectileConfig is the immutable template a weapon spawns projectiles from.
type ProjectileConfig struct {
	Kind   ProjectileKind
	Tag    string
	Size   Vec2
	Color  color.RGBA
	Damage int

	// Speed in pixels per second
	Speed float64

	// MaxLifetime kills the projectile after this many seconds (0 = no limit)
	MaxLifetime float64

	// Missile settings
	TurnRate      float64 // degrees per second while homing
	Countdown     float64 // explosion countdown after contact
	BurstInterval float64 // time between particle rings during the countdown
	SplashRadius  float64
	SplashDamage  int
}

// WeaponConfig holds the immutable definition of a weapon
type WeaponConfig struct {
	Name string

	// Icon is the HUD key for the weapon
	Icon string

	MaxMagazine int
	ReloadTime  float64

	// ShootTime is the minimum time between shots
	ShootTime float64
	Automatic bool

	// Muzzles are offsets from the wielder's center, in the wielder's frame
	// (rotation 0, +X forward)
	Muzzles []Vec2

	// Pellets fired per muzzle per shot (0 or 1 = single projectile)
	Pellets int

	// Spread is the half-angle of the random deviation cone in degrees
	Spread float64

	Projectile ProjectileConfig
}

var weaponConfigs = map[string]WeaponConfig{
	WeaponBlaster: {
		Name:        WeaponBlaster,
		Icon:        "icon_blaster",
		MaxMagazine: 50,
		ReloadTime:  1.0,
		ShootTime:   0.1,
		Automatic:   true,
		Muzzles:     []Vec2{{X: 8, Y: 0}},
		Projectile: ProjectileConfig{
			Kind:   ProjectileDirect,
			Tag:    "bullet",
			Size:   Vec2{X: 6, Y: 3},
			Color:  color.RGBA{255, 255, 0, 255},
			Damage: 25,
			Speed:  350,
		},
	},
	WeaponLance: {
		Name:        WeaponLance,
		Icon:        "icon_lance",
		MaxMagazine: 12,
		ReloadTime:  1.5,
		ShootTime:   0.3,
		Automatic:   false,
		Muzzles:     []Vec2{{X: 8, Y: 0}},
		Projectile: ProjectileConfig{
			Kind:   ProjectilePiercing,
			Tag:    "lance",
			Size:   Vec2{X: 10, Y: 2},
			Color:  color.RGBA{120, 220, 255, 255},
			Damage: 15,
			Speed:  500,
		},
	},
	WeaponScatter: {
		Name:        WeaponScatter,
		Icon:        "icon_scatter",
		MaxMagazine: 8,
		ReloadTime:  1.2,
		ShootTime:   0.5,
		Automatic:   false,
		Muzzles:     []Vec2{{X: 8, Y: 0}},
		Pellets:     6,
		Spread:      15,
		Projectile: ProjectileConfig{
			Kind:        ProjectileSpread,
			Tag:         "pellet",
			Size:        Vec2{X: 3, Y: 3},
			Color:       color.RGBA{255, 160, 60, 255},
			Damage:      12,
			Speed:       300,
			MaxLifetime: 0.6,
		},
	},
	WeaponLauncher: {
		Name:        WeaponLauncher,
		Icon:        "icon_launcher",
		MaxMagazine: 4,
		ReloadTime:  2.0,
		ShootTime:   0.8,
		Automatic:   false,
		Muzzles:     []Vec2{{X: 4, Y: -6}, {X: 4, Y: 6}},
		Projectile: ProjectileConfig{
			Kind:          ProjectileMissile,
			Tag:           "missile",
			Size:          Vec2{X: 8, Y: 4},
			Color:         color.RGBA{255, 90, 90, 255},
			Damage:        40,
			Speed:         180,
			MaxLifetime:   5,
			TurnRate:      180,
			Countdown:     0.5,
			BurstInterval: 0.1,
			SplashRadius:  40,
			SplashDamage:  20,
		},
	},
}

// LookupWeapon returns the template registered under name.
func LookupWeapon(name string) (WeaponConfig, bool) {
	cfg, ok := weaponConfigs[name]
	return cfg, ok
}

// WeaponNames returns every registered weapon name in inventory order.
func WeaponNames() []string {
	return []string{WeaponBlaster, WeaponLance, WeaponScatter, WeaponLauncher}
}

// DefaultWeapon returns the starting weapon template.
func DefaultWeapon() WeaponConfig {
	return weaponConfigs[WeaponBlaster]
}
