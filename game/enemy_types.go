package game

// EnemyConfig holds tuning for an enemy kind
type EnemyConfig struct {
	Kind   Kind
	Tag    string
	Size   Vec2
	Health int

	// Speed range in pixels per second; each spawn rolls within it
	MinSpeed, MaxSpeed float64

	// ContactDamage dealt to the player on collision
	ContactDamage int

	// Score awarded when the player destroys it
	Score int
}

const (
	ufoWobbleLimit  = 12.0 // degrees either side of level
	ufoWobbleSpeed  = 40.0 // degrees per second
	ufoArrowExit    = 0.25 // seconds of grace left when the arrow starts fading out
	ufoArrowEnter   = 0.25 // longest the arrow stays in its enter action
	ufoHeadingJit   = 45.0 // degrees of random deviation from straight inward
	asteroidSpinMax = 90.0

	powerUpDropChance = 0.15
)

// GetEnemyConfig returns configuration for an enemy kind
func GetEnemyConfig(kind Kind) EnemyConfig {
	switch kind {
	case KindUFO:
		return EnemyConfig{
			Kind:          KindUFO,
			Tag:           TagUFO,
			Size:          Vec2{X: 24, Y: 19},
			Health:        50,
			MinSpeed:      60,
			MaxSpeed:      90,
			ContactDamage: 25,
			Score:         25,
		}
	case KindAsteroid:
		return EnemyConfig{
			Kind:          KindAsteroid,
			Tag:           TagAsteroid,
			Size:          Vec2{X: 40, Y: 38},
			Health:        100,
			MinSpeed:      30,
			MaxSpeed:      70,
			ContactDamage: 20,
			Score:         10,
		}
	default:
		panic("no enemy config for " + kind.String())
	}
}
