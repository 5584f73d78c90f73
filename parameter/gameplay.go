package parameter

// Arena
const (
	// BoundsWidth and BoundsHeight size the rectangle, centred on the origin, that bounded entities must stay inside
	BoundsWidth  = 1536.0
	BoundsHeight = 1536.0

	// EnvironmentScrollSpeed is the downward speed of environment entities in units per second
	EnvironmentScrollSpeed = 256.0
)

// Player ship
const (
	PlayerSpeed  = 400.0
	PlayerStartX = 0.0
	PlayerStartY = -256.0
)

// Weapon
const (
	WeaponOffsetX  = 0.0
	WeaponOffsetY  = 60.0
	WeaponCooldown = 0.4 // seconds, non-repeating

	// LaserSpeed is upward speed in units per second
	LaserSpeed = 1000.0
)

// Enemy waves
const (
	// EnemySpawnInterval is the repeating wave period in seconds
	EnemySpawnInterval = 5.0

	// EnemyWaveHalfWidth gives columns i in [-EnemyWaveHalfWidth, EnemyWaveHalfWidth]
	EnemyWaveHalfWidth = 3
	EnemyWaveSpacing   = 128.0
	EnemyWaveY         = 600.0
)

// Combat: every ship and projectile shares the same values
const (
	StartingHealth  = 1
	CollisionDamage = 1
)

// Collision broad phase names
const (
	BroadPhasePairwise = "pairwise"
	BroadPhaseGrid     = "grid"
)

// Materials index the projectile and enemy sprite table
const (
	MaterialLaserBlue = 0
	MaterialLaserRed  = 1
	MaterialEnemy     = 2
)

// MaterialSprites names the sprite for each material index, in index order
var MaterialSprites = []string{"laser_blue", "laser_red", "enemy"}

// PlayerSprite names the player ship sprite
const PlayerSprite = "player"
