// Package config centralizes all tunable game parameters.
package config

import "time"

// View resolution - the visible viewport in logical units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical viewport width
	ViewHeight = 80  // Logical viewport height (in sub-pixels, so 40 terminal rows)
)

// Max render resolution - terminals larger than this get a centered, bordered
// render area instead of stretching.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Play area. The plane spans [-GridLength, GridLength] on x and y.
const (
	GridLength             = 1000.0
	SpawnAreaFraction      = 0.8  // Spawn samples stay within this share of the plane
	UpperAreaFloorFraction = -0.2 // Lowest y of the upper band, as a share of GridLength
	SpawnMinZ              = 30.0
	SpawnMaxZ              = 80.0
	SpawnMinPlayerDistance = 150.0
	PlayerBoundaryMargin   = 40.0 // Player stays this far inside the plane edge
)

// Simulation tick rate
const (
	TickRate = 60
	TickStep = 1.0 / TickRate // Nominal dt in seconds
	TickTime = time.Second / TickRate
)

// Session
const (
	ResumeMessageSeconds   = 2.0
	ResumeCountdownSeconds = 3.0
)

// Player
const (
	InitialLives         = 9
	MaxMissedBullets     = 100
	MoveStep             = 15.0
	DiagonalFactor       = 0.7
	FanSpreadDegrees     = 10.0
	MuzzleOffsetY        = 15.0
	PlayerBodyRadius     = 35.0 // Asteroid contact radius, before adding asteroid size
	PlayerHitRadius      = 60.0 // Enemy bullet hit radius
	ShieldRadius         = 45.0
	FlickerSeconds       = 0.5
	InitialFireRate      = 1.0 // Shots per second
	FireRateStep         = 0.1
	PlayerBulletSpeed    = 8.0
	HelperBulletSpeed    = 6.0
	PlayerStartZ         = 50.0
	DamageTierHealthy    = 6    // Lives above this render the healthy hull
	DamageTierDamaged    = 3    // Lives above this render the damaged hull
	PlayerBlinkFrequency = 10.0 // Hz
)

// Enemy
const (
	EnemyInitialLives      = 1
	EnemyMaxLivesCap       = 5
	EnemyMaxEvolution      = 4
	EnemyShootingStyles    = 5
	EnemySize              = 2.0
	EnemySpeed             = 1.0
	EnemyTeleportSeconds   = 5.0
	EnemyArriveDistance    = 10.0
	EnemyFireChance        = 0.03
	EnemyFireElevation     = 30.0 // Degrees either side of the plane
	EnemyBulletSpeed       = 5.0
	EnemySlowBulletSpeed   = 4.0
	EnemySlowStyleFrom     = 3 // Styles from this index fire slower bullets
	EnemyHitRadiusPerSize  = 35.0
	EnemyBodyRadius        = 40.0
	EnemyBodyRadiusPerSize = 30.0
	EnemyRamNudge          = 20.0
	EnemyBulletPathSamples = 11
)

// Helper craft
const (
	HelperUnlockKills = 3
	HelperShotSeconds = 1.0
	HelperOffsetX     = -30.0
)

// Asteroids
const (
	InitialAsteroids       = 10
	AsteroidPopulationCap  = 20
	AsteroidTypes          = 3
	AsteroidMinSize        = 8.0
	AsteroidMaxSize        = 18.0
	AsteroidBulletRadius   = 5.0 // Added to asteroid size for bullet hits
	AsteroidBulletDamage   = 5.0
	AsteroidSplitSize      = 10.0 // Shatter when size drops below this
	ChildMinSize           = 7.0
	ChildMaxSize           = 12.0
	ChildOffset            = 10.0
	ChildSpeedBoost        = 1.2
	SplitTypeInheritChance = 0.7
	WrapJitterDegrees      = 30.0
	ShieldBounceFactor     = -1.5
	ShieldBounceJitter     = 0.2
	ShieldContactInset     = 5.0
)

// Asteroid trail
const (
	TrailSpawnChance = 0.3
	TrailLargeSize   = 15.0 // Asteroids bigger than this keep the long trail
	TrailCapLarge    = 15
	TrailCapSmall    = 8
	TrailShrinkRate  = 0.5
)

// Pickups and effects
const (
	GiftPickupRadius      = 35.0
	GiftPulseRate         = 3.0
	BulletCollisionRadius = 15.0
	AuroraSeconds         = 1.5
	AuroraColorCount      = 5
)

// Backdrop
const (
	StarCount   = 300
	PlanetCount = 15
)

// Camera
const (
	CameraStep      = 10.0
	CameraMaxX      = 2000.0
	CameraMinZ      = 20.0
	CameraMaxZ      = 2000.0
	CameraStartY    = -800.0
	CameraStartZ    = 800.0
	FirstPersonZoom = 3.0
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 5.0 // Seconds to show shutdown message before disconnect
)
