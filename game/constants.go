package game

import "github.com/tsoding/zzzwe"

// Gameplay constants, fixed at build time. Distances and speeds are in
// world units (one unit is one pixel at the reference resolution).
const (
	playerRadius        = 69.0
	playerSpeed         = 1000.0
	playerMaxHealth     = 100.0
	playerShootCooldown = 0.25 // seconds between shots while firing

	bulletRadius   = 42.0
	bulletSpeed    = 2000.0
	bulletLifetime = 5.0

	enemyRadius        = 69.0
	enemySpeed         = playerSpeed / 3
	enemyDamage        = 20.0
	enemyKillScore     = 100
	enemySpawnDistance = 1500.0
	enemySpawnCooldown = 1.25  // initial seconds between spawns
	enemySpawnRamp     = 0.95  // cooldown multiplier per spawn
	enemySpawnGrowth   = 140.0 // radius growth per second while materializing
	enemyDespawnRange  = 2.5 * enemySpawnDistance

	particleBurstMax  = 50
	particleLifetime  = 0.7
	particleMaxSpeed  = 500.0
	particleRadiusMin = 5.0
	particleRadiusMax = 25.0

	trailDotCooldown = 1.0 / 30
	trailStartAlpha  = 0.7
	trailFadeRate    = 2.0 // alpha lost per second
	trailDotScale    = 0.8 // dot radius relative to owner radius

	deathSlowdown = 50.0 // dt divisor after the player dies

	tutorialFadeDuration = 0.5
)

// Palette. Eagerly computed; a malformed constant is fatal at startup.
var (
	playerColor   = zzzwe.MustHex("#f43841")
	enemyColor    = zzzwe.MustHex("#9e95c7")
	bulletColor   = zzzwe.MustHex("#f43841")
	particleColor = zzzwe.MustHex("#9e95c7")
	messageColor  = zzzwe.MustHex("#ffffff")
)
