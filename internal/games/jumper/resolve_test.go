package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeLanding positions the player just after crossing the platform
// top with the given downward velocity, as integrate would leave it.
func placeLanding(g *Game, p Platform, vy float64) {
	g.playerVY = vy
	g.playerX = p.X + 2
	g.playerY = p.Y + 0.5 - g.cfg.Player.Height
}

func TestLandingBounces(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1, Type: PlatformNormal}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)

	g.resolveLandings()
	assert.Equal(t, g.cfg.Physics.JumpImpulse, g.playerVY)
	assert.Equal(t, p.Y-g.cfg.Player.Height, g.playerY, "player snaps onto the platform top")
}

func TestNoLandingWhileAscending(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)
	g.playerVY = -1.0

	g.resolveLandings()
	assert.Equal(t, -1.0, g.playerVY)
}

func TestNoLandingWithoutHorizontalOverlap(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)
	g.playerX = p.X + p.W + 1

	g.resolveLandings()
	assert.Equal(t, 2.0, g.playerVY)
}

func TestNoLandingDuringRocketFlight(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)
	g.ability = Ability{Kind: AbilityRocket, FramesLeft: 10}

	g.resolveLandings()
	assert.Equal(t, 2.0, g.playerVY)
}

func TestFastFallStillLands(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1}
	g.platforms = []Platform{p}

	// A 5-cell-per-tick fall ends 4 cells past the platform top; the
	// crossing window must still catch it.
	g.playerVY = 5.0
	g.playerX = p.X + 2
	g.playerY = p.Y + 4 - g.cfg.Player.Height

	g.resolveLandings()
	assert.Equal(t, g.cfg.Physics.JumpImpulse, g.playerVY)
}

func TestTunnelBeyondWindowMisses(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1}
	g.platforms = []Platform{p}

	// Bottom ended below platform top + vy + slack: the crossing
	// happened on an earlier tick and must not re-trigger.
	g.playerVY = 2.0
	g.playerX = p.X + 2
	g.playerY = p.Y + 4 - g.cfg.Player.Height

	g.resolveLandings()
	assert.Equal(t, 2.0, g.playerVY)
}

func TestOneLandingPerTick(t *testing.T) {
	g := newTestGame()
	// Two stacked candidates both within the crossing window; the
	// first in creation order wins.
	spring := Platform{X: 20, Y: 30, W: 10, H: 1, Type: PlatformSpring}
	normal := Platform{X: 20, Y: 30.2, W: 10, H: 1, Type: PlatformNormal}
	g.platforms = []Platform{normal, spring}
	g.playerVY = 2.0
	g.playerX = 22
	g.playerY = 30.5 - g.cfg.Player.Height

	g.resolveLandings()
	assert.Equal(t, g.cfg.Physics.JumpImpulse, g.playerVY,
		"normal platform was created first and takes the landing")
}

func TestSpringPlatformBouncesHigher(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1, Type: PlatformSpring}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)

	g.resolveLandings()
	assert.Equal(t, g.cfg.Physics.JumpImpulse*g.cfg.Platforms.SpringBounce, g.playerVY)
}

func TestBreakablePlatformBreaksOnce(t *testing.T) {
	g := newTestGame()
	p := Platform{X: 20, Y: 30, W: 10, H: 1, Type: PlatformBreakable}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)

	g.resolveLandings()
	assert.Equal(t, g.cfg.Physics.JumpImpulse*g.cfg.Platforms.BreakableBounce, g.playerVY)
	require.True(t, g.platforms[0].Broken)

	// Broken platforms no longer land
	placeLanding(g, p, 2.0)
	g.resolveLandings()
	assert.Equal(t, 2.0, g.playerVY)
}

func TestSpringShoesStackWithPlatformBounce(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilitySpringShoes, JumpsLeft: 5}
	p := Platform{X: 20, Y: 30, W: 10, H: 1, Type: PlatformSpring}
	g.platforms = []Platform{p}
	placeLanding(g, p, 2.0)

	g.resolveLandings()
	want := g.cfg.Physics.JumpImpulse * g.cfg.Platforms.SpringBounce * g.cfg.Powerups.SpringShoesBounce
	assert.Equal(t, want, g.playerVY)
}

func TestMagnetPullsGems(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityMagnet, FramesLeft: 100}
	g.gems = []Gem{{X: g.playerX + 8, Y: g.playerY, W: 2, H: 1, Value: 10}}
	startX := g.gems[0].X

	g.applyMagnet()
	assert.Less(t, g.gems[0].X, startX, "gem should move toward the player")
}

func TestMagnetIgnoresDistantGems(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityMagnet, FramesLeft: 100}
	far := g.cfg.Powerups.MagnetRadius + 10
	g.gems = []Gem{{X: g.playerX + far, Y: g.playerY, W: 2, H: 1, Value: 10}}
	startX := g.gems[0].X

	g.applyMagnet()
	assert.Equal(t, startX, g.gems[0].X)
}

func TestGemCollection(t *testing.T) {
	g := newTestGame()
	g.gems = []Gem{{X: g.playerX, Y: g.playerY, W: 2, H: 1, Value: 25}}

	g.collectItems()
	assert.True(t, g.gems[0].Collected)
	assert.Equal(t, 25, g.bonus)

	// A collected gem never scores twice
	g.collectItems()
	assert.Equal(t, 25, g.bonus)
}

func TestPickupCollectionGrantsAbility(t *testing.T) {
	g := newTestGame()
	g.pickups = []Pickup{{X: g.playerX, Y: g.playerY, W: 2, H: 1, Type: PowerupPropeller}}

	g.collectItems()
	assert.True(t, g.pickups[0].Collected)
	assert.Equal(t, AbilityPropeller, g.ability.Kind)
	assert.Equal(t, g.cfg.Powerups.PropellerFrames, g.ability.FramesLeft)
}

func TestInvincibilitySuppressesContact(t *testing.T) {
	g := newTestGame()
	g.invincible = 10
	g.enemies = []Enemy{{X: g.playerX, Y: g.playerY, W: 4, H: 2}}

	g.checkEnemyContact()
	assert.Equal(t, PhaseRunning, g.phase)
	assert.False(t, g.enemies[0].Dead)
}

func TestBareContactEndsRun(t *testing.T) {
	g := newTestGame()
	g.enemies = []Enemy{{X: g.playerX, Y: g.playerY, W: 4, H: 2}}

	g.checkEnemyContact()
	assert.Equal(t, PhaseEnded, g.phase)
}

func TestContactInsetForgivesGraze(t *testing.T) {
	g := newTestGame()
	// Overlap thinner than twice the inset on each axis
	g.enemies = []Enemy{{
		X: g.playerX + g.cfg.Player.Width - 0.3,
		Y: g.playerY, W: 4, H: 2,
	}}

	g.checkEnemyContact()
	assert.Equal(t, PhaseRunning, g.phase, "grazing contact should not register")
}

func TestWeaponFiresAndKills(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityLaser}
	g.enemies = []Enemy{{X: g.playerX, Y: g.playerY - 10, W: 4, H: 2}}

	g.fireWeapon(true)
	require.Len(t, g.bullets, 1)

	for i := 0; i < 30 && !g.enemies[0].Dead; i++ {
		g.updateBullets()
	}
	assert.True(t, g.enemies[0].Dead)
	assert.Equal(t, g.cfg.Enemies.KillBonus, g.bonus)
	assert.Empty(t, g.bullets, "spent bullets are culled")
}

func TestShotgunFiresThreeBullets(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityShotgun}

	g.fireWeapon(true)
	assert.Len(t, g.bullets, 3)
}

func TestWeaponCooldown(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityLaser}

	g.fireWeapon(true)
	require.Len(t, g.bullets, 1)

	// Held fire during cooldown adds nothing
	g.fireWeapon(true)
	assert.Len(t, g.bullets, 1)

	for i := 0; i < g.cfg.Weapons.LaserCooldown+1; i++ {
		g.fireWeapon(false)
	}
	g.fireWeapon(true)
	assert.Len(t, g.bullets, 2)
}

func TestNoFireWithoutWeapon(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityCape}

	g.fireWeapon(true)
	assert.Empty(t, g.bullets)
}

func TestMovingPlatformBouncesOffEdges(t *testing.T) {
	g := newTestGame()
	g.platforms = []Platform{{X: 1, Y: 30, W: 10, H: 1, Type: PlatformMoving, VX: -2}}

	g.moveEntities(1.0)
	assert.Equal(t, 0.0, g.platforms[0].X)
	assert.Equal(t, 2.0, g.platforms[0].VX, "velocity reverses at the edge")
}

func TestParticlesExpire(t *testing.T) {
	g := newTestGame()
	g.spawnBurst(30, 15, 5, '*')
	require.NotEmpty(t, g.particles)

	for i := 0; i < 60; i++ {
		g.updateParticles()
	}
	assert.Empty(t, g.particles)
}
