package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedWorldStartsWithGround(t *testing.T) {
	g := newTestGame()
	g.cameraY = 0
	g.seedWorld()

	require.NotEmpty(t, g.platforms)
	ground := g.platforms[0]
	assert.Equal(t, 0.0, ground.X)
	assert.Equal(t, g.worldW, ground.W, "ground spans the full world width")
	assert.Equal(t, PlatformNormal, ground.Type)
	assert.Equal(t, g.playerY+g.cfg.Player.Height, ground.Y, "ground sits under the spawn point")
}

func TestExtendWorldCoversLeadMargin(t *testing.T) {
	g := newTestGame()
	g.cameraY = 0
	g.seedWorld()

	limit := g.cameraY - g.cfg.World.LeadMargin
	assert.LessOrEqual(t, g.topY, limit,
		"generation must reach past the margin above the camera")

	// Scrolling up extends further
	g.cameraY = -50
	g.extendWorld()
	assert.LessOrEqual(t, g.topY, g.cameraY-g.cfg.World.LeadMargin)
}

func TestGeneratedGapsWithinBounds(t *testing.T) {
	g := newTestGame()
	g.cameraY = -500
	g.topY = 0
	g.extendWorld()

	require.Greater(t, len(g.platforms), 10)
	maxGap := g.diff.MaxGap(g.cfg.Platforms.MaxGap, g.score, g.tickCount)
	for i := 1; i < len(g.platforms); i++ {
		gap := g.platforms[i-1].Y - g.platforms[i].Y
		assert.GreaterOrEqual(t, gap, g.cfg.Platforms.MinGap)
		assert.LessOrEqual(t, gap, maxGap)
	}
}

func TestGeneratedPlatformsInsideWorld(t *testing.T) {
	g := newTestGame()
	g.cameraY = -500
	g.topY = 0
	g.extendWorld()

	for _, p := range g.platforms {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X+p.W, g.worldW)
	}
}

func TestNoEnemiesBeforeMinClimb(t *testing.T) {
	g := newTestGame()
	g.climb = 0
	g.cameraY = -2000
	g.topY = 0
	g.extendWorld()

	assert.Empty(t, g.enemies, "enemies must not spawn before the minimum climb depth")
}

func TestEnemiesSpawnAfterMinClimb(t *testing.T) {
	g := newTestGame()
	g.climb = g.cfg.Enemies.MinDepth + 1
	g.cameraY = -5000
	g.topY = 0
	g.extendWorld()

	assert.NotEmpty(t, g.enemies, "a 5000-cell column should roll at least one enemy")
}

func TestCullRemovesEntitiesBelowBand(t *testing.T) {
	g := newTestGame()
	g.cameraY = 0
	floor := g.cameraY + float64(g.rt.ScreenH) + g.cfg.World.CullMargin

	g.platforms = []Platform{
		{X: 10, Y: floor - 1, W: 10, H: 1},
		{X: 10, Y: floor + 1, W: 10, H: 1},
	}
	g.gems = []Gem{{X: 10, Y: floor + 5, W: 2, H: 1}}
	g.enemies = []Enemy{{X: 10, Y: floor + 5, W: 4, H: 2}}
	g.pickups = []Pickup{{X: 10, Y: floor + 5, W: 2, H: 1}}

	g.cullWorld()
	require.Len(t, g.platforms, 1)
	assert.Equal(t, floor-1, g.platforms[0].Y)
	assert.Empty(t, g.gems)
	assert.Empty(t, g.enemies)
	assert.Empty(t, g.pickups)
}

func TestCullKeepsBrokenPlatformInView(t *testing.T) {
	g := newTestGame()
	g.cameraY = 0
	g.platforms = []Platform{{X: 10, Y: 15, W: 10, H: 1, Type: PlatformBreakable, Broken: true}}

	g.cullWorld()
	assert.Len(t, g.platforms, 1, "broken platforms stay until they scroll out")
}

func TestCullRemovesConsumedEntities(t *testing.T) {
	g := newTestGame()
	g.cameraY = 0
	g.gems = []Gem{{X: 10, Y: 15, W: 2, H: 1, Collected: true}}
	g.enemies = []Enemy{{X: 10, Y: 15, W: 4, H: 2, Dead: true}}
	g.pickups = []Pickup{{X: 10, Y: 15, W: 2, H: 1, Collected: true}}

	g.cullWorld()
	assert.Empty(t, g.gems)
	assert.Empty(t, g.enemies)
	assert.Empty(t, g.pickups)
}

func TestItemRollsAreIndependent(t *testing.T) {
	g := newTestGame()
	g.cfg.Gems.SpawnChance = 100
	g.cfg.Enemies.SpawnChance = 100
	g.cfg.Powerups.SpawnChance = 100
	g.climb = g.cfg.Enemies.MinDepth + 1

	g.populatePlatform(Platform{X: 10, Y: 50, W: 10, H: 1, Type: PlatformBreakable})
	assert.Len(t, g.gems, 1, "gem roll must not be gated by the other rolls")
	assert.Len(t, g.enemies, 1, "enemy roll must not be gated by the gem roll")
	assert.Len(t, g.pickups, 1, "pickup roll must not be gated by the other rolls")
}

func TestPickWeightedRespectsZeroWeights(t *testing.T) {
	g := newTestGame()
	entries := []weighted[string]{
		{"never", 0},
		{"always", 10},
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, "always", pickWeighted(g.rng, entries))
	}
}

func TestPickWeightedAllZeroFallsBack(t *testing.T) {
	g := newTestGame()
	entries := []weighted[string]{{"first", 0}, {"second", 0}}
	assert.Equal(t, "first", pickWeighted(g.rng, entries))
}

func TestRandRangeBounds(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 1000; i++ {
		v := randRange(g.rng, 3, 8)
		assert.GreaterOrEqual(t, v, 3.0)
		assert.Less(t, v, 8.0)
	}
	assert.Equal(t, 5.0, randRange(g.rng, 5, 5))
}
