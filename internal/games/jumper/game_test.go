package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkozyrev/skyhop/internal/core"
	"github.com/vkozyrev/skyhop/internal/registry"
)

var _ registry.Game = (*Game)(nil)

func TestResetInitialState(t *testing.T) {
	g := newStartedGame()

	st := g.State()
	assert.Zero(t, st.Score)
	assert.False(t, st.GameOver)
	assert.False(t, st.Paused)
	assert.Equal(t, PhaseReady, g.phase)
	assert.NotEmpty(t, g.platforms)
	assert.False(t, g.ability.Active())
}

func TestFirstStepStartsRun(t *testing.T) {
	g := newStartedGame()

	g.Step(input())
	assert.Equal(t, PhaseRunning, g.phase)
	assert.Equal(t, 1, g.tickCount)
}

func TestDeterminism(t *testing.T) {
	script := func(g *Game) {
		for i := 0; i < 600; i++ {
			in := input()
			if i%7 < 3 {
				in.Set(core.ActionRight)
			} else if i%11 < 4 {
				in.Set(core.ActionLeft)
			}
			g.Step(in)
		}
	}

	a := newStartedGame()
	b := newStartedGame()
	script(a)
	script(b)

	assert.Equal(t, a.Snapshot(), b.Snapshot(),
		"same seed and input script must reproduce the same run")
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newStartedGame()

	prev := 0
	for i := 0; i < 2000; i++ {
		in := input()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		st := g.Step(in).State
		require.GreaterOrEqual(t, st.Score, prev, "tick %d", i)
		prev = st.Score
		if st.GameOver {
			break
		}
	}
}

func TestDeathFrameBonusCountsInFinalScore(t *testing.T) {
	g := newTestGame()
	g.gems = []Gem{{X: g.playerX, Y: g.playerY, W: 2, H: 1, Tier: GemMid, Value: g.cfg.Gems.ValueMid}}
	g.enemies = []Enemy{{X: g.playerX, Y: g.playerY, W: 4, H: 2}}

	// Same resolver order as Step: the gem lands in the same frame
	// as the fatal contact.
	g.collectItems()
	g.checkEnemyContact()

	require.Equal(t, PhaseEnded, g.phase)
	require.True(t, g.gems[0].Collected)
	assert.GreaterOrEqual(t, g.score, g.cfg.Gems.ValueMid, "a gem grabbed on the final frame still counts")
	assert.Equal(t, g.score, g.State().HighScore)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newStartedGame()
	g.Step(input())
	require.Equal(t, PhaseRunning, g.phase)

	g.Step(input(core.ActionPause))
	require.True(t, g.State().Paused)
	tick := g.tickCount
	y := g.playerY

	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionLeft))
	}
	assert.Equal(t, tick, g.tickCount)
	assert.Equal(t, y, g.playerY)

	g.Step(input(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestFallEndsRun(t *testing.T) {
	g := newStartedGame()
	g.Step(input())
	g.playerY = g.cameraY + float64(g.rt.ScreenH) + g.cfg.World.CullMargin + 5
	g.platforms = nil

	st := g.Step(input()).State
	assert.True(t, st.GameOver)
}

func TestFallWithinCullMarginKeepsRunning(t *testing.T) {
	g := newStartedGame()
	g.Step(input())
	g.playerY = g.cameraY + float64(g.rt.ScreenH) + g.cfg.World.CullMargin - 1
	g.playerVY = 0
	g.platforms = nil

	st := g.Step(input()).State
	assert.False(t, st.GameOver, "the run ends at the cull margin, not the screen edge")
}

func TestFallRescueConsumesProtectiveAbility(t *testing.T) {
	g := newStartedGame()
	g.Step(input())
	g.ability = Ability{Kind: AbilityShield}
	g.playerY = g.cameraY + float64(g.rt.ScreenH) + g.cfg.World.CullMargin + 5
	g.platforms = nil
	g.topY = g.cameraY - 100 // suppress regeneration under the player

	st := g.Step(input()).State
	assert.False(t, st.GameOver, "a protective ability is spent instead of ending the run")
	assert.False(t, g.ability.Active())
	assert.Positive(t, g.invincible)
	assert.LessOrEqual(t, g.playerY, g.cameraY+float64(g.rt.ScreenH))
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := newStartedGame()
	g.bonus = 1234
	g.endRun()
	require.Equal(t, 1234, g.highScore)

	g.Reset(testRuntime)
	assert.Equal(t, 1234, g.State().HighScore)
	assert.Zero(t, g.State().Score)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newStartedGame()
	g.bonus = 50
	g.endRun()

	// Non-restart input is ignored while ended
	g.Step(input(core.ActionLeft))
	require.True(t, g.State().GameOver)

	g.Step(input(core.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Zero(t, g.State().Score)
	assert.Equal(t, 50, g.State().HighScore)
}

func TestCameraOnlyScrollsUp(t *testing.T) {
	g := newStartedGame()
	g.Step(input())
	g.cameraY = -100

	// A falling player must not drag the camera back down
	g.playerY = -80
	g.playerVY = 2.0
	g.updateCamera()
	assert.Equal(t, -100.0, g.cameraY)

	// Climbing past the anchor scrolls up
	g.playerY = -120
	g.updateCamera()
	assert.Less(t, g.cameraY, -100.0)
}

func TestClimbIsMonotonic(t *testing.T) {
	g := newStartedGame()
	g.Step(input())

	g.playerY = g.startY - 40
	g.updateCamera()
	require.Equal(t, 40.0, g.climb)

	g.playerY = g.startY - 10
	g.updateCamera()
	assert.Equal(t, 40.0, g.climb, "falling back down keeps the best climb")
}

func TestHeightReportsClimb(t *testing.T) {
	g := newStartedGame()
	g.climb = 123.7
	assert.Equal(t, 123, g.Height())
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := newStartedGame()
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	for i := 0; i < 120; i++ {
		g.Step(input(core.ActionRight))
		g.Render(screen)
	}

	g.endRun()
	g.Render(screen)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newStartedGame()
	g.Step(input())
	snap := g.Snapshot()
	require.NotEmpty(t, snap.Platforms)

	before := snap.Platforms[0]
	for i := 0; i < 60; i++ {
		g.Step(input())
	}
	assert.Equal(t, before, snap.Platforms[0], "snapshot must not alias live state")
}

func TestGameMetadata(t *testing.T) {
	g := New()
	assert.Equal(t, "jumper", g.ID())
	assert.Equal(t, "Sky Hopper", g.Title())
	assert.True(t, registry.Exists("jumper"))
}
