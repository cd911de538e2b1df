package jumper

import (
	"math/rand"

	"github.com/vkozyrev/skyhop/internal/config"
	"github.com/vkozyrev/skyhop/internal/core"
)

// testRuntime is the fixed screen used across unit tests.
var testRuntime = core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: 42}

// newTestGame builds a running game with default config and no world,
// so tests can place entities by hand without generator interference.
func newTestGame() *Game {
	g := New()
	g.rt = testRuntime
	g.worldW = float64(testRuntime.ScreenW)
	g.rng = rand.New(rand.NewSource(testRuntime.Seed))
	g.cfg = config.DefaultJumperConfig()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.phase = PhaseRunning
	g.playerX = 28
	g.playerY = 20
	g.startY = 20
	g.topY = 100
	return g
}

// newStartedGame builds a game through the normal Reset path with the
// default config pinned, then advances it into the running phase.
func newStartedGame() *Game {
	g := New()
	g.Reset(testRuntime)
	g.cfg = config.DefaultJumperConfig()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	return g
}

// input builds an InputFrame with the given actions held.
func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}
