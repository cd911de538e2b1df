package jumper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravityAccelerates(t *testing.T) {
	g := newTestGame()
	g.playerVY = 0

	g.integrate()
	assert.Equal(t, g.cfg.Physics.Gravity, g.playerVY)

	g.integrate()
	assert.Equal(t, 2*g.cfg.Physics.Gravity, g.playerVY)
}

func TestInputSetsHorizontalVelocity(t *testing.T) {
	g := newTestGame()

	g.applyInput(true, false)
	assert.Equal(t, -g.cfg.Physics.MoveSpeed, g.playerVX)

	g.applyInput(false, true)
	assert.Equal(t, g.cfg.Physics.MoveSpeed, g.playerVX)

	// Both held cancel out into damping
	g.applyInput(true, true)
	assert.Equal(t, g.cfg.Physics.MoveSpeed*g.cfg.Physics.Damping, g.playerVX)
}

func TestDampingStopsDrift(t *testing.T) {
	g := newTestGame()
	g.playerVX = g.cfg.Physics.MoveSpeed

	for i := 0; i < 200; i++ {
		g.applyInput(false, false)
	}
	assert.Zero(t, g.playerVX, "velocity should decay to exactly zero")
}

func TestEdgeWrap(t *testing.T) {
	g := newTestGame()

	// Fully off the left edge re-enters on the right
	g.playerX = -g.cfg.Player.Width - 1
	g.wrapPlayer()
	assert.Equal(t, g.worldW, g.playerX)

	// Past the right edge re-enters on the left
	g.playerX = g.worldW + 1
	g.wrapPlayer()
	assert.Equal(t, -g.cfg.Player.Width, g.playerX)

	// Touching an edge does not wrap
	g.playerX = 0
	g.wrapPlayer()
	assert.Equal(t, 0.0, g.playerX)
}

func TestRocketOverridesVertical(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityRocket, FramesLeft: 100}
	g.playerVY = 3.0

	g.integrate()
	assert.Equal(t, g.cfg.Physics.RocketSpeed, g.playerVY)
}

func TestPropellerOverridesVertical(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityPropeller, FramesLeft: 100}
	g.playerVY = 3.0

	g.integrate()
	assert.Equal(t, g.cfg.Physics.PropellerSpeed, g.playerVY)
}

func TestCapeLimitsFallSpeed(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityCape}
	g.playerVY = 0.01

	for i := 0; i < 100; i++ {
		g.integrate()
	}
	assert.LessOrEqual(t, g.playerVY, g.cfg.Physics.CapeMaxFall)
	assert.Greater(t, g.playerVY, 0.0)
}

func TestCapeRisesUnderNormalGravity(t *testing.T) {
	g := newTestGame()
	g.ability = Ability{Kind: AbilityCape}
	g.playerVY = g.cfg.Physics.JumpImpulse

	g.integrate()
	assert.Equal(t, g.cfg.Physics.JumpImpulse+g.cfg.Physics.Gravity, g.playerVY,
		"ascending cape should not glide")
}
