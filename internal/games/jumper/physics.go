package jumper

// applyInput converts held directional actions into horizontal
// velocity. Velocity decays by the damping factor every tick so the
// player drifts to a stop when no direction is held.
func (g *Game) applyInput(left, right bool) {
	switch {
	case left && !right:
		g.playerVX = -g.cfg.Physics.MoveSpeed
	case right && !left:
		g.playerVX = g.cfg.Physics.MoveSpeed
	default:
		g.playerVX *= g.cfg.Physics.Damping
		if g.playerVX > -0.01 && g.playerVX < 0.01 {
			g.playerVX = 0
		}
	}
}

// integrate advances player position by one tick. Vertical motion
// depends on the active ability: rocket and propeller override
// velocity entirely, cape falls under reduced gravity with a low
// terminal speed, otherwise plain gravity applies.
func (g *Game) integrate() {
	switch g.ability.Kind {
	case AbilityRocket:
		g.playerVY = g.cfg.Physics.RocketSpeed
	case AbilityPropeller:
		g.playerVY = g.cfg.Physics.PropellerSpeed
	case AbilityCape:
		if g.playerVY > 0 {
			// Gliding: slow the descent
			g.playerVY += g.cfg.Physics.CapeGravity
			if g.playerVY > g.cfg.Physics.CapeMaxFall {
				g.playerVY = g.cfg.Physics.CapeMaxFall
			}
		} else {
			g.playerVY += g.cfg.Physics.Gravity
		}
	default:
		g.playerVY += g.cfg.Physics.Gravity
	}

	g.playerX += g.playerVX
	g.playerY += g.playerVY

	g.wrapPlayer()
}

// wrapPlayer teleports the player across the side edges, keeping the
// hitbox center continuous: leaving on the left re-enters on the
// right and vice versa.
func (g *Game) wrapPlayer() {
	w := g.cfg.Player.Width
	switch {
	case g.playerX+w < 0:
		g.playerX = g.worldW
	case g.playerX > g.worldW:
		g.playerX = -w
	}
}
