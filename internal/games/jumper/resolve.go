package jumper

import (
	"math"

	"github.com/vkozyrev/skyhop/internal/core"
)

// moveEntities advances moving platforms and enemies by one tick.
// Both bounce off the world's side edges. speedMul comes from the
// difficulty manager.
func (g *Game) moveEntities(speedMul float64) {
	for i := range g.platforms {
		p := &g.platforms[i]
		if p.Type != PlatformMoving {
			continue
		}
		p.X += p.VX * speedMul
		if p.X < 0 {
			p.X = 0
			p.VX = -p.VX
		} else if p.X+p.W > g.worldW {
			p.X = g.worldW - p.W
			p.VX = -p.VX
		}
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Dead {
			continue
		}
		e.X += e.VX * speedMul
		if e.X < 0 {
			e.X = 0
			e.VX = -e.VX
		} else if e.X+e.W > g.worldW {
			e.X = g.worldW - e.W
			e.VX = -e.VX
		}
	}
}

// resolveLandings checks the player against every landable platform
// and applies at most one bounce per tick, taken in platform creation
// order. A landing requires a descending player whose hitbox bottom
// crossed the platform top during this tick's movement, with
// horizontal overlap. Rocket and propeller flight ignores platforms.
func (g *Game) resolveLandings() {
	if g.playerVY <= 0 {
		return
	}
	if g.ability.Kind == AbilityRocket || g.ability.Kind == AbilityPropeller {
		return
	}

	bottom := g.playerY + g.cfg.Player.Height
	slack := g.cfg.Physics.LandingSlack

	for i := range g.platforms {
		p := &g.platforms[i]
		if p.Broken {
			continue
		}
		if g.playerX+g.cfg.Player.Width <= p.X || g.playerX >= p.X+p.W {
			continue
		}
		if bottom <= p.Y || bottom > p.Y+g.playerVY+slack {
			continue
		}

		g.landOn(p)
		return
	}
}

// landOn snaps the player onto the platform and applies the bounce.
func (g *Game) landOn(p *Platform) {
	g.playerY = p.Y - g.cfg.Player.Height

	mult := 1.0
	switch p.Type {
	case PlatformSpring:
		mult = g.cfg.Platforms.SpringBounce
	case PlatformBreakable:
		mult = g.cfg.Platforms.BreakableBounce
		p.Broken = true
		g.spawnBurst(p.X+p.W/2, p.Y, 4, '▪')
	}

	if g.ability.Kind == AbilitySpringShoes {
		mult *= g.cfg.Powerups.SpringShoesBounce
		g.ability.JumpsLeft--
		if g.ability.JumpsLeft <= 0 {
			g.ability = Ability{}
		}
	}

	g.playerVY = g.cfg.Physics.JumpImpulse * mult
}

// applyMagnet pulls nearby gems toward the player while the magnet
// ability is active. Pull strength falls off linearly with distance.
func (g *Game) applyMagnet() {
	if g.ability.Kind != AbilityMagnet {
		return
	}

	cx := g.playerX + g.cfg.Player.Width/2
	cy := g.playerY + g.cfg.Player.Height/2
	radius := g.cfg.Powerups.MagnetRadius

	for i := range g.gems {
		gem := &g.gems[i]
		if gem.Collected {
			continue
		}
		gx := gem.X + gem.W/2
		gy := gem.Y + gem.H/2
		dist := core.Dist(cx, cy, gx, gy)
		if dist >= radius || dist < 0.001 {
			continue
		}
		pull := (radius - dist) / radius * g.cfg.Powerups.MagnetPull
		if pull > dist {
			pull = dist
		}
		gem.X += (cx - gx) / dist * pull
		gem.Y += (cy - gy) / dist * pull
	}
}

// collectItems picks up overlapping gems and power-ups.
func (g *Game) collectItems() {
	player := g.playerRect()

	for i := range g.gems {
		gem := &g.gems[i]
		if gem.Collected {
			continue
		}
		box := core.NewFRect(gem.X, gem.Y, gem.W, gem.H)
		if player.Overlaps(box) {
			gem.Collected = true
			g.bonus += gem.Value
			g.spawnBurst(gem.X+gem.W/2, gem.Y, 3, '✦')
		}
	}

	for i := range g.pickups {
		pk := &g.pickups[i]
		if pk.Collected {
			continue
		}
		box := core.NewFRect(pk.X, pk.Y, pk.W, pk.H)
		if player.Overlaps(box) {
			pk.Collected = true
			g.grantAbility(pk.Type)
		}
	}
}

// fireWeapon spawns bullets when a weapon ability is held, fire is
// pressed, and the cooldown has elapsed. The shot auto-aims at the
// nearest living enemy within aim radius, otherwise fires straight up.
func (g *Game) fireWeapon(fire bool) {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if !fire || !g.ability.Kind.IsWeapon() || g.cooldown > 0 {
		return
	}

	cx := g.playerX + g.cfg.Player.Width/2
	cy := g.playerY

	dx, dy := g.aimAt(cx, cy)

	speed := g.cfg.Weapons.BulletSpeed
	switch g.ability.Kind {
	case AbilityLaser:
		g.bullets = append(g.bullets, Bullet{X: cx, Y: cy, VX: dx * speed, VY: dy * speed})
		g.cooldown = g.cfg.Weapons.LaserCooldown
	case AbilityShotgun:
		spread := g.cfg.Weapons.ShotgunSpread
		for _, a := range []float64{-spread, 0, spread} {
			rx, ry := rotate(dx, dy, a)
			g.bullets = append(g.bullets, Bullet{X: cx, Y: cy, VX: rx * speed, VY: ry * speed})
		}
		g.cooldown = g.cfg.Weapons.ShotgunCooldown
	case AbilityTommyGun:
		jitter := randRange(g.rng, -g.cfg.Weapons.TommyGunJitter, g.cfg.Weapons.TommyGunJitter)
		rx, ry := rotate(dx, dy, jitter)
		g.bullets = append(g.bullets, Bullet{X: cx, Y: cy, VX: rx * speed, VY: ry * speed})
		g.cooldown = g.cfg.Weapons.TommyGunCooldown
	}
}

// aimAt returns a unit direction toward the nearest living enemy
// within aim radius of (cx, cy), or straight up if none qualifies.
func (g *Game) aimAt(cx, cy float64) (float64, float64) {
	bestDist := g.cfg.Weapons.AimRadius
	dx, dy := 0.0, -1.0
	found := false

	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Dead {
			continue
		}
		ex := e.X + e.W/2
		ey := e.Y + e.H/2
		dist := core.Dist(cx, cy, ex, ey)
		if dist < bestDist || (!found && dist == bestDist) {
			bestDist = dist
			found = true
			if dist > 0.001 {
				dx = (ex - cx) / dist
				dy = (ey - cy) / dist
			}
		}
	}
	return dx, dy
}

// rotate rotates the vector (x, y) by angle radians.
func rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// updateBullets integrates projectiles, kills the first enemy each
// bullet touches, and culls bullets that leave the active band.
func (g *Game) updateBullets() {
	top := g.cameraY - g.cfg.World.LeadMargin
	bottom := g.cameraY + float64(g.rt.ScreenH) + g.cfg.World.CullMargin

	for i := range g.bullets {
		b := &g.bullets[i]
		if b.Spent {
			continue
		}
		b.X += b.VX
		b.Y += b.VY

		if b.Y < top || b.Y > bottom || b.X < 0 || b.X > g.worldW {
			b.Spent = true
			continue
		}

		for j := range g.enemies {
			e := &g.enemies[j]
			if e.Dead {
				continue
			}
			if b.X >= e.X && b.X <= e.X+e.W && b.Y >= e.Y && b.Y <= e.Y+e.H {
				e.Dead = true
				b.Spent = true
				g.bonus += g.cfg.Enemies.KillBonus
				g.spawnBurst(e.X+e.W/2, e.Y+e.H/2, 5, '*')
				break
			}
		}
	}

	active := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.Spent {
			active = append(active, b)
		}
	}
	g.bullets = active
}

// checkEnemyContact resolves body contact between the player and
// living enemies. Contact boxes are shrunk by the configured inset so
// grazing passes do not register. Invincibility frames suppress all
// contact resolution.
func (g *Game) checkEnemyContact() {
	if g.invincible > 0 {
		return
	}

	player := g.playerRect()
	inset := g.cfg.Enemies.ContactInset

	for i := range g.enemies {
		e := &g.enemies[i]
		if e.Dead {
			continue
		}
		box := core.NewFRect(e.X, e.Y, e.W, e.H)
		if !player.OverlapsInset(box, inset) {
			continue
		}

		outcome := g.resolveContact(e)
		switch outcome {
		case contactFatal:
			g.endRun()
		case contactKillBounce, contactKill:
			g.bonus += g.cfg.Enemies.KillBonus
			g.spawnBurst(e.X+e.W/2, e.Y+e.H/2, 5, '*')
		}
		return
	}
}

// spawnBurst emits a small radial particle burst at (x, y).
func (g *Game) spawnBurst(x, y float64, count int, char rune) {
	for i := 0; i < count; i++ {
		angle := randRange(g.rng, 0, 2*math.Pi)
		speed := randRange(g.rng, 0.2, 0.7)
		g.particles = append(g.particles, Particle{
			X: x, Y: y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle)*speed - 0.3,
			Life: 12 + g.rng.Intn(10),
			Char: char,
		})
	}
}

// updateParticles integrates and expires particle effects.
func (g *Game) updateParticles() {
	for i := range g.particles {
		p := &g.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += 0.04
		p.Life--
	}

	active := g.particles[:0]
	for _, p := range g.particles {
		if p.Life > 0 {
			active = append(active, p)
		}
	}
	g.particles = active
}
