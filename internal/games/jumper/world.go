package jumper

// seedWorld builds the starting layout: a wide ground platform under
// the spawn point plus a column of regular platforms reaching the
// generation margin above the camera. The ground platform is always
// normal so the first bounce is predictable.
func (g *Game) seedWorld() {
	g.platforms = g.platforms[:0]
	g.gems = g.gems[:0]
	g.enemies = g.enemies[:0]
	g.pickups = g.pickups[:0]
	g.bullets = g.bullets[:0]
	g.particles = g.particles[:0]

	groundY := g.playerY + g.cfg.Player.Height
	ground := Platform{
		X: 0, Y: groundY,
		W: g.worldW, H: g.cfg.Platforms.Height,
		Type: PlatformNormal,
	}
	g.platforms = append(g.platforms, ground)
	g.topY = groundY

	g.extendWorld()
}

// extendWorld spawns platforms above the highest existing one until
// the generation margin above the camera is covered. Each new
// platform may also carry a gem, an enemy, or a power-up.
func (g *Game) extendWorld() {
	limit := g.cameraY - g.cfg.World.LeadMargin

	for g.topY > limit {
		maxGap := g.diff.MaxGap(g.cfg.Platforms.MaxGap, g.score, g.tickCount)
		gap := randRange(g.rng, g.cfg.Platforms.MinGap, maxGap)
		y := g.topY - gap

		p := Platform{
			X:    randRange(g.rng, 0, g.worldW-g.cfg.Platforms.Width),
			Y:    y,
			W:    g.cfg.Platforms.Width,
			H:    g.cfg.Platforms.Height,
			Type: g.rollPlatformType(),
		}
		if p.Type == PlatformMoving {
			speed := randRange(g.rng, g.cfg.Platforms.MovingSpeedMin, g.cfg.Platforms.MovingSpeedMax)
			if g.rng.Intn(2) == 0 {
				speed = -speed
			}
			p.VX = speed
		}
		g.platforms = append(g.platforms, p)
		g.topY = y

		g.populatePlatform(p)
	}
}

// rollPlatformType picks a platform type by configured weights.
func (g *Game) rollPlatformType() PlatformType {
	return pickWeighted(g.rng, []weighted[PlatformType]{
		{PlatformNormal, g.cfg.Platforms.WeightNormal},
		{PlatformMoving, g.cfg.Platforms.WeightMoving},
		{PlatformBreakable, g.cfg.Platforms.WeightBreakable},
		{PlatformSpring, g.cfg.Platforms.WeightSpring},
	})
}

// populatePlatform rolls for a gem, an enemy, and a power-up on a
// freshly generated platform. The three rolls are independent, so a
// platform may carry any combination. Enemies stay away until the
// player has climbed far enough.
func (g *Game) populatePlatform(p Platform) {
	if rollPercent(g.rng, g.cfg.Gems.SpawnChance) {
		tier := pickWeighted(g.rng, []weighted[GemTier]{
			{GemLow, g.cfg.Gems.WeightLow},
			{GemMid, g.cfg.Gems.WeightMid},
			{GemHigh, g.cfg.Gems.WeightHigh},
		})
		value := g.cfg.Gems.ValueLow
		switch tier {
		case GemMid:
			value = g.cfg.Gems.ValueMid
		case GemHigh:
			value = g.cfg.Gems.ValueHigh
		}
		g.gems = append(g.gems, Gem{
			X:     p.X + (p.W-g.cfg.Gems.Width)/2,
			Y:     p.Y - g.cfg.Gems.Height - 1,
			W:     g.cfg.Gems.Width,
			H:     g.cfg.Gems.Height,
			Tier:  tier,
			Value: value,
		})
	}

	enemyChance := g.diff.EnemyChance(g.cfg.Enemies.SpawnChance, g.score, g.tickCount)
	if g.climb >= g.cfg.Enemies.MinDepth && rollPercent(g.rng, enemyChance) {
		speed := randRange(g.rng, g.cfg.Enemies.SpeedMin, g.cfg.Enemies.SpeedMax)
		if g.rng.Intn(2) == 0 {
			speed = -speed
		}
		g.enemies = append(g.enemies, Enemy{
			X:  p.X + (p.W-g.cfg.Enemies.Width)/2,
			Y:  p.Y - g.cfg.Enemies.Height - 1,
			W:  g.cfg.Enemies.Width,
			H:  g.cfg.Enemies.Height,
			VX: speed,
		})
	}

	if rollPercent(g.rng, g.cfg.Powerups.SpawnChance) {
		g.pickups = append(g.pickups, Pickup{
			X:    p.X + (p.W-g.cfg.Powerups.Width)/2,
			Y:    p.Y - g.cfg.Powerups.Height - 1,
			W:    g.cfg.Powerups.Width,
			H:    g.cfg.Powerups.Height,
			Type: g.rollPowerupType(),
		})
	}
}

// rollPowerupType picks a power-up type by configured weights.
func (g *Game) rollPowerupType() PowerupType {
	return pickWeighted(g.rng, []weighted[PowerupType]{
		{PowerupSpring, g.cfg.Powerups.WeightSpring},
		{PowerupRocket, g.cfg.Powerups.WeightRocket},
		{PowerupPropeller, g.cfg.Powerups.WeightPropeller},
		{PowerupCape, g.cfg.Powerups.WeightCape},
		{PowerupShield, g.cfg.Powerups.WeightShield},
		{PowerupSpringShoes, g.cfg.Powerups.WeightSpringShoes},
		{PowerupMagnet, g.cfg.Powerups.WeightMagnet},
		{PowerupSumo, g.cfg.Powerups.WeightSumo},
		{PowerupLaser, g.cfg.Powerups.WeightLaser},
		{PowerupShotgun, g.cfg.Powerups.WeightShotgun},
		{PowerupTommyGun, g.cfg.Powerups.WeightTommyGun},
	})
}

// cullWorld drops entities that fell below the removal band under the
// visible screen, plus anything already consumed. Broken platforms
// are kept until they scroll out so their debris location stays
// stable on screen.
func (g *Game) cullWorld() {
	floor := g.cameraY + float64(g.rt.ScreenH) + g.cfg.World.CullMargin

	platforms := g.platforms[:0]
	for _, p := range g.platforms {
		if p.Y <= floor {
			platforms = append(platforms, p)
		}
	}
	g.platforms = platforms

	gems := g.gems[:0]
	for _, gem := range g.gems {
		if !gem.Collected && gem.Y <= floor {
			gems = append(gems, gem)
		}
	}
	g.gems = gems

	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.Dead && e.Y <= floor {
			enemies = append(enemies, e)
		}
	}
	g.enemies = enemies

	pickups := g.pickups[:0]
	for _, pk := range g.pickups {
		if !pk.Collected && pk.Y <= floor {
			pickups = append(pickups, pk)
		}
	}
	g.pickups = pickups
}
