package jumper

// AbilityKind identifies the player's active ability, if any.
// At most one ability is held at a time; collecting a new pickup
// replaces whatever is currently active.
type AbilityKind int

const (
	AbilityNone AbilityKind = iota
	AbilityRocket
	AbilityPropeller
	AbilityCape
	AbilityShield
	AbilitySpringShoes
	AbilityMagnet
	AbilitySumo
	AbilityLaser
	AbilityShotgun
	AbilityTommyGun
)

// String returns a short display name for the ability.
func (k AbilityKind) String() string {
	switch k {
	case AbilityNone:
		return "none"
	case AbilityRocket:
		return "rocket"
	case AbilityPropeller:
		return "propeller"
	case AbilityCape:
		return "cape"
	case AbilityShield:
		return "shield"
	case AbilitySpringShoes:
		return "spring shoes"
	case AbilityMagnet:
		return "magnet"
	case AbilitySumo:
		return "sumo"
	case AbilityLaser:
		return "laser"
	case AbilityShotgun:
		return "shotgun"
	case AbilityTommyGun:
		return "tommy gun"
	default:
		return "unknown"
	}
}

// AbilityCategory determines how an ability expires.
type AbilityCategory int

const (
	CategoryNone       AbilityCategory = iota
	CategoryTimed                      // expires when FramesLeft reaches 0
	CategoryPersistent                 // lasts until lost to enemy contact or replaced
	CategoryCounted                    // expires after a fixed number of uses
)

// Category returns the expiry category for this ability kind.
func (k AbilityKind) Category() AbilityCategory {
	switch k {
	case AbilityRocket, AbilityPropeller, AbilityMagnet, AbilitySumo:
		return CategoryTimed
	case AbilityCape, AbilityShield, AbilityLaser, AbilityShotgun, AbilityTommyGun:
		return CategoryPersistent
	case AbilitySpringShoes:
		return CategoryCounted
	default:
		return CategoryNone
	}
}

// IsWeapon reports whether the ability fires projectiles.
func (k AbilityKind) IsWeapon() bool {
	return k == AbilityLaser || k == AbilityShotgun || k == AbilityTommyGun
}

// Ability is the player's currently held ability and its remaining duration or charges.
type Ability struct {
	Kind       AbilityKind
	FramesLeft int     // timed abilities
	JumpsLeft  int     // spring shoes
	HitsTaken  int     // shield
	BladeAngle float64 // propeller animation phase
}

// Active reports whether any ability is held.
func (a Ability) Active() bool {
	return a.Kind != AbilityNone
}

// PowerupType identifies a collectible pickup on a platform.
// PowerupSpring applies an instant bounce; every other type grants
// the corresponding ability.
type PowerupType int

const (
	PowerupSpring PowerupType = iota
	PowerupRocket
	PowerupPropeller
	PowerupCape
	PowerupShield
	PowerupSpringShoes
	PowerupMagnet
	PowerupSumo
	PowerupLaser
	PowerupShotgun
	PowerupTommyGun
)

// Ability returns the ability granted by collecting this pickup.
// PowerupSpring returns AbilityNone: it is consumed instantly.
func (p PowerupType) Ability() AbilityKind {
	switch p {
	case PowerupRocket:
		return AbilityRocket
	case PowerupPropeller:
		return AbilityPropeller
	case PowerupCape:
		return AbilityCape
	case PowerupShield:
		return AbilityShield
	case PowerupSpringShoes:
		return AbilitySpringShoes
	case PowerupMagnet:
		return AbilityMagnet
	case PowerupSumo:
		return AbilitySumo
	case PowerupLaser:
		return AbilityLaser
	case PowerupShotgun:
		return AbilityShotgun
	case PowerupTommyGun:
		return AbilityTommyGun
	default:
		return AbilityNone
	}
}

// grantAbility replaces the current ability with the one granted by
// the pickup, initializing its duration or charges from config. Instant springs
// bypass the ability slot entirely.
func (g *Game) grantAbility(p PowerupType) {
	if p == PowerupSpring {
		g.playerVY = g.cfg.Physics.JumpImpulse * g.cfg.Powerups.InstantSpringBounce
		return
	}

	kind := p.Ability()
	g.ability = Ability{Kind: kind}
	switch kind {
	case AbilityRocket:
		g.ability.FramesLeft = g.cfg.Powerups.RocketFrames
	case AbilityPropeller:
		g.ability.FramesLeft = g.cfg.Powerups.PropellerFrames
	case AbilityMagnet:
		g.ability.FramesLeft = g.cfg.Powerups.MagnetFrames
	case AbilitySumo:
		g.ability.FramesLeft = g.cfg.Powerups.SumoFrames
	case AbilitySpringShoes:
		g.ability.JumpsLeft = g.cfg.Powerups.SpringShoesJumps
	}
}

// tickAbility counts down timed abilities and clears expired
// abilities. Counted abilities are decremented at their point of use,
// not here.
func (g *Game) tickAbility() {
	if !g.ability.Active() {
		return
	}

	if g.ability.Kind == AbilityPropeller {
		g.ability.BladeAngle += 0.6
	}

	if g.ability.Kind.Category() != CategoryTimed {
		return
	}
	g.ability.FramesLeft--
	if g.ability.FramesLeft <= 0 {
		g.ability = Ability{}
	}
}

// contactOutcome is the result of resolving player/enemy contact.
type contactOutcome int

const (
	contactFatal contactOutcome = iota
	contactKillBounce                // sumo: enemy dies, player bounces
	contactKill                      // rocket/propeller: enemy dies, no bounce
	contactAbsorbed                  // shield soaked the hit, enemy dies
	contactLostAbility               // ability consumed, enemy dies, player survives
)

// resolveContact applies the ability-based contact priority table and
// returns the outcome. Any held ability destroys the enemy; only bare
// contact is fatal. Player state (ability, invincibility, velocity) is
// updated here.
func (g *Game) resolveContact(e *Enemy) contactOutcome {
	switch g.ability.Kind {
	case AbilitySumo:
		e.Dead = true
		g.playerVY = g.cfg.Powerups.SumoBounce
		return contactKillBounce

	case AbilityShield:
		e.Dead = true
		g.ability.HitsTaken++
		if g.ability.HitsTaken >= g.cfg.Powerups.ShieldMaxHits {
			g.ability = Ability{}
			g.invincible = g.cfg.Powerups.ShieldInvincibility
		}
		return contactAbsorbed

	case AbilityRocket, AbilityPropeller:
		e.Dead = true
		return contactKill

	case AbilityNone:
		return contactFatal

	default:
		// Any other held ability is sacrificed to survive the hit.
		e.Dead = true
		g.ability = Ability{}
		g.invincible = g.cfg.Powerups.HitInvincibility
		return contactLostAbility
	}
}
