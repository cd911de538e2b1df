package jumper

// PlatformType determines how a platform behaves and how landings resolve.
type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformMoving
	PlatformBreakable
	PlatformSpring
)

// String returns a human-readable name for the platform type.
func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformBreakable:
		return "breakable"
	case PlatformSpring:
		return "spring"
	default:
		return "unknown"
	}
}

// Platform is a landable surface in world coordinates.
// X/Y is the top-left corner; y decreases upward.
type Platform struct {
	X, Y   float64
	W, H   float64
	Type   PlatformType
	VX     float64 // horizontal velocity, moving platforms only
	Broken bool    // breakable platforms stop landing once broken
}

// GemTier determines a gem's point value.
type GemTier int

const (
	GemLow GemTier = iota
	GemMid
	GemHigh
)

// Gem is a collectible worth points.
type Gem struct {
	X, Y      float64
	W, H      float64
	Tier      GemTier
	Value     int
	Collected bool
}

// Enemy patrols horizontally above its spawn platform.
type Enemy struct {
	X, Y float64
	W, H float64
	VX   float64
	Dead bool
}

// Pickup is a power-up item resting on a platform.
type Pickup struct {
	X, Y      float64
	W, H      float64
	Type      PowerupType
	Collected bool
}

// Bullet is a projectile fired by a weapon ability.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Spent  bool
}

// Particle is a short-lived visual effect fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int // remaining ticks
	Char   rune
}
