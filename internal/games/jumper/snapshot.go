package jumper

// Snapshot is a value copy of the observable simulation state, taken
// between ticks. Slices are copied so the caller may hold a snapshot
// across subsequent Steps.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Score     int
	HighScore int
	CameraY   float64
	Climb     float64

	PlayerX, PlayerY   float64
	PlayerVX, PlayerVY float64
	Ability            Ability
	Invincible         int

	Platforms []Platform
	Gems      []Gem
	Enemies   []Enemy
	Pickups   []Pickup
	Bullets   []Bullet
}

// Snapshot captures the current state for inspection or replay
// verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tickCount,
		Phase:      g.phase,
		Score:      g.score,
		HighScore:  g.highScore,
		CameraY:    g.cameraY,
		Climb:      g.climb,
		PlayerX:    g.playerX,
		PlayerY:    g.playerY,
		PlayerVX:   g.playerVX,
		PlayerVY:   g.playerVY,
		Ability:    g.ability,
		Invincible: g.invincible,
	}
	s.Platforms = append(s.Platforms, g.platforms...)
	s.Gems = append(s.Gems, g.gems...)
	s.Enemies = append(s.Enemies, g.enemies...)
	s.Pickups = append(s.Pickups, g.pickups...)
	s.Bullets = append(s.Bullets, g.bullets...)
	return s
}
