// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// JumperConfig contains all configuration for the Sky Hopper game.
type JumperConfig struct {
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Gems       JumperGems       `yaml:"gems"`
	Enemies    JumperEnemies    `yaml:"enemies"`
	Powerups   JumperPowerups   `yaml:"powerups"`
	Weapons    JumperWeapons    `yaml:"weapons"`
	World      JumperWorld      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperPhysics defines per-tick movement parameters.
// Velocities are in world cells per tick, negative y is upward.
type JumperPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MoveSpeed      float64 `yaml:"move_speed"`
	Damping        float64 `yaml:"damping"`
	LandingSlack   float64 `yaml:"landing_slack"`
	CapeGravity    float64 `yaml:"cape_gravity"`
	CapeMaxFall    float64 `yaml:"cape_max_fall"`
	RocketSpeed    float64 `yaml:"rocket_speed"`
	PropellerSpeed float64 `yaml:"propeller_speed"`
}

// JumperPlayer defines the player's hitbox.
type JumperPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperPlatforms defines platform generation and bounce parameters.
// Weights are relative and need not sum to 100.
type JumperPlatforms struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	MinGap          float64 `yaml:"min_gap"`
	MaxGap          float64 `yaml:"max_gap"`
	WeightNormal    int     `yaml:"weight_normal"`
	WeightMoving    int     `yaml:"weight_moving"`
	WeightBreakable int     `yaml:"weight_breakable"`
	WeightSpring    int     `yaml:"weight_spring"`
	MovingSpeedMin  float64 `yaml:"moving_speed_min"`
	MovingSpeedMax  float64 `yaml:"moving_speed_max"`
	SpringBounce    float64 `yaml:"spring_bounce"`
	BreakableBounce float64 `yaml:"breakable_bounce"`
}

// JumperGems defines collectible spawning and values.
type JumperGems struct {
	SpawnChance int     `yaml:"spawn_chance"` // percent per generated platform
	WeightLow   int     `yaml:"weight_low"`
	WeightMid   int     `yaml:"weight_mid"`
	WeightHigh  int     `yaml:"weight_high"`
	ValueLow    int     `yaml:"value_low"`
	ValueMid    int     `yaml:"value_mid"`
	ValueHigh   int     `yaml:"value_high"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

// JumperEnemies defines hostile spawning and behavior.
type JumperEnemies struct {
	SpawnChance  int     `yaml:"spawn_chance"` // percent per generated platform
	MinDepth     float64 `yaml:"min_depth"`    // climb before enemies may appear
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	KillBonus    int     `yaml:"kill_bonus"`
	ContactInset float64 `yaml:"contact_inset"`
}

// JumperPowerups defines pickup spawning weights and ability parameters.
// Durations are in ticks (60 ticks = 1 second at 60 FPS).
type JumperPowerups struct {
	SpawnChance int `yaml:"spawn_chance"` // percent per generated platform

	WeightSpring      int `yaml:"weight_spring"`
	WeightRocket      int `yaml:"weight_rocket"`
	WeightPropeller   int `yaml:"weight_propeller"`
	WeightCape        int `yaml:"weight_cape"`
	WeightShield      int `yaml:"weight_shield"`
	WeightSpringShoes int `yaml:"weight_spring_shoes"`
	WeightMagnet      int `yaml:"weight_magnet"`
	WeightSumo        int `yaml:"weight_sumo"`
	WeightLaser       int `yaml:"weight_laser"`
	WeightShotgun     int `yaml:"weight_shotgun"`
	WeightTommyGun    int `yaml:"weight_tommy_gun"`

	RocketFrames    int `yaml:"rocket_frames"`
	PropellerFrames int `yaml:"propeller_frames"`
	MagnetFrames    int `yaml:"magnet_frames"`
	SumoFrames      int `yaml:"sumo_frames"`

	ShieldMaxHits    int `yaml:"shield_max_hits"`
	SpringShoesJumps int `yaml:"spring_shoes_jumps"`

	SpringShoesBounce   float64 `yaml:"spring_shoes_bounce"`
	InstantSpringBounce float64 `yaml:"instant_spring_bounce"`
	SumoBounce          float64 `yaml:"sumo_bounce"`

	MagnetRadius float64 `yaml:"magnet_radius"`
	MagnetPull   float64 `yaml:"magnet_pull"`

	HitInvincibility    int `yaml:"hit_invincibility"`
	ShieldInvincibility int `yaml:"shield_invincibility"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperWeapons defines projectile weapons.
type JumperWeapons struct {
	BulletSpeed      float64 `yaml:"bullet_speed"`
	LaserCooldown    int     `yaml:"laser_cooldown"`
	ShotgunCooldown  int     `yaml:"shotgun_cooldown"`
	TommyGunCooldown int     `yaml:"tommy_gun_cooldown"`
	AimRadius        float64 `yaml:"aim_radius"`
	ShotgunSpread    float64 `yaml:"shotgun_spread"`   // radians off vertical
	TommyGunJitter   float64 `yaml:"tommy_gun_jitter"` // max random radians
}

// JumperWorld defines camera, generation and cull margins.
type JumperWorld struct {
	LeadMargin   float64 `yaml:"lead_margin"`   // generation headroom above camera
	CullMargin   float64 `yaml:"cull_margin"`   // removal band below camera bottom
	CameraAnchor float64 `yaml:"camera_anchor"` // player anchor as fraction of screen height
	ClimbScore   float64 `yaml:"climb_score"`   // score points per cell climbed
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // Added to entity speed at max difficulty
	EnemyChanceBoost int     `yaml:"enemy_chance_boost"` // Extra enemy spawn percent at max difficulty
	GapGrowth        float64 `yaml:"gap_growth"`         // Extra platform gap cells at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
