package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default Sky Hopper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: JumperPhysics{
			Gravity:        0.18,
			JumpImpulse:    -2.3,
			MoveSpeed:      1.2,
			Damping:        0.85,
			LandingSlack:   0.8,
			CapeGravity:    0.05,
			CapeMaxFall:    0.55,
			RocketSpeed:    -3.2,
			PropellerSpeed: -1.6,
		},
		Player: JumperPlayer{
			Width:  3,
			Height: 2,
		},
		Platforms: JumperPlatforms{
			Width:           10,
			Height:          1,
			MinGap:          3,
			MaxGap:          8,
			WeightNormal:    60,
			WeightMoving:    20,
			WeightBreakable: 12,
			WeightSpring:    8,
			MovingSpeedMin:  0.2,
			MovingSpeedMax:  0.6,
			SpringBounce:    1.6,
			BreakableBounce: 0.9,
		},
		Gems: JumperGems{
			SpawnChance: 15,
			WeightLow:   60,
			WeightMid:   30,
			WeightHigh:  10,
			ValueLow:    10,
			ValueMid:    25,
			ValueHigh:   50,
			Width:       2,
			Height:      1,
		},
		Enemies: JumperEnemies{
			SpawnChance:  6,
			MinDepth:     150,
			SpeedMin:     0.2,
			SpeedMax:     0.5,
			Width:        4,
			Height:       2,
			KillBonus:    100,
			ContactInset: 0.5,
		},
		Powerups: JumperPowerups{
			SpawnChance:       8,
			WeightSpring:      20,
			WeightRocket:      8,
			WeightPropeller:   12,
			WeightCape:        8,
			WeightShield:      10,
			WeightSpringShoes: 10,
			WeightMagnet:      10,
			WeightSumo:        6,
			WeightLaser:       6,
			WeightShotgun:     5,
			WeightTommyGun:    5,

			RocketFrames:    180, // 3 seconds at 60fps
			PropellerFrames: 240,
			MagnetFrames:    600,
			SumoFrames:      450,

			ShieldMaxHits:    2,
			SpringShoesJumps: 5,

			SpringShoesBounce:   1.4,
			InstantSpringBounce: 2.0,
			SumoBounce:          -2.8,

			MagnetRadius: 18,
			MagnetPull:   1.0,

			HitInvincibility:    90,
			ShieldInvincibility: 120,

			Width:  2,
			Height: 1,
		},
		Weapons: JumperWeapons{
			BulletSpeed:      2.2,
			LaserCooldown:    18,
			ShotgunCooldown:  30,
			TommyGunCooldown: 6,
			AimRadius:        30,
			ShotgunSpread:    0.35,
			TommyGunJitter:   0.12,
		},
		World: JumperWorld{
			LeadMargin:   10,
			CullMargin:   6,
			CameraAnchor: 0.45,
			ClimbScore:   1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				EnemyChanceBoost: 8,
				GapGrowth:        3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jumper":
		return defaultJumperYAML
	default:
		return nil
	}
}
