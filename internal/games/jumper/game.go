// Package jumper implements Sky Hopper, an endless vertical platformer.
// The player bounces upward across procedurally generated platforms,
// collecting gems and power-ups while avoiding enemies. The run ends
// when the player falls below the camera or touches an enemy without
// protection.
package jumper

import (
	"fmt"
	"math/rand"

	"github.com/vkozyrev/skyhop/internal/config"
	"github.com/vkozyrev/skyhop/internal/core"
	"github.com/vkozyrev/skyhop/internal/registry"
)

// Phase tracks the run lifecycle.
type Phase string

const (
	PhaseReady   Phase = "ready"
	PhaseRunning Phase = "running"
	PhaseEnded   Phase = "ended"
)

// Visual characters for rendering
const (
	PlayerChar    = '☻'
	PlatformChar  = '▀'
	MovingChar    = '▬'
	BreakChar     = '░'
	BrokenChar    = '⌐'
	SpringChar    = '˄'
	GemChar       = '◆'
	EnemyChar     = '◙'
	PickupChar    = '?'
	BulletChar    = '•'
	PropellerChar = '┼'
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Sky Hopper game logic.
// All coordinates are in world cells; y decreases upward. The camera
// tracks the highest point reached and never scrolls back down.
type Game struct {
	// Player
	playerX, playerY   float64 // top-left of hitbox
	playerVX, playerVY float64
	ability            Ability
	invincible         int // remaining invincibility ticks
	cooldown           int // remaining weapon cooldown ticks

	// World entities
	platforms []Platform
	gems      []Gem
	enemies   []Enemy
	pickups   []Pickup
	bullets   []Bullet
	particles []Particle
	topY      float64 // y of the highest generated platform

	// Camera and scoring
	cameraY float64 // top edge of the visible band
	startY  float64 // player spawn height, climb baseline
	climb   float64 // best climb so far, monotonic
	bonus   int     // points from gems and kills

	// Run state
	phase     Phase
	paused    bool
	score     int
	highScore int // best score this process, survives Reset
	tickCount int

	// Configuration
	rt     core.RuntimeConfig
	cfg    config.JumperConfig
	rng    *rand.Rand
	diff   *config.DifficultyManager
	worldW float64
}

// New creates a new Sky Hopper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hopper"
}

// Reset initializes or restarts the game. The high score is kept
// across resets within the same process.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.worldW = float64(rt.ScreenW)
	g.rng = rand.New(rand.NewSource(rt.Seed))

	cfg, err := config.LoadJumper(configPath)
	if err != nil {
		cfg = config.DefaultJumperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.playerX = (g.worldW - cfg.Player.Width) / 2
	g.playerY = float64(rt.ScreenH) - cfg.Player.Height - 2
	g.playerVX = 0
	g.playerVY = 0
	g.ability = Ability{}
	g.invincible = 0
	g.cooldown = 0

	g.cameraY = 0
	g.startY = g.playerY
	g.climb = 0
	g.bonus = 0
	g.score = 0
	g.phase = PhaseReady
	g.paused = false
	g.tickCount = 0

	g.seedWorld()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseEnded {
		if in.Has(core.ActionRestart) {
			g.Reset(g.rt)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseReady {
		g.phase = PhaseRunning
	}

	g.tickCount++
	g.tickAbility()
	if g.invincible > 0 {
		g.invincible--
	}

	g.applyInput(in.Has(core.ActionLeft), in.Has(core.ActionRight))
	g.integrate()

	speedMul := g.diff.Speed(1.0, g.score, g.tickCount)
	g.moveEntities(speedMul)
	g.resolveLandings()
	g.applyMagnet()
	g.collectItems()
	g.fireWeapon(in.Has(core.ActionFire))
	g.updateBullets()
	g.checkEnemyContact()
	g.updateParticles()

	if g.phase == PhaseEnded {
		return core.StepResult{State: g.State()}
	}

	g.extendWorld()
	g.cullWorld()
	g.updateCamera()
	g.checkFall()

	return core.StepResult{State: g.State()}
}

// updateCamera scrolls upward to keep the player at the anchor line
// and recomputes climb and score. The camera only ever moves up.
func (g *Game) updateCamera() {
	target := g.playerY - float64(g.rt.ScreenH)*g.cfg.World.CameraAnchor
	if target < g.cameraY {
		g.cameraY = target
	}

	if gained := g.startY - g.playerY; gained > g.climb {
		g.climb = gained
	}
	g.score = int(g.climb*g.cfg.World.ClimbScore) + g.bonus
}

// checkFall ends the run when the player drops past the trailing cull
// margin below the visible band, the same line the world cull uses. A
// held protective ability is consumed instead: the player is lifted
// back into view with brief invincibility.
func (g *Game) checkFall() {
	if g.playerY <= g.cameraY+float64(g.rt.ScreenH)+g.cfg.World.CullMargin {
		return
	}

	if g.ability.Kind.Category() == CategoryPersistent {
		g.ability = Ability{}
		g.playerY = g.cameraY + 2
		g.playerVY = 0
		g.invincible = g.cfg.Powerups.HitInvincibility
		return
	}

	g.endRun()
}

// endRun finishes the run and records a new high score if earned.
// The score is recomputed first so bonuses earned on the final frame
// count even though the camera/score pass no longer runs.
func (g *Game) endRun() {
	if gained := g.startY - g.playerY; gained > g.climb {
		g.climb = gained
	}
	g.score = int(g.climb*g.cfg.World.ClimbScore) + g.bonus

	g.phase = PhaseEnded
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// playerRect returns the player's collision box in world coordinates.
func (g *Game) playerRect() core.FRect {
	return core.NewFRect(g.playerX, g.playerY, g.cfg.Player.Width, g.cfg.Player.Height)
}

// Height returns the best climb of the current run in whole cells.
// Used by the platform when persisting finished runs.
func (g *Game) Height() int {
	return int(g.climb)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.phase == PhaseEnded,
		Paused:    g.paused,
	}
}

// worldToScreen converts world coordinates to screen cells relative
// to the camera. The second return is false when off screen.
func (g *Game) worldToScreen(x, y float64) (int, int, bool) {
	sx := int(x)
	sy := int(y - g.cameraY)
	if sx < 0 || sx >= g.rt.ScreenW || sy < 0 || sy >= g.rt.ScreenH {
		return sx, sy, false
	}
	return sx, sy, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawPlatforms(dst)
	g.drawItems(dst)
	g.drawEnemies(dst)
	g.drawBullets(dst)
	g.drawParticles(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.phase == PhaseReady:
		g.drawCenteredMessage(dst, "SKY HOPPER", "A/D to move, Space to fire  |  Press any key")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseEnded:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Height: %d  |  Press R to restart", g.score, int(g.climb)))
	}
}

func (g *Game) drawPlatforms(dst *core.Screen) {
	for _, p := range g.platforms {
		char := PlatformChar
		color := core.ColorGreen
		switch p.Type {
		case PlatformMoving:
			char = MovingChar
			color = core.ColorCyan
		case PlatformBreakable:
			char = BreakChar
			color = core.ColorYellow
			if p.Broken {
				char = BrokenChar
				color = core.ColorGray
			}
		case PlatformSpring:
			color = core.ColorBrightGreen
		}
		for dx := 0.0; dx < p.W; dx++ {
			if x, y, ok := g.worldToScreen(p.X+dx, p.Y); ok {
				dst.SetCell(x, y, char, color)
			}
		}
		if p.Type == PlatformSpring {
			if x, y, ok := g.worldToScreen(p.X+p.W/2, p.Y-1); ok {
				dst.SetCell(x, y, SpringChar, core.ColorBrightWhite)
			}
		}
	}
}

func (g *Game) drawItems(dst *core.Screen) {
	for _, gem := range g.gems {
		if gem.Collected {
			continue
		}
		color := core.ColorBlue
		switch gem.Tier {
		case GemMid:
			color = core.ColorMagenta
		case GemHigh:
			color = core.ColorBrightYellow
		}
		for dx := 0.0; dx < gem.W; dx++ {
			if x, y, ok := g.worldToScreen(gem.X+dx, gem.Y); ok {
				dst.SetCell(x, y, GemChar, color)
			}
		}
	}

	for _, pk := range g.pickups {
		if pk.Collected {
			continue
		}
		for dx := 0.0; dx < pk.W; dx++ {
			if x, y, ok := g.worldToScreen(pk.X+dx, pk.Y); ok {
				dst.SetCell(x, y, PickupChar, core.ColorBrightCyan)
			}
		}
	}
}

func (g *Game) drawEnemies(dst *core.Screen) {
	for _, e := range g.enemies {
		if e.Dead {
			continue
		}
		for dy := 0.0; dy < e.H; dy++ {
			for dx := 0.0; dx < e.W; dx++ {
				if x, y, ok := g.worldToScreen(e.X+dx, e.Y+dy); ok {
					dst.SetCell(x, y, EnemyChar, core.ColorRed)
				}
			}
		}
	}
}

func (g *Game) drawBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		if x, y, ok := g.worldToScreen(b.X, b.Y); ok {
			dst.SetCell(x, y, BulletChar, core.ColorBrightWhite)
		}
	}
}

func (g *Game) drawParticles(dst *core.Screen) {
	for _, p := range g.particles {
		if x, y, ok := g.worldToScreen(p.X, p.Y); ok {
			dst.SetCell(x, y, p.Char, core.ColorOrange)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	// Blink while invincible
	if g.invincible > 0 && (g.tickCount/4)%2 == 0 {
		return
	}

	color := core.ColorBrightWhite
	switch g.ability.Kind {
	case AbilityShield:
		color = core.ColorBrightBlue
	case AbilitySumo:
		color = core.ColorBrightRed
	case AbilityRocket:
		color = core.ColorOrange
	}

	for dy := 0.0; dy < g.cfg.Player.Height; dy++ {
		for dx := 0.0; dx < g.cfg.Player.Width; dx++ {
			if x, y, ok := g.worldToScreen(g.playerX+dx, g.playerY+dy); ok {
				dst.SetCell(x, y, PlayerChar, color)
			}
		}
	}

	if g.ability.Kind == AbilityPropeller {
		char := PropellerChar
		if int(g.ability.BladeAngle)%2 == 0 {
			char = '─'
		}
		if x, y, ok := g.worldToScreen(g.playerX+g.cfg.Player.Width/2, g.playerY-1); ok {
			dst.SetCell(x, y, char, core.ColorCyan)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.highScore > 0 {
		dst.DrawText(2, 1, fmt.Sprintf(" Best: %d ", g.highScore))
	}

	if g.ability.Active() {
		label := g.ability.Kind.String()
		switch g.ability.Kind.Category() {
		case CategoryTimed:
			label = fmt.Sprintf("%s %.1fs", label, float64(g.ability.FramesLeft)/float64(g.rt.TickRate))
		case CategoryCounted:
			label = fmt.Sprintf("%s x%d", label, g.ability.JumpsLeft)
		}
		text := fmt.Sprintf(" %s ", label)
		dst.DrawTextColored(dst.Width()-len([]rune(text))-2, 0, text, core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a two-line overlay in the screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2
	dst.DrawTextCentered(centerY-1, title)
	dst.DrawTextCentered(centerY+1, subtitle)
}

func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
