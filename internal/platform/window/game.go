// Package window runs Sidestep in a desktop window with Ebitengine.
// Ebitengine reports real key state, so movement uses held keys directly
// and start, restart and quit fire on key-down edges.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sidestep/internal/config"
	"github.com/vovakirdan/sidestep/internal/core"
	"github.com/vovakirdan/sidestep/internal/games/sidestep"
)

// debugGlyphH is the line height of ebitenutil's debug font.
const debugGlyphH = 16

var (
	backgroundColor = color.White
	bannerColor     = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xd0}
)

// Options configures the desktop frontend.
type Options struct {
	Assets   string // Directory holding player.png and obstacle.png
	TickRate int
	Seed     int64
	Logger   *log.Logger
}

// Game adapts a Sidestep session to ebiten.Game.
type Game struct {
	session   *sidestep.Session
	sprites   Sprites
	view      sidestep.RenderState
	lastPhase sidestep.Phase
	start     time.Time
	logger    *log.Logger
}

// NewGame creates a game around a fresh session.
func NewGame(cfg config.SidestepConfig, seed int64, sprites Sprites, logger *log.Logger) *Game {
	session := sidestep.New(cfg, seed)
	return &Game{
		session:   session,
		sprites:   sprites,
		view:      session.View(),
		lastPhase: session.Phase(),
		start:     time.Now(),
		logger:    logger,
	}
}

// Update polls input and advances the session by one tick.
func (g *Game) Update() error {
	now := time.Since(g.start).Seconds()
	g.view = g.session.Tick(now, pollIntents())

	if g.view.QuitRequested {
		g.logger.Debug("quit requested", "phase", g.view.Phase, "score", g.view.Score)
		return ebiten.Termination
	}

	if g.view.Phase != g.lastPhase {
		g.logger.Info("phase changed",
			"from", g.lastPhase,
			"to", g.view.Phase,
			"score", g.view.Score,
			"lives", g.view.Lives,
		)
		g.lastPhase = g.view.Phase
	}
	return nil
}

// pollIntents reads this frame's keyboard and window state.
func pollIntents() core.Intents {
	var in core.Intents
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		in.Set(core.ActionQuit)
	}
	return in
}

// Draw renders the last render state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.view.Phase {
	case sidestep.PhaseStart:
		g.drawBanner(screen, "Press SPACE to Start")
	case sidestep.PhasePlaying:
		drawSprite(screen, g.sprites.Obstacle, g.view.Obstacle)
		if g.view.Player.Visible {
			drawSprite(screen, g.sprites.Player, g.view.Player)
		}
		g.drawHUD(screen)
	case sidestep.PhaseGameOver:
		g.drawBanner(screen,
			fmt.Sprintf("Game Over. Your Score: %d", g.view.Score),
			"Press SPACE to Restart")
	}
}

// drawSprite scales img onto the entity's square.
func drawSprite(screen, img *ebiten.Image, e sidestep.EntityView) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(e.Size/float64(b.Dx()), e.Size/float64(b.Dy()))
	op.GeoM.Translate(e.X, e.Y)
	screen.DrawImage(img, op)
}

// drawHUD prints score and lives in a strip along the top edge.
func (g *Game) drawHUD(screen *ebiten.Image) {
	w := float32(g.view.Width)
	vector.DrawFilledRect(screen, 0, 0, w, debugGlyphH+8, bannerColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.view.Score), 10, 4)

	lives := fmt.Sprintf("Lives: %d", g.view.Lives)
	ebitenutil.DebugPrintAt(screen, lives, int(g.view.Width)-10-6*len(lives), 4)
}

// drawBanner prints centered lines on a dark band across the middle.
func (g *Game) drawBanner(screen *ebiten.Image, lines ...string) {
	const glyphW = 6

	bandH := len(lines)*debugGlyphH + 16
	top := (int(g.view.Height) - bandH) / 2
	vector.DrawFilledRect(screen, 0, float32(top), float32(g.view.Width), float32(bandH), bannerColor, false)

	for i, line := range lines {
		x := (int(g.view.Width) - glyphW*len(line)) / 2
		ebitenutil.DebugPrintAt(screen, line, x, top+8+i*debugGlyphH)
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.view.Width), int(g.view.Height)
}

// Run opens the window and blocks until the player quits or closes it.
func Run(cfg config.SidestepConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	sprites, err := LoadSprites(opts.Assets, cfg.Player.Size, cfg.Obstacle.Size, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Sidestep")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TickRate)

	game := NewGame(cfg, opts.Seed, sprites, logger)
	logger.Info("window opened", "width", cfg.Screen.Width, "height", cfg.Screen.Height, "seed", opts.Seed)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
