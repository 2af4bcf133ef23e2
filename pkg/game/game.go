package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/trackdrift/pkg/config"
	"github.com/golangdaddy/trackdrift/pkg/ui"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game
// state: which screen is active and how screens hand off to each other.
type Game struct {
	cfg           *config.Config
	currentScreen Screen
}

// NewGame creates a new game instance starting at the title screen.
func NewGame(cfg *config.Config) *Game {
	game := &Game{cfg: cfg}
	game.showTitle()
	return game
}

// showTitle switches to the title screen; starting from there enters the
// driving screen, and leaving the track comes back here.
func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(func() {
		g.currentScreen = NewDrivingScreen(g.cfg, g.showTitle)
	})
}

// Update handles game logic updates. Ebiten calls this once per fixed
// simulation tick.
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen. Ebiten calls this once per render frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout tracks the actual window size so the driving screen can refit the
// track scale as the window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.cfg.Window.Width, g.cfg.Window.Height
	}
	return outsideWidth, outsideHeight
}
