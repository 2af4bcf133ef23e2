package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleScreen is the entry menu shown before driving starts.
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when the user chooses to play
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()

	// Title with a gentle pulse
	titleText := "TRACKDRIFT"
	face := text.NewGoXFace(bitmapfont.Face)
	textWidth := text.Advance(titleText, face)

	centerX := float64(width) / 2
	centerY := float64(height) / 3

	pulse := 1.0 + 0.08*math.Sin(elapsed*2.0)
	titleScale := 7.0 * pulse

	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-textWidth*titleScale/2, centerY-8)
	titleOp.ColorScale.ScaleWithColor(color.RGBA{255, 80, 60, 255})
	text.Draw(screen, titleText, face, titleOp)

	// Subtitle
	subtitleText := "Top-Down Driving Prototype"
	subtitleScale := 2.0
	subtitleWidth := text.Advance(subtitleText, face)
	subtitleOp := &text.DrawOptions{}
	subtitleOp.GeoM.Scale(subtitleScale, subtitleScale)
	subtitleOp.GeoM.Translate(centerX-subtitleWidth*subtitleScale/2, centerY+70)
	subtitleOp.ColorScale.ScaleWithColor(color.RGBA{180, 180, 200, 255})
	text.Draw(screen, subtitleText, face, subtitleOp)

	// Controls hint
	hintText := "WASD or Arrow Keys to drive, ESC for menu"
	hintScale := 1.5
	hintWidth := text.Advance(hintText, face)
	hintOp := &text.DrawOptions{}
	hintOp.GeoM.Scale(hintScale, hintScale)
	hintOp.GeoM.Translate(centerX-hintWidth*hintScale/2, centerY+110)
	hintOp.ColorScale.ScaleWithColor(color.RGBA{130, 140, 160, 255})
	text.Draw(screen, hintText, face, hintOp)

	// Blinking start prompt
	pressText := "Press ENTER or SPACE to Play"
	if int(elapsed*2)%2 == 0 { // Blink every 0.5 seconds
		pressScale := 1.5
		pressWidth := text.Advance(pressText, face)
		pressOp := &text.DrawOptions{}
		pressOp.GeoM.Scale(pressScale, pressScale)
		pressOp.GeoM.Translate(centerX-pressWidth*pressScale/2, float64(height)-100)
		pressOp.ColorScale.ScaleWithColor(color.RGBA{150, 200, 255, 255})
		text.Draw(screen, pressText, face, pressOp)
	}
}
