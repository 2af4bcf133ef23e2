package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/trackdrift/pkg/config"
	"github.com/golangdaddy/trackdrift/pkg/entity"
	"github.com/golangdaddy/trackdrift/pkg/input"
	"github.com/golangdaddy/trackdrift/pkg/physics"
	"github.com/golangdaddy/trackdrift/pkg/sim"
	"github.com/golangdaddy/trackdrift/pkg/track"
	"github.com/golangdaddy/trackdrift/pkg/view"
)

// DrivingScreen runs the actual driving simulation: a fixed-step pipeline
// of input and physics stages in Update, and projection plus drawing in
// Draw.
type DrivingScreen struct {
	trackConfig   *track.Config
	physicsConfig *physics.Config
	cars          *entity.Registry
	pipeline      *sim.Pipeline
	carSprite     *CarSprite
	onExit        func() // Callback when the player leaves the track
}

// NewDrivingScreen builds the simulation world: spawns the player car and
// wires the tick pipeline so input always runs before physics.
func NewDrivingScreen(cfg *config.Config, onExit func()) *DrivingScreen {
	cars := entity.NewRegistry()
	cars.Spawn(entity.RolePlayer, true)

	physicsConfig := cfg.Physics

	return &DrivingScreen{
		trackConfig:   cfg.TrackConfig(),
		physicsConfig: &physicsConfig,
		cars:          cars,
		pipeline: sim.NewPipeline(cars,
			input.NewKeyboardStage(input.EbitenKeys{}),
			sim.NewPhysicsStage(&physicsConfig),
		),
		carSprite: NewCarSprite(),
		onExit:    onExit,
	}
}

// Cars exposes the registry, mainly for the HUD.
func (ds *DrivingScreen) Cars() *entity.Registry {
	return ds.cars
}

// Update runs one fixed simulation tick. Ebiten calls Update at a fixed
// tick rate, so the delta is the constant tick duration, not wall time.
func (ds *DrivingScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ds.onExit != nil {
			ds.onExit()
		}
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	ds.pipeline.Tick(dt)
	return nil
}

// Draw renders one frame: refit the track scale to the current window,
// project every car and draw it.
func (ds *DrivingScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{25, 28, 32, 255})

	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	// Letterbox the logical track into whatever size the window has right
	// now. This is the only place the scale changes.
	ds.trackConfig.ComputeScale(width, height)

	ds.drawTrackArea(screen, width, height)

	for _, car := range ds.cars.Cars() {
		transform := view.Project(&car.Kinematics, ds.trackConfig)
		ds.carSprite.Draw(screen, transform, width, height, carColor(car.Role))
	}

	ds.drawHUD(screen)
}

// drawTrackArea fills the scaled track rectangle, centered on the screen.
func (ds *DrivingScreen) drawTrackArea(screen *ebiten.Image, width, height float64) {
	trackWidth := ds.trackConfig.LogicalSize.X * ds.trackConfig.Scale
	trackHeight := ds.trackConfig.LogicalSize.Y * ds.trackConfig.Scale
	if trackWidth < 1 || trackHeight < 1 {
		return
	}

	area := ebiten.NewImage(int(trackWidth), int(trackHeight))
	area.Fill(color.RGBA{45, 50, 56, 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate((width-trackWidth)/2, (height-trackHeight)/2)
	screen.DrawImage(area, op)
}

// drawHUD shows the player car's speed and heading.
func (ds *DrivingScreen) drawHUD(screen *ebiten.Image) {
	player := ds.cars.Player()
	if player == nil {
		return
	}

	hud := fmt.Sprintf("SPEED %6.1f  HEADING %5.2f", player.Kinematics.Velocity.Length(), player.Kinematics.Rotation)
	face := text.NewGoXFace(bitmapfont.Face)

	op := &text.DrawOptions{}
	op.GeoM.Scale(1.5, 1.5)
	op.GeoM.Translate(12, 10)
	op.ColorScale.ScaleWithColor(color.RGBA{200, 210, 220, 255})
	text.Draw(screen, hud, face, op)
}

// carColor picks the body color for a car by role.
func carColor(role entity.Role) color.RGBA {
	if role == entity.RolePlayer {
		return color.RGBA{220, 40, 40, 255}
	}
	return color.RGBA{60, 120, 220, 255}
}
