package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/trackdrift/pkg/view"
)

// Car footprint in logical track units. The original prototype drives a
// 10x5 rectangle with the long axis along the heading.
const (
	carLengthUnits = 10.0
	carWidthUnits  = 5.0
)

// Sprite pixel dimensions before scaling.
const (
	spriteWidth  = 40
	spriteHeight = 20
)

// CarSprite renders a top-down car at a projected transform. The composed
// body image is cached per color, since cars only differ by body color.
type CarSprite struct {
	cache map[color.RGBA]*ebiten.Image
}

// NewCarSprite creates an empty sprite cache.
func NewCarSprite() *CarSprite {
	return &CarSprite{cache: make(map[color.RGBA]*ebiten.Image)}
}

// Draw places the car on screen. The transform is in world space (origin at
// track center, y up); the screen center is the world origin and the y axis
// flips, so a positive world rotation reads as a counter-clockwise turn.
func (cs *CarSprite) Draw(screen *ebiten.Image, transform view.Transform, screenWidth, screenHeight float64, bodyColor color.RGBA) {
	img := cs.image(bodyColor)

	scale := transform.Scale * carLengthUnits / spriteWidth
	screenX := screenWidth/2 + transform.Translation.X
	screenY := screenHeight/2 - transform.Translation.Y

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-spriteWidth/2, -spriteHeight/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(-transform.Rotation)
	op.GeoM.Translate(screenX, screenY)
	screen.DrawImage(img, op)
}

// image composes the car body for a color on first use.
func (cs *CarSprite) image(bodyColor color.RGBA) *ebiten.Image {
	if img, ok := cs.cache[bodyColor]; ok {
		return img
	}

	carImg := ebiten.NewImage(spriteWidth, spriteHeight)
	carImg.Fill(bodyColor)

	// Outline
	outlineColor := color.RGBA{20, 20, 20, 255}
	outline := func(x, y, w, h float64) {
		edge := ebiten.NewImage(int(w), int(h))
		edge.Fill(outlineColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		carImg.DrawImage(edge, op)
	}
	outline(0, 0, spriteWidth, 2)
	outline(0, spriteHeight-2, spriteWidth, 2)
	outline(0, 0, 2, spriteHeight)
	outline(spriteWidth-2, 0, 2, spriteHeight)

	// Windshield near the front (the +x end of the sprite)
	windshield := ebiten.NewImage(4, spriteHeight-8)
	windshield.Fill(color.RGBA{150, 200, 255, 200})
	wsOp := &ebiten.DrawImageOptions{}
	wsOp.GeoM.Translate(spriteWidth-12, 4)
	carImg.DrawImage(windshield, wsOp)

	// Wheels at the corners
	wheelColor := color.RGBA{30, 30, 30, 255}
	wheel := func(x, y float64) {
		w := ebiten.NewImage(6, 3)
		w.Fill(wheelColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		carImg.DrawImage(w, op)
	}
	wheel(4, 1)
	wheel(spriteWidth-10, 1)
	wheel(4, spriteHeight-4)
	wheel(spriteWidth-10, spriteHeight-4)

	cs.cache[bodyColor] = carImg
	return carImg
}
