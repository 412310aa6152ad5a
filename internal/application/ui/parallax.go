package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Default scroll speeds in pixels per frame.
const (
	FarSpeed    = 0.6
	MiddleSpeed = 0.3
)

var (
	bandFar    = color.RGBA{R: 0x2b, G: 0x1d, B: 0x4a, A: 0xff}
	bandMiddle = color.RGBA{R: 0x3d, G: 0x5a, B: 0x6c, A: 0xff}
	bandStripe = color.RGBA{R: 0x4d, G: 0x72, B: 0x82, A: 0xff}
)

// ParallaxBackground scrolls a far image over the whole screen and a middle
// image across the lower 60%, each wrapping horizontally. Without images it
// draws flat colour bands.
type ParallaxBackground struct {
	Far, Middle *ebiten.Image

	width, height float64
	farSpeed      float64
	middleSpeed   float64
	farX, middleX float64
}

// NewParallaxBackground creates a background for a screen of the given size.
// Zero speeds use the defaults.
func NewParallaxBackground(far, middle *ebiten.Image, width, height int, farSpeed, middleSpeed float64) *ParallaxBackground {
	if farSpeed == 0 {
		farSpeed = FarSpeed
	}
	if middleSpeed == 0 {
		middleSpeed = MiddleSpeed
	}
	return &ParallaxBackground{
		Far:         far,
		Middle:      middle,
		width:       float64(width),
		height:      float64(height),
		farSpeed:    farSpeed,
		middleSpeed: middleSpeed,
	}
}

// Update scrolls both strips by one frame.
func (p *ParallaxBackground) Update() {
	p.farX += p.farSpeed
	p.middleX += p.middleSpeed
}

// Offsets returns the current scroll positions.
func (p *ParallaxBackground) Offsets() (far, middle float64) {
	return p.farX, p.middleX
}

// Draw renders the background.
func (p *ParallaxBackground) Draw(dst *ebiten.Image) {
	top := p.height * 0.4
	if p.Far != nil {
		drawTiledAt(dst, p.Far, p.farX, 0, 0, p.width, p.height)
	} else {
		vector.DrawFilledRect(dst, 0, 0, float32(p.width), float32(p.height), bandFar, false)
	}

	if p.Middle != nil {
		// two copies, each stretched over half the screen width
		half := p.width / 2
		drawTiledAt(dst, p.Middle, p.middleX, 0, top, half, p.height-top)
		drawTiledAt(dst, p.Middle, p.middleX, half, top, half, p.height-top)
		return
	}
	vector.DrawFilledRect(dst, 0, float32(top), float32(p.width), float32(p.height-top), bandMiddle, false)
	stripe := 32.0
	shift := math.Mod(p.middleX, stripe*2)
	for x := -shift; x < p.width; x += stripe * 2 {
		vector.DrawFilledRect(dst, float32(x), float32(top), float32(stripe), 4, bandStripe, false)
	}
}

// drawTiledAt repeats img horizontally inside the box (x, y, w, h), scrolled
// left by offset and scaled to the box height.
func drawTiledAt(dst, img *ebiten.Image, offset, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	scale := h / ih
	tileW := iw * scale
	clip := dst.SubImage(image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h)))).(*ebiten.Image)

	start := x - math.Mod(offset, tileW)
	for tx := start; tx < x+w; tx += tileW {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(tx, y)
		clip.DrawImage(img, op)
	}
}
