package ecs

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FrameSource resolves atlas frames to images.
type FrameSource interface {
	Frame(texture, frame string) (*ebiten.Image, bool)
}

// Camera is the top-left corner of the view in world pixels.
type Camera struct {
	X, Y float64
}

// DrawSprites draws every visible sprite whose depth lies in [minDepth, maxDepth].
func (w *World) DrawSprites(screen *ebiten.Image, frames FrameSource, cam Camera, minDepth, maxDepth int) {
	sprites := w.Sprites()
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Data().Depth < sprites[j].Data().Depth
	})

	for _, s := range sprites {
		d := s.Data()
		if !d.Visible || d.Alpha <= 0 || d.Depth < minDepth || d.Depth > maxDepth {
			continue
		}
		var img *ebiten.Image
		if frames != nil {
			img, _ = frames.Frame(d.Texture, d.Frame)
		}
		if img != nil {
			drawImage(screen, img, d, cam)
			continue
		}
		drawFallback(screen, d, cam)
	}
}

func drawImage(screen, img *ebiten.Image, d *SpriteData, cam Camera) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	sx := math.Abs(d.Scale)
	if d.FlipX {
		op.GeoM.Scale(-sx, sx)
	} else {
		op.GeoM.Scale(sx, sx)
	}
	op.GeoM.Translate(math.Round(d.X-cam.X), math.Round(d.Y-cam.Y))
	op.ColorScale.ScaleWithColor(d.Tint)
	op.ColorScale.ScaleAlpha(float32(d.Alpha))
	screen.DrawImage(img, op)
}

func drawFallback(screen *ebiten.Image, d *SpriteData, cam Camera) {
	if d.Fill.A == 0 {
		return
	}
	sx := math.Abs(d.Scale)
	w := d.FrameW * sx
	h := d.FrameH * sx
	x := d.X - w/2 - cam.X
	y := d.Y - h/2 - cam.Y
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), shade(d.Fill, d.Tint, d.Alpha), false)
}

// shade multiplies a fill colour by a tint and alpha the way ColorScale does.
func shade(fill, tint color.RGBA, alpha float64) color.RGBA {
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 0xff) }
	a := float64(fill.A) * alpha
	return color.RGBA{
		R: uint8(float64(mul(fill.R, tint.R)) * alpha),
		G: uint8(float64(mul(fill.G, tint.G)) * alpha),
		B: uint8(float64(mul(fill.B, tint.B)) * alpha),
		A: uint8(a),
	}
}

var (
	debugBodyColor     = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	debugDisabledColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// DrawDebug outlines every body.
func (w *World) DrawDebug(screen *ebiten.Image, cam Camera) {
	for _, s := range w.Sprites() {
		r := s.Bounds()
		c := debugBodyColor
		if !s.BodyEnabled() {
			c = debugDisabledColor
		}
		vector.StrokeRect(screen, float32(r.X-cam.X), float32(r.Y-cam.Y), float32(r.W), float32(r.H), 1, c, false)
	}
}
