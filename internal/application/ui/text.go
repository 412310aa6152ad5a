// Package ui draws text, buttons and the scrolling background shared by the
// menu screens and the level overlays.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap face every label is drawn with.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// Common text scales.
const (
	ScaleBody    = 1.0
	ScaleLarge   = 1.5
	ScaleHeading = 3.0
)

// Palette used across the screens.
var (
	ColorWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBlack      = color.RGBA{A: 0xff}
	ColorYellow     = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	ColorGreen      = color.RGBA{G: 0xff, A: 0xff}
	ColorRed        = color.RGBA{R: 0xff, A: 0xff}
	ColorCyan       = color.RGBA{G: 0xff, B: 0xff, A: 0xff}
	ColorLightGreen = color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}
	ColorPink       = color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff}
	ColorLightBlue  = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
	ColorOrange     = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
	// OverlayShade darkens the scene under a menu to 80%.
	OverlayShade = color.RGBA{A: 0xcc}
)

// Align positions a label relative to its anchor point.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
)

// Label is a line of text anchored at X, Y.
type Label struct {
	Text   string
	X, Y   float64
	Scale  float64
	Color  color.Color
	Align  Align
	Stroke bool
	// Background is filled behind the text with Padding when set.
	Background color.Color
	Padding    float64
}

// Measure returns the drawn size of s at scale.
func Measure(s string, scale float64) (w, h float64) {
	if scale == 0 {
		scale = ScaleBody
	}
	w, h = text.Measure(s, Face, Face.Metrics().HLineGap+Face.Metrics().HAscent+Face.Metrics().HDescent)
	return w * scale, h * scale
}

// Bounds returns the rectangle the label covers, padding included.
func (l Label) Bounds() (x, y, w, h float64) {
	w, h = Measure(l.Text, l.Scale)
	x, y = l.X, l.Y-h/2
	if l.Align == AlignCenter {
		x -= w / 2
	}
	return x - l.Padding, y - l.Padding, w + 2*l.Padding, h + 2*l.Padding
}

// Draw renders the label onto dst.
func (l Label) Draw(dst *ebiten.Image) {
	if l.Text == "" {
		return
	}
	if l.Background != nil {
		x, y, w, h := l.Bounds()
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), l.Background, false)
	}
	if l.Stroke {
		for _, off := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			shadow := l
			shadow.X += off[0]
			shadow.Y += off[1]
			shadow.drawText(dst, ColorBlack)
		}
	}
	l.drawText(dst, l.Color)
}

func (l Label) drawText(dst *ebiten.Image, clr color.Color) {
	scale := l.Scale
	if scale == 0 {
		scale = ScaleBody
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.LineSpacing = Face.Metrics().HLineGap + Face.Metrics().HAscent + Face.Metrics().HDescent
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	if l.Align == AlignCenter {
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(l.X, l.Y)
	if clr == nil {
		clr = ColorWhite
	}
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, l.Text, Face, op)
}

// DrawText draws a centred label.
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	Label{Text: s, X: x, Y: y, Scale: scale, Color: clr}.Draw(dst)
}

// DrawOverlay shades the whole screen.
func DrawOverlay(dst *ebiten.Image) {
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), OverlayShade, false)
}
