package platformer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/critterquest/internal/application/state"
	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/infrastructure/assets"
)

// Colors for rendering
var (
	colorSky          = color.RGBA{R: 0x32, G: 0x57, B: 0x62, A: 0xff}
	colorTileSolid    = color.RGBA{R: 0x5a, G: 0x40, B: 0x30, A: 0xff}
	colorTileTopOnly  = color.RGBA{R: 0x8a, G: 0x70, B: 0x50, A: 0xff}
	colorTileDamage   = color.RGBA{R: 0xc8, G: 0x32, B: 0x32, A: 0xff}
	colorDebugTile    = color.RGBA{R: 243, G: 134, B: 48, A: 0xbf}
	colorDebugFace    = color.RGBA{R: 40, G: 39, B: 37, A: 0xbf}
	colorPowerupLabel = ui.ColorWhite
)

// Draw implements scene.Scene.
func (p *Platformer) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	p.drawBackdrop(screen)

	p.drawLayer(screen, p.stage.Layer(tilemap.LayerBelow))
	for _, t := range p.tips {
		t.X -= p.cam.X
		t.Y -= p.cam.Y
		t.Draw(screen)
	}
	p.world.DrawSprites(screen, p.env.Assets, p.cam, math.MinInt, 1)
	p.drawLayer(screen, p.stage.Layer(tilemap.LayerWorld))
	p.drawLayer(screen, p.stage.Layer(tilemap.LayerHidden))
	p.world.DrawSprites(screen, p.env.Assets, p.cam, 2, 2)
	p.drawLayer(screen, p.stage.Layer(tilemap.LayerAbove))
	p.world.DrawSprites(screen, p.env.Assets, p.cam, 3, math.MaxInt)

	for _, c := range p.collectables {
		if c.Label() == "" {
			continue
		}
		x, y := c.LabelPosition()
		ui.Label{Text: c.Label(), X: x - p.cam.X, Y: y - p.cam.Y, Color: colorPowerupLabel, Stroke: true}.Draw(screen)
	}

	if p.debug {
		p.drawDebug(screen)
	}

	p.hud.Draw(screen)
	if p.state == state.StatePaused {
		p.menu.Draw(screen)
	}
}

// drawBackdrop repeats the far and middle images across the map width.
func (p *Platformer) drawBackdrop(screen *ebiten.Image) {
	_, h := p.env.ScreenSize()
	if far, ok := p.env.Assets.Image(assets.ImageBackgroundRepeat); ok {
		p.drawRepeated(screen, far, 0, h/2)
	}
	if middle, ok := p.env.Assets.Image(assets.ImageMiddleRepeat); ok {
		p.drawRepeated(screen, middle, h/4, h/2)
	}
}

func (p *Platformer) drawRepeated(screen, img *ebiten.Image, y, height float64) {
	iw := float64(img.Bounds().Dx())
	if iw <= 0 {
		return
	}
	w, _ := p.env.ScreenSize()
	sy := height / float64(img.Bounds().Dy())
	start := math.Floor(p.cam.X/iw) * iw
	for x := start; x < p.cam.X+w && x < p.stage.WidthInPixels(); x += iw {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, sy)
		op.GeoM.Translate(math.Round(x-p.cam.X), math.Round(y-p.cam.Y))
		screen.DrawImage(img, op)
	}
}

// drawLayer draws the visible tiles of layer. Tiles without a tileset image
// are drawn as flat blocks on the collision layer only.
func (p *Platformer) drawLayer(screen *ebiten.Image, layer *tilemap.Layer) {
	if layer == nil || !layer.Visible {
		return
	}
	w, h := p.env.ScreenSize()
	tw, th := float64(p.stage.TileWidth), float64(p.stage.TileHeight)
	tx0, ty0, tx1, ty1 := p.stage.TileRange(p.cam.X, p.cam.Y, w, h)
	tx0, ty0 = max(tx0, 0), max(ty0, 0)
	tx1, ty1 = min(tx1, layer.Width-1), min(ty1, layer.Height-1)

	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			t := layer.At(tx, ty)
			// widget tiles steer enemies and stay hidden
			if t.Empty() || t.Widget {
				continue
			}
			x := float64(tx)*tw - p.cam.X
			y := float64(ty)*th - p.cam.Y

			if ts, ok := p.stage.TilesetFor(t.GID); ok {
				if img, ok := p.env.Assets.Tile(ts, t.GID); ok {
					op := &ebiten.DrawImageOptions{}
					op.GeoM.Translate(math.Round(x), math.Round(y))
					screen.DrawImage(img, op)
					continue
				}
			}
			if layer.Name != tilemap.LayerWorld {
				continue
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(tw), float32(th), fallbackTileColor(t), false)
		}
	}
}

func fallbackTileColor(t tilemap.Tile) color.RGBA {
	switch {
	case t.Damage:
		return colorTileDamage
	case t.TopOnly:
		return colorTileTopOnly
	default:
		return colorTileSolid
	}
}

// drawDebug outlines bodies and shades colliding tiles.
func (p *Platformer) drawDebug(screen *ebiten.Image) {
	layer := p.stage.Layer(tilemap.LayerWorld)
	tw, th := float32(p.stage.TileWidth), float32(p.stage.TileHeight)
	layer.Each(func(tx, ty int, t tilemap.Tile) {
		if !t.Collides {
			return
		}
		x := float32(tx)*tw - float32(p.cam.X)
		y := float32(ty)*th - float32(p.cam.Y)
		vector.DrawFilledRect(screen, x, y, tw, th, colorDebugTile, false)
		if t.TopOnly {
			vector.StrokeLine(screen, x, y, x+tw, y, 1, colorDebugFace, false)
			return
		}
		vector.StrokeRect(screen, x, y, tw, th, 1, colorDebugFace, false)
	})
	p.world.DrawDebug(screen, p.cam)
}
