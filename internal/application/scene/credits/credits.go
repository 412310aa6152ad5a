// Package credits provides the screen shown after the last level.
package credits

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/ui"
)

// Credit is one line of credits with its link.
type Credit struct {
	Text string
	Link string
	URL  string
}

// Entries lists the credits in display order.
var Entries = []Credit{
	{Text: "Developed by werkn", Link: "werkn.github.io", URL: "https://werkn.github.io"},
	{Text: "Tileset by ansimuz", Link: "ansimuz.itch.io", URL: "https://ansimuz.itch.io/"},
	{Text: "Music by Pascal Belisle", Link: "soundcloud.com/pascalbelisle", URL: "https://soundcloud.com/pascalbelisle"},
}

// Credits lists the authors. Enter starts a new session from the title.
type Credits struct {
	env        *scene.Env
	background *ui.ParallaxBackground

	Links []*ui.TextButton
	// Opened records every link clicked, in order.
	Opened []string
}

// New creates the credits screen.
func New(env *scene.Env) *Credits {
	c := &Credits{env: env, background: env.Background()}
	w, h := env.ScreenSize()
	for i, e := range Entries {
		e := e
		y := h * (0.35 + float64(i)*0.1)
		c.Links = append(c.Links, ui.NewTextButton(w*0.5, y, e.Link, true, ui.ColorLightBlue, ui.ColorRed, func() {
			c.open(e.URL)
		}))
	}
	return c
}

// open logs the link; the game does not launch a browser.
func (c *Credits) open(url string) {
	c.Opened = append(c.Opened, url)
	c.env.Logger.Info("credits link", "url", url)
}

// Update implements scene.Scene.
func (c *Credits) Update(_ float64) (scene.Scene, error) {
	c.background.Update()
	for _, l := range c.Links {
		l.Update(c.env.Pointer)
	}

	if c.env.Input.JustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		// a finished run starts over with fresh lives; the save is kept
		c.env.Session.Reset()
		return c.env.Router.Title(), nil
	}
	return nil, nil
}

// Draw implements scene.Scene.
func (c *Credits) Draw(screen *ebiten.Image) {
	w, h := c.env.ScreenSize()
	c.background.Draw(screen)
	ui.DrawOverlay(screen)

	ui.Label{Text: "Credits", X: w / 2, Y: h * 0.2, Scale: ui.ScaleHeading, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
	for i, e := range Entries {
		ui.Label{Text: e.Text, X: w / 2, Y: h * (0.3 + float64(i)*0.1), Scale: ui.ScaleLarge, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
	}
	for _, l := range c.Links {
		l.Draw(screen)
	}
	ui.Label{Text: "<Press Enter>", X: w / 2, Y: h * 0.75, Scale: ui.ScaleLarge, Color: ui.ColorWhite, Stroke: true}.Draw(screen)
}

func (c *Credits) OnEnter() {}
func (c *Credits) OnExit()  {}
