// Package levelselect provides the level picker with saved progress.
package levelselect

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/critterquest/internal/application/scene"
	"github.com/younwookim/critterquest/internal/application/ui"
)

// ResetLabel is the caption of the reset button.
const ResetLabel = "(r) Reset progress..."

// shortcutKeys[n-1] starts level n.
var shortcutKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC,
	ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
}

// LevelSelect lists every level with its lock state and best time.
type LevelSelect struct {
	env        *scene.Env
	background *ui.ParallaxBackground

	buttons []*ui.TextButton
	levels  []int
	reset   *ui.TextButton

	// set by button callbacks during Update
	chosen     int
	wantsReset bool
}

// New creates the level select screen.
func New(env *scene.Env) *LevelSelect {
	return &LevelSelect{env: env, background: env.Background()}
}

// OnEnter loads the progress and builds one button per level.
func (s *LevelSelect) OnEnter() {
	s.env.EnsureLevels()
	s.build()
}

func (s *LevelSelect) OnExit() {}

func (s *LevelSelect) build() {
	w, h := s.env.ScreenSize()
	levels := s.env.Session.Levels

	s.levels = levels.Levels()
	s.buttons = s.buttons[:0]
	for i, n := range s.levels {
		n := n
		b := ui.NewTextButton(w*0.5, h*(0.15+float64(i)*0.05), levels.Describe(n), levels.IsUnlocked(n),
			ui.ColorGreen, ui.ColorRed, func() { s.chosen = n })
		s.buttons = append(s.buttons, b)
	}
	s.reset = ui.NewTextButton(w*0.75, h*0.95, ResetLabel, true, ui.ColorWhite, ui.ColorWhite, func() { s.wantsReset = true })
}

// Buttons returns the level buttons in level order.
func (s *LevelSelect) Buttons() []*ui.TextButton {
	return s.buttons
}

// Update implements scene.Scene.
func (s *LevelSelect) Update(_ float64) (scene.Scene, error) {
	s.background.Update()
	s.chosen = 0
	s.wantsReset = false

	input := s.env.Input
	if input.JustPressed(ebiten.KeyEscape) {
		return s.env.Router.Title(), nil
	}

	for _, b := range s.buttons {
		b.Update(s.env.Pointer)
	}
	s.reset.Update(s.env.Pointer)

	if input.JustPressed(ebiten.KeyR) {
		s.wantsReset = true
	}
	if s.wantsReset {
		s.env.ResetProgress()
		s.build()
		return nil, nil
	}

	for _, n := range s.levels {
		if n <= len(shortcutKeys) && input.JustPressed(shortcutKeys[n-1]) {
			s.chosen = n
			break
		}
	}
	if s.chosen == 0 {
		return nil, nil
	}
	return s.start(s.chosen)
}

// start opens level n if it is unlocked; a locked level is ignored.
func (s *LevelSelect) start(n int) (scene.Scene, error) {
	if !s.env.Session.Levels.IsUnlocked(n) {
		s.env.Logger.Debug("level locked", "level", n)
		return nil, nil
	}
	return s.env.Router.Level(n)
}

// Draw implements scene.Scene.
func (s *LevelSelect) Draw(screen *ebiten.Image) {
	w, h := s.env.ScreenSize()
	s.background.Draw(screen)
	ui.DrawOverlay(screen)

	ui.Label{Text: "Level Select", X: w / 2, Y: h * 0.1, Scale: ui.ScaleLarge, Color: ui.ColorYellow, Stroke: true}.Draw(screen)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
	s.reset.Draw(screen)
}
