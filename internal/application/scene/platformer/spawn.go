package platformer

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/younwookim/critterquest/internal/application/ui"
	"github.com/younwookim/critterquest/internal/domain/entity"
	"github.com/younwookim/critterquest/internal/domain/tilemap"
	"github.com/younwookim/critterquest/internal/ecs"
)

// Boss tuning per kind: scale and health of the first generation.
var bossSpawns = map[string]struct {
	kind   entity.BossKind
	prefix string
	scale  float64
	health int
}{
	"OpossumBossEnemy": {entity.BossOpossum, "opossum_boss", 2, 2},
	"CrocBossEnemy":    {entity.BossCroc, "croc_boss", 2, 1},
	"FrogBossEnemy":    {entity.BossFrog, "frog_boss_", 2, 3},
}

// Regular enemies by object name.
var enemySpawns = map[string]struct {
	prefix string
	create func(l entity.Level, x, y float64, name string) entity.Enemy
}{
	"FrogEnemy":    {"frog_", func(l entity.Level, x, y float64, name string) entity.Enemy { return entity.NewFrog(l, x, y, name) }},
	"OpossumEnemy": {"opossum_", func(l entity.Level, x, y float64, name string) entity.Enemy { return entity.NewOpossum(l, x, y, name) }},
	"CrocEnemy":    {"croc_", func(l entity.Level, x, y float64, name string) entity.Enemy { return entity.NewCroc(l, x, y, name) }},
	"BeeEnemy":     {"bee_", func(l entity.Level, x, y float64, name string) entity.Enemy { return entity.NewBee(l, x, y, name) }},
	"EagleEnemy":   {"eagle_", func(l entity.Level, x, y float64, name string) entity.Enemy { return entity.NewEagle(l, x, y, name) }},
}

const tipPadding = 20

// spawnObjects creates an entity for every object of the map's object layer.
func (p *Platformer) spawnObjects() {
	for i, o := range p.stage.Objects {
		x, y := o.Center()

		switch {
		case o.Name == "ExtraLife":
			p.addCollectable(entity.NewExtraLife(p, x, y))
		case o.Name == "TutorialText":
			p.addTip(o)
		case o.Name == "Crate":
			p.addCrate(entity.NewCrate(p, x, y))
		case o.Name == "MovingPlatform":
			p.addPlatform(entity.NewMovingPlatform(p, x, y, o.Name))
		case strings.Contains(o.Name, "Switch"):
			p.addSwitch(entity.NewSwitch(p, x, y, o.Name))
		case strings.Contains(o.Name, "ToggleTile"):
			p.addToggleTile(entity.NewToggleTile(p, x, y, o.Name))
		case o.Name == "DoubleJumpPowerup":
			p.addCollectable(entity.NewDoubleJumpPowerup(p, x, y))
		case o.Name == "SpeedBootsPowerup":
			p.addCollectable(entity.NewSpeedBootsPowerup(p, x, y))
		case o.Name == "Gem":
			p.addCollectable(entity.NewGem(p, x, y))
		case o.Name == "FrogSpringboard":
			p.addSpringboard(entity.NewFrogSpringboard(p, x, y))
		case o.Name == "SnailEnemy":
			p.addSnail(entity.NewSnail(p, x, y, "snail_"+strconv.Itoa(i)))
		case o.Name == "Exit":
			p.placeExit(o)
		default:
			if b, ok := bossSpawns[o.Name]; ok {
				p.enemies.Add(entity.NewBoss(p, b.kind, x, y, b.prefix+strconv.Itoa(i), b.scale, b.health, 1))
				continue
			}
			if e, ok := enemySpawns[o.Name]; ok {
				p.enemies.Add(e.create(p, x, y, e.prefix+strconv.Itoa(i)))
				continue
			}
			if o.Name != SpawnPointName {
				p.env.Logger.Debug("unknown map object", "name", o.Name, "id", o.ID)
			}
		}
	}
}

func (p *Platformer) addCollectable(c *entity.Collectable) {
	p.collectables = append(p.collectables, c)
	p.world.AddOverlap(c.Sprite(), p.player.Sprite(), func(_, _ *ecs.Sprite) {
		p.collect(c)
	})
}

// collect applies a picked up item to the session.
func (p *Platformer) collect(c *entity.Collectable) {
	name := c.Sprite().Name()
	if !c.Collect() {
		return
	}
	p.PlaySound(entity.SoundCoin)

	s := p.env.Session
	switch name {
	case entity.NameGem:
		if s.AddGem() {
			p.env.Logger.Info("gems turned into a life", "lives", s.Lives)
		}
	case entity.NameExtraLife:
		s.AddLife()
	case entity.NameDoubleJump:
		s.HasJumpPowerup = true
	case entity.NameSpeedBoots:
		s.HasSpeedPowerup = true
	}
}

func (p *Platformer) addTip(o tilemap.Object) {
	if o.Text == nil {
		return
	}
	l := ui.Label{
		Text:       wrap(o.Text.Text, o.Width),
		X:          o.X,
		Y:          o.Y,
		Color:      parseColor(o.Text.Color),
		Background: ui.ColorBlack,
		Padding:    tipPadding,
	}
	if o.Text.HAlign == "left" {
		l.Align = ui.AlignLeft
	}
	p.tips = append(p.tips, l)
}

func (p *Platformer) addCrate(c *entity.Crate) {
	p.crates = append(p.crates, c)
	p.world.AddCollider(c.Sprite(), p.player.Sprite(), func(crate, _ *ecs.Sprite) {
		if crate.Touching().Up {
			p.player.SetOnStandableObject()
			return
		}
		c.Move()
	})
}

func (p *Platformer) addPlatform(m *entity.MovingPlatform) {
	p.platforms = append(p.platforms, m)
	p.world.AddCollider(m.Sprite(), p.player.Sprite(), func(_, _ *ecs.Sprite) {
		m.Carry(p.player)
	})
}

func (p *Platformer) addSwitch(sw *entity.Switch) {
	p.switches = append(p.switches, sw)
	p.world.AddOverlap(sw.Sprite(), p.player.Sprite(), func(_, _ *ecs.Sprite) {
		if sw.OnPlayerOverlap(p.controls) {
			p.env.Logger.Debug("switch toggled", "switch", sw.SwitchID(), "on", sw.On())
		}
	})
}

func (p *Platformer) addToggleTile(t *entity.ToggleTile) {
	p.toggleTiles = append(p.toggleTiles, t)
	p.world.AddCollider(t.Sprite(), p.player.Sprite(), standOnTop(p.player))
}

func (p *Platformer) addSpringboard(f *entity.FrogSpringboard) {
	p.springboards = append(p.springboards, f)
	p.world.AddOverlap(p.player.Sprite(), f.Sprite(), func(_, _ *ecs.Sprite) {
		f.Launch(p.player)
	})
}

func (p *Platformer) addSnail(sn *entity.Snail) {
	p.enemies.Add(sn)
	p.world.AddCollider(sn.Sprite(), p.player.Sprite(), standOnTop(p.player))
}

// standOnTop lets the player jump off a solid prop it stands on.
func standOnTop(player *entity.Player) ecs.PairFunc {
	return func(prop, _ *ecs.Sprite) {
		if prop.Touching().Up {
			player.SetOnStandableObject()
		}
	}
}

// placeExit spawns the exit, or on a boss level remembers where it goes.
func (p *Platformer) placeExit(o tilemap.Object) {
	if p.env.Session.Levels.HasEndBoss(p.level) {
		p.exitX, p.exitY = o.X, o.Y
		p.exitPending = true
		return
	}
	x, y := o.Center()
	p.spawnExit(x, y)
}

func (p *Platformer) spawnExit(x, y float64) {
	p.exit = entity.NewExit(p, x, y)
	e := p.exit
	p.world.AddOverlap(p.player.Sprite(), e.Sprite(), func(_, _ *ecs.Sprite) {
		e.Touch(p.player)
	})
}

// linkSwitches hands every switch the toggle tiles carrying its id.
func (p *Platformer) linkSwitches() {
	for _, sw := range p.switches {
		n := sw.Link(p.toggleTiles)
		p.env.Logger.Debug("switch linked", "switch", sw.SwitchID(), "tiles", n)
	}
}

// wrap breaks s into lines no wider than width pixels.
func wrap(s string, width float64) string {
	if width <= 0 {
		return s
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if w, _ := ui.Measure(candidate, ui.ScaleBody); w > width && line != "" {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// parseColor reads a #rgb or #rrggbb colour. Anything else is white.
func parseColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if len(s) != 6 || err != nil {
		return ui.ColorWhite
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
