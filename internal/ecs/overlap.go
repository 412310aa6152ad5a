package ecs

import (
	"math"

	"github.com/solarlune/resolv"
)

// overlapBias is the slack added to the per-step movement when deciding
// whether an intersection is shallow enough to separate.
const overlapBias = 4

// PairFunc is called with the two sprites of a pair in registration order.
type PairFunc func(a, b *Sprite)

type pair struct {
	a, b     *Sprite
	fn       PairFunc
	separate bool
}

func (p *pair) live() bool {
	return p.a.Active() && p.b.Active()
}

// AddCollider registers a pair that is separated and reported every physics step.
func (w *World) AddCollider(a, b *Sprite, fn PairFunc) {
	w.colliders = append(w.colliders, &pair{a: a, b: b, fn: fn, separate: true})
}

// AddOverlap registers a pair that is reported every physics step while the
// bodies intersect.
func (w *World) AddOverlap(a, b *Sprite, fn PairFunc) {
	w.overlaps = append(w.overlaps, &pair{a: a, b: b, fn: fn})
}

// Colliders returns the number of live collider registrations.
func (w *World) Colliders() int { return countLive(w.colliders) }

// Overlaps returns the number of live overlap registrations.
func (w *World) Overlaps() int { return countLive(w.overlaps) }

func countLive(ps []*pair) int {
	n := 0
	for _, p := range ps {
		if p.live() {
			n++
		}
	}
	return n
}

// ResolvePairs separates every registered collider, then reports every
// registered overlap. Registrations whose sprites were destroyed are dropped.
func (w *World) ResolvePairs() {
	for _, s := range w.sprites {
		s.syncObject()
	}
	w.resolve(&w.colliders)
	w.resolve(&w.overlaps)
}

// resolve walks the registrations present at the start of the pass. Pairs added
// from callbacks are kept for the next pass.
func (w *World) resolve(list *[]*pair) {
	n := len(*list)
	for i := 0; i < n && i < len(*list); i++ {
		p := (*list)[i]
		if !p.live() {
			continue
		}
		if p.separate {
			w.collide(p.a, p.b, p.fn)
		} else {
			w.Overlap(p.a, p.b, p.fn)
		}
	}
	kept := make([]*pair, 0, len(*list))
	for _, p := range *list {
		if p.live() {
			kept = append(kept, p)
		}
	}
	*list = kept
}

// Overlap calls fn when the two bodies intersect and reports whether they did.
// A face is marked touching only when the penetration on its axis is shallow
// enough to come from the last step's motion. Nothing is moved.
func (w *World) Overlap(a, b *Sprite, fn PairFunc) bool {
	if !w.canInteract(a, b) {
		return false
	}
	if !bodyRect(a.Data(), a.Body()).Intersects(bodyRect(b.Data(), b.Body())) {
		return false
	}

	touchY(a, b)
	touchX(a, b)

	if fn != nil {
		fn(a, b)
	}
	return true
}

// collide separates the bodies once if they intersect and calls fn afterwards.
func (w *World) collide(a, b *Sprite, fn PairFunc) bool {
	if !w.canInteract(a, b) {
		return false
	}
	if !bodyRect(a.Data(), a.Body()).Intersects(bodyRect(b.Data(), b.Body())) {
		return false
	}

	hitY := separateY(a, b)
	hitX := false
	if bodyRect(a.Data(), a.Body()).Intersects(bodyRect(b.Data(), b.Body())) {
		hitX = separateX(a, b)
	}
	a.syncObject()
	b.syncObject()

	if !hitX && !hitY {
		return false
	}
	if fn != nil {
		fn(a, b)
	}
	return true
}

func (w *World) canInteract(a, b *Sprite) bool {
	if a == b || !a.Active() || !b.Active() {
		return false
	}
	ab, bb := a.Body(), b.Body()
	if !ab.Enable || !bb.Enable || ab.CheckCollision.None() || bb.CheckCollision.None() {
		return false
	}
	return w.nearby(a, b)
}

// nearby asks the resolv space whether b shares a cell with a. Bodies outside
// the space have no cells and always pass through to the exact test.
func (w *World) nearby(a, b *Sprite) bool {
	if a.obj == nil || b.obj == nil {
		return true
	}
	if len(a.obj.TouchingCells) == 0 || len(b.obj.TouchingCells) == 0 {
		return true
	}
	col := a.obj.Check(0, 0)
	if col == nil {
		return false
	}
	return containsObject(col.Objects, b.obj)
}

func containsObject(objs []*resolv.Object, target *resolv.Object) bool {
	for _, o := range objs {
		if o == target {
			return true
		}
	}
	return false
}

// touchY marks the vertical faces in contact and returns the overlap to undo.
// It fails when the bodies move alike or the overlap is deeper than the
// step's motion allows.
func touchY(a, b *Sprite) (float64, bool) {
	ab, bb := a.Body(), b.Body()
	ra, rb := bodyRect(a.Data(), ab), bodyRect(b.Data(), bb)

	maxOverlap := math.Abs(ab.DY) + math.Abs(bb.DY) + overlapBias
	switch {
	case ab.DY > bb.DY:
		overlap := ra.Bottom() - rb.Y
		if overlap > maxOverlap || !ab.CheckCollision.Down || !bb.CheckCollision.Up {
			return 0, false
		}
		ab.Touching.Down = true
		bb.Touching.Up = true
		return overlap, true
	case ab.DY < bb.DY:
		overlap := ra.Y - rb.Bottom()
		if -overlap > maxOverlap || !ab.CheckCollision.Up || !bb.CheckCollision.Down {
			return 0, false
		}
		ab.Touching.Up = true
		bb.Touching.Down = true
		return overlap, true
	}
	return 0, false
}

// touchX is touchY for the horizontal faces.
func touchX(a, b *Sprite) (float64, bool) {
	ab, bb := a.Body(), b.Body()
	ra, rb := bodyRect(a.Data(), ab), bodyRect(b.Data(), bb)

	maxOverlap := math.Abs(ab.DX) + math.Abs(bb.DX) + overlapBias
	switch {
	case ab.DX > bb.DX:
		overlap := ra.Right() - rb.X
		if overlap > maxOverlap || !ab.CheckCollision.Right || !bb.CheckCollision.Left {
			return 0, false
		}
		ab.Touching.Right = true
		bb.Touching.Left = true
		return overlap, true
	case ab.DX < bb.DX:
		overlap := ra.X - rb.Right()
		if -overlap > maxOverlap || !ab.CheckCollision.Left || !bb.CheckCollision.Right {
			return 0, false
		}
		ab.Touching.Left = true
		bb.Touching.Right = true
		return overlap, true
	}
	return 0, false
}

func separateY(a, b *Sprite) bool {
	overlap, ok := touchY(a, b)
	if !ok {
		return false
	}
	ad, bd := a.Data(), b.Data()
	ab, bb := a.Body(), b.Body()

	switch {
	case ab.Immovable && bb.Immovable:
	case bb.Immovable:
		ad.Y -= overlap
		ab.VY = bb.VY
	case ab.Immovable:
		bd.Y += overlap
		bb.VY = ab.VY
	default:
		ad.Y -= overlap / 2
		bd.Y += overlap / 2
		avg := (ab.VY + bb.VY) / 2
		ab.VY, bb.VY = avg, avg
	}
	return true
}

func separateX(a, b *Sprite) bool {
	overlap, ok := touchX(a, b)
	if !ok {
		return false
	}
	ad, bd := a.Data(), b.Data()
	ab, bb := a.Body(), b.Body()

	switch {
	case ab.Immovable && bb.Immovable:
	case bb.Immovable:
		ad.X -= overlap
		ab.VX = bb.VX
	case ab.Immovable:
		bd.X += overlap
		bb.VX = ab.VX
	default:
		ad.X -= overlap / 2
		bd.X += overlap / 2
		avg := (ab.VX + bb.VX) / 2
		ab.VX, bb.VX = avg, avg
	}
	return true
}
