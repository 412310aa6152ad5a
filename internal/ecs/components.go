package ecs

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Faces records contact on each side of a body.
type Faces struct {
	Up, Down, Left, Right bool
}

// None reports whether no face is set.
func (f Faces) None() bool {
	return !f.Up && !f.Down && !f.Left && !f.Right
}

// AllFaces has every face set.
var AllFaces = Faces{Up: true, Down: true, Left: true, Right: true}

// AnimationState is the playback cursor of a sprite's current animation.
type AnimationState struct {
	Key     string
	Index   int
	Elapsed float64
	Loops   int
	Playing bool
}

// SpriteData is the visual half of an engine-managed sprite.
// X and Y are the centre of the frame in world pixels.
type SpriteData struct {
	Order   int
	Name    string
	State   State
	Texture string
	Frame   string
	X, Y    float64
	FrameW  float64
	FrameH  float64
	Scale   float64
	FlipX   bool
	Tint    color.RGBA
	Fill    color.RGBA
	Alpha   float64
	Depth   int
	Visible bool
	Anim    AnimationState
}

// BodyData is the arcade physics half of a sprite.
// Size and offset are unscaled and relative to the frame's top-left corner.
type BodyData struct {
	Enable         bool
	W, H           float64
	OffsetX        float64
	OffsetY        float64
	VX, VY         float64
	AX, AY         float64
	DragX, DragY   float64
	MaxVX, MaxVY   float64
	AllowGravity   bool
	Immovable      bool
	CollideWorld   bool
	CollideHidden  bool
	CheckCollision Faces
	Blocked        Faces
	Touching       Faces

	// DX and DY hold the movement of the last physics step.
	DX, DY float64
	// PrevX and PrevY hold the sprite centre at the end of the last step.
	PrevX, PrevY float64
}

// Kind categorises sprites for queries and broad-phase tags.
type Kind int

const (
	KindProp Kind = iota
	KindPlayer
	KindEnemy
	KindCollectable
)

// String returns the broad-phase tag of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindCollectable:
		return "collectable"
	default:
		return "prop"
	}
}

var (
	SpriteComponent = donburi.NewComponentType[SpriteData]()
	BodyComponent   = donburi.NewComponentType[BodyData]()

	PlayerTag      = donburi.NewTag().SetName("Player")
	EnemyTag       = donburi.NewTag().SetName("Enemy")
	CollectableTag = donburi.NewTag().SetName("Collectable")
	PropTag        = donburi.NewTag().SetName("Prop")
)

func tagFor(k Kind) *donburi.ComponentType[donburi.Tag] {
	switch k {
	case KindPlayer:
		return PlayerTag
	case KindEnemy:
		return EnemyTag
	case KindCollectable:
		return CollectableTag
	default:
		return PropTag
	}
}

// White is the neutral tint.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// defaultMaxVelocity matches the arcade physics default cap.
const defaultMaxVelocity = 10000
