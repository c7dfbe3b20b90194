package game

import (
	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/vmath"
)

// Entity is a textured body with a top-left position and a per-frame velocity
type Entity struct {
	Texture  *asset.Texture
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// NewEntity creates a stationary entity
func NewEntity(texture *asset.Texture, position vmath.Vec2) Entity {
	return NewEntityWithVelocity(texture, position, vmath.Vec2{})
}

// NewEntityWithVelocity creates an entity moving at velocity pixels per frame
func NewEntityWithVelocity(texture *asset.Texture, position, velocity vmath.Vec2) Entity {
	return Entity{
		Texture:  texture,
		Position: position,
		Velocity: velocity,
	}
}

// Width returns the texture width in pixels
func (e *Entity) Width() float32 {
	return float32(e.Texture.Width())
}

// Height returns the texture height in pixels
func (e *Entity) Height() float32 {
	return float32(e.Texture.Height())
}

// Bounds returns the axis-aligned rectangle covered by the texture
func (e *Entity) Bounds() vmath.Rect {
	return vmath.NewRect(e.Position.X, e.Position.Y, e.Width(), e.Height())
}

// Centre returns the midpoint of the bounds
func (e *Entity) Centre() vmath.Vec2 {
	return vmath.V2(e.Position.X+e.Width()/2, e.Position.Y+e.Height()/2)
}
