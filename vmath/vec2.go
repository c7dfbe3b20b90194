package vmath

import "math"

// Vec2 is a float32 2D vector in playfield pixels
type Vec2 struct {
	X, Y float32
}

func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Mag(v Vec2) float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Abs returns the absolute value of a float32 without a float64 round trip
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
