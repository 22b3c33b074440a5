// package common contains common types that are used throughout this importer. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "math"

// Vec2 is a 2-component vector. Parsed attribute data is kept at double
// precision until it is narrowed to float32 for GPU buffer emission.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3-component vector. Parsed attribute data is kept at double
// precision until it is narrowed to float32 for GPU buffer emission.
type Vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

// Cross returns the cross product of v and w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

// Norm returns v scaled to unit length.
func (v Vec3) Norm() Vec3 {
	l := math.Sqrt(v.Dot(v))
	return Vec3{
		X: v.X / l,
		Y: v.Y / l,
		Z: v.Z / l,
	}
}
