// pkg/goldberg/vector.go
package goldberg

import "math"

// Vec3 is a point or direction in globe space.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a point in a tile's tangent plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}
func (v Vec3) LenSq() float64 { return v.Dot(v) }
func (v Vec3) Len() float64   { return math.Sqrt(v.LenSq()) }

// DistanceSqTo returns the squared euclidean distance between two points.
func (v Vec3) DistanceSqTo(o Vec3) float64 { return v.Sub(o).LenSq() }

// Normalize returns the unit vector in the direction of v. The zero vector is
// returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// AngleTo returns the angle in radians between v and o.
func (v Vec3) AngleTo(o Vec3) float64 {
	denom := math.Sqrt(v.LenSq() * o.LenSq())
	if denom == 0 {
		return math.Pi / 2
	}
	c := v.Dot(o) / denom
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Slerp interpolates along the great circle between the unit vectors v and o.
// Nearly parallel inputs fall back to a normalized linear blend.
func (v Vec3) Slerp(o Vec3, t float64) Vec3 {
	omega := v.AngleTo(o)
	if omega < 1e-9 {
		return v.Add(o.Sub(v).Scale(t)).Normalize()
	}
	sinOmega := math.Sin(omega)
	a := math.Sin((1-t)*omega) / sinOmega
	b := math.Sin(t*omega) / sinOmega
	return v.Scale(a).Add(o.Scale(b))
}

func (p Vec2) Len() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the polar angle of p in (-π, π].
func (p Vec2) Angle() float64 { return math.Atan2(p.Y, p.X) }
