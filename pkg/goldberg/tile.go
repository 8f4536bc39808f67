// pkg/goldberg/tile.go
package goldberg

// TileID indexes a tile inside a Sphere. IDs are dense, starting at zero.
type TileID int

// NoTile marks the absence of a tile.
const NoTile TileID = -1

// Tile is one pentagonal or hexagonal cell of the globe.
type Tile struct {
	ID     TileID
	Vertex int // geodesic vertex the tile is centred on
	Sides  int

	Center    Vec3 // on the sphere surface, at the globe radius
	Normal    Vec3 // unit outward direction
	Tangent   Vec3
	Bitangent Vec3

	// Ring is the polygon outline in the (Tangent, Bitangent) plane,
	// wound counter-clockwise around Normal.
	Ring       []Vec2
	RingRadius float64

	Occupied bool
}

func (t *Tile) IsPentagon() bool { return t.Sides == 5 }
func (t *Tile) IsHexagon() bool  { return t.Sides == 6 }

// WorldRing lifts the ring into globe space, offset along the normal by lift.
// A lift equal to the shell thickness gives the tile's top face.
func (t *Tile) WorldRing(lift float64) []Vec3 {
	base := t.Center.Add(t.Normal.Scale(lift))
	out := make([]Vec3, len(t.Ring))
	for i, p := range t.Ring {
		out[i] = base.Add(t.Tangent.Scale(p.X)).Add(t.Bitangent.Scale(p.Y))
	}
	return out
}

// SurfacePoint returns the centre of the tile lifted along its normal.
func (t *Tile) SurfacePoint(lift float64) Vec3 {
	return t.Center.Add(t.Normal.Scale(lift))
}

// SignedArea returns twice the signed area of the ring. It is positive for a
// counter-clockwise ring.
func (t *Tile) SignedArea() float64 {
	return signedArea(t.Ring)
}

// IsConvex reports whether the ring turns the same way at every corner.
func (t *Tile) IsConvex() bool {
	n := len(t.Ring)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := t.Ring[i]
		b := t.Ring[(i+1)%n]
		c := t.Ring[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross <= 0 {
			return false
		}
	}
	return true
}

func signedArea(ring []Vec2) float64 {
	area := 0.0
	for i := range ring {
		p1 := ring[i]
		p2 := ring[(i+1)%len(ring)]
		area += p1.X*p2.Y - p2.X*p1.Y
	}
	return area
}
