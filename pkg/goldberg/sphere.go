// pkg/goldberg/sphere.go
package goldberg

import (
	"fmt"
	"math"
	"sort"
)

// ringInflation slightly enlarges every ring so neighbouring tiles overlap
// by a hairline instead of leaving seams.
const ringInflation = 1.012

// Sphere is the tile set of a Goldberg polyhedron built on a geodesic grid.
type Sphere struct {
	Radius    float64
	Thickness float64
	Frequency int

	Tiles     []*Tile
	Pentagons int
	Hexagons  int
	// Skipped counts vertices whose ring came out with fewer than five
	// corners. It is zero for every valid geodesic grid.
	Skipped int

	geodesic     *Geodesic
	vertexToTile []TileID
}

// BuildTileSphere constructs the dual of a frequency-f geodesic icosahedron.
// Every geodesic vertex becomes a tile whose corners are the centroids of the
// triangles around it.
func BuildTileSphere(radius, thickness float64, frequency int) (*Sphere, error) {
	geo, err := NewGeodesic(frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to build geodesic grid: %w", err)
	}

	incident := geo.VertexFaces()
	centroids := geo.FaceCentroids()

	s := &Sphere{
		Radius:       radius,
		Thickness:    thickness,
		Frequency:    frequency,
		Tiles:        make([]*Tile, 0, len(geo.Vertices)),
		geodesic:     geo,
		vertexToTile: make([]TileID, len(geo.Vertices)),
	}

	for v, dir := range geo.Vertices {
		s.vertexToTile[v] = NoTile

		normal := dir.Normalize()
		center := normal.Scale(radius)
		tangent, bitangent := tangentBasis(normal)

		ring := make([]Vec2, 0, len(incident[v]))
		for _, fi := range incident[v] {
			offset := centroids[fi].Scale(radius).Sub(center)
			ring = append(ring, Vec2{X: offset.Dot(tangent), Y: offset.Dot(bitangent)})
		}
		if len(ring) < 5 {
			s.Skipped++
			continue
		}
		sort.Slice(ring, func(i, j int) bool {
			return ring[i].Angle() < ring[j].Angle()
		})
		if signedArea(ring) < 0 {
			for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
				ring[i], ring[j] = ring[j], ring[i]
			}
		}

		ringRadius := 0.0
		for i := range ring {
			ring[i].X *= ringInflation
			ring[i].Y *= ringInflation
			ringRadius = math.Max(ringRadius, ring[i].Len())
		}

		id := TileID(len(s.Tiles))
		s.vertexToTile[v] = id
		s.Tiles = append(s.Tiles, &Tile{
			ID:         id,
			Vertex:     v,
			Sides:      len(ring),
			Center:     center,
			Normal:     normal,
			Tangent:    tangent,
			Bitangent:  bitangent,
			Ring:       ring,
			RingRadius: ringRadius,
		})
		if len(ring) == 5 {
			s.Pentagons++
		} else {
			s.Hexagons++
		}
	}

	return s, nil
}

// tangentBasis returns two unit vectors spanning the plane orthogonal to n.
// The world Y axis seeds the basis unless n is nearly parallel to it.
func tangentBasis(n Vec3) (Vec3, Vec3) {
	seed := Vec3{0, 1, 0}
	if math.Abs(seed.Dot(n)) > 0.9 {
		seed = Vec3{1, 0, 0}
	}
	t1 := seed.Cross(n).Normalize()
	t2 := n.Cross(t1)
	return t1, t2
}

// Len returns the number of tiles.
func (s *Sphere) Len() int { return len(s.Tiles) }

// Tile returns the tile with the given ID, or nil when it does not exist.
func (s *Sphere) Tile(id TileID) *Tile {
	if id < 0 || int(id) >= len(s.Tiles) {
		return nil
	}
	return s.Tiles[id]
}

// IsOccupied implements Occupancy.
func (s *Sphere) IsOccupied(id TileID) bool {
	t := s.Tile(id)
	return t != nil && t.Occupied
}

// SetOccupied marks a tile as blocked or free. Unknown IDs are ignored.
func (s *Sphere) SetOccupied(id TileID, occupied bool) {
	if t := s.Tile(id); t != nil {
		t.Occupied = occupied
	}
}

// ClearOccupancy frees every tile.
func (s *Sphere) ClearOccupancy() {
	for _, t := range s.Tiles {
		t.Occupied = false
	}
}

// PentagonIDs returns the IDs of the five-sided tiles in ascending order.
func (s *Sphere) PentagonIDs() []TileID {
	ids := make([]TileID, 0, 12)
	for _, t := range s.Tiles {
		if t.IsPentagon() {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// BaseHexRadius returns the ring radius of the first six-sided tile, or of
// the first tile when the sphere has no hexagons (frequency 1).
func (s *Sphere) BaseHexRadius() float64 {
	for _, t := range s.Tiles {
		if t.IsHexagon() {
			return t.RingRadius
		}
	}
	if len(s.Tiles) > 0 {
		return s.Tiles[0].RingRadius
	}
	return 0
}

// Nearest returns the tile whose normal is closest to dir.
func (s *Sphere) Nearest(dir Vec3) TileID {
	dir = dir.Normalize()
	best := NoTile
	bestDot := math.Inf(-1)
	for _, t := range s.Tiles {
		if d := t.Normal.Dot(dir); d > bestDot {
			bestDot = d
			best = t.ID
		}
	}
	return best
}
