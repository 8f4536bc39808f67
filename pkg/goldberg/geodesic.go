// pkg/goldberg/geodesic.go
package goldberg

import (
	"fmt"
	"math"
)

const (
	// vertexEpsilon is the distance under which two subdivision points on the
	// unit sphere are treated as the same vertex.
	vertexEpsilon = 1e-7
	// vertexCellSize is the spatial hash cell edge. It must be larger than
	// vertexEpsilon so a match is always in the same or an adjacent cell.
	vertexCellSize = 1e-5
)

// Geodesic is a subdivided icosahedron projected onto the unit sphere.
type Geodesic struct {
	Frequency int
	Vertices  []Vec3
	Faces     [][3]int
}

var icosahedronVertices = func() []Vec3 {
	phi := (1 + math.Sqrt(5)) / 2
	raw := []Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	for i := range raw {
		raw[i] = raw[i].Normalize()
	}
	return raw
}()

var icosahedronFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// vertexIndex deduplicates vertices shared by neighbouring base faces. Points
// are bucketed by a quantized cell and matched by distance against the cell and
// its 26 neighbours, so two representations of one vertex that straddle a cell
// boundary still collapse.
type vertexIndex struct {
	vertices []Vec3
	buckets  map[[3]int64][]int
}

func newVertexIndex(capacity int) *vertexIndex {
	return &vertexIndex{
		vertices: make([]Vec3, 0, capacity),
		buckets:  make(map[[3]int64][]int, capacity),
	}
}

func cellOf(v Vec3) [3]int64 {
	return [3]int64{
		int64(math.Floor(v.X / vertexCellSize)),
		int64(math.Floor(v.Y / vertexCellSize)),
		int64(math.Floor(v.Z / vertexCellSize)),
	}
}

func (vi *vertexIndex) lookupOrAdd(v Vec3) int {
	cell := cellOf(v)
	epsSq := vertexEpsilon * vertexEpsilon
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				key := [3]int64{cell[0] + dx, cell[1] + dy, cell[2] + dz}
				for _, idx := range vi.buckets[key] {
					if vi.vertices[idx].DistanceSqTo(v) <= epsSq {
						return idx
					}
				}
			}
		}
	}
	idx := len(vi.vertices)
	vi.vertices = append(vi.vertices, v)
	vi.buckets[cell] = append(vi.buckets[cell], idx)
	return idx
}

// NewGeodesic subdivides each icosahedron face into f² triangles and projects
// the grid onto the unit sphere. The result has 10f²+2 vertices and 20f² faces.
func NewGeodesic(frequency int) (*Geodesic, error) {
	if frequency < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFrequency, frequency)
	}

	index := newVertexIndex(10*frequency*frequency + 2)
	faces := make([][3]int, 0, 20*frequency*frequency)

	for _, face := range icosahedronFaces {
		a := icosahedronVertices[face[0]]
		b := icosahedronVertices[face[1]]
		c := icosahedronVertices[face[2]]

		// grid[i][j] is the barycentric point (i, j, f-i-j) over (a, b, c).
		grid := make([][]int, frequency+1)
		for i := 0; i <= frequency; i++ {
			grid[i] = make([]int, frequency-i+1)
			for j := 0; j <= frequency-i; j++ {
				k := frequency - i - j
				p := a.Scale(float64(i)).
					Add(b.Scale(float64(j))).
					Add(c.Scale(float64(k))).
					Scale(1 / float64(frequency)).
					Normalize()
				grid[i][j] = index.lookupOrAdd(p)
			}
		}

		for i := 0; i < frequency; i++ {
			for j := 0; j < frequency-i; j++ {
				v0 := grid[i][j]
				v1 := grid[i+1][j]
				v2 := grid[i][j+1]
				faces = append(faces, [3]int{v0, v1, v2})
				if i+j < frequency-1 {
					v3 := grid[i+1][j+1]
					faces = append(faces, [3]int{v1, v3, v2})
				}
			}
		}
	}

	return &Geodesic{
		Frequency: frequency,
		Vertices:  index.vertices,
		Faces:     faces,
	}, nil
}

// VertexFaces returns, for every vertex, the indices of faces touching it.
func (g *Geodesic) VertexFaces() [][]int {
	incident := make([][]int, len(g.Vertices))
	for fi, f := range g.Faces {
		for _, v := range f {
			incident[v] = append(incident[v], fi)
		}
	}
	return incident
}

// FaceCentroids returns the centroid of each face projected back onto the
// unit sphere.
func (g *Geodesic) FaceCentroids() []Vec3 {
	centroids := make([]Vec3, len(g.Faces))
	for i, f := range g.Faces {
		centroids[i] = g.Vertices[f[0]].
			Add(g.Vertices[f[1]]).
			Add(g.Vertices[f[2]]).
			Scale(1.0 / 3).
			Normalize()
	}
	return centroids
}

// Edges returns every undirected triangulation edge exactly once as (lo, hi).
func (g *Geodesic) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(g.Faces)*3/2)
	edges := make([][2]int, 0, len(g.Faces)*3/2)
	for _, f := range g.Faces {
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	return edges
}
