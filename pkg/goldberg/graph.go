// pkg/goldberg/graph.go
package goldberg

import (
	"math"
	"sort"
)

// neighborTolerance widens the typical nearest-neighbour angle to admit the
// slightly longer edges around pentagons.
const neighborTolerance = 1.25

// Graph is an undirected tile adjacency graph. Neighbour lists are sorted by
// tile ID so traversal order is reproducible.
type Graph struct {
	adj [][]TileID
}

// BuildTileGraph infers adjacency from tile normals alone. The angular
// threshold is the median nearest-neighbour angle scaled by 1.25; each tile
// keeps up to Sides closest candidates under it and always keeps at least its
// nearest one. The result is symmetrized.
func BuildTileGraph(tiles []*Tile) *Graph {
	n := 0
	for _, t := range tiles {
		if int(t.ID)+1 > n {
			n = int(t.ID) + 1
		}
	}
	sets := make([]map[TileID]struct{}, n)
	for i := range sets {
		sets[i] = make(map[TileID]struct{})
	}
	if len(tiles) < 2 {
		return fromSets(sets)
	}

	normals := make([]Vec3, len(tiles))
	for i, t := range tiles {
		normals[i] = t.Normal.Normalize()
	}

	// angles[i][j] is cached because both passes below need every pair.
	angles := make([][]float64, len(tiles))
	minAngles := make([]float64, len(tiles))
	for i := range tiles {
		angles[i] = make([]float64, len(tiles))
		minAngles[i] = math.Inf(1)
	}
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			a := normals[i].AngleTo(normals[j])
			angles[i][j] = a
			angles[j][i] = a
			minAngles[i] = math.Min(minAngles[i], a)
			minAngles[j] = math.Min(minAngles[j], a)
		}
	}

	sorted := append([]float64(nil), minAngles...)
	sort.Float64s(sorted)
	threshold := sorted[len(sorted)/2] * neighborTolerance

	type candidate struct {
		idx   int
		angle float64
	}
	candidates := make([]candidate, 0, len(tiles)-1)

	for i, tile := range tiles {
		candidates = candidates[:0]
		for j := range tiles {
			if i != j {
				candidates = append(candidates, candidate{idx: j, angle: angles[i][j]})
			}
		}
		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].angle != candidates[b].angle {
				return candidates[a].angle < candidates[b].angle
			}
			return candidates[a].idx < candidates[b].idx
		})

		desired := tile.Sides
		if desired == 0 {
			desired = 6
		}
		accepted := 0
		for _, c := range candidates {
			if accepted >= desired {
				break
			}
			if c.angle <= threshold || accepted == 0 {
				other := tiles[c.idx].ID
				sets[tile.ID][other] = struct{}{}
				sets[other][tile.ID] = struct{}{}
				accepted++
			}
		}
	}

	return fromSets(sets)
}

// NewMeshGraph derives adjacency exactly from the triangulation: two tiles are
// neighbours when their geodesic vertices share an edge.
func NewMeshGraph(s *Sphere) *Graph {
	sets := make([]map[TileID]struct{}, len(s.Tiles))
	for i := range sets {
		sets[i] = make(map[TileID]struct{})
	}
	for _, e := range s.geodesic.Edges() {
		a, b := s.vertexToTile[e[0]], s.vertexToTile[e[1]]
		if a == NoTile || b == NoTile {
			continue
		}
		sets[a][b] = struct{}{}
		sets[b][a] = struct{}{}
	}
	return fromSets(sets)
}

func fromSets(sets []map[TileID]struct{}) *Graph {
	g := &Graph{adj: make([][]TileID, len(sets))}
	for id, set := range sets {
		list := make([]TileID, 0, len(set))
		for n := range set {
			list = append(list, n)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		g.adj[id] = list
	}
	return g
}

// Len returns the number of tile slots in the graph.
func (g *Graph) Len() int { return len(g.adj) }

// Has reports whether id is a vertex of the graph.
func (g *Graph) Has(id TileID) bool { return id >= 0 && int(id) < len(g.adj) }

// Neighbors returns the tiles adjacent to id. The slice must not be modified.
func (g *Graph) Neighbors(id TileID) []TileID {
	if !g.Has(id) {
		return nil
	}
	return g.adj[id]
}

func (g *Graph) Degree(id TileID) int { return len(g.Neighbors(id)) }

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b TileID) bool {
	list := g.Neighbors(a)
	i := sort.Search(len(list), func(i int) bool { return list[i] >= b })
	return i < len(list) && list[i] == b
}

// IsSymmetric reports whether every edge is present in both directions.
func (g *Graph) IsSymmetric() bool {
	for a := range g.adj {
		for _, b := range g.adj[a] {
			if !g.HasEdge(b, TileID(a)) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether both graphs have exactly the same edges.
func (g *Graph) Equal(o *Graph) bool {
	if g.Len() != o.Len() {
		return false
	}
	for id := range g.adj {
		a, b := g.adj[id], o.adj[id]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}
