// pkg/goldberg/pathfinding.go
package goldberg

import "fmt"

// Occupancy reports which tiles are blocked for routing.
type Occupancy interface {
	IsOccupied(id TileID) bool
}

// OccupancyFunc adapts a plain function to Occupancy.
type OccupancyFunc func(id TileID) bool

func (f OccupancyFunc) IsOccupied(id TileID) bool { return f(id) }

// FindPath runs a breadth-first search from start to target and returns the
// fewest-hop route, both endpoints included. A tile is traversable when it is
// free or is the target itself; the start tile is never checked. A nil occ
// treats every tile as free. ErrNoPath is returned when the target is cut off.
func FindPath(g *Graph, start, target TileID, occ Occupancy) ([]TileID, error) {
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: start %d", ErrTileNotFound, start)
	}
	if !g.Has(target) {
		return nil, fmt.Errorf("%w: target %d", ErrTileNotFound, target)
	}
	if start == target {
		return []TileID{start}, nil
	}

	visited := make([]bool, g.Len())
	parent := make([]TileID, g.Len())
	visited[start] = true
	parent[start] = NoTile

	queue := []TileID{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(current) {
			if visited[next] {
				continue
			}
			if next != target && occ != nil && occ.IsOccupied(next) {
				continue
			}
			visited[next] = true
			parent[next] = current
			if next == target {
				return reconstructPath(parent, target), nil
			}
			queue = append(queue, next)
		}
	}
	return nil, ErrNoPath
}

func reconstructPath(parent []TileID, end TileID) []TileID {
	path := []TileID{}
	for id := end; id != NoTile; id = parent[id] {
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// TilesWithinHops returns every tile reachable from start in at most hops
// edges, start included. Occupancy is ignored: range is purely topological.
func TilesWithinHops(g *Graph, start TileID, hops int) map[TileID]struct{} {
	result := make(map[TileID]struct{})
	if !g.Has(start) {
		return result
	}
	result[start] = struct{}{}
	frontier := []TileID{start}
	for step := 0; step < hops && len(frontier) > 0; step++ {
		next := make([]TileID, 0, len(frontier)*6)
		for _, id := range frontier {
			for _, n := range g.Neighbors(id) {
				if _, seen := result[n]; seen {
					continue
				}
				result[n] = struct{}{}
				next = append(next, n)
			}
		}
		frontier = next
	}
	return result
}
