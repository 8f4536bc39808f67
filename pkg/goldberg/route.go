// pkg/goldberg/route.go
package goldberg

// RouteDirections converts a tile route into the unit normals enemies travel
// along. Unknown IDs are skipped.
func RouteDirections(s *Sphere, route []TileID) []Vec3 {
	dirs := make([]Vec3, 0, len(route))
	for _, id := range route {
		if t := s.Tile(id); t != nil {
			dirs = append(dirs, t.Normal)
		}
	}
	return dirs
}

// PathArc returns the summed great-circle angle of consecutive directions.
func PathArc(dirs []Vec3) float64 {
	total := 0.0
	for i := 0; i+1 < len(dirs); i++ {
		total += dirs[i].AngleTo(dirs[i+1])
	}
	return total
}
