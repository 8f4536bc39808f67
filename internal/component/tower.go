// component/tower.go
package component

import "go-globe-defense/pkg/goldberg"

type Tower struct {
	DefID  string                       // ID из defs
	Tile   goldberg.TileID              // Тайл, на котором стоит башня
	Range  map[goldberg.TileID]struct{} // Тайлы в радиусе действия (в хопах)
	Height float64
	Radius float64
}

// InRange проверяет, попадает ли тайл в зону башни.
func (t *Tower) InRange(id goldberg.TileID) bool {
	_, ok := t.Range[id]
	return ok
}
