// internal/app/options.go
package app

import (
	"go-globe-defense/internal/config"
	"go-globe-defense/internal/defs"
)

// Options — параметры партии. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Seed            int64 // 0 — сид от текущего времени
	Radius          float64
	ThicknessFactor float64 // толщина тайла как доля радиуса
	Frequency       int
	Schedule        *defs.WaveSchedule
	Tower           *defs.TowerDefinition

	// MeshAdjacency строит граф по рёбрам триангуляции вместо угловой эвристики.
	MeshAdjacency bool
	// ProtectRoutes запрещает постройку, после которой ни один спавн не дойдёт до цели.
	ProtectRoutes bool
}

func DefaultOptions() Options {
	return Options{
		Radius:          config.GlobeRadius,
		ThicknessFactor: config.TileThicknessFactor,
		Frequency:       config.GlobeFrequency,
		Schedule:        defs.DefaultSchedule(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Radius <= 0 {
		o.Radius = d.Radius
	}
	if o.ThicknessFactor <= 0 {
		o.ThicknessFactor = d.ThicknessFactor
	}
	if o.Frequency == 0 {
		o.Frequency = d.Frequency
	}
	if o.Schedule == nil {
		o.Schedule = d.Schedule
	}
	if o.Tower == nil {
		tower := defs.BasicTower
		o.Tower = &tower
	}
	return o
}
