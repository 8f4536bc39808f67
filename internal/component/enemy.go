package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	WaveIndex    int     // Волна, в которой враг появился
	TravelRadius float64 // Высота полёта над центром глобуса
	TotalDamage  float64
	ReachedEnd   bool // Достиг ли враг конца пути
}
