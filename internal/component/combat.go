package component

// Health — компонент здоровья
type Health struct {
	Value float64
	Max   float64
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage       float64
	FireInterval float64 // Секунд между выстрелами
	FireCooldown float64 // Оставшееся время до следующего выстрела
}
