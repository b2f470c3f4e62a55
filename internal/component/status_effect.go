// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Active bool
	Timer  float64 // How much time is left for the effect.
}

// PoisonEffect — урон по времени.
type PoisonEffect struct {
	Active    bool
	Timer     float64 // Сколько осталось до снятия эффекта
	TickTimer float64 // Сколько осталось до следующего тика урона
	Damage    int     // Урон за один тик
}
