// internal/event/payload.go
package event

import (
	"go-neon-defense/internal/types"
)

// EntityPayload — событие про одну сущность в точке карты.
type EntityPayload struct {
	ID   types.EntityID
	Kind string
	X, Y float64
}

// RewardPayload — начисление золота и очков.
type RewardPayload struct {
	ID    types.EntityID
	Gold  int
	Score int
}

// WavePayload — события планировщика волн.
type WavePayload struct {
	Level int
	Wave  int // номер волны внутри уровня, с нуля
	Bonus int
}

// StatePayload — смена состояния игры.
type StatePayload struct {
	From, To string
}
