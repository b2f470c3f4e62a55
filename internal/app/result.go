// internal/app/result.go
package app

import (
	"errors"

	"go-neon-defense/internal/system"
	"go-neon-defense/internal/types"
)

// Reason — причина отказа в запросе игрока.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonOnPath            Reason = "on_path"
	ReasonOffPath           Reason = "off_path"
	ReasonWrongTerrain      Reason = "wrong_terrain"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonOverlap           Reason = "overlap"
	ReasonOutOfBounds       Reason = "out_of_bounds"
	ReasonNoStock           Reason = "no_stock"
	ReasonNotInWave         Reason = "not_in_wave"
	ReasonMaxTier           Reason = "max_tier"
	ReasonNotFound          Reason = "not_found"
	ReasonUnknownType       Reason = "unknown_type"
	ReasonNotPlaying        Reason = "not_playing"
	ReasonLastWave          Reason = "last_wave"
	ReasonInTransition      Reason = "in_transition"
	ReasonNoTransition      Reason = "no_transition"
)

// Result — ответ на запрос размещения, продажи или улучшения.
// Отказ никогда не является ошибкой выполнения.
type Result struct {
	OK     bool           `json:"ok"`
	Reason Reason         `json:"reason,omitempty"`
	ID     types.EntityID `json:"id,omitempty"`
}

func accepted(id types.EntityID) Result {
	return Result{OK: true, ID: id}
}

func rejected(reason Reason) Result {
	return Result{Reason: reason}
}

// reasonFor переводит ошибки укреплений в причины отказа.
func reasonFor(err error) Reason {
	switch {
	case errors.Is(err, system.ErrNoStock):
		return ReasonNoStock
	case errors.Is(err, system.ErrNotInWave):
		return ReasonNotInWave
	case errors.Is(err, system.ErrOffPath):
		return ReasonOffPath
	case errors.Is(err, system.ErrOnPath):
		return ReasonOnPath
	case errors.Is(err, system.ErrWater):
		return ReasonWrongTerrain
	case errors.Is(err, system.ErrOccupied):
		return ReasonOverlap
	case errors.Is(err, system.ErrOffGrid):
		return ReasonOutOfBounds
	}
	return ReasonNotFound
}
