// internal/interfaces/game_context.go
package interfaces

import "go-neon-defense/pkg/pathcurve"

// PathContext — то, что системам нужно знать о текущем пути.
// Карта меняется между уровнями, поэтому системы спрашивают её каждый тик
// и не хранят у себя.
type PathContext interface {
	Curve() *pathcurve.Curve
}

// MapContext — путь плюс местность для проверок размещения.
type MapContext interface {
	PathContext
	Map() *pathcurve.Map
	Grid() pathcurve.Grid
	BlockedCells() *pathcurve.CellSet
}
