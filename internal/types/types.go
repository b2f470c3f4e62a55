// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности. 0 означает «нет сущности».
type EntityID uint64

// NoEntity — пустая ссылка.
const NoEntity EntityID = 0
