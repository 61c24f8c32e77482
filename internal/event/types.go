// internal/event/types.go
package event

import "go-hexmap/pkg/hexmap"

const (
	CellSelected  EventType = "CellSelected"  // Data: CellData
	CellsRevealed EventType = "CellsRevealed" // Data: []hexmap.Cell
	MissedClick   EventType = "MissedClick"   // Data: Point
)

// CellData describes a click that landed on a hex.
type CellData struct {
	Cell hexmap.Cell
	X, Y int
}

// Point is a click position outside every hex.
type Point struct {
	X, Y int
}
