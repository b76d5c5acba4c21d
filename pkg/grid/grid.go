// pkg/grid/grid.go
package grid

import (
	"math"

	"go-grid-defense/internal/component"
)

// Cell — клетка карты в целочисленных координатах.
type Cell struct {
	X, Y int
}

// Grid — прямоугольная карта с непроходимыми клетками, входом и выходом.
// Одна клетка соответствует одной мировой единице; мировая ось Z ложится
// на ось Y сетки.
type Grid struct {
	Width, Height int
	Blocked       map[Cell]bool
	Entry         Cell
	Exit          Cell
}

// NewGrid создает пустую карту с входом слева и выходом справа по центру.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		Blocked: make(map[Cell]bool),
		Entry:   Cell{X: 0, Y: height / 2},
		Exit:    Cell{X: width - 1, Y: height / 2},
	}
}

// InBounds проверяет, что клетка лежит внутри карты.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// IsPassable — можно ли пройти через клетку.
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && !g.Blocked[c]
}

// Block делает клетку непроходимой. Вход и выход заблокировать нельзя.
func (g *Grid) Block(c Cell) {
	if c == g.Entry || c == g.Exit {
		return
	}
	g.Blocked[c] = true
}

// Neighbors возвращает проходимых 4-соседей клетки.
func (g *Grid) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{c.X + 1, c.Y}, {c.X - 1, c.Y},
		{c.X, c.Y + 1}, {c.X, c.Y - 1},
	}
	neighbors := make([]Cell, 0, 4)
	for _, n := range candidates {
		if g.IsPassable(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CellAt возвращает клетку, содержащую мировую точку (x, z).
func (g *Grid) CellAt(x, z float64) Cell {
	return Cell{X: int(math.Floor(x)), Y: int(math.Floor(z))}
}

// ToWaypoint переводит клетку в мировую точку ее центра.
func (c Cell) ToWaypoint() component.Waypoint {
	return component.Waypoint{X: float64(c.X) + 0.5, Z: float64(c.Y) + 0.5}
}

// EntryPosition — мировая позиция входа на высоте земли.
func (g *Grid) EntryPosition(groundHeight float64) component.Position {
	wp := g.Entry.ToWaypoint()
	return component.Position{X: wp.X, Y: groundHeight, Z: wp.Z}
}

// ExitWaypoint — мировая точка выхода.
func (g *Grid) ExitWaypoint() component.Waypoint {
	return g.Exit.ToWaypoint()
}
