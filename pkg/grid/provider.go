// pkg/grid/provider.go
package grid

import (
	"fmt"
	"time"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/interfaces"
)

// Provider — асинхронный поставщик путей поверх карты. Каждый запрос
// считается в своей горутине и разрешается через буферизованный канал,
// так что поздний ответ терминальной сущности никого не блокирует.
type Provider struct {
	grid  *Grid
	delay time.Duration // имитация задержки доставки, может быть 0
}

// NewProvider оборачивает карту в поставщика путей.
func NewProvider(g *Grid, delay time.Duration) *Provider {
	return &Provider{grid: g, delay: delay}
}

// RequestPath строит путь от позиции врага до выхода карты.
func (p *Provider) RequestPath(from component.Position) <-chan interfaces.PathResult {
	ch := make(chan interfaces.PathResult, 1)
	go func() {
		if p.delay > 0 {
			time.Sleep(p.delay)
		}

		start := p.grid.CellAt(from.X, from.Z)
		if !p.grid.IsPassable(start) {
			// Враг стоит вне карты или на стене — ведем от входа.
			start = p.grid.Entry
		}

		cells := AStar(start, p.grid.Exit, p.grid)
		if cells == nil {
			ch <- interfaces.PathResult{Err: fmt.Errorf("no route from %v to exit %v", start, p.grid.Exit)}
			return
		}

		waypoints := make([]component.Waypoint, len(cells))
		for i, c := range cells {
			waypoints[i] = c.ToWaypoint()
		}
		ch <- interfaces.PathResult{Waypoints: waypoints}
	}()
	return ch
}
