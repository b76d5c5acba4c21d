// internal/enemy/movement.go
package enemy

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/interfaces"
)

// updateMovement — машина состояний следования по пути.
// Пустой список точек — режим ожидания пути, иначе — движение к текущей
// точке с шагом, ограниченным так, чтобы не проскочить цель.
func (e *Enemy) updateMovement(deltaTime float64) {
	if len(e.path.Waypoints) == 0 {
		e.awaitPath()
		return
	}

	target := e.path.Waypoints[e.path.CurrentIndex]
	dx := target.X - e.pos.X
	dz := target.Z - e.pos.Z
	dist := math.Sqrt(dx*dx + dz*dz)

	if dist < config.WaypointArrivalRadius {
		e.path.CurrentIndex++
		if e.path.CurrentIndex >= len(e.path.Waypoints) {
			// Конец пути: терминальное состояние, враг покидает игровой объем.
			e.path.ReachedEnd = true
			e.pos.Y = config.RemovedHeight
			return
		}
		target = e.path.Waypoints[e.path.CurrentIndex]
		dx = target.X - e.pos.X
		dz = target.Z - e.pos.Z
		dist = math.Sqrt(dx*dx + dz*dz)
	}

	if dist > 0 {
		moveFraction := e.speed * deltaTime / dist
		if moveFraction > 1 {
			moveFraction = 1
		}
		e.pos.X += dx * moveFraction
		e.pos.Z += dz * moveFraction
	}
	e.pos.Y = config.GroundHeight
}

// awaitPath опрашивает незавершенный запрос пути и, если запроса нет,
// выдает новый с учетом кулдауна. Два запроса одновременно не живут.
func (e *Enemy) awaitPath() {
	// Пока ждем путь, враг стоит на земле и остается видимым.
	e.pos.Y = config.GroundHeight

	if e.pendingPath != nil {
		select {
		case res := <-e.pendingPath:
			e.pendingPath = nil
			e.installPath(res)
		default:
			// Провайдер еще думает.
		}
		return
	}

	if e.deps.PathProvider == nil {
		return
	}
	if e.age < e.path.LastRequestAt+e.path.Cooldown {
		return
	}
	e.pendingPath = e.deps.PathProvider.RequestPath(e.pos)
	e.path.LastRequestAt = e.age
}

func (e *Enemy) installPath(res interfaces.PathResult) {
	if res.Err != nil {
		// Не фатально: остаемся в ожидании и повторим после кулдауна.
		logrus.WithFields(logrus.Fields{"id": e.id, "err": res.Err}).
			Warn("path request failed, enemy keeps waiting")
		return
	}
	if len(res.Waypoints) == 0 {
		return
	}
	e.path.Waypoints = res.Waypoints
	e.path.CurrentIndex = 0
}
