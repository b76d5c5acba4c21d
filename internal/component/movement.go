// component/movement.go
package component

// Position — компонент позиции. Движение идёт по горизонтальной плоскости
// X/Z; Y — высота над землёй, её выставляет рендер-логика, не геймплей.
type Position struct {
	X, Y, Z float64
}

// Waypoint — точка пути на плоскости земли.
type Waypoint struct {
	X, Z float64
}

// PathState — состояние следования по пути.
type PathState struct {
	Waypoints     []Waypoint
	CurrentIndex  int
	ReachedEnd    bool    // Достиг ли враг конца пути
	LastRequestAt float64 // Время (возраст сущности) последнего запроса пути
	Cooldown      float64 // Минимальный интервал между запросами пути
}
