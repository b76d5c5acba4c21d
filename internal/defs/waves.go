// internal/defs/waves.go
package defs

import "math"

const (
	healthScalePerWave = 0.10
	goldScalePerWave   = 0.05
)

// ScaleHealth applies wave scaling to a base health value.
func ScaleHealth(base float64, waveNumber int) float64 {
	return base * (1 + float64(waveNumber-1)*healthScalePerWave)
}

// ScaleGold applies wave scaling to a base gold reward.
func ScaleGold(base int, waveNumber int) int {
	return int(math.Floor(float64(base) * (1 + float64(waveNumber-1)*goldScalePerWave)))
}

// SpawnEntry — запись в таблице спавна: класс, вес и волна, с которой он доступен.
type SpawnEntry struct {
	Class   Class
	Weight  int
	MinWave int
}

// SpawnTable определяет, какие классы появляются в обычных волнах.
// Боссы в таблице не участвуют: их добавляет сама волновая логика.
var SpawnTable = []SpawnEntry{
	{Class: ClassBasic, Weight: 10, MinWave: 1},
	{Class: ClassFast, Weight: 6, MinWave: 2},
	{Class: ClassArmored, Weight: 4, MinWave: 3},
	{Class: ClassFlying, Weight: 3, MinWave: 4},
}
