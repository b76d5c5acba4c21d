// internal/event/types.go
package event

const (
	EnemySpawned   EventType = "EnemySpawned"   // Враг появился
	EnemyDied      EventType = "EnemyDied"      // Враг уничтожен
	EnemyLeaked    EventType = "EnemyLeaked"    // Враг дошёл до выхода
	EnemyDamaged   EventType = "EnemyDamaged"   // Враг получил урон (для всплывающих цифр)
	WaveStarted    EventType = "WaveStarted"    // Волна началась
	WaveEnded      EventType = "WaveEnded"      // Волна закончилась
	GoldChanged    EventType = "GoldChanged"    // Изменился запас золота
	GameOver       EventType = "GameOver"       // База разрушена
)
