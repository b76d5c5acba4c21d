// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	CellSize     = 44.0 // пикселей на клетку карты
	GridWidth    = 24
	GridHeight   = 16
	MaxDeltaTime = 0.06

	// Мир симуляции измеряется в клетках: одна клетка = 1.0 мировой единицы.
	WaypointArrivalRadius = 0.2
	GroundHeight          = 0.5
	RemovedHeight         = -10.0 // куда "проваливается" враг, дошедший до выхода

	// Повторный запрос пути разрешён не чаще, чем раз в cooldown секунд.
	PathRequestCooldown = 1.0
	PathProviderDelayMS = 30

	DefaultSlowFactor = 0.5
	DefaultPoisonDPS  = 10.0

	BaseHealth              = 20
	DamagePerLeak           = 1
	StartingGold            = 50
	InitialEnemiesPerWave   = 5
	EnemiesIncrementPerWave = 2
	SpawnInterval           = 0.9 // секунд между спавнами
	WavePauseDuration       = 4.0
	BossWaveInterval        = 5

	DamagePopupDuration  = 0.8
	DamagePopupRiseSpeed = 24.0 // пикселей в секунду
	EnemyRadiusFactor    = 0.28
	HealthBarWidthFactor = 0.8
	HealthBarHeight      = 3.0

	IndicatorOffsetX = 30
	IndicatorOffsetY = 24
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PassableColor   = color.RGBA{46, 58, 74, 255}
	BlockedColor    = color.RGBA{150, 70, 70, 220}
	GridLineColor   = color.RGBA{30, 38, 50, 255}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarBack   = color.RGBA{10, 10, 10, 200}
	UIGoldColor     = color.RGBA{255, 215, 0, 255}
	UIWaveColor     = color.RGBA{70, 130, 180, 255}
	UIBossColor     = color.RGBA{220, 60, 60, 255}
	UIHealthColor   = color.RGBA{220, 60, 60, 255}
	UIEmptyColor    = color.RGBA{0, 0, 0, 255}
	UIStrokeColor   = color.RGBA{240, 240, 240, 255}
	StunRingColor   = color.RGBA{255, 255, 140, 255}
	SlowRingColor   = color.RGBA{120, 180, 255, 255}

	// Цвета врагов по стихиям, используются только отладочным рендером.
	ElementColors = map[string]color.RGBA{
		"normal": {200, 200, 200, 255},
		"fire":   {255, 90, 40, 255},
		"water":  {60, 130, 255, 255},
		"earth":  {150, 110, 60, 255},
		"air":    {190, 240, 255, 255},
		"dark":   {90, 40, 120, 255},
		"light":  {255, 250, 180, 255},
	}
)
