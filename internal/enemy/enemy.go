// internal/enemy/enemy.go
package enemy

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/types"
)

// Deps — узкие интерфейсы коллабораторов, внедряются при создании.
// Любой из нотификаторов может быть nil: уведомления fire-and-forget.
type Deps struct {
	PathProvider interfaces.PathProvider
	Combat       interfaces.CombatNotifier
	Economy      interfaces.EconomyNotifier
}

// Enemy — одна симуляционная единица. Весь доступ к здоровью, скорости и
// эффектам идёт через методы; напрямую поля не мутирует никто снаружи.
type Enemy struct {
	id      types.EntityID
	class   defs.Class
	element defs.Element
	wave    int

	pos       component.Position
	maxHealth float64
	health    float64
	baseSpeed float64 // скорость после модификатора стихии, на момент спавна
	speed     float64
	goldValue int
	airborne  bool

	age  float64 // накопленное симуляционное время жизни
	dead bool

	path        component.PathState
	pendingPath <-chan interfaces.PathResult

	effects   map[component.EffectKind]*component.StatusEffect
	effectSeq uint64 // счетчик наложений, метит записи эффектов порядком

	// Приблизительная дистанция до выхода: прямая до последней точки пути.
	// Используется только внешней приоритизацией, может отставать на тик.
	distanceToExit float64
	exit           component.Waypoint
	exitKnown      bool

	deps Deps
}

// New создает врага и один раз вычисляет его характеристики из
// (class, element, waveNumber). Некорректная позиция не ошибка: подставляем
// начало координат и предупреждаем в лог.
func New(id types.EntityID, deps Deps, pos *component.Position, class defs.Class, waveNumber int, element defs.Element) *Enemy {
	if pos == nil || math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z) ||
		math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) || math.IsInf(pos.Z, 0) {
		logrus.WithFields(logrus.Fields{"id": id, "class": class}).
			Warn("enemy spawned with malformed position, substituting origin")
		pos = &component.Position{X: 0, Y: config.GroundHeight, Z: 0}
	}
	if waveNumber < 1 {
		logrus.WithFields(logrus.Fields{"id": id, "wave": waveNumber}).
			Warn("enemy spawned with non-positive wave number, clamping to 1")
		waveNumber = 1
	}

	stats := defs.ClassStats(class)
	mod := defs.ModifierFor(element)

	e := &Enemy{
		id:        id,
		class:     class,
		element:   element,
		wave:      waveNumber,
		pos:       *pos,
		maxHealth: defs.ScaleHealth(stats.Health*mod.Health, waveNumber),
		baseSpeed: stats.Speed * mod.Speed,
		goldValue: defs.ScaleGold(stats.Gold, waveNumber),
		airborne:  stats.Airborne,
		effects:   make(map[component.EffectKind]*component.StatusEffect),
		path: component.PathState{
			Cooldown: config.PathRequestCooldown,
			// Первый запрос пути разрешён сразу после спавна.
			LastRequestAt: -config.PathRequestCooldown,
		},
		distanceToExit: math.Inf(1),
		deps:           deps,
	}
	e.health = e.maxHealth
	e.speed = e.baseSpeed
	return e
}

// SetTargetPosition задает точку выхода и инициализирует дистанцию до нее.
// Отдельный шаг после создания: до вызова дистанция читается как бесконечность.
func (e *Enemy) SetTargetPosition(exit component.Waypoint) {
	e.exit = exit
	e.exitKnown = true
	e.recomputeDistanceToExit()
}

// Update продвигает симуляцию врага на deltaTime секунд. Порядок фаз
// фиксирован: эффекты, затем движение, затем пересчет дистанции до выхода.
func (e *Enemy) Update(deltaTime float64) {
	if e.dead || e.path.ReachedEnd {
		return
	}
	e.age += deltaTime

	e.updateStatusEffects(deltaTime)
	// Яд мог убить на этом же тике: мертвый враг в этот кадр уже не движется.
	if e.dead {
		return
	}

	e.updateMovement(deltaTime)
	e.recomputeDistanceToExit()
}

// ClearPath сбрасывает текущий путь; враг вернется в режим ожидания и
// перезапросит путь с учетом кулдауна. Для терминальных сущностей — no-op.
func (e *Enemy) ClearPath() {
	if e.dead || e.path.ReachedEnd {
		return
	}
	e.path.Waypoints = nil
	e.path.CurrentIndex = 0
}

func (e *Enemy) recomputeDistanceToExit() {
	target := e.exit
	if n := len(e.path.Waypoints); n > 0 {
		target = e.path.Waypoints[n-1]
	} else if !e.exitKnown {
		e.distanceToExit = math.Inf(1)
		return
	}
	dx := target.X - e.pos.X
	dz := target.Z - e.pos.Z
	e.distanceToExit = math.Sqrt(dx*dx + dz*dz)
}

// --- accessors ---

func (e *Enemy) ID() types.EntityID            { return e.id }
func (e *Enemy) Class() defs.Class             { return e.class }
func (e *Enemy) Element() defs.Element         { return e.element }
func (e *Enemy) Wave() int                     { return e.wave }
func (e *Enemy) Position() component.Position  { return e.pos }
func (e *Enemy) Health() float64               { return e.health }
func (e *Enemy) MaxHealth() float64            { return e.maxHealth }
func (e *Enemy) Speed() float64                { return e.speed }
func (e *Enemy) GoldValue() int                { return e.goldValue }
func (e *Enemy) Airborne() bool                { return e.airborne }
func (e *Enemy) IsDead() bool                  { return e.dead }
func (e *Enemy) HasReachedEnd() bool           { return e.path.ReachedEnd }
func (e *Enemy) DistanceToExit() float64       { return e.distanceToExit }

// AwaitingPath сообщает, ждет ли враг выдачи пути.
func (e *Enemy) AwaitingPath() bool {
	return !e.dead && !e.path.ReachedEnd && len(e.path.Waypoints) == 0
}

// HasEffect сообщает, активен ли эффект данного вида.
func (e *Enemy) HasEffect(kind component.EffectKind) bool {
	_, ok := e.effects[kind]
	return ok
}
