// internal/app/game.go
package app

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/enemy"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// MaxLiveEnemies — потолок живых врагов; при перегрузе деспавнится самый
// далекий от выхода (наименее опасный для базы).
const MaxLiveEnemies = 150

// Game владеет множеством живых врагов, экономикой и волнами. Все исходящие
// уведомления ядра сходятся сюда и разлетаются событиями по подписчикам.
type Game struct {
	dispatcher *event.Dispatcher
	provider   interfaces.PathProvider
	rng        *utils.PRNGService

	enemies map[types.EntityID]*enemy.Enemy
	nextID  types.EntityID

	gold       int
	baseHealth int
	gameOver   bool

	wave           int
	enemiesToSpawn int
	bossToSpawn    bool
	spawnTimer     float64
	wavePause      float64

	entry component.Position
	exit  component.Waypoint
}

// NewGame собирает игру вокруг провайдера путей и точек входа/выхода карты.
func NewGame(provider interfaces.PathProvider, dispatcher *event.Dispatcher, rng *utils.PRNGService, entry component.Position, exit component.Waypoint) *Game {
	return &Game{
		dispatcher: dispatcher,
		provider:   provider,
		rng:        rng,
		enemies:    make(map[types.EntityID]*enemy.Enemy),
		nextID:     1,
		gold:       config.StartingGold,
		baseHealth: config.BaseHealth,
		entry:      entry,
		exit:       exit,
	}
}

// Update продвигает всю симуляцию на deltaTime секунд.
func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}

	g.updateWave(deltaTime)

	for id, e := range g.enemies {
		e.Update(deltaTime)

		if e.IsDead() {
			g.dispatcher.Dispatch(event.Event{Type: event.EnemyDied, Data: event.KillInfo{Gold: e.GoldValue(), Wave: g.wave}})
			delete(g.enemies, id)
			continue
		}
		if e.HasReachedEnd() {
			g.baseHealth -= config.DamagePerLeak
			g.dispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.KillInfo{Wave: g.wave}})
			delete(g.enemies, id)
		}
	}

	if g.baseHealth <= 0 && !g.gameOver {
		g.gameOver = true
		logrus.WithField("wave", g.wave).Info("base destroyed, game over")
		g.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}

	g.despawnOverload()
}

// despawnOverload убирает лишних врагов при перегрузе, начиная с самых
// далеких от выхода. Дистанция до выхода — приближение и может отставать
// на тик, для приоритизации этого достаточно.
func (g *Game) despawnOverload() {
	for len(g.enemies) > MaxLiveEnemies {
		var farthest types.EntityID
		farthestDist := -1.0
		for id, e := range g.enemies {
			d := e.DistanceToExit()
			if math.IsInf(d, 1) {
				farthest = id
				break
			}
			if d > farthestDist {
				farthestDist = d
				farthest = id
			}
		}
		delete(g.enemies, farthest)
	}
}

// EnemyByID отдает живого врага внешним источникам урона (башням, снарядам):
// площадной урон — это их итерация с индивидуальными вызовами TakeDamage.
func (g *Game) EnemyByID(id types.EntityID) *enemy.Enemy {
	return g.enemies[id]
}

// --- interfaces.CombatNotifier ---

func (g *Game) EnemyDamaged(pos component.Position, amount int, damageType defs.DamageType) {
	g.dispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.DamageInfo{
		X:          pos.X,
		Z:          pos.Z,
		Amount:     amount,
		DamageType: string(damageType),
	}})
}

func (g *Game) EnemyHealthChanged(id types.EntityID, percent float64) {
	// Рендер читает здоровье напрямую через аксессоры; уведомление
	// остается точкой расширения для сетевых/записывающих подписчиков.
}

func (g *Game) StatusEffectAdded(id types.EntityID, kind component.EffectKind) {}

func (g *Game) StatusEffectRemoved(id types.EntityID, kind component.EffectKind) {}

// --- interfaces.EconomyNotifier ---

func (g *Game) GrantGold(amount int) {
	g.gold += amount
}

func (g *Game) RefreshUI() {
	g.dispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: g.gold})
}

// --- accessors ---

func (g *Game) Enemies() map[types.EntityID]*enemy.Enemy { return g.enemies }
func (g *Game) Gold() int                                { return g.gold }
func (g *Game) BaseHealth() int                          { return g.baseHealth }
func (g *Game) Wave() int                                { return g.wave }
func (g *Game) IsGameOver() bool                         { return g.gameOver }
