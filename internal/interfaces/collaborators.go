// internal/interfaces/collaborators.go
package interfaces

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/types"
)

// PathResult — результат асинхронного запроса пути. Пустой список точек —
// валидный ответ: сущность останется в ожидании и повторит запрос позже.
type PathResult struct {
	Waypoints []component.Waypoint
	Err       error
}

// PathProvider выдаёт путь для врага. Запрос неблокирующий: провайдер
// возвращает канал и разрешает его когда сможет (возможно, с задержкой).
// Канал должен быть буферизован, чтобы поздний ответ терминальной сущности
// никого не заблокировал.
type PathProvider interface {
	RequestPath(from component.Position) <-chan PathResult
}

// CombatNotifier получает уведомления боевой обратной связи для рендера.
// Все вызовы fire-and-forget: ядро не зависит от их результата.
type CombatNotifier interface {
	EnemyDamaged(pos component.Position, amount int, damageType defs.DamageType)
	EnemyHealthChanged(id types.EntityID, percent float64)
	StatusEffectAdded(id types.EntityID, kind component.EffectKind)
	StatusEffectRemoved(id types.EntityID, kind component.EffectKind)
}

// EconomyNotifier получает события экономики при смерти врага.
type EconomyNotifier interface {
	GrantGold(amount int)
	RefreshUI()
}
