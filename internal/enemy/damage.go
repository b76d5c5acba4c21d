// internal/enemy/damage.go
package enemy

import (
	"math"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/utils"
)

// TakeDamage применяет урон с учетом эффективности стихий и возвращает true,
// если враг умер именно от этого вызова. Для уже мертвого врага — no-op.
func (e *Enemy) TakeDamage(amount float64, damageType defs.DamageType) bool {
	if e.health <= 0 {
		return false
	}

	effective := amount * defs.Effectiveness(damageType, e.element)
	// Здоровье может на мгновение уйти в минус: проверка смерти идет до клампа.
	e.health -= effective

	if e.deps.Combat != nil {
		e.deps.Combat.EnemyDamaged(e.pos, int(math.Floor(effective)), damageType)
		e.deps.Combat.EnemyHealthChanged(e.id, utils.Clamp(e.health/e.maxHealth, 0, 1))
	}

	if e.health <= 0 {
		e.health = 0
		e.dead = true
		e.die()
		return true
	}
	return false
}

// die завершает жизненный цикл: снимает эффекты и выплачивает награду.
// Визуальные эффекты смерти — забота игрового цикла, не ядра.
func (e *Enemy) die() {
	e.ClearAllEffects()
	if e.deps.Economy != nil {
		e.deps.Economy.GrantGold(e.goldValue)
		e.deps.Economy.RefreshUI()
	}
}
