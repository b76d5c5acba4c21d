// internal/enemy/status.go
package enemy

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
)

// AddStatusEffect накладывает эффект на врага. Повторное наложение того же
// вида заменяет старую запись целиком. На мертвого врага эффекты не ложатся.
// Неизвестные виды сохраняются и истекают по таймеру, но ничего не делают.
func (e *Enemy) AddStatusEffect(kind component.EffectKind, duration float64, params component.EffectParams) {
	if e.dead {
		return
	}

	e.effectSeq++
	rec := &component.StatusEffect{
		Kind:      kind,
		Duration:  duration,
		StartedAt: e.age,
		Applied:   e.effectSeq,
		Snapshot:  component.Snapshot{Speed: e.speed},
	}

	switch kind {
	case component.EffectSlow:
		factor := params.SlowFactor
		if factor == 0 {
			factor = config.DefaultSlowFactor
		}
		rec.SlowFactor = factor
		// Замедление считается от табличной скорости класса, не от текущей:
		// так два слоу подряд не перемножаются.
		e.speed = defs.BaseSpeed(e.class) * factor
	case component.EffectStun:
		e.speed = 0
	case component.EffectPoison:
		dps := params.DamagePerSecond
		if dps == 0 {
			dps = config.DefaultPoisonDPS
		}
		rec.DamagePerSecond = dps
	}

	e.effects[kind] = rec
	if e.deps.Combat != nil {
		e.deps.Combat.StatusEffectAdded(e.id, kind)
	}
}

// updateStatusEffects тикает все активные эффекты: истекшие снимает через
// общий путь удаления, яд наносит урон через резолвер урона.
func (e *Enemy) updateStatusEffects(deltaTime float64) {
	for kind, rec := range e.effects {
		if e.age-rec.StartedAt >= rec.Duration {
			e.RemoveStatusEffect(kind)
			continue
		}
		if rec.Kind == component.EffectPoison {
			e.TakeDamage(rec.DamagePerSecond*deltaTime, defs.DamagePoison)
			if e.dead {
				return
			}
		}
	}
}

// RemoveStatusEffect снимает эффект. Скорость восстанавливается из снапшота
// снимаемой записи, но только если не остался другой slow/stun, наложенный
// позже: более поздний эффект уже учел наш вклад в своем снапшоте и сейчас
// управляет скоростью сам.
func (e *Enemy) RemoveStatusEffect(kind component.EffectKind) {
	rec, ok := e.effects[kind]
	if !ok {
		return
	}
	delete(e.effects, kind)

	if kind == component.EffectSlow || kind == component.EffectStun {
		if !e.hasNewerImpairment(rec.Applied) {
			e.speed = rec.Snapshot.Speed
		}
	}

	if e.deps.Combat != nil {
		e.deps.Combat.StatusEffectRemoved(e.id, kind)
	}
}

// hasNewerImpairment — остался ли slow/stun, наложенный позже записи с данным
// порядковым номером. Сравнение по номеру, а не по времени: два эффекта,
// наложенные на одном тике, различимы только порядком наложения.
func (e *Enemy) hasNewerImpairment(applied uint64) bool {
	for kind, rec := range e.effects {
		if kind != component.EffectSlow && kind != component.EffectStun {
			continue
		}
		if rec.Applied > applied {
			return true
		}
	}
	return false
}

// ClearAllEffects снимает все эффекты через общий путь удаления и в конце
// принудительно возвращает скорость к табличной. Вызывается при смерти и
// обязан не падать на мертвой сущности.
func (e *Enemy) ClearAllEffects() {
	for kind := range e.effects {
		e.RemoveStatusEffect(kind)
	}
	e.speed = defs.BaseSpeed(e.class)
}
