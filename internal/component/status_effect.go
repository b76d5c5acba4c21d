// internal/component/status_effect.go
package component

// EffectKind names a status effect. Unknown kinds are stored and expire
// normally but have no gameplay behavior.
type EffectKind string

const (
	EffectSlow   EffectKind = "slow"
	EffectStun   EffectKind = "stun"
	EffectPoison EffectKind = "poison"
)

// EffectParams carries the optional kind-specific inputs of AddStatusEffect.
// Zero values mean "use the default" (slow factor 0.5, poison 10 dps).
type EffectParams struct {
	SlowFactor      float64 // slow only; 0 means the default 0.5, a literal zero factor is not expressible
	DamagePerSecond float64 // poison only; 0 means the default 10 dps
}

// Snapshot holds the stat values an effect must restore on removal.
// Only speed is touched by the current kinds; a future effect that mutates
// another stat must snapshot it here symmetrically.
type Snapshot struct {
	Speed float64
}

// StatusEffect is one active effect record. At most one record per kind is
// active on an enemy; applying the same kind again replaces the record.
type StatusEffect struct {
	Kind      EffectKind
	Duration  float64
	StartedAt float64 // Возраст сущности в момент наложения
	Applied   uint64  // Порядковый номер наложения; разрешает ничьи при равном StartedAt

	// Поля конкретных видов эффекта, заполняется только своё.
	SlowFactor      float64
	DamagePerSecond float64

	Snapshot Snapshot
}
