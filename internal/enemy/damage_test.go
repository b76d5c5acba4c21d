package enemy

import (
	"math"
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
)

func TestFireAgainstWaterIsHalved(t *testing.T) {
	economy := &recordingEconomy{}
	combat := &recordingNotifier{}
	e := New(1, Deps{Combat: combat, Economy: economy}, &component.Position{}, defs.ClassBasic, 1, defs.ElementWater)
	// Water basic at wave 1: 100 * 1.2 = 120. Bring it down to 100 first.
	e.TakeDamage(20/defs.Effectiveness(defs.DamageNormal, defs.ElementWater), defs.DamageNormal)
	if math.Abs(e.Health()-100) > 1e-9 {
		t.Fatalf("Setup failed, health = %v", e.Health())
	}

	died := e.TakeDamage(150, defs.DamageFire)

	// 150 * 0.5 = 75 effective, health goes to 25, enemy survives.
	if died {
		t.Error("Expected the enemy to survive 75 effective damage")
	}
	if math.Abs(e.Health()-25) > 1e-9 {
		t.Errorf("Expected health 25, got %v", e.Health())
	}

	// Second hit kills: health would be -50 transiently, then clamps to 0.
	died = e.TakeDamage(150, defs.DamageFire)
	if !died {
		t.Error("Expected TakeDamage to report the kill")
	}
	if e.Health() != 0 {
		t.Errorf("Expected health clamped to 0, got %v", e.Health())
	}
	if !e.IsDead() {
		t.Error("Expected terminal dead state")
	}
	if economy.gold != e.GoldValue() {
		t.Errorf("Expected gold payout %d, got %d", e.GoldValue(), economy.gold)
	}
	if economy.refreshes != 1 {
		t.Errorf("Expected one UI refresh, got %d", economy.refreshes)
	}
}

func TestTakeDamageOnDeadEnemyIsIdempotent(t *testing.T) {
	economy := &recordingEconomy{}
	e := New(1, Deps{Economy: economy}, &component.Position{}, defs.ClassBasic, 1, defs.ElementNormal)

	if died := e.TakeDamage(500, defs.DamageNormal); !died {
		t.Fatal("Expected the first hit to kill")
	}
	goldAfterKill := economy.gold

	if died := e.TakeDamage(500, defs.DamageNormal); died {
		t.Error("Expected false for a hit on a dead enemy")
	}
	if e.Health() != 0 {
		t.Errorf("Dead enemy lost more health: %v", e.Health())
	}
	if economy.gold != goldAfterKill {
		t.Error("Dead enemy paid out twice")
	}
}

func TestDamageReportsFlooredAmount(t *testing.T) {
	combat := &recordingNotifier{}
	e := New(1, Deps{Combat: combat}, &component.Position{}, defs.ClassBasic, 1, defs.ElementWater)

	e.TakeDamage(25, defs.DamageFire) // 12.5 effective
	if len(combat.damages) != 1 || combat.damages[0] != 12 {
		t.Errorf("Expected floored popup amount 12, got %v", combat.damages)
	}
	if combat.types[0] != defs.DamageFire {
		t.Errorf("Expected fire damage type in popup, got %v", combat.types[0])
	}
	if len(combat.percents) != 1 || combat.percents[0] <= 0 || combat.percents[0] >= 1 {
		t.Errorf("Expected health percent in (0,1), got %v", combat.percents)
	}
}

func TestPoisonDamageTypeIsNeutral(t *testing.T) {
	e := spawn(t, defs.ClassBasic, 1, defs.ElementFire)
	e.TakeDamage(30, defs.DamagePoison)
	// Fire basic at wave 1: 110 max health; poison ignores elements.
	if math.Abs(e.Health()-80) > 1e-9 {
		t.Errorf("Expected health 80 after 30 neutral poison damage, got %v", e.Health())
	}
}

func TestDeathClearsStatusEffects(t *testing.T) {
	e := spawn(t, defs.ClassBasic, 1, defs.ElementNormal)
	e.AddStatusEffect(component.EffectSlow, 60, component.EffectParams{})
	e.AddStatusEffect(component.EffectPoison, 60, component.EffectParams{})

	e.TakeDamage(1000, defs.DamageNormal)

	if e.HasEffect(component.EffectSlow) || e.HasEffect(component.EffectPoison) {
		t.Error("Death left status effects active")
	}
	if e.Speed() != 1.6 {
		t.Errorf("Expected speed reset on death, got %v", e.Speed())
	}
}
