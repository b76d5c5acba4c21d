package enemy

import (
	"math"
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/types"
)

// stubPathProvider hands out a shared result channel and counts requests.
type stubPathProvider struct {
	requests int
	results  chan interfaces.PathResult
}

func newStubPathProvider() *stubPathProvider {
	return &stubPathProvider{results: make(chan interfaces.PathResult, 4)}
}

func (p *stubPathProvider) RequestPath(from component.Position) <-chan interfaces.PathResult {
	p.requests++
	return p.results
}

// recordingNotifier captures all outbound feedback calls.
type recordingNotifier struct {
	damages  []int
	types    []defs.DamageType
	percents []float64
	added    []component.EffectKind
	removed  []component.EffectKind
}

func (r *recordingNotifier) EnemyDamaged(pos component.Position, amount int, damageType defs.DamageType) {
	r.damages = append(r.damages, amount)
	r.types = append(r.types, damageType)
}

func (r *recordingNotifier) EnemyHealthChanged(id types.EntityID, percent float64) {
	r.percents = append(r.percents, percent)
}

func (r *recordingNotifier) StatusEffectAdded(id types.EntityID, kind component.EffectKind) {
	r.added = append(r.added, kind)
}

func (r *recordingNotifier) StatusEffectRemoved(id types.EntityID, kind component.EffectKind) {
	r.removed = append(r.removed, kind)
}

// recordingEconomy captures gold grants and UI refresh requests.
type recordingEconomy struct {
	gold      int
	refreshes int
}

func (r *recordingEconomy) GrantGold(amount int) { r.gold += amount }
func (r *recordingEconomy) RefreshUI()           { r.refreshes++ }

func spawn(t *testing.T, class defs.Class, wave int, element defs.Element) *Enemy {
	t.Helper()
	return New(1, Deps{}, &component.Position{X: 0, Y: 0.5, Z: 0}, class, wave, element)
}

func TestSpawnBasicWaveOne(t *testing.T) {
	e := spawn(t, defs.ClassBasic, 1, defs.ElementNormal)

	if e.MaxHealth() != 100 {
		t.Errorf("Expected maxHealth 100, got %v", e.MaxHealth())
	}
	if e.GoldValue() != 5 {
		t.Errorf("Expected goldValue 5, got %d", e.GoldValue())
	}
	if e.Speed() != 1.6 {
		t.Errorf("Expected speed 1.6, got %v", e.Speed())
	}
	if e.Health() != e.MaxHealth() {
		t.Errorf("Expected full health at spawn, got %v/%v", e.Health(), e.MaxHealth())
	}
}

func TestSpawnArmoredEarthWaveFive(t *testing.T) {
	e := spawn(t, defs.ClassArmored, 5, defs.ElementEarth)

	// 200 * 1.3 (earth) * (1 + 4*0.1) = 364.0
	if math.Abs(e.MaxHealth()-364.0) > 1e-9 {
		t.Errorf("Expected maxHealth 364.0, got %v", e.MaxHealth())
	}
	// floor(12 * (1 + 4*0.05)) = 14; element does not modify gold
	if e.GoldValue() != 14 {
		t.Errorf("Expected goldValue 14, got %d", e.GoldValue())
	}
	// 1.0 * 0.8 (earth)
	if math.Abs(e.Speed()-0.8) > 1e-9 {
		t.Errorf("Expected speed 0.8, got %v", e.Speed())
	}
}

func TestStatsAreDeterministic(t *testing.T) {
	classes := []defs.Class{defs.ClassBasic, defs.ClassFast, defs.ClassArmored, defs.ClassFlying, defs.ClassBoss}
	for _, class := range classes {
		for _, element := range defs.Elements {
			for _, wave := range []int{1, 3, 12} {
				a := spawn(t, class, wave, element)
				b := spawn(t, class, wave, element)
				if a.MaxHealth() != b.MaxHealth() || a.GoldValue() != b.GoldValue() || a.Speed() != b.Speed() {
					t.Errorf("Stats not deterministic for (%s, %s, wave %d)", class, element, wave)
				}
			}
		}
	}
}

func TestSpawnMalformedPositionFallsBackToOrigin(t *testing.T) {
	e := New(1, Deps{}, &component.Position{X: math.NaN(), Y: 0, Z: 2}, defs.ClassBasic, 1, defs.ElementNormal)
	pos := e.Position()
	if pos.X != 0 || pos.Z != 0 {
		t.Errorf("Expected origin fallback, got %+v", pos)
	}

	e = New(2, Deps{}, nil, defs.ClassBasic, 1, defs.ElementNormal)
	pos = e.Position()
	if pos.X != 0 || pos.Z != 0 {
		t.Errorf("Expected origin fallback for nil position, got %+v", pos)
	}
}

func TestSpawnClampsWaveNumber(t *testing.T) {
	e := New(1, Deps{}, &component.Position{}, defs.ClassBasic, 0, defs.ElementNormal)
	if e.Wave() != 1 {
		t.Errorf("Expected wave clamped to 1, got %d", e.Wave())
	}
	if e.MaxHealth() != 100 {
		t.Errorf("Expected wave-1 health 100, got %v", e.MaxHealth())
	}
}

func TestUnknownClassDefaults(t *testing.T) {
	e := spawn(t, defs.Class("slime"), 1, defs.ElementNormal)
	if e.MaxHealth() != 100 || e.GoldValue() != 5 {
		t.Errorf("Expected basic fallback stats, got hp=%v gold=%d", e.MaxHealth(), e.GoldValue())
	}
	if e.Speed() != 1.5 {
		t.Errorf("Expected default speed 1.5, got %v", e.Speed())
	}
}

func TestDistanceToExitUnknownUntilTargetSet(t *testing.T) {
	e := spawn(t, defs.ClassBasic, 1, defs.ElementNormal)
	if !math.IsInf(e.DistanceToExit(), 1) {
		t.Errorf("Expected infinite distance before SetTargetPosition, got %v", e.DistanceToExit())
	}

	e.SetTargetPosition(component.Waypoint{X: 3, Z: 4})
	if math.Abs(e.DistanceToExit()-5) > 1e-9 {
		t.Errorf("Expected distance 5, got %v", e.DistanceToExit())
	}
}
