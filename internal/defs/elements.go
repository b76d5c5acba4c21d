// internal/defs/elements.go
package defs

// ElementModifier scales health and speed at spawn time.
type ElementModifier struct {
	Health float64
	Speed  float64
}

// ElementModifiers holds the spawn-time stat multipliers per element.
// Normal is absent on purpose: it applies no modifier.
var ElementModifiers = map[Element]ElementModifier{
	ElementFire:  {Health: 1.1, Speed: 1.1},
	ElementWater: {Health: 1.2, Speed: 0.9},
	ElementEarth: {Health: 1.3, Speed: 0.8},
	ElementAir:   {Health: 0.9, Speed: 1.2},
	ElementDark:  {Health: 1.5, Speed: 0.7},
	ElementLight: {Health: 0.8, Speed: 1.3},
}

// ModifierFor returns the stat multipliers for an element. Unknown elements
// (and normal) yield the neutral modifier.
func ModifierFor(element Element) ElementModifier {
	if mod, ok := ElementModifiers[element]; ok {
		return mod
	}
	return ElementModifier{Health: 1.0, Speed: 1.0}
}

// effectivenessChart maps attacker damage type -> defender element -> multiplier.
// The chart is asymmetric: water beats fire, but also beats air and earth's
// attempts against it, so each direction is listed explicitly. Every element
// is half-effective against itself except normal. Anything not listed here,
// poison included, resolves to 1.0.
var effectivenessChart = map[DamageType]map[Element]float64{
	DamageFire: {
		ElementFire:  0.5,
		ElementWater: 0.5,
	},
	DamageWater: {
		ElementWater: 0.5,
		ElementFire:  1.5,
		ElementAir:   0.5,
		ElementEarth: 0.5,
	},
	DamageEarth: {
		ElementEarth: 0.5,
		ElementWater: 1.5,
	},
	DamageAir: {
		ElementAir:   0.5,
		ElementWater: 1.5,
	},
	DamageLight: {
		ElementLight: 0.5,
		ElementDark:  1.5,
	},
	DamageDark: {
		ElementDark:  0.5,
		ElementLight: 1.5,
	},
}

// Effectiveness returns the damage multiplier for an attack of the given
// type against the given defender element. Missing combinations default
// to 1.0, so new damage types degrade to neutral damage.
func Effectiveness(damageType DamageType, defender Element) float64 {
	row, ok := effectivenessChart[damageType]
	if !ok {
		return 1.0
	}
	mult, ok := row[defender]
	if !ok {
		return 1.0
	}
	return mult
}
