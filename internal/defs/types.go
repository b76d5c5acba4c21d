// internal/defs/types.go
package defs

// Class defines the archetype of an enemy.
type Class string

const (
	ClassBasic   Class = "basic"
	ClassFast    Class = "fast"
	ClassArmored Class = "armored"
	ClassFlying  Class = "flying"
	ClassBoss    Class = "boss"
)

// Element defines the elemental affinity of an enemy.
type Element string

const (
	ElementNormal Element = "normal"
	ElementFire   Element = "fire"
	ElementWater  Element = "water"
	ElementEarth  Element = "earth"
	ElementAir    Element = "air"
	ElementDark   Element = "dark"
	ElementLight  Element = "light"
)

// Elements lists every known element, in spawn-roll order.
var Elements = []Element{
	ElementNormal, ElementFire, ElementWater, ElementEarth,
	ElementAir, ElementDark, ElementLight,
}

// DamageType defines the type of incoming damage. Every element doubles as
// a damage type; poison comes from the damage-over-time effect and matches
// no element, so it always resolves to the neutral multiplier.
type DamageType string

const (
	DamageNormal DamageType = "normal"
	DamageFire   DamageType = "fire"
	DamageWater  DamageType = "water"
	DamageEarth  DamageType = "earth"
	DamageAir    DamageType = "air"
	DamageDark   DamageType = "dark"
	DamageLight  DamageType = "light"
	DamagePoison DamageType = "poison"
)
