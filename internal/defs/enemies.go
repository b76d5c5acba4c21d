// internal/defs/enemies.go
package defs

// ClassDefinition holds all the static data for one enemy class.
type ClassDefinition struct {
	ID       Class   `json:"id"`
	Name     string  `json:"name"`
	Health   float64 `json:"health"`
	Speed    float64 `json:"speed"`
	Gold     int     `json:"gold"`
	Airborne bool    `json:"airborne"`
}

// ClassLibrary is the library of all enemy class definitions, keyed by class.
// Values can be overridden at startup from enemies.json via LoadClassDefinitions.
var ClassLibrary = map[Class]ClassDefinition{
	ClassBasic:   {ID: ClassBasic, Name: "Grunt", Health: 100, Speed: 1.6, Gold: 5},
	ClassFast:    {ID: ClassFast, Name: "Runner", Health: 70, Speed: 2.4, Gold: 8},
	ClassArmored: {ID: ClassArmored, Name: "Juggernaut", Health: 200, Speed: 1.0, Gold: 12},
	ClassFlying:  {ID: ClassFlying, Name: "Harpy", Health: 80, Speed: 2.0, Gold: 10, Airborne: true},
	ClassBoss:    {ID: ClassBoss, Name: "Overlord", Health: 1000, Speed: 0.8, Gold: 50},
}

const unknownClassSpeed = 1.5

// ClassStats returns the definition for the given class. An unknown class
// falls back to basic's health and gold with a neutral speed.
func ClassStats(class Class) ClassDefinition {
	if def, ok := ClassLibrary[class]; ok {
		return def
	}
	def := ClassLibrary[ClassBasic]
	def.ID = class
	def.Speed = unknownClassSpeed
	return def
}

// BaseSpeed returns the unmodified movement speed of a class.
func BaseSpeed(class Class) float64 {
	return ClassStats(class).Speed
}
