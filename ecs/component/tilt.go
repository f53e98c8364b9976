package component

import "github.com/tanema/gween"

// Tilt eases the transform rotation towards Target.
type Tilt struct {
	Target   float64
	Duration float64 // seconds
	Tween    *gween.Tween
}

var TiltComponent = NewComponent[Tilt]()
