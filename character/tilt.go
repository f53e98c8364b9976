package character

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Tilter is called on a fixed tick when the move input points away from
// the facing direction. It returns the new facing.
type Tilter interface {
	Tilt(facingRight bool, move float64) bool
}

// InertTilt keeps the facing unchanged and has no visual effect.
type InertTilt struct{}

func (InertTilt) Tilt(facingRight bool, _ float64) bool {
	return facingRight
}

// ScriptTilt runs a tengo script on every tilt. The script sees the globals
// facing_right (bool) and move (float), and may assign facing_right and
// rotation (radians, applied by the tilt system).
type ScriptTilt struct {
	name     string
	compiled *tengo.Compiled
	rotation float64
}

func NewScriptTilt(name string, src []byte) (*ScriptTilt, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, g := range []struct {
		name  string
		value any
	}{
		{"facing_right", true},
		{"move", 0.0},
		{"rotation", 0.0},
	} {
		if err := script.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("character: tilt script %q: add %s: %w", name, g.name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("character: tilt script %q: compile: %w", name, err)
	}
	return &ScriptTilt{name: name, compiled: compiled}, nil
}

func (t *ScriptTilt) Tilt(facingRight bool, move float64) bool {
	if err := t.compiled.Set("facing_right", facingRight); err != nil {
		log.Printf("character: tilt script %q: %v", t.name, err)
		return facingRight
	}
	if err := t.compiled.Set("move", move); err != nil {
		log.Printf("character: tilt script %q: %v", t.name, err)
		return facingRight
	}
	if err := t.compiled.Run(); err != nil {
		log.Printf("character: tilt script %q: run: %v", t.name, err)
		return facingRight
	}
	t.rotation = t.compiled.Get("rotation").Float()
	return t.compiled.Get("facing_right").Bool()
}

// Rotation returns the rotation chosen by the last run.
func (t *ScriptTilt) Rotation() float64 {
	return t.rotation
}
