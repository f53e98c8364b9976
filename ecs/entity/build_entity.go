package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
	Voices     VoiceLoader
	Rand       character.Rand
	Position   *[2]float64
	Spawned    []ecs.Entity
}

// BuildOption customizes a single BuildEntity call.
type BuildOption func(*buildContext)

// WithVoices sets the loader used for audio clips. Without one, clips are
// registered muted.
func WithVoices(v VoiceLoader) BuildOption {
	return func(ctx *buildContext) { ctx.Voices = v }
}

// WithRand seeds the character controller's random source.
func WithRand(r character.Rand) BuildOption {
	return func(ctx *buildContext) { ctx.Rand = r }
}

// WithPosition overrides the prefab transform position.
func WithPosition(x, y float64) BuildOption {
	return func(ctx *buildContext) { ctx.Position = &[2]float64{x, y} }
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"ground_tag":   addGroundTag,
	"transform":    addTransform,
	"input":        addInput,
	"physics_body": addPhysicsBody,
	"animator":     addAnimator,
	"audio":        addAudio,
	"character":    addCharacter,
	"tilt":         addTilt,
	"attachments":  addAttachments,
}

// attachments read the owner's transform, so they come after it.
var componentBuildOrder = []string{
	"player_tag",
	"ground_tag",
	"transform",
	"input",
	"physics_body",
	"animator",
	"audio",
	"character",
	"tilt",
	"attachments",
}

func BuildEntity(w *ecs.World, prefabPath string, opts ...BuildOption) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	ctx := &buildContext{PrefabPath: prefabPath}
	for _, opt := range opts {
		opt(ctx)
	}
	e := ecs.CreateEntity(w)

	fail := func(err error) (ecs.Entity, error) {
		for _, child := range ctx.Spawned {
			ecs.DestroyEntity(w, child)
		}
		ecs.DestroyEntity(w, e)
		return 0, err
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			return fail(fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err))
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		return fail(fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0]))
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addGroundTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GroundTagComponent.Kind(), &component.GroundTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	if ctx.Position != nil {
		spec.X, spec.Y = ctx.Position[0], ctx.Position[1]
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("physics body needs a positive size, got %vx%v", spec.Width, spec.Height)
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:         spec.Width,
		Height:        spec.Height,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		Static:        spec.Static,
		FixedRotation: spec.FixedRotation,
	})
}

type animatorSpec = prefabs.AnimatorComponentSpec

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	anim := &component.Animator{Current: spec.Current}
	for name, v := range spec.Params {
		anim.SetFloat(name, v)
	}
	return ecs.Add(w, e, component.AnimatorComponent.Kind(), anim)
}

type tiltSpec = prefabs.TiltComponentSpec

func addTilt(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[tiltSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tilt spec: %w", err)
	}
	return ecs.Add(w, e, component.TiltComponent.Kind(), &component.Tilt{Duration: spec.Seconds})
}
