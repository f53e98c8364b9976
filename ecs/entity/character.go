package entity

import (
	"fmt"

	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/ecs/system"
	"github.com/milk9111/propeller/prefabs"
)

type characterSpec = prefabs.CharacterComponentSpec

// characterConfig applies a spec on top of the default tunables.
func characterConfig(spec characterSpec) character.Config {
	cfg := character.DefaultConfig()
	if spec.MoveForce != nil {
		cfg.MoveForce = *spec.MoveForce
	}
	if spec.MaxSpeed != nil {
		cfg.MaxSpeed = *spec.MaxSpeed
	}
	if spec.JumpForce != nil {
		cfg.JumpForce = *spec.JumpForce
	}
	if len(spec.JumpClips) > 0 {
		cfg.JumpClips = clips(spec.JumpClips)
	}
	if spec.Taunts != nil {
		cfg.Taunts = clips(spec.Taunts)
	}
	if spec.TauntProbability != nil {
		cfg.TauntProbability = *spec.TauntProbability
	}
	if spec.TauntDelay != nil {
		cfg.TauntDelay = *spec.TauntDelay
	}
	return cfg
}

func clips(names []string) []character.Clip {
	out := make([]character.Clip, len(names))
	for i, n := range names {
		out[i] = character.Clip(n)
	}
	return out
}

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}
	cfg := characterConfig(spec)

	var opts []character.Option
	if ctx.Rand != nil {
		opts = append(opts, character.WithRand(ctx.Rand))
	}
	if spec.TiltScript != "" {
		src, err := prefabs.LoadScript(spec.TiltScript)
		if err != nil {
			return fmt.Errorf("load tilt script %q: %w", spec.TiltScript, err)
		}
		tilt, err := character.NewScriptTilt(spec.TiltScript, src)
		if err != nil {
			return err
		}
		opts = append(opts, character.WithTilter(tilt))
	}

	ctrl, err := character.New(&cfg, opts...)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		Controller: ctrl,
		Prefab:     ctx.PrefabPath,
	})
}

// ReloadCharacters re-reads the character tunables of every controller
// built from prefab and swaps them in. Runtime state is kept. It returns the
// number of controllers updated.
func ReloadCharacters(w *ecs.World, prefab string) (int, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("reload characters: %w", err)
	}
	raw, ok := spec.Components["character"]
	if !ok {
		return 0, nil
	}
	cs, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return 0, fmt.Errorf("reload characters: decode %q: %w", prefab, err)
	}
	cfg := characterConfig(cs)
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("reload characters: %q: %w", prefab, err)
	}

	n := 0
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(_ ecs.Entity, c *component.Character) {
		if c.Controller == nil || c.Prefab != prefab {
			return
		}
		if err := c.Controller.Reconfigure(&cfg); err == nil {
			n++
		}
	})
	return n, nil
}

type attachmentSpec = prefabs.AttachmentSpec

// addAttachments spawns one propeller entity per spec at the owner's
// position plus the offset. Unparented attachments stay in place until the
// controller claims them.
func addAttachments(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]attachmentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode attachments spec: %w", err)
	}
	owner, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("attachments need a transform")
	}

	for i, spec := range specs {
		if spec.Name == "" {
			return fmt.Errorf("attachment %d has no name", i)
		}
		child := ecs.CreateEntity(w)
		ctx.Spawned = append(ctx.Spawned, child)
		if err := ecs.Add(w, child, component.TransformComponent.Kind(), &component.Transform{
			X:      owner.X + spec.X,
			Y:      owner.Y + spec.Y,
			ScaleX: 1,
			ScaleY: 1,
		}); err != nil {
			return err
		}
		if err := ecs.Add(w, child, component.AttachmentComponent.Kind(), &component.Attachment{
			Name:   spec.Name,
			Width:  spec.Width,
			Height: spec.Height,
		}); err != nil {
			return err
		}
		if err := ecs.Add(w, child, component.PropellerTagComponent.Kind(), &component.PropellerTag{}); err != nil {
			return err
		}
		if spec.Parented && !system.AttachTo(w, child, e) {
			return fmt.Errorf("attach %q", spec.Name)
		}
	}
	return nil
}
