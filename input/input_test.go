package input

import (
	"testing"

	"github.com/milk9111/propeller/ecs/component"
)

func TestMerge(t *testing.T) {
	cases := []struct {
		name string
		raw  raw
		want component.Input
	}{
		{"idle", raw{}, component.Input{}},
		{"left", raw{left: true}, component.Input{MoveX: -1}},
		{"both_cancel", raw{left: true, right: true}, component.Input{}},
		{"stick_in_deadzone", raw{right: true, stick: -0.2}, component.Input{MoveX: 1}},
		{"stick_overrides_keys", raw{right: true, stick: -0.8}, component.Input{MoveX: -0.8}},
		{"jump_edges", raw{jumpHeld: true, jumpPressed: true}, component.Input{Jump: true, JumpPressed: true}},
		{"release", raw{jumpReleased: true}, component.Input{JumpReleased: true}},
		{"taunt_and_touch", raw{taunt: true, touch: true}, component.Input{TauntPressed: true, JumpToggled: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := merge(c.raw); got != c.want {
				t.Fatalf("merge(%+v) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}
