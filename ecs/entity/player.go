package entity

import (
	"github.com/milk9111/propeller/ecs"
)

func NewPlayer(w *ecs.World, opts ...BuildOption) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", opts...)
}

func NewPlayerAt(w *ecs.World, x, y float64, opts ...BuildOption) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml", append(opts, WithPosition(x, y))...)
}

func NewGround(w *ecs.World, opts ...BuildOption) (ecs.Entity, error) {
	return BuildEntity(w, "ground.yaml", opts...)
}
