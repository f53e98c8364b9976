package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX        float64
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	TauntPressed bool
	// JumpToggled is set by the touch jump button.
	JumpToggled bool
}

var InputComponent = NewComponent[Input]()
