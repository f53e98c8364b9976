package component

import "github.com/milk9111/propeller/character"

// Character binds a controller to its entity.
type Character struct {
	Controller *character.Controller
	// Prefab is the file the tunables were loaded from, used for reloads.
	Prefab string
}

var CharacterComponent = NewComponent[Character]()
