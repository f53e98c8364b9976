package component

// Animator holds named animation parameters written by controllers and the
// clip selected from them.
type Animator struct {
	Params  map[string]float64
	Current string
	// Frame counts ticks spent in Current.
	Frame int
}

func (a *Animator) SetFloat(name string, value float64) {
	if a.Params == nil {
		a.Params = make(map[string]float64)
	}
	a.Params[name] = value
}

func (a *Animator) Float(name string) float64 {
	return a.Params[name]
}

var AnimatorComponent = NewComponent[Animator]()
