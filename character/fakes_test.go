package character

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/propeller/schedule"
)

type fakeInput struct {
	axis           float64
	held, down, up bool
}

func (f *fakeInput) Axis(name string) float64 {
	if name != AxisHorizontal {
		return 0
	}
	return f.axis
}
func (f *fakeInput) Button(name string) bool     { return name == ButtonJump && f.held }
func (f *fakeInput) ButtonDown(name string) bool { return name == ButtonJump && f.down }
func (f *fakeInput) ButtonUp(name string) bool   { return name == ButtonJump && f.up }

type fakeBody struct {
	pos    cp.Vector
	vel    cp.Vector
	forces []cp.Vector
	sets   int
}

func (f *fakeBody) Position() cp.Vector     { return f.pos }
func (f *fakeBody) Velocity() cp.Vector     { return f.vel }
func (f *fakeBody) SetVelocity(v cp.Vector) { f.vel = v; f.sets++ }
func (f *fakeBody) AddForce(v cp.Vector)    { f.forces = append(f.forces, v) }

type fakeAnimator struct {
	params map[string]float64
}

func (f *fakeAnimator) SetFloat(name string, value float64) {
	if f.params == nil {
		f.params = make(map[string]float64)
	}
	f.params[name] = value
}

type playedClip struct {
	clip Clip
	at   cp.Vector
}

type fakeAudio struct {
	played []playedClip
}

func (f *fakeAudio) PlayClipAtPoint(clip Clip, at cp.Vector) {
	f.played = append(f.played, playedClip{clip: clip, at: at})
}

type fakeSource struct {
	clip    Clip
	playing bool
	plays   []Clip
}

func (f *fakeSource) SetClip(clip Clip) { f.clip = clip }
func (f *fakeSource) Play()             { f.playing = true; f.plays = append(f.plays, f.clip) }
func (f *fakeSource) Stop()             { f.playing = false }
func (f *fakeSource) IsPlaying() bool   { return f.playing }

type fakeAttachments struct {
	attached map[string]int
	pos      map[string]cp.Vector
}

func (f *fakeAttachments) Attach(name string) {
	if f.attached == nil {
		f.attached = make(map[string]int)
	}
	f.attached[name]++
}

func (f *fakeAttachments) WorldPosition(name string) (cp.Vector, bool) {
	p, ok := f.pos[name]
	return p, ok
}

// scriptedRand returns queued Float64 values before falling back to a
// seeded PCG source.
type scriptedRand struct {
	floats []float64
	ints   []int
	rng    *rand.Rand
}

func newScriptedRand() *scriptedRand {
	return &scriptedRand{rng: rand.New(rand.NewPCG(1, 2))}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.rng.Float64()
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v
	}
	return r.rng.IntN(n)
}

type testHost struct {
	Host
	input  *fakeInput
	body   *fakeBody
	anim   *fakeAnimator
	audio  *fakeAudio
	source *fakeSource
	attach *fakeAttachments
	clock  *schedule.Scheduler
}

func newTestHost() *testHost {
	th := &testHost{
		input:  &fakeInput{},
		body:   &fakeBody{},
		anim:   &fakeAnimator{},
		audio:  &fakeAudio{},
		source: &fakeSource{},
		attach: &fakeAttachments{pos: map[string]cp.Vector{}},
		clock:  schedule.New(),
	}
	th.Host = Host{
		Input:       th.input,
		Body:        th.body,
		Animator:    th.anim,
		Audio:       th.audio,
		Source:      th.source,
		Attachments: th.attach,
		Timer:       th.clock,
	}
	return th
}

var _ Timer = (*schedule.Scheduler)(nil)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Taunts = []Clip{"taunt_a", "taunt_b", "taunt_c"}
	return &cfg
}

func advance(th *testHost, d time.Duration) int {
	return th.clock.Advance(d)
}

var background = context.Background()
