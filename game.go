package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/propeller/common"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/ecs/entity"
	"github.com/milk9111/propeller/ecs/system"
	"github.com/milk9111/propeller/input"
	"github.com/milk9111/propeller/prefabs"
	"github.com/milk9111/propeller/sound"
)

// noticeDuration is how long the HUD shows a reload notice.
const noticeDuration = 2 * time.Second

type GameOptions struct {
	Debug     bool
	FixedStep time.Duration
	IdleTaunt time.Duration
	AudioDir  string
	Seed      uint64
	Muted     bool
}

type Game struct {
	ctx    context.Context
	cancel context.CancelFunc

	world   *ecs.World
	loop    *ecs.Loop
	physics *system.PhysicsSystem
	taunts  *system.TauntSystem
	player  ecs.Entity
	camera  *common.Camera
	watcher *prefabs.Watcher
	ui      *ebitenui.UI

	debug  bool
	paused bool
	quit   bool
	frames int

	notice      string
	noticeUntil time.Duration
}

func NewGame(opts GameOptions) (*Game, error) {
	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{
		ctx:    ctx,
		cancel: cancel,
		world:  ecs.NewWorld(),
		camera: &common.Camera{Smoothness: 0.15},
		debug:  opts.Debug,
	}

	var build []entity.BuildOption
	if !opts.Muted {
		build = append(build, entity.WithVoices(entity.SoundVoices(sound.NewBank(opts.AudioDir))))
	}
	if opts.Seed != 0 {
		build = append(build, entity.WithRand(rand.New(rand.NewPCG(opts.Seed, opts.Seed))))
	}

	if _, err := entity.NewGround(g.world, build...); err != nil {
		cancel()
		return nil, fmt.Errorf("game: %w", err)
	}
	player, err := entity.NewPlayer(g.world, build...)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("game: %w", err)
	}
	g.player = player

	g.physics = system.NewPhysicsSystem(system.Gravity)
	g.taunts = system.NewTauntSystem(ctx, opts.IdleTaunt)
	g.loop = ecs.NewLoop(opts.FixedStep,
		ecs.NewScheduler(
			g.physics.SyncSystem(),
			system.NewCharacterTickSystem(),
			g.physics,
			system.NewAttachmentSystem(),
		),
		ecs.NewScheduler(
			system.NewCharacterFrameSystem(),
			g.taunts,
			system.NewTiltSystem(),
			system.NewAnimationSystem(),
			system.NewAudioSystem(),
			ecs.SystemFunc(g.updateNotice),
		),
	)
	g.loop.Pre.Add(system.NewInputSystem(input.NewDevice()))

	if dirs := prefabs.WatchDirs(); len(dirs) > 0 {
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("game: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		g.Close()
		return ebiten.Termination
	}

	g.frames++
	g.pollReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.loop.Tick(g.world, time.Second/time.Duration(ebiten.TPS()))

	if t, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind()); ok {
		g.camera.Follow(t.X, t.Y)
	}
	return nil
}

// pollReloads applies prefab changes reported by the watcher without
// blocking the frame.
func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(prefabs.Name(path))
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if strings.HasPrefix(name, "scripts/") {
		log.Printf("game: %s changed, scripts apply to characters built after the change", name)
		return
	}
	n, err := entity.ReloadCharacters(g.world, name)
	if err != nil {
		log.Printf("game: reload %s: %v", name, err)
		return
	}
	if n == 0 {
		return
	}
	log.Printf("game: reloaded %s (%d characters)", name, n)
	g.world.Events().Push(ecs.Event{Type: ecs.EventConfigReloaded, Data: name})
}

func (g *Game) updateNotice(w *ecs.World, dt time.Duration) {
	for _, evt := range w.Events().Drain(ecs.EventConfigReloaded) {
		g.notice = fmt.Sprintf("reloaded %v", evt.Data)
		g.noticeUntil = noticeDuration
	}
	if g.noticeUntil > 0 {
		g.noticeUntil -= dt
		if g.noticeUntil <= 0 {
			g.notice = ""
		}
	}
}

// Close stops pending taunts and the prefab watcher.
func (g *Game) Close() {
	g.cancel()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
