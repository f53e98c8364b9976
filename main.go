package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/propeller/common"
	"github.com/milk9111/propeller/ecs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	tps := flag.Int("tps", ebiten.DefaultTPS, "game updates per second")
	fixedStep := flag.Duration("fixed-step", ecs.DefaultFixedStep, "physics tick length")
	idleTaunt := flag.Duration("idle-taunt", 5*time.Second, "idle time before an automatic taunt (0 disables)")
	audioDir := flag.String("audio", "assets", "directory for file-backed audio clips")
	seed := flag.Uint64("seed", 0, "random seed for taunts (0 picks one)")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("propeller")

	game, err := NewGame(GameOptions{
		Debug:     *debug,
		FixedStep: *fixedStep,
		IdleTaunt: *idleTaunt,
		AudioDir:  *audioDir,
		Seed:      *seed,
		Muted:     *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
