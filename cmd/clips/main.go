// Command clips plays the audio clips of a prefab one after another.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/ecs/entity"
	"github.com/milk9111/propeller/prefabs"
	"github.com/milk9111/propeller/sound"
	"golang.org/x/image/font/basicfont"
)

type clipGame struct {
	names   []string
	voices  []component.Voice
	volumes []float64
	current int
	face    ebtext.Face
}

func (g *clipGame) Update() error {
	if len(g.voices) == 0 {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.voices[g.current].IsPlaying() && !inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return nil
	}
	g.voices[g.current].Pause()
	g.current = (g.current + 1) % len(g.voices)
	v := g.voices[g.current]
	v.SetVolume(g.volumes[g.current])
	if err := v.Rewind(); err != nil {
		log.Printf("clips: rewind %q: %v", g.names[g.current], err)
	}
	v.Play()
	return nil
}

func (g *clipGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(16, 16)
	op.LineSpacing = 16
	msg := "no clips"
	if len(g.names) > 0 {
		msg = fmt.Sprintf("%d/%d  %s\nspace: next  esc: quit", g.current+1, len(g.names), g.names[g.current])
	}
	ebtext.Draw(screen, msg, g.face, op)
}

func (g *clipGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 320, 80
}

func main() {
	prefab := flag.String("prefab", "player.yaml", "prefab whose audio clips to play")
	audioDir := flag.String("audio", "assets", "directory for file-backed audio clips")
	flag.Parse()

	spec, err := prefabs.LoadEntityBuildSpec(*prefab)
	if err != nil {
		log.Fatal(err)
	}
	as, err := prefabs.DecodeComponentSpec[prefabs.AudioComponentSpec](spec.Components["audio"])
	if err != nil {
		log.Fatalf("clips: decode audio of %s: %v", *prefab, err)
	}

	load := entity.SoundVoices(sound.NewBank(*audioDir))
	g := &clipGame{current: -1, face: ebtext.NewGoXFace(basicfont.Face7x13)}
	for _, clip := range as.Clips {
		v, err := load(clip)
		if err != nil {
			log.Printf("clips: skip %q: %v", clip.Name, err)
			continue
		}
		vol := clip.Volume
		if vol == 0 {
			vol = 1
		}
		g.names = append(g.names, clip.Name)
		g.voices = append(g.voices, v)
		g.volumes = append(g.volumes, vol)
	}
	if len(g.voices) > 0 {
		g.current = len(g.voices) - 1
	}

	ebiten.SetWindowSize(640, 160)
	ebiten.SetWindowTitle(fmt.Sprintf("clips: %s", spec.Name))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
