package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/common"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	hudFace  = ebtext.NewGoXFace(basicfont.Face7x13)
	pixelImg = newPixel()
)

func newPixel() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	ecs.ForEach3(g.world, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.GroundTag, t *component.Transform, pb *component.PhysicsBody) {
		g.drawBox(screen, t, pb.Width, pb.Height, colornames.Darkolivegreen)
	})

	ecs.ForEach3(g.world, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform, pb *component.PhysicsBody) {
		clr := colornames.Orange
		if anim, ok := ecs.Get(g.world, e, component.AnimatorComponent.Kind()); ok && anim.Current == system.AnimMove {
			clr = colornames.Darkorange
		}
		g.drawBox(screen, t, pb.Width, pb.Height, clr)
	})

	ecs.ForEach2(g.world, component.AttachmentComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.Attachment, t *component.Transform) {
		if pt, ok := g.parentTransform(a); ok {
			px, py := g.camera.ToScreen(pt.X, pt.Y)
			ax, ay := g.camera.ToScreen(t.X, t.Y)
			vector.StrokeLine(screen, float32(px), float32(py), float32(ax), float32(ay), 2, colornames.Lightgrey, true)
		}
		g.drawBox(screen, t, a.Width, a.Height, colornames.Slategray)
	})

	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) parentTransform(a *component.Attachment) (*component.Transform, bool) {
	if a.Parent == 0 {
		return nil, false
	}
	return ecs.Get(g.world, ecs.Entity(a.Parent), component.TransformComponent.Kind())
}

// drawBox draws a rotated box of w by h world units centered on t.
func (g *Game) drawBox(screen *ebiten.Image, t *component.Transform, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := g.camera.ToScreen(t.X, t.Y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(w*common.PixelsPerUnit, h*common.PixelsPerUnit)
	// screen y points down, so world rotation flips sign
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixelImg, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	var lines []string
	if c, ok := ecs.Get(g.world, g.player, component.CharacterComponent.Kind()); ok && c.Controller != nil {
		lines = append(lines, hudLines(c.Controller)...)
	}
	if g.notice != "" {
		lines = append(lines, g.notice)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(12, common.BaseHeight-16*float64(len(lines))-8)
	op.ColorScale.ScaleWithColor(colornames.Black)
	op.LineSpacing = 16
	ebtext.Draw(screen, strings.Join(lines, "\n"), hudFace, op)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f    Ticks: %d", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), g.loop.Ticks()))
	}
}

func hudLines(c *character.Controller) []string {
	facing := "right"
	if !c.FacingRight() {
		facing = "left"
	}
	return []string{
		fmt.Sprintf("propeller: %s", c.PropellerValue()),
		fmt.Sprintf("facing: %s  jump: %v  taunt: %d", facing, c.JumpPending(), c.TauntIndex()),
	}
}
