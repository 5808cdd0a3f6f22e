// Package desktop shows a session in a window, seen from above.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/strider/clock"
	"github.com/milk9111/strider/ecs"
	"github.com/milk9111/strider/ecs/component"
	"github.com/milk9111/strider/ecs/system"
	"github.com/milk9111/strider/game"
	"github.com/milk9111/strider/tuning"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	pixelsPerMeter = 16.0
	turnSpeed      = 2.5 // radians per second
)

// Game adapts a Session to ebiten.Game.
type Game struct {
	session *game.Session
	clock   clock.Clock
	panel   *tuningPanel
	debug   bool
}

// New drives session with clk. A nil clock steps at the ebiten tick rate.
// With a store, Tab opens a panel that edits it live.
func New(session *game.Session, clk clock.Clock, store *tuning.Store, debug bool) *Game {
	if clk == nil {
		clk = clock.Fixed(1.0 / float64(ebiten.TPS()))
	}
	g := &Game{session: session, clock: clk, debug: debug}
	if store != nil {
		g.panel = newTuningPanel(store)
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.panel != nil && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.toggle()
	}
	g.panel.Update()

	dt := g.clock.Delta()
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.session.Turn(turnSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.session.Turn(-turnSpeed * dt)
	}

	for _, me := range system.MotionEvents(g.session.Tick(dt)) {
		log.Debug().Stringer("entity", me.Entity).Uint64("tick", me.Tick).Str("event", string(me.Kind)).Msg("motion")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	w := g.session.World

	ecs.ForEach2(w, component.StaticBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, sb *component.StaticBody, tr *component.Transform) {
		x, y, bw, bh := footprint(tr.Position.X(), tr.Position.Z(), sb.HalfExtents.X(), sb.HalfExtents.Z())
		shade := uint8(60 + min(150, max(0, 40*(tr.Position.Y()+sb.HalfExtents.Y()))))
		vector.FillRect(screen, x, y, bw, bh, color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
		vector.StrokeRect(screen, x, y, bw, bh, 1, colornames.Black, false)
	})

	ecs.ForEach3(w, component.KinematicBodyComponent.Kind(), component.TransformComponent.Kind(), component.TintComponent.Kind(), func(_ ecs.Entity, kb *component.KinematicBody, tr *component.Transform, tint *component.Tint) {
		half := kb.Body.HalfExtents
		x, y, bw, bh := footprint(tr.Position.X(), tr.Position.Z(), half.X(), half.Z())
		vector.FillRect(screen, x, y, bw, bh, tint.Color, false)

		cx, cy := toScreen(tr.Position.X(), tr.Position.Z())
		f := tr.Forward()
		hx, hy := toScreen(tr.Position.X()+f.X(), tr.Position.Z()+f.Z())
		vector.StrokeLine(screen, cx, cy, hx, hy, 2, colornames.White, true)
	})

	snap, err := g.session.Snapshot()
	if err != nil {
		ebitenutil.DebugPrint(screen, err.Error())
		return
	}
	msg := "WASD move  Space jump  Shift dash  Q/E turn  Tab tuning  F3 debug  Esc quit"
	if g.debug {
		msg += fmt.Sprintf("\n%s\nyaw=%.2f launched=%t dashing=%t\nFPS: %.1f", snap, snap.Yaw, snap.Launched, snap.Dashing, ebiten.ActualFPS())
	}
	ebitenutil.DebugPrint(screen, msg)
	g.panel.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// toScreen maps the XZ plane to the window: +X right, -Z up.
func toScreen(x, z float64) (float32, float32) {
	return float32(baseWidth/2 + x*pixelsPerMeter), float32(baseHeight/2 + z*pixelsPerMeter)
}

func footprint(cx, cz, hx, hz float64) (x, y, w, h float32) {
	x, y = toScreen(cx-hx, cz-hz)
	return x, y, float32(2 * hx * pixelsPerMeter), float32(2 * hz * pixelsPerMeter)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
