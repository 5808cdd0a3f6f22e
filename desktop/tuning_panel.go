package desktop

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/strider/tuning"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/basicfont"
)

// tuningPanel is an overlay of -/+ buttons, one row per tuning knob, that
// edits the live store. Changes reach the simulation on the next tick.
type tuningPanel struct {
	ui      *ebitenui.UI
	store   *tuning.Store
	knobs   []tuning.Knob
	labels  []*widget.Text
	visible bool
}

func newTuningPanel(store *tuning.Store) *tuningPanel {
	p := &tuningPanel{store: store, knobs: tuning.Knobs()}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Tuning (Tab)", &face, white),
	))

	for _, k := range p.knobs {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)
		label := widget.NewText(
			widget.TextOpts.Text(k.Name, &face, white),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(220, 20),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		row.AddChild(label)
		row.AddChild(p.stepButton(k, -1, " - ", &face, btnImg, btnPressed, btnTextColor))
		row.AddChild(p.stepButton(k, 1, " + ", &face, btnImg, btnPressed, btnTextColor))
		panel.AddChild(row)
		p.labels = append(p.labels, label)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
	return p
}

func (p *tuningPanel) stepButton(k tuning.Knob, steps int, text string, face *ebtext.Face, idle, pressed *imageui.NineSlice, textColor *widget.ButtonTextColor) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Pressed: pressed}),
		widget.ButtonOpts.Text(text, face, textColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			t, err := p.store.Adjust(k, steps)
			if err != nil {
				log.Warn().Err(err).Stringer("knob", k).Msg("tuning change rejected")
				return
			}
			log.Info().Stringer("knob", k).Float64("value", k.Value(t)).Msg("tuning changed")
		}),
	)
}

func (p *tuningPanel) toggle() {
	p.visible = !p.visible
}

func (p *tuningPanel) Update() {
	if p == nil || !p.visible {
		return
	}
	t := p.store.Get()
	for i, k := range p.knobs {
		p.labels[i].Label = fmt.Sprintf("%-22s %8.2f", k.Name, k.Value(t))
	}
	p.ui.Update()
}

func (p *tuningPanel) Draw(screen *ebiten.Image) {
	if p == nil || !p.visible {
		return
	}
	p.ui.Draw(screen)
}
