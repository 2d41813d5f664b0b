package ui

import (
	"image/color"

	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

const warningWrap = 56

// WarningUI is the final warning modal of the restoration phase
type WarningUI struct {
	UI *ebitenui.UI

	OnBack   func()
	OnReveal func()

	faces *Faces
}

func NewWarningUI(onBack, onReveal func()) *WarningUI {
	ui := &WarningUI{
		OnBack:   onBack,
		OnReveal: onReveal,
		faces:    LoadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *WarningUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 24, Bottom: 24, Left: 32, Right: 32}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(cfg.Panel, cfg.ErrorRed, 2)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(narrative.FinalWarningTitle, &ui.faces.Title, &widget.LabelColor{
			Idle: cfg.ErrorRed,
		}),
	))
	for _, line := range wrapRunes(narrative.FinalWarningBody, warningWrap) {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.faces.Small, &widget.LabelColor{
				Idle: color.NRGBA{R: 255, G: 255, B: 255, A: 200},
			}),
		))
	}
	for _, line := range wrapRunes(narrative.FinalWarningConfirm, warningWrap) {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &ui.faces.Small, &widget.LabelColor{
				Idle: cfg.Pink,
			}),
		))
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)
	buttons.AddChild(newVaporButton(narrative.BackLabel, &ui.faces.Normal, 160, 36, func() {
		if ui.OnBack != nil {
			ui.OnBack()
		}
	}))
	buttons.AddChild(newVaporButton(narrative.RevealLabel, &ui.faces.Normal, 160, 36, func() {
		if ui.OnReveal != nil {
			ui.OnReveal()
		}
	}))
	panel.AddChild(buttons)

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *WarningUI) Update() {
	ui.UI.Update()
}
