package ui

import (
	"github.com/automoto/ultimomeme/narrative"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// RestartUI is the single button closing the final reveal
type RestartUI struct {
	UI *ebitenui.UI

	OnRestart func()

	faces *Faces
}

func NewRestartUI(onRestart func()) *RestartUI {
	ui := &RestartUI{
		OnRestart: onRestart,
		faces:     LoadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *RestartUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Bottom: 40}
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	row.AddChild(newVaporButton(narrative.RestartLabel, &ui.faces.Normal, 220, 36, func() {
		if ui.OnRestart != nil {
			ui.OnRestart()
		}
	}))

	rootContainer.AddChild(row)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *RestartUI) Update() {
	ui.UI.Update()
}
