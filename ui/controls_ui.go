package ui

import (
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

const (
	controlButtonW = 268
	controlButtonH = 36
)

// ControlsUI holds the three restoration buttons of the left panel
type ControlsUI struct {
	UI *ebitenui.UI

	OnRestore func()
	OnDefrag  func()
	OnAnalyze func()

	restoreBtn *widget.Button
	defragBtn  *widget.Button
	analyzeBtn *widget.Button
	busy       bool
	faces      *Faces
}

func NewControlsUI(onRestore, onDefrag, onAnalyze func()) *ControlsUI {
	ui := &ControlsUI{
		OnRestore: onRestore,
		OnDefrag:  onDefrag,
		OnAnalyze: onAnalyze,
		faces:     LoadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *ControlsUI) buildUI() {
	l := cfg.Layout
	padding := widget.Insets{Top: int(l.TopY) + 44, Left: int(l.LeftX) + 16}
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	ui.restoreBtn = newVaporButton(narrative.RestoreLabel, &ui.faces.Normal, controlButtonW, controlButtonH, func() {
		if ui.OnRestore != nil {
			ui.OnRestore()
		}
	})
	ui.defragBtn = newVaporButton(narrative.DefragLabel, &ui.faces.Normal, controlButtonW, controlButtonH, func() {
		if ui.OnDefrag != nil {
			ui.OnDefrag()
		}
	})
	ui.analyzeBtn = newVaporButton(narrative.AnalyzeLabel, &ui.faces.Normal, controlButtonW, controlButtonH, func() {
		if ui.OnAnalyze != nil {
			ui.OnAnalyze()
		}
	})
	rootContainer.AddChild(ui.restoreBtn)
	rootContainer.AddChild(ui.defragBtn)
	rootContainer.AddChild(ui.analyzeBtn)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetBusy disables the buttons while an attempt runs
func (ui *ControlsUI) SetBusy(busy bool) {
	if busy == ui.busy {
		return
	}
	ui.busy = busy
	ui.restoreBtn.GetWidget().Disabled = busy
	ui.defragBtn.GetWidget().Disabled = busy
	ui.analyzeBtn.GetWidget().Disabled = busy
	if busy {
		ui.restoreBtn.Text().Label = narrative.RestoringLabel
	} else {
		ui.restoreBtn.Text().Label = narrative.RestoreLabel
	}
}

func (ui *ControlsUI) Update() {
	ui.UI.Update()
}
