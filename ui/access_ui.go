package ui

import (
	"image/color"

	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// AccessUI is the access-code field shown under the classified warning
type AccessUI struct {
	UI *ebitenui.UI

	OnSubmit func(code string)

	codeInput *widget.TextInput
	faces     *Faces
}

func NewAccessUI(onSubmit func(code string)) *AccessUI {
	ui := &AccessUI{
		OnSubmit: onSubmit,
		faces:    LoadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *AccessUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Bottom: 96}
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text(narrative.AccessField, &ui.faces.Small, &widget.LabelColor{
			Idle: cfg.Cyan,
		}),
	)
	row.AddChild(label)

	ui.codeInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 32)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewBorderedNineSliceColor(color.NRGBA{A: 160}, cfg.Purple, 1),
			Disabled: image.NewBorderedNineSliceColor(color.NRGBA{A: 100}, color.NRGBA{R: 0xB9, G: 0x67, B: 0xFF, A: 60}, 1),
		}),
		widget.TextInputOpts.Face(&ui.faces.Normal),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.NeonGreen,
			Disabled:      color.RGBA{100, 100, 100, 255},
			Caret:         cfg.NeonGreen,
			DisabledCaret: color.RGBA{100, 100, 100, 255},
		}),
		widget.TextInputOpts.Placeholder("MEM-2045-..."),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(6)),
	)
	row.AddChild(ui.codeInput)

	row.AddChild(newVaporButton(narrative.AccessButton, &ui.faces.Normal, 120, 32, ui.Submit))

	rootContainer.AddChild(row)
	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.codeInput.Focus(true)
}

// Submit hands the typed code to OnSubmit
func (ui *AccessUI) Submit() {
	if ui.OnSubmit != nil {
		ui.OnSubmit(ui.codeInput.GetText())
	}
}

func (ui *AccessUI) Update() {
	ui.UI.Update()
}
