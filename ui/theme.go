package ui

import (
	"bytes"
	"image/color"
	"strings"
	"sync"

	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/logging"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Faces shared by every widget tree
type Faces struct {
	Title  text.Face
	Normal text.Face
	Small  text.Face
}

var (
	sharedFaces     *Faces
	sharedFacesOnce sync.Once
)

// LoadFaces parses Go Mono once. A parse failure is fatal for the UI, so it
// is logged and the process stops like any other missing asset.
func LoadFaces() *Faces {
	sharedFacesOnce.Do(func() {
		regular, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
		if err != nil {
			logging.Named("ui").Fatal("failed to load UI font", zap.Error(err))
		}
		bold, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
		if err != nil {
			logging.Named("ui").Fatal("failed to load UI font", zap.Error(err))
		}
		sharedFaces = &Faces{
			Title:  &text.GoTextFace{Source: bold, Size: 18},
			Normal: &text.GoTextFace{Source: bold, Size: 14},
			Small:  &text.GoTextFace{Source: regular, Size: 12},
		}
	})
	return sharedFaces
}

// newVaporButton is the purple outlined button used across the scenes
func newVaporButton(label string, face *text.Face, minW, minH int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, minH)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewBorderedNineSliceColor(color.NRGBA{R: 0xB9, G: 0x67, B: 0xFF, A: 40}, cfg.Purple, 1),
			Hover:    image.NewBorderedNineSliceColor(color.NRGBA{R: 0xFF, G: 0x71, B: 0xCE, A: 70}, cfg.Pink, 1),
			Pressed:  image.NewBorderedNineSliceColor(color.NRGBA{R: 0x01, G: 0xCD, B: 0xFE, A: 90}, cfg.Cyan, 1),
			Disabled: image.NewBorderedNineSliceColor(color.NRGBA{R: 40, G: 30, B: 60, A: 120}, color.NRGBA{R: 0xB9, G: 0x67, B: 0xFF, A: 60}, 1),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     cfg.White,
			Hover:    cfg.White,
			Pressed:  cfg.Void,
			Disabled: color.RGBA{120, 110, 140, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

// wrapRunes splits s into lines of at most width runes, on word boundaries
func wrapRunes(s string, width int) []string {
	var lines []string
	line := ""
	for _, w := range strings.Fields(s) {
		switch {
		case line == "":
			line = w
		case len([]rune(line))+1+len([]rune(w)) > width:
			lines = append(lines, line)
			line = w
		default:
			line += " " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
