package config

import (
	"fmt"
	"strings"
)

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// Resolutions are the supported window sizes. The logical screen is always
// 1280x720 and is scaled to the window.
var Resolutions = []Resolution{
	{Width: 1280, Height: 720, Label: "1280x720"},
	{Width: 1600, Height: 900, Label: "1600x900"},
	{Width: 1920, Height: 1080, Label: "1920x1080"},
	{Width: 2560, Height: 1440, Label: "2560x1440"},
}

// Window is the selected window size
var Window = Resolutions[0]

// ParseResolution finds a supported resolution by its label
func ParseResolution(label string) (Resolution, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, r := range Resolutions {
		if r.Label == label {
			return r, nil
		}
	}
	labels := make([]string, 0, len(Resolutions))
	for _, r := range Resolutions {
		labels = append(labels, r.Label)
	}
	return Resolution{}, fmt.Errorf("unsupported window size %q (want one of %s)", label, strings.Join(labels, ", "))
}
