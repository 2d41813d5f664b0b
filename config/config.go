package config

import (
	"image/color"
	"time"

	"github.com/automoto/ultimomeme/narrative"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// CanvasConfig places a compositor surface on screen
type CanvasConfig struct {
	X, Y     float64
	Width    int
	Height   int
	Interval time.Duration // minimum time between two rendered frames
}

// LayoutConfig contains the restoration screen columns
type LayoutConfig struct {
	Margin   float64
	HeaderH  float64
	TopY     float64 // first row below the header
	BottomY  float64
	LeftX    float64
	LeftW    float64
	RightX   float64
	RightW   float64
	LogLineH float64
}

// FadeConfig contains scene transition timings
type FadeConfig struct {
	SceneFadeIn time.Duration
	MemeScaleIn time.Duration
	GaugeEase   time.Duration
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw compositor stats and TPS
}

// Global configuration instances
var C *Config
var RestorationCanvas CanvasConfig
var RevealCanvas CanvasConfig
var Layout LayoutConfig
var Fade FadeConfig
var Debug DebugConfig
var Fullscreen bool

var Intro narrative.IntroConfig
var Restoration narrative.RestorationConfig
var Reveal narrative.RevealConfig
var CRT narrative.CRTConfig

// Shared RGBA color constants
var (
	Void        = color.RGBA{R: 0x0a, G: 0x06, B: 0x12, A: 255}
	Black       = color.RGBA{A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Pink        = color.RGBA{R: 0xFF, G: 0x71, B: 0xCE, A: 255}
	Cyan        = color.RGBA{R: 0x01, G: 0xCD, B: 0xFE, A: 255}
	Purple      = color.RGBA{R: 0xB9, G: 0x67, B: 0xFF, A: 255}
	Mint        = color.RGBA{R: 0x05, G: 0xFF, B: 0xA1, A: 255}
	Amber       = color.RGBA{R: 0xFF, G: 0xB3, B: 0x47, A: 255}
	NeonGreen   = color.RGBA{R: 0x39, G: 0xFF, B: 0x14, A: 255}
	ErrorRed    = color.RGBA{R: 0xFF, G: 0x47, B: 0x57, A: 255}
	Panel       = color.RGBA{R: 0x14, G: 0x0c, B: 0x24, A: 235}
	PanelBorder = color.RGBA{R: 0xB9, G: 0x67, B: 0xFF, A: 90}
	Dim         = color.RGBA{R: 255, G: 255, B: 255, A: 110}
	Faint       = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	Shade       = color.RGBA{A: 230}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "O Último Meme da Terra",
	}

	RestorationCanvas = CanvasConfig{
		X:        340,
		Y:        120,
		Width:    600,
		Height:   400,
		Interval: 100 * time.Millisecond,
	}

	RevealCanvas = CanvasConfig{
		X:        390,
		Y:        150,
		Width:    500,
		Height:   400,
		Interval: 100 * time.Millisecond,
	}

	Layout = LayoutConfig{
		Margin:   20,
		HeaderH:  60,
		TopY:     88,
		BottomY:  700,
		LeftX:    20,
		LeftW:    300,
		RightX:   960,
		RightW:   300,
		LogLineH: 15,
	}

	Fade = FadeConfig{
		SceneFadeIn: 500 * time.Millisecond,
		MemeScaleIn: time.Second,
		GaugeEase:   500 * time.Millisecond,
	}

	Intro = narrative.DefaultIntroConfig()
	Restoration = narrative.DefaultRestorationConfig()
	Reveal = narrative.DefaultRevealConfig()
	CRT = narrative.DefaultCRTConfig()
}
