package config

// Render layers, drawn in order
const (
	Default = iota
	Overlay
)
