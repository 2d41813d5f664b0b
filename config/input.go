package config

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionRestore
	ActionDefrag
	ActionAnalyze
	ActionSubmit
	ActionBack
	ActionFullscreen
	ActionDebug
	ActionKonamiUp
	ActionKonamiDown
	ActionKonamiLeft
	ActionKonamiRight
	ActionKonamiB
	ActionKonamiA
	ActionCount // Must be last - used for array sizing
)

// InputConfig maps actions to key names as understood by ebiten.Key.UnmarshalText
type InputConfig struct {
	Bindings map[ActionID][]string
}

// Input is the global input configuration
var Input InputConfig

// actionNames are the YAML keys of bindable actions
var actionNames = map[string]ActionID{
	"restore":    ActionRestore,
	"defrag":     ActionDefrag,
	"analyze":    ActionAnalyze,
	"submit":     ActionSubmit,
	"back":       ActionBack,
	"fullscreen": ActionFullscreen,
	"debug":      ActionDebug,
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionRestore:     {"Digit1", "R"},
			ActionDefrag:      {"Digit2", "D"},
			ActionAnalyze:     {"Digit3", "N"},
			ActionSubmit:      {"Enter", "NumpadEnter"},
			ActionBack:        {"Escape"},
			ActionFullscreen:  {"F11"},
			ActionDebug:       {"F3"},
			ActionKonamiUp:    {"ArrowUp"},
			ActionKonamiDown:  {"ArrowDown"},
			ActionKonamiLeft:  {"ArrowLeft"},
			ActionKonamiRight: {"ArrowRight"},
			ActionKonamiB:     {"B"},
			ActionKonamiA:     {"A"},
		},
	}
}
