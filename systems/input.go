package systems

import (
	"github.com/automoto/ultimomeme/components"
	cfg "github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/logging"
	"github.com/automoto/ultimomeme/narrative"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Resolved key bindings, rebuilt when the configured names change
var (
	boundKeys   [cfg.ActionCount][]ebiten.Key
	boundSource map[cfg.ActionID][]string
)

// konamiActions maps konami actions to detector keys
var konamiActions = []struct {
	action cfg.ActionID
	key    narrative.Key
}{
	{cfg.ActionKonamiUp, narrative.KeyUp},
	{cfg.ActionKonamiDown, narrative.KeyDown},
	{cfg.ActionKonamiLeft, narrative.KeyLeft},
	{cfg.ActionKonamiRight, narrative.KeyRight},
	{cfg.ActionKonamiB, narrative.KeyB},
	{cfg.ActionKonamiA, narrative.KeyA},
}

// UpdateInput samples the bound keys for this tick.
// Must run before any system reading actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Prev = input.Held
	input.Held = [cfg.ActionCount]bool{}

	resolveBindings()
	for actionID, keys := range boundKeys {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Held[actionID] = true
				break
			}
		}
	}
}

// resolveBindings parses the configured key names into ebiten keys.
// Unknown names are logged once and skipped.
func resolveBindings() {
	if boundSource != nil && sameBindings(boundSource, cfg.Input.Bindings) {
		return
	}
	boundKeys = [cfg.ActionCount][]ebiten.Key{}
	for actionID, names := range cfg.Input.Bindings {
		if actionID <= cfg.ActionNone || actionID >= cfg.ActionCount {
			continue
		}
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				logging.Named("input").Warn("unknown key binding", zap.String("key", name), zap.Error(err))
				continue
			}
			boundKeys[actionID] = append(boundKeys[actionID], key)
		}
	}
	boundSource = make(map[cfg.ActionID][]string, len(cfg.Input.Bindings))
	for id, names := range cfg.Input.Bindings {
		boundSource[id] = append([]string(nil), names...)
	}
}

func sameBindings(a, b map[cfg.ActionID][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for id, names := range a {
		other, ok := b[id]
		if !ok || len(other) != len(names) {
			return false
		}
		for i := range names {
			if names[i] != other[i] {
				return false
			}
		}
	}
	return true
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// KonamiKeys returns the detector keys pressed this frame, in binding order.
func KonamiKeys(input *components.InputData) []narrative.Key {
	var keys []narrative.Key
	for _, k := range konamiActions {
		if input.Pressed(k.action) {
			keys = append(keys, k.key)
		}
	}
	return keys
}

// UpdateWindow handles the global toggles: fullscreen and the debug overlay.
func UpdateWindow(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if input.Pressed(cfg.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if input.Pressed(cfg.ActionDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// ActionJustPressed reports whether id went down this frame
func ActionJustPressed(e *ecs.ECS, id cfg.ActionID) bool {
	return getOrCreateInput(e).Pressed(id)
}
