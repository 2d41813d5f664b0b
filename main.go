package main

import (
	"fmt"
	"image"
	"os"

	"github.com/automoto/ultimomeme/config"
	"github.com/automoto/ultimomeme/fonts"
	"github.com/automoto/ultimomeme/logging"
	"github.com/automoto/ultimomeme/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Command-line flags
	phaseFlag  string
	windowFlag string
	configPath string
	fullscreen bool
	debug      bool
	mute       bool
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(phase config.Phase) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPhaseScene(g, phase).(Scene)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// rootCmd runs the game
var rootCmd = &cobra.Command{
	Use:   "ultimomeme",
	Short: "O Último Meme da Terra - a mockumentary about the death of humor",
	Long: `Plays the three phases of the experience: the terminal boot and access
code, the restoration of the last meme and the final reveal.

Keys: 1/R restore, 2/D defrag, 3/N analyze, Enter confirm, Esc back,
F11 fullscreen, F3 debug overlay.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&phaseFlag, "phase", string(config.PhaseIntro), "Phase to start on (intro, restoration, final)")
	rootCmd.Flags().StringVar(&windowFlag, "window", config.Window.Label, "Window size")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with tuning overrides")
	rootCmd.Flags().BoolVarP(&fullscreen, "fullscreen", "f", false, "Start in fullscreen")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging and the debug overlay")
}

// applyFlags layers the configuration: defaults, then the YAML file, then
// any flag given on the command line.
func applyFlags(cmd *cobra.Command) error {
	if configPath != "" {
		overrides, err := config.LoadOverrides(configPath)
		if err != nil {
			return err
		}
		overrides.Apply()
		logging.L().Info("config overrides applied", zap.String("path", configPath))
	}

	flags := cmd.Flags()
	if flags.Changed("phase") {
		phase, err := config.ParsePhase(phaseFlag)
		if err != nil {
			return err
		}
		config.StartPhase = phase
	}
	if flags.Changed("window") {
		window, err := config.ParseResolution(windowFlag)
		if err != nil {
			return err
		}
		config.Window = window
	}
	if flags.Changed("fullscreen") {
		config.Fullscreen = fullscreen
	}
	if flags.Changed("mute") {
		config.Audio.Muted = mute
	}
	if debug {
		config.Debug.Overlay = true
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if err := applyFlags(cmd); err != nil {
		return err
	}
	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Fullscreen)
	ebiten.SetTPS(config.C.TPS)

	logging.L().Info("starting",
		zap.Stringer("phase", config.StartPhase),
		zap.String("window", config.Window.Label),
		zap.Int("tps", config.C.TPS),
		zap.Bool("fullscreen", config.Fullscreen),
		zap.Bool("muted", config.Audio.Muted))

	if err := ebiten.RunGame(NewGame(config.StartPhase)); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
