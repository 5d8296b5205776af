package main

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/fonts"
	"github.com/automoto/capsulerun/scenes"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/automoto/capsulerun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
)

var CLI struct {
	Debug       bool   `help:"Enable debug logging and the debug overlay."`
	Config      string `help:"YAML file overriding the default tuning." type:"existingfile"`
	Level       string `help:"Level to start on." placeholder:"NAME"`
	Variant     string `help:"Controller variant to start with (character or camera)."`
	SkipMenu    bool   `help:"Start the level directly instead of opening the switcher."`
	PrintConfig bool   `help:"Write the effective configuration as YAML and exit."`
}

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

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	session := systems.Session()
	if config.Debug.SkipMenu {
		kind, err := movement.ParseKind(session.LastVariant)
		if err != nil {
			kind = movement.CharacterDriven
		}
		g.scene = scenes.NewWorldScene(g, session.LastLevel, kind)
	} else {
		g.scene = scenes.NewSwitcherScene(g, nil)
	}

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

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

// applyFlags folds the command line into the loaded configuration.
func applyFlags() error {
	if CLI.Config != "" {
		if err := config.LoadOverrides(CLI.Config); err != nil {
			return err
		}
		log.Info().Str("path", CLI.Config).Msg("config overrides loaded")
	}
	if CLI.Debug {
		config.Debug.Overlay = true
	}
	if CLI.Level != "" {
		config.Debug.Level = CLI.Level
	}
	if CLI.Variant != "" {
		if _, err := movement.ParseKind(CLI.Variant); err != nil {
			return err
		}
		config.Debug.Variant = CLI.Variant
	}
	if CLI.SkipMenu {
		config.Debug.SkipMenu = true
	}
	return config.Validate()
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.HUD.FontSize); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, config.HUD.FontSize-2)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("capsulerun"),
		kong.Description("a capsule character controller playground"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if err := applyFlags(); err != nil {
		writeError(err)
	}

	if CLI.PrintConfig {
		data, err := config.DefaultYAML()
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(data)
		return
	}

	if err := loadFonts(); err != nil {
		writeError(err)
	}

	// Initialize persistence and load saved settings
	systems.ResetSession()
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved, CLI.Level != "", CLI.Variant != "")
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
