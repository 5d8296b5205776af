// Command tracesim runs the character controller headless on an embedded
// level and writes every substep as a CSV row.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/capsulerun/assets"
	"github.com/automoto/capsulerun/config"
	"github.com/automoto/capsulerun/shared/headless"
	"github.com/automoto/capsulerun/shared/movement"
	"github.com/automoto/capsulerun/systems/factory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	Debug   bool     `help:"Enable debug logging."`
	Config  string   `help:"YAML file overriding the default tuning." type:"existingfile"`
	Level   string   `help:"Embedded level to run on." default:"courtyard"`
	Variant string   `help:"Controller variant (character or camera)." default:"character"`
	Seconds float64  `help:"Simulated time." default:"3"`
	Hold    []string `help:"Movement held for the whole run: forward, backward, left, right, jump." sep:","`
	LookDX  float64  `name:"look-dx" help:"Horizontal mouse motion applied every frame."`
	Out     string   `help:"CSV output path, - for stdout." default:"-"`
	// Realtime paces frames with the wall clock, for watching the log live.
	Realtime bool `help:"Run frames at the configured tick rate instead of as fast as possible."`
}

// holdKeys turns movement names into the key state produced by holding the
// first key bound to each.
func holdKeys(names []string, b movement.Bindings) (movement.KeyState, error) {
	keys := movement.KeyState{}
	for _, name := range names {
		var bound []movement.Key
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "forward":
			bound = b.Forward
		case "backward":
			bound = b.Backward
		case "left":
			bound = b.Left
		case "right":
			bound = b.Right
		case "jump":
			bound = b.Jump
		case "":
			continue
		default:
			return nil, fmt.Errorf("unknown movement %q", name)
		}
		if len(bound) == 0 {
			return nil, fmt.Errorf("movement %q has no key bound", name)
		}
		keys[bound[0]] = true
	}
	return keys, nil
}

type summary struct {
	Steps  int
	Resets int
	Final  movement.TraceRecord
}

// run simulates opts and writes the trace to w.
func run(ctx context.Context, opts options, w io.Writer) (summary, error) {
	kind, err := movement.ParseKind(opts.Variant)
	if err != nil {
		return summary{}, err
	}
	level, ok := assets.NewLevelLoader().Level(opts.Level)
	if !ok {
		return summary{}, fmt.Errorf("level %q is not embedded", opts.Level)
	}
	keys, err := holdKeys(opts.Hold, config.Input.Movement)
	if err != nil {
		return summary{}, err
	}

	world := level.BuildWorld(config.Physics.CellSize)
	ctrl := movement.NewController(
		factory.NewStrategy(kind, level, 1),
		level.SpawnCapsule(config.Physics.CapsuleRadius, config.Physics.CapsuleHeight),
		config.LevelTuning(kind, level),
		config.Input.Movement,
	)
	driver := config.Driver()

	frameDelta := 1.0 / float64(config.C.TPS)
	frames := int(opts.Seconds*float64(config.C.TPS) + 0.5)
	in := movement.Input{Keys: keys, MouseDX: opts.LookDX, PointerLocked: opts.LookDX != 0}

	var rec movement.Recorder
	var out summary
	frame := func() {
		reset := ctrl.Frame(in, frameDelta, world, driver, func(dt float64, r movement.StepResult) {
			rec.Record(ctrl.Body, dt, r)
			if r.Reset {
				out.Resets++
			}
		})
		if reset {
			log.Debug().Int("step", len(rec.Records())).Msg("out of bounds, respawned")
		}
	}

	if opts.Realtime && frames > 0 {
		loop := headless.NewLoop(config.C.TPS)
		err := loop.Run(ctx, func(n int) bool {
			frame()
			return n+1 < frames
		})
		if err != nil {
			return summary{}, err
		}
	} else {
		for i := 0; i < frames; i++ {
			if err := ctx.Err(); err != nil {
				return summary{}, err
			}
			frame()
		}
	}

	if err := rec.WriteCSV(w); err != nil {
		return summary{}, fmt.Errorf("writing trace: %w", err)
	}
	records := rec.Records()
	out.Steps = len(records)
	if len(records) > 0 {
		out.Final = *records[len(records)-1]
	}
	return out, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var opts options
	kong.Parse(&opts,
		kong.Name("tracesim"),
		kong.Description("run the capsule controller headless and dump a CSV trace"),
		kong.UsageOnError())

	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if opts.Config != "" {
		if err := config.LoadOverrides(opts.Config); err != nil {
			log.Fatal().Err(err).Msg("could not load config")
		}
	}

	w := io.Writer(os.Stdout)
	if opts.Out != "-" {
		f, err := os.Create(opts.Out)
		if err != nil {
			log.Fatal().Err(err).Str("path", opts.Out).Msg("could not create output")
		}
		defer f.Close()
		w = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s, err := run(ctx, opts, w)
	if err != nil {
		log.Fatal().Err(err).Msg("trace failed")
	}
	log.Info().
		Str("level", opts.Level).
		Str("variant", opts.Variant).
		Int("steps", s.Steps).
		Int("resets", s.Resets).
		Float64("x", s.Final.PosX).
		Float64("y", s.Final.PosY).
		Float64("z", s.Final.PosZ).
		Msg("trace written")
}
