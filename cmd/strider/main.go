package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/strider/clock"
	"github.com/milk9111/strider/desktop"
	"github.com/milk9111/strider/ecs/system"
	"github.com/milk9111/strider/game"
	"github.com/milk9111/strider/input"
	"github.com/milk9111/strider/prefabs"
	"github.com/milk9111/strider/tuning"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type SessionFlags struct {
	Tuning    string  `help:"Tuning prefab." default:"tuning.yaml"`
	Bindings  string  `help:"Key bindings prefab." default:"bindings.yaml"`
	Arena     string  `help:"Arena prefab." default:"arena.yaml"`
	Character string  `help:"Character prefab." default:"character.yaml"`
	Offset    float64 `help:"Mover skin width in meters (0 keeps the default)."`
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Play struct {
		SessionFlags `embed:""`
		Watch        bool `help:"Reload the tuning prefab when it changes on disk."`
	} `cmd:"" help:"Open a window and control the character."`

	Simulate struct {
		SessionFlags `embed:""`
		Script       string  `help:"Input script prefab." default:"script.yaml"`
		Ticks        int     `help:"Stop after this many ticks (0 runs the whole script)."`
		DT           float64 `name:"dt" help:"Seconds per tick (0 uses the script's value or 1/60)."`
		Every        int     `help:"Print the state every N ticks." default:"1"`
	} `cmd:"" help:"Run a scripted, headless simulation and print a trace."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("strider"),
		kong.Description("a kinematic character movement controller"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	var err error
	switch ctx.Command() {
	case "play":
		err = playCommand()
	case "simulate":
		err = simulateCommand()
	}
	if err != nil {
		writeError(err)
	}
}

func openSession(flags SessionFlags, keys input.KeySource) (*game.Session, *tuning.Store, error) {
	store, err := tuning.Open(flags.Tuning)
	if err != nil {
		return nil, nil, err
	}
	bindings, err := input.LoadBindings(flags.Bindings)
	if err != nil {
		return nil, nil, err
	}
	session, err := game.NewSession(game.Options{
		Tuning:          store,
		Bindings:        &bindings,
		Keys:            keys,
		ArenaPrefab:     flags.Arena,
		CharacterPrefab: flags.Character,
		Offset:          flags.Offset,
	})
	if err != nil {
		return nil, nil, err
	}
	return session, store, nil
}

func playCommand() error {
	session, store, err := openSession(CLI.Play.SessionFlags, desktop.NewKeyboardSource())
	if err != nil {
		return err
	}

	if CLI.Play.Watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			return fmt.Errorf("watch prefabs: %w", err)
		}
		defer watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go store.Watch(ctx, watcher.Events)
		go func() {
			for err := range watcher.Errors {
				log.Warn().Err(err).Msg("prefab watcher")
			}
		}()
		log.Info().Str("prefab", store.Name()).Msg("watching tuning")
	}

	return desktop.Run(desktop.New(session, clock.NewWall(100*time.Millisecond), store, CLI.Debug), "strider")
}

func simulateCommand() error {
	flags := CLI.Simulate
	script, err := input.LoadScript(flags.Script)
	if err != nil {
		return err
	}
	session, _, err := openSession(flags.SessionFlags, script)
	if err != nil {
		return err
	}

	dt := flags.DT
	if dt <= 0 {
		dt = script.DT()
	}
	if dt <= 0 {
		dt = 1.0 / 60
	}
	var clk clock.Clock = clock.Fixed(dt)
	every := max(1, flags.Every)

	log.Info().Str("script", script.Name()).Int("ticks", script.Len()).Float64("dt", dt).Msg("simulating")

	for n := 0; flags.Ticks <= 0 || n < flags.Ticks; n++ {
		yaw, ok := script.Advance()
		if !ok {
			break
		}
		if yaw != nil {
			session.SetYaw(mgl64.DegToRad(*yaw))
		}

		for _, me := range system.MotionEvents(session.Tick(clk.Delta())) {
			log.Info().Uint64("tick", me.Tick).Str("event", string(me.Kind)).Msg("motion")
		}

		if (n+1)%every != 0 {
			continue
		}
		snap, err := session.Snapshot()
		if err != nil {
			return err
		}
		fmt.Println(snap)
	}
	return nil
}
