// Trashdesk opens a mock desktop with a handful of icons. Drag an icon onto
// the trash bin in the bottom-left corner to delete it.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/trashdesk"
	"github.com/phanxgames/trashdesk/ecs"
	"github.com/phanxgames/trashdesk/host"
)

const windowTitle = "Trash Desk"

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults apply when empty)")
		seed       = flag.Uint64("seed", 0, "PRNG seed; 0 picks one at startup")
		icons      = flag.Int("icons", 0, "fixed icon count; 0 picks one at random")
		audioFlag  = flag.String("audio", "ebiten", "audio backend: ebiten, beep or none")
		scriptPath = flag.String("script", "", "JSON input script; the window closes when it ends")
		debug      = flag.Bool("debug", false, "log per-frame stats and show FPS")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger, *configPath, *seed, *icons, *audioFlag, *scriptPath, *debug); err != nil {
		log.Fatal(err)
	}
}

func run(logger *slog.Logger, configPath string, seed uint64, icons int, audioBackend, scriptPath string, debug bool) error {
	cfg := trashdesk.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = trashdesk.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if icons != 0 {
		cfg.IconCount = icons
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	assets := host.NewAssets()
	sound, closeSound, err := newSound(audioBackend, assets, logger)
	if err != nil {
		return err
	}
	defer closeSound()

	scene, err := trashdesk.NewScene(cfg, trashdesk.NewRand(cfg.Seed), assets, sound)
	if err != nil {
		return err
	}
	scene.SetLogger(logger)
	scene.SetDebugMode(debug)

	world := donburi.NewWorld()
	var tally ecs.Tally
	tally.Subscribe(world)
	scene.SetEventStore(ecs.NewDonburiStore(world))

	logger.Info("desktop ready",
		"seed", cfg.Seed,
		"icons", scene.IconCount(),
		"trash_x", scene.Trash().Pos.X,
		"trash_y", scene.Trash().Pos.Y,
	)

	game := host.NewGame(scene, assets, logger, debug)
	game.World = world
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := trashdesk.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		game.Runner = runner
	}

	if err := host.Run(game, host.RunConfig{Title: windowTitle, Scale: cfg.Scale}); err != nil {
		return err
	}
	logger.Info("session ended",
		"grabs", tally.Grabs,
		"drops", tally.Drops,
		"trashed", tally.Trashed,
		"remaining", scene.IconCount(),
	)
	if game.Runner != nil {
		if failures := game.Runner.Failures(); len(failures) > 0 {
			for _, f := range failures {
				logger.Error("script expectation failed", "detail", f)
			}
			return fmt.Errorf("script: %d expectation(s) failed", len(failures))
		}
	}
	return nil
}

func newSound(backend string, assets *host.Assets, logger *slog.Logger) (trashdesk.SoundPlayer, func(), error) {
	switch backend {
	case "ebiten":
		return host.NewEbitenAudio(assets, logger), func() {}, nil
	case "beep":
		b := host.NewBeepAudio(assets, logger)
		if err := b.Initialize(); err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case "none":
		return trashdesk.NopSoundPlayer{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown audio backend %q", backend)
	}
}
