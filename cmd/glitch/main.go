package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/alecchendev/glitch-game/internal/config"
	"github.com/alecchendev/glitch-game/internal/game"
	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/graphics/renderables/blocks"
	"github.com/alecchendev/glitch-game/internal/graphics/renderables/crosshair"
	"github.com/alecchendev/glitch-game/internal/graphics/renderables/direction"
	"github.com/alecchendev/glitch-game/internal/graphics/renderables/playermodel"
	"github.com/alecchendev/glitch-game/internal/graphics/renderables/wireframe"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/input"
	"github.com/alecchendev/glitch-game/internal/logger"
	"github.com/alecchendev/glitch-game/internal/profiling"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	flags, err := config.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		_ = logger.Init("info", "")
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.WriteConfig != "" {
		if err := cfg.SaveTo(flags.WriteConfig); err != nil {
			logger.Fatal("failed to write config", zap.String("path", flags.WriteConfig), zap.Error(err))
		}
		logger.Info("config written", zap.String("path", flags.WriteConfig))
		logger.Sync()
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("startup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	w, err := loadWorld(cfg.World.Path)
	if err != nil {
		return err
	}
	logger.Info("world loaded",
		zap.String("name", w.Name),
		zap.Int("blocks", len(w.Blocks)))

	state, err := game.NewState(w, cfg)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw: %v", game.ErrBackendInit, err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Graphics)
	if err != nil {
		return err
	}
	defer window.Destroy()
	logger.Info("window created",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("vsync", cfg.Graphics.VSync))

	backend := graphics.GLBackend{}
	profiler := profiling.New()
	projection := graphics.NewProjection(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.FOV)

	worldBlocks := blocks.NewBlocks(w, backend, graphics.NewTextureCache(cfg.Assets.TextureDir))
	r, err := renderer.NewRenderer(projection, profiler,
		worldBlocks,
		playermodel.NewPlayerModel(backend),
		wireframe.NewWireframe(),
		crosshair.NewCrosshair(),
		direction.NewDirection(),
	)
	if err != nil {
		return err
	}
	defer r.Dispose()

	game.NewLoop(window, input.NewInputManager(), r, state, profiler, worldBlocks, cfg).Run()
	return nil
}

func loadWorld(path string) (*world.World, error) {
	if path == "" {
		return world.Default(), nil
	}
	return world.Load(path)
}
