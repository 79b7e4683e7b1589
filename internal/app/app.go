package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/orbitview/internal/cli"
	"github.com/philipparndt/orbitview/internal/input"
	"github.com/philipparndt/orbitview/pkg/analysis"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
)

// Config selects what the viewer shows
type Config struct {
	Path     string
	Settings orbit.Settings
	Flags    *cli.SettingsFlags // Reapplied on every settings reload
	Watch    bool
}

// Run opens the viewer window and blocks until it is closed
func Run(cfg Config) error {
	obj, err := scene.Load(cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	// Initialize window
	screenWidth := int32(1400)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "orbitview - "+obj.Name())
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	flags := cfg.Flags
	if flags == nil {
		flags = &cli.SettingsFlags{}
	}

	app := &App{
		Camera: NewCamera(),
		View: ViewSettings{
			showFilled: true,
			showPanel:  true,
		},
		FileWatch: FileWatchState{
			sourceFile:   cfg.Path,
			settingsFile: absPath(flags.File),
			flags:        flags,
			loaded:       make(chan loadResult, 1),
		},
	}
	app.Controls = orbit.New(cfg.Settings,
		orbit.WithIntentHandler(app.handleIntent),
		orbit.WithViewport(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())),
	)
	app.feeder = input.NewFeeder(app.Controls)

	if cfg.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.stopFileWatcher()
		}
	}

	// Vertex colors are baked into the mesh, the default material uses them
	app.Model.material = rl.LoadMaterialDefault()
	app.setObject(obj)
	defer app.unloadModel()

	app.Controls.Init(app.Camera, obj, func() {
		printReport(analysis.Analyze(obj))
	})

	// Main loop
	for !rl.WindowShouldClose() {
		app.applyFileChanges()

		// Update
		app.handleInput()
		app.Controls.Advance()
		app.Camera.update(app.Controls.View())

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		app.Camera.begin()
		app.drawModel()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	return nil
}

// printReport writes the fitted camera values once the controls are ready
func printReport(r *analysis.Report) {
	fmt.Printf("Model: %s (%s)\n", r.Name, r.Kind)
	fmt.Printf("Size: %s\n", analysis.FormatVector(r.Dimensions))
	fmt.Printf("Recommended distance: %.2f, clip planes: %.4f .. %.2f\n",
		r.Metrics.RecommendedDistance, r.Near, r.Far)
}
