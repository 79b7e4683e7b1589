package app

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/orbitview/internal/cli"
	"github.com/philipparndt/orbitview/internal/input"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/philipparndt/orbitview/pkg/watcher"
)

// ModelData holds the loaded object and its GPU resources
type ModelData struct {
	object   *scene.Object
	mesh     rl.Mesh
	material rl.Material
	hasMesh  bool
	edges    [][2]rl.Vector3 // Deduplicated triangle edges for the wireframe
	points   []rl.Vector3    // Point cloud positions
	colors   []rl.Color      // Point cloud colors by height
}

// ViewSettings holds display settings
type ViewSettings struct {
	showFilled      bool
	showWireframe   bool
	showBoundingBox bool
	showPanel       bool
}

// InputState tracks pointer state between frames
type InputState struct {
	overPanel bool // Pointer is over the control panel
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile       string             // Model file path
	settingsFile     string             // Absolute settings file path, empty when none
	flags            *cli.SettingsFlags // Command line overrides for the settings file
	fileWatcher      *watcher.Watcher   // File watcher for auto-reload
	cancel           context.CancelFunc // Stops the watcher goroutine
	isLoading        bool               // A reload is in progress
	loadingStartTime time.Time          // When loading started
	loaded           chan loadResult    // Models loaded in the background
}

// UIState holds presentation state driven by intents
type UIState struct {
	focused bool
	cursor  int32
}

// loadResult is a model loaded off the main thread
type loadResult struct {
	object *scene.Object
	err    error
}

// App is the raylib viewer
type App struct {
	Controls  *orbit.Controls
	Camera    *Camera
	Model     ModelData
	View      ViewSettings
	Input     InputState
	FileWatch FileWatchState
	UI        UIState

	feeder *input.Feeder
}
