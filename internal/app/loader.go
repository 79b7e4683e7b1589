package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/philipparndt/orbitview/pkg/watcher"
)

// setupFileWatcher watches the model and the settings file
func (app *App) setupFileWatcher() error {
	// Create file watcher with 500ms debounce
	fw, err := watcher.New(500*time.Millisecond, watcher.WithErrorHandler(func(err error) {
		fmt.Printf("Warning: file watcher: %v\n", err)
	}))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// OpenSCAD models also reload when a used or included file changes
	filesToWatch := scene.Sources(app.FileWatch.sourceFile)
	if app.FileWatch.settingsFile != "" {
		filesToWatch = append(filesToWatch, app.FileWatch.settingsFile)
	}
	if err := fw.Add(filesToWatch...); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go fw.Run(ctx)

	app.FileWatch.fileWatcher = fw
	app.FileWatch.cancel = cancel

	for _, f := range filesToWatch {
		fmt.Printf("Watching file for changes: %s\n", f)
	}
	return nil
}

// stopFileWatcher stops the watcher goroutine
func (app *App) stopFileWatcher() {
	if app.FileWatch.fileWatcher == nil {
		return
	}
	app.FileWatch.cancel()
	app.FileWatch.fileWatcher.Close()
	app.FileWatch.fileWatcher = nil
}

// applyFileChanges handles change notifications and finished loads on the main thread
func (app *App) applyFileChanges() {
	var changes <-chan watcher.Change
	if app.FileWatch.fileWatcher != nil {
		changes = app.FileWatch.fileWatcher.Changes()
	}

	select {
	case change := <-changes:
		fmt.Printf("\nFile changed: %s\n", change.Path)
		if change.Path == app.FileWatch.settingsFile {
			app.reloadSettings()
		} else {
			app.reloadModel()
		}
	case result := <-app.FileWatch.loaded:
		app.applyLoadedModel(result)
	default:
	}
}

// reloadModel reloads the model from the source file in the background
func (app *App) reloadModel() {
	if app.FileWatch.isLoading {
		return
	}

	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading model...")

	// Parse in the background; the mesh upload must happen on the main thread
	go func(path string) {
		obj, err := scene.Load(path)
		app.FileWatch.loaded <- loadResult{object: obj, err: err}
	}(app.FileWatch.sourceFile)
}

// applyLoadedModel swaps in a reloaded model, keeping the camera where it is
func (app *App) applyLoadedModel(result loadResult) {
	app.FileWatch.isLoading = false
	if result.err != nil {
		fmt.Printf("Error reloading model: %v\n", result.err)
		return
	}

	app.setObject(result.object)

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	fmt.Printf("Model reloaded successfully in %.2fs!\n", elapsed.Seconds())
}

// reloadSettings applies a changed settings file to the running controls
func (app *App) reloadSettings() {
	if err := app.FileWatch.flags.Reload(app.Controls); err != nil {
		fmt.Printf("Warning: %v\n", err)
		return
	}
	fmt.Println("Settings reloaded")
}

// absPath resolves a path for comparison with watcher notifications
func absPath(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
