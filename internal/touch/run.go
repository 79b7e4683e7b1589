package touch

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
)

// Run loads path and blocks until the window closes
func Run(path string, settings orbit.Settings) error {
	obj, err := scene.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}

	ebiten.SetWindowTitle("orbitview touch - " + obj.Name())
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(NewGame(obj, settings))
}
