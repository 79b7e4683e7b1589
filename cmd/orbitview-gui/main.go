package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/orbitview/internal/cli"
	"github.com/philipparndt/orbitview/pkg/analysis"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/philipparndt/orbitview/pkg/viewer"
	"github.com/spf13/cobra"
)

type App struct {
	window   fyne.Window
	settings orbit.Settings
	view     *viewer.OrbitView
	info     *widget.Label
	camera   *widget.Label
}

var settingsFlags cli.SettingsFlags

var rootCmd = &cobra.Command{
	Use:          "orbitview-gui [file]",
	Short:        "Orbit viewer for STL meshes and PCD point clouds",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := settingsFlags.Load()
		if err != nil {
			return err
		}

		a := app.New()
		w := a.NewWindow("orbitview")
		appInstance := &App{window: w, settings: settings}

		if len(args) > 0 {
			appInstance.loadFile(args[0])
		} else {
			appInstance.showWelcomeScreen()
		}

		w.Resize(fyne.NewSize(1200, 800))
		w.ShowAndRun()
		return nil
	},
}

func main() {
	settingsFlags.Register(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to orbitview")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open an STL or PCD file to start orbiting")
	openButton := widget.NewButton("Open File", a.showFileDialog)

	a.window.SetContent(container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	))
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	obj, err := scene.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load model: %w", err), a.window)
		return
	}

	// Controls fit themselves to one object, a new file gets a new view
	if a.view != nil {
		a.view.Stop()
	}
	a.window.SetTitle("orbitview - " + obj.Name())
	a.setupMainUI(obj)
}

func (a *App) setupMainUI(obj *scene.Object) {
	report := analysis.Analyze(obj)
	a.info = widget.NewLabel(fmt.Sprintf(
		"Model: %s (%s)\nSize: %s\nRecommended distance: %.2f\nClip planes: %.4f .. %.2f",
		report.Name, report.Kind,
		analysis.FormatVector(report.Dimensions),
		report.Metrics.RecommendedDistance, report.Near, report.Far,
	))
	a.camera = widget.NewLabel("")

	a.view = viewer.NewOrbitView(obj, a.settings, a.updateCameraInfo)
	c := a.view.Controls

	resetRotation := widget.NewButton("Reset Rotation", func() {
		c.ResetRotation()
		a.updateCameraInfo()
	})
	resetPosition := widget.NewButton("Reset Position", func() {
		c.ResetPosition()
		a.updateCameraInfo()
	})
	resetZoom := widget.NewButton("Reset Zoom", func() {
		c.ResetZoom()
		a.updateCameraInfo()
	})

	permission := func(label string, value bool, set func(bool)) *widget.Check {
		check := widget.NewCheck(label, set)
		check.SetChecked(value)
		return check
	}
	p := a.settings.Permissions()
	rotateCheck := permission("Rotate", p.CanRotate, c.SetCanRotate)
	panCheck := permission("Pan", p.CanPan, c.SetCanPan)
	zoomCheck := permission("Zoom", p.CanZoom, c.SetCanZoom)
	focusCheck := permission("Focus Highlight", p.FocusDisplay, c.SetFocusDisplay)
	panFalloffCheck := permission("Pan Falloff", p.EnablePanFalloff, c.SetPanFalloff)
	zoomFalloffCheck := permission("Zoom Falloff", p.EnableZoomFalloff, c.SetZoomFalloff)

	opts := a.view.Options()
	filledCheck := permission("Show Filled", opts.Filled, a.view.SetFilled)
	wireframeCheck := permission("Show Wireframe", opts.Wireframe, a.view.SetWireframe)
	boxCheck := permission("Show Bounding Box", opts.BoundingBox, a.view.SetBoundingBox)

	openButton := widget.NewButton("Open File", a.showFileDialog)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Left drag to rotate\n" +
			"• Right drag to pan\n" +
			"• Scroll to zoom\n" +
			"• Ctrl+click to reset rotation, zoom or position",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		a.info,
		widget.NewSeparator(),
		widget.NewLabel("Camera:"),
		a.camera,
		resetRotation,
		resetPosition,
		resetZoom,
		widget.NewSeparator(),
		widget.NewLabel("Controls:"),
		rotateCheck,
		panCheck,
		zoomCheck,
		focusCheck,
		panFalloffCheck,
		zoomFalloffCheck,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		filledCheck,
		wireframeCheck,
		boxCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, infoScroll, a.view))
	a.view.Start()
}

// updateCameraInfo shows the logical camera state
func (a *App) updateCameraInfo() {
	c := a.view.Controls
	rotation := c.CurrentRotation()
	minZoom, maxZoom := c.ZoomRange()
	a.camera.SetText(fmt.Sprintf(
		"Distance: %.2f (%.2f .. %.2f)\nRotation: %.1f° / %.1f°",
		c.CurrentZoom(), minZoom, maxZoom, rotation.Vertical, rotation.Horizontal,
	))
}
