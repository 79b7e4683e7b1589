package cmd

import (
	"fmt"
	"io"

	"github.com/philipparndt/orbitview/pkg/analysis"
	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Display the bounding box and fitted camera values of a model",
	Long:  "Show dimensions, the recommended camera distance, clip planes and, for meshes, triangle and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := scene.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}
		printInfo(cmd.OutOrStdout(), args[0], analysis.Analyze(obj))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, filename string, r *analysis.Report) {
	fmt.Fprintln(w, "Model Information")
	fmt.Fprintln(w, "=================")
	fmt.Fprintf(w, "Name: %s\n", r.Name)
	fmt.Fprintf(w, "File: %s\n", filename)
	fmt.Fprintf(w, "Kind: %s\n\n", r.Kind)

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(r.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(r.BoundingBox.Max))
	fmt.Fprintf(w, "  Size: %s\n", analysis.FormatVector(r.Dimensions))
	fmt.Fprintf(w, "  Diagonal: %.6f units\n\n", r.BoundingBox.Diagonal())

	fmt.Fprintln(w, "Camera:")
	fmt.Fprintf(w, "  Extent: min %.6f, max %.6f, avg %.6f\n", r.Metrics.MinExtent, r.Metrics.MaxExtent, r.Metrics.AvgExtent)
	fmt.Fprintf(w, "  Recommended distance: %.6f\n", r.Metrics.RecommendedDistance)
	fmt.Fprintf(w, "  Clip planes: %.6f .. %.6f\n", r.Near, r.Far)

	switch r.Kind {
	case scene.KindMesh:
		fmt.Fprintln(w, "\nMesh Statistics:")
		fmt.Fprintf(w, "  Triangles: %d\n", r.TriangleCount)
		fmt.Fprintf(w, "  Edges: %d\n", r.EdgeCount)
		fmt.Fprintf(w, "  Surface Area: %.6f square units\n", r.SurfaceArea)
		fmt.Fprintf(w, "  Edge Length: min %.6f, max %.6f, avg %.6f\n", r.MinEdgeLength, r.MaxEdgeLength, r.AvgEdgeLength)
	case scene.KindPointCloud:
		fmt.Fprintln(w, "\nPoint Cloud Statistics:")
		fmt.Fprintf(w, "  Points: %d\n", r.PointCount)
	}
}
