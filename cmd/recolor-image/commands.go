package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/recolor-image/internal/colormap"
	"github.com/ironsheep/recolor-image/internal/recolor"
	"github.com/ironsheep/recolor-image/internal/server"
)

// rootFlags holds the values bound to command-line flags.
type rootFlags struct {
	imagePath string
	cmapName  string
	outputDir string
	test      bool

	lowThreshold  float64
	highThreshold float64
	dilateSize    int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "recolor-image --image-path PATH (--cmap-name NAME | --test)",
		Short: "Recolor a grayscale image with a colormap while keeping edges gray",
		Long: `recolor-image maps a grayscale image through a named colormap, then restores
the original gray tone along detected edges so outlines stay sharp. Pure black
and pure white pixels are never recolored.

Output files are written as <input>_recolored_<colormap>.png.`,
		Example: `  recolor-image --image-path scan.png --cmap-name magma
  recolor-image --image-path scan.png --test --output-dir out/`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecolor(cmd, f)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("recolor-image %s\n  Build time: %s\n  Git commit: %s\n",
		Version, BuildTime, GitCommit))

	flags := cmd.Flags()
	flags.StringVar(&f.imagePath, "image-path", "", "image to recolor")
	flags.StringVar(&f.cmapName, "cmap-name", "", "colormap to convert to (append _r to reverse)")
	flags.StringVar(&f.outputDir, "output-dir", ".", "directory to write output images to")
	flags.BoolVar(&f.test, "test", false, "render one image per test colormap: "+strings.Join(colormap.TestColormaps, ", "))
	_ = cmd.MarkFlagRequired("image-path")
	cmd.MarkFlagsMutuallyExclusive("cmap-name", "test")
	cmd.MarkFlagsOneRequired("cmap-name", "test")

	tuning := cmd.PersistentFlags()
	tuning.Float64Var(&f.lowThreshold, "low-threshold", recolor.DefaultLowThreshold, "edge gradient magnitude at or below which a pixel is never an edge")
	tuning.Float64Var(&f.highThreshold, "high-threshold", recolor.DefaultHighThreshold, "edge gradient magnitude above which a pixel is always an edge")
	tuning.IntVar(&f.dilateSize, "dilate-size", recolor.DefaultDilationSize, "side of the square kernel used to grow the edge mask (odd, at most 255)")

	cmd.AddCommand(newListCmd(), newServeCmd(f))
	return cmd
}

// newRecolorer builds the Recolorer for a run from the builtin colormaps and
// the tuning flags.
func newRecolorer(f *rootFlags) (*recolor.Recolorer, error) {
	opts := recolor.Options{
		LowThreshold:  f.lowThreshold,
		HighThreshold: f.highThreshold,
		DilationSize:  f.dilateSize,
	}
	return recolor.New(colormap.Builtin(), opts)
}

func runRecolor(cmd *cobra.Command, f *rootFlags) error {
	r, err := newRecolorer(f)
	if err != nil {
		return err
	}

	req := recolor.Request{
		ImagePath:    f.imagePath,
		ColormapName: f.cmapName,
		OutputDir:    f.outputDir,
		Test:         f.test,
	}
	debugf("recoloring %s with %v (options %+v)", req.ImagePath, req.Colormaps(), r.Options())

	written, err := r.Run(req)
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return err
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available colormap names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range colormap.Builtin().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newServeCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdin/stdout",
		Long: `serve exposes recoloring as MCP tools (recolor_image, list_colormaps,
edge_mask). It speaks JSON-RPC over stdin/stdout; configure it in your MCP
client. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRecolorer(f)
			if err != nil {
				return err
			}
			debugf("serving MCP over stdio")
			if err := server.New(r, Version).Run(); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}
}
