// Command gen_thresh renders every tile intersecting a cut's coverage disk
// across a range of zoom levels, same as generate, but stops recursing into
// a tile's children once that tile's own render carries no significant
// data.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kallsyms/go-nexrad-tiles/cut"
	"github.com/kallsyms/go-nexrad-tiles/tile"
)

var colorScheme string
var outDir string

var cmd = &cobra.Command{
	Use:   "gen_thresh <basefile> <start_zoom> <end_zoom>",
	Short: "like generate, but prunes subtrees whose rendered tile has no significant data",
	Args:  cobra.ExactArgs(3),
	RunE:  run,
}

func init() {
	cmd.Flags().StringVarP(&colorScheme, "color-scheme", "c", "noaa", "color scheme to use")
	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
}

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(_ *cobra.Command, args []string) error {
	basefile := args[0]
	startZoom, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	endZoom, err := strconv.Atoi(args[2])
	if err != nil {
		return err
	}

	scheme, ok := tile.Schemes[colorScheme]
	if !ok {
		return fmt.Errorf("unknown color scheme %q", colorScheme)
	}

	f, err := os.Open(basefile)
	if err != nil {
		return err
	}
	defer f.Close()

	c, err := cut.Load(f)
	if err != nil {
		return err
	}

	siteLat := float64(c.Latitude) * (math.Pi / 180)
	siteLon := float64(c.Longitude) * (math.Pi / 180)

	// Start a threshold walk from every tile at startZoom that intersects
	// the coverage disk.
	var results []tile.RenderResult
	for _, root := range tile.FindIntersectingTiles(tile.Coord{X: 0, Y: 0, Z: 0}, siteLat, siteLon, tile.DefaultCoverageRadiusM, startZoom) {
		if root.Z == startZoom {
			results = append(results, tile.RenderWalkThreshold(c, root, siteLat, siteLon, tile.DefaultCoverageRadiusM, endZoom, scheme)...)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	bar := pb.StartNew(len(results))
	for _, res := range results {
		name := fmt.Sprintf("%s_%d_%d-%d.png", c.RadarIdentifier, res.Coord.Z, res.Coord.X, res.Coord.Y)
		out, err := os.Create(filepath.Join(outDir, name))
		if err != nil {
			return err
		}
		err = tile.EncodePNG(out, res.Rendered)
		out.Close()
		if err != nil {
			return err
		}
		bar.Increment()
	}
	bar.Finish()

	return nil
}
