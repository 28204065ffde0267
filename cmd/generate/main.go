// Command generate renders every tile intersecting a cut's coverage disk
// across a range of zoom levels.
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
	Use:   "generate <basefile> <start_zoom> <end_zoom>",
	Short: "renders every tile of a cut intersecting its coverage disk across a zoom range",
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

	// FindIntersectingTiles walks the quadtree from the zoom-0 root to
	// endZoom in one pass, pruning subtrees that don't intersect the
	// coverage disk and returning every intersecting tile at every level
	// along the way (spec §4.8); tiles above startZoom are then dropped.
	root := tile.Coord{X: 0, Y: 0, Z: 0}
	var coords []tile.Coord
	for _, coord := range tile.FindIntersectingTiles(root, siteLat, siteLon, tile.DefaultCoverageRadiusM, endZoom) {
		if coord.Z >= startZoom {
			coords = append(coords, coord)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	bar := pb.StartNew(len(coords))
	results := tile.RenderSet(c, coords, scheme)
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
