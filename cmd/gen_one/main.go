// Command gen_one renders a single tile from a serialised cut, if the tile
// intersects the radar's coverage disk.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kallsyms/go-nexrad-tiles/cut"
	"github.com/kallsyms/go-nexrad-tiles/tile"
)

var colorScheme string

var cmd = &cobra.Command{
	Use:   "gen_one <basefile> <tx> <ty> <zoom> <outfile>",
	Short: "renders one tile from a cut, if it intersects the radar's coverage disk",
	Args:  cobra.ExactArgs(5),
	RunE:  run,
}

func init() {
	cmd.Flags().StringVarP(&colorScheme, "color-scheme", "c", "noaa", "color scheme to use")
}

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func run(_ *cobra.Command, args []string) error {
	basefile, txs, tys, zs, outfile := args[0], args[1], args[2], args[3], args[4]

	tx, err := strconv.ParseInt(txs, 10, 64)
	if err != nil {
		return err
	}
	ty, err := strconv.ParseInt(tys, 10, 64)
	if err != nil {
		return err
	}
	zoom, err := strconv.Atoi(zs)
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

	coord := tile.Coord{X: tx, Y: ty, Z: zoom}
	siteLat := float64(c.Latitude) * (math.Pi / 180)
	siteLon := float64(c.Longitude) * (math.Pi / 180)

	if !tile.TestIntersection(coord, siteLat, siteLon, tile.DefaultCoverageRadiusM) {
		fmt.Println(404)
		return nil
	}

	rendered := tile.Render(c, coord, scheme)

	out, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := tile.EncodePNG(out, rendered); err != nil {
		return err
	}

	fmt.Println(200)
	return nil
}
