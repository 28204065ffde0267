// Command extract reads a Level-II archive and writes the serialised
// reflectivity cut it contains.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/kallsyms/go-nexrad-tiles/archive2"
	"github.com/kallsyms/go-nexrad-tiles/cut"
)

var cli struct {
	LogLevel string `short:"l" long:"log-level" description:"logging level" choice:"error" choice:"info" choice:"debug" choice:"trace" default:"info"`
	Realtime struct {
		Site   string `long:"site" description:"ICAO site identifier, e.g. KLVX"`
		Volume int    `long:"volume" description:"volume sequence number"`
	} `group:"realtime"`
}

func main() {
	_, err := flags.Parse(&cli)
	if err != nil {
		os.Exit(1)
	}

	errorLevels := map[string]logrus.Level{
		"error": logrus.ErrorLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}
	logrus.SetLevel(errorLevels[cli.LogLevel])

	var ar *archive2.Archive
	if cli.Realtime.Site != "" {
		ar, err = archive2.ExtractRealtime(cli.Realtime.Site, cli.Realtime.Volume)
	} else {
		ar, err = archive2.Decode(os.Stdin)
	}
	if err != nil {
		logrus.Fatal(err)
	}

	builder := cut.NewBuilder()
	var result *cut.Cut
	for _, r := range ar.Radials {
		result, err = builder.Push(r)
		if err != nil {
			logrus.Fatal(err)
		}
		if result != nil {
			break
		}
	}
	if result == nil {
		logrus.Fatal("archive did not contain a complete elevation cut")
	}

	outfile := result.RadarIdentifier + ".base"
	f, err := os.Create(outfile)
	if err != nil {
		logrus.Fatal(err)
	}
	defer f.Close()

	if err := cut.Save(f, result); err != nil {
		logrus.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s: %d radials\n", outfile, result.Len())
}
