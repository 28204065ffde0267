package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/kallsyms/go-nexrad-tiles/archive2"
)

var cli struct {
	Args struct {
		Filename string
	} `positional-args:"yes" required:"yes"`
	LogLevel         string `short:"l" long:"log-level" description:"logging level" choice:"error" choice:"info" choice:"debug" choice:"trace" default:"info"`
	ShowVolumeHeader bool   `long:"show-volume-header" description:"dumps out the contents of the Volume Header"`
}

func main() {
	// parse the input args
	_, err := flags.Parse(&cli)
	if err != nil {
		os.Exit(1)
	}

	// set the logging level
	errorLevels := map[string]logrus.Level{
		"error": logrus.ErrorLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}
	logrus.SetLevel(errorLevels[cli.LogLevel])

	f, err := os.Open(cli.Args.Filename)
	if err != nil {
		logrus.Fatal(err)
	}
	defer f.Close()

	logrus.Info(color.CyanString("decoding " + cli.Args.Filename))

	ar, err := archive2.Decode(f)
	if err != nil {
		logrus.Fatal(err)
	}

	if cli.ShowVolumeHeader {
		vhr := ar.VolumeHeader
		fmt.Printf("Version:    %d\n", vhr.Version)
		fmt.Printf("Extension:  %03d\n", vhr.ExtensionNr)
		fmt.Printf("Recorded:   %s\n", vhr.VolumeRecorded)
		fmt.Printf("ICAO:       %s\n", vhr.ICAOIdentifier)
	}

	fmt.Printf("radials:         %d\n", len(ar.Radials))
	fmt.Printf("status messages: %d\n", len(ar.Status))

	for _, s := range ar.Status {
		logrus.Debugf("rda status: %s (build %.2f)", s.RDAStatusName(), s.BuildNumber())
	}

	if len(ar.Radials) > 0 {
		r := ar.Radials[0]
		fmt.Printf("vcp:        %d\n", r.VolumeConstants.VCP)
		fmt.Printf("timestamp:  %s\n", r.Timestamp)
		fmt.Printf("identifier: %s\n", r.RadarIdentifier)
	}
}
