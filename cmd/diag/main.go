// Command diag prints orbital snapshots for validation against published
// ephemerides, and can dump a CSV position track for one body.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"

	orrery "github.com/WinnCook/real-time-iss-visualization-sub003"
)

var planets = map[string]orrery.Elements{
	"Mercury": orrery.Mercury,
	"Venus":   orrery.Venus,
	"Earth":   orrery.Earth,
	"Mars":    orrery.Mars,
	"Jupiter": orrery.Jupiter,
	"Saturn":  orrery.Saturn,
	"Uranus":  orrery.Uranus,
	"Neptune": orrery.Neptune,
	"Pluto":   orrery.Pluto,
}

func main() {
	dateStr := flag.String("date", "", "Snapshot date (2006-01-02), defaults to now")
	track := flag.String("track", "", "Write a CSV position track for this body to stdout instead of snapshots")
	trackSpan := flag.Duration("track-span", 365*24*time.Hour, "Track length")
	trackStep := flag.Duration("track-step", 24*time.Hour, "Track step")
	flag.Parse()

	date := time.Now().UTC()
	if *dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad -date: %v\n", err)
			os.Exit(1)
		}
	}

	if *track != "" {
		el, ok := planets[*track]
		if !ok {
			fmt.Fprintf(os.Stderr, "no elements for %q\n", *track)
			os.Exit(1)
		}
		if err := orrery.ExportTrack(os.Stdout, *track, el, date, date.Add(*trackSpan), *trackStep); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	cfg, err := orrery.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	sys, err := orrery.NewSolarSystem(cfg, logger, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	sys.SeekTo(date)

	fmt.Printf("Snapshot at %s (JD %.5f, T %+.6f centuries)\n\n",
		date.Format("2006-01-02 15:04:05 UTC"), orrery.JulianDate(date), orrery.JulianCenturies(date))
	for _, name := range sys.Bodies() {
		info, err := sys.Info(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			continue
		}
		fmt.Printf("%-10s pos=(%12.5f, %12.5f, %12.5f)  r=%10.6f AU", info.Body,
			info.Position[0], info.Position[1], info.Position[2], info.Distance)
		if info.Aphelion > 0 {
			fmt.Printf("  e=%.5f  q=%.4f AU  Q=%.4f AU", info.Eccentricity, info.Perihelion, info.Aphelion)
		}
		fmt.Println()
	}
}
