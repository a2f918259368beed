// Command orrery is a terminal front end for the solar-system simulation:
// it drives the clock once per animation frame and displays every body's
// position as the simulation runs at an adjustable time multiplier.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	kitlog "github.com/go-kit/kit/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	orrery "github.com/WinnCook/real-time-iss-visualization-sub003"
)

func main() {
	tlePath := flag.String("iss-tle", "", "File holding a two-line element set for the ISS (SGP4 instead of the circular path)")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	startAtNow := flag.Bool("now", false, "Start at the present sky instead of the J2000.0 epoch")
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	cfg, err := orrery.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var issTLE []string
	if *tlePath != "" {
		issTLE, err = readTLE(*tlePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	sys, err := orrery.NewSolarSystem(cfg, logger, issTLE)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *startAtNow {
		sys.SeekToRealNow()
	}

	if *metricsAddr != "" {
		go func() {
			if err := http.ListenAndServe(*metricsAddr, promhttp.Handler()); err != nil {
				logger.Log("level", "critical", "subsys", "metrics", "err", err)
			}
		}()
	}

	p := tea.NewProgram(newModel(sys), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// readTLE reads the last two non-empty lines of the file, so both bare
// two-line sets and named three-line sets work.
func readTLE(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading TLE: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("reading TLE: %s holds fewer than two lines", path)
	}
	return lines[len(lines)-2:], nil
}
