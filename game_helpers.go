package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

// eventBuffer bounds how far the UI may fall behind the engine before
// events are dropped.
const eventBuffer = 256

// initializeGame builds the engine and loads the configured starting pattern
func initializeGame(config utils.Config) (*engine.Engine, ui.Events, *utils.Stats, error) {
	events := ui.NewEvents(eventBuffer)
	eng, err := engine.New(config.Size,
		engine.WithInterval(config.Interval()),
		engine.WithObserver(events.Observe),
	)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	pattern, ok := model.LookupPattern(config.Pattern)
	if !ok {
		return nil, nil, nil, errors.Errorf("[initializeGame] unknown pattern %q", config.Pattern)
	}
	eng.Seed(func(g *model.Grid) { pattern(g, config.RandomDensity, config.Seed) })

	return eng, events, utils.NewStats(), nil
}

// setupLogging routes the standard logger to a file, since the terminal
// belongs to the UI while it runs. The returned closer is never nil.
func setupLogging(config utils.Config) (io.Closer, error) {
	if config.LogFile == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(config.LogFile, "life")
	if err != nil {
		return nil, errors.Wrapf(err, "[setupLogging] failed to open log file: %+v", config.LogFile)
	}
	return f, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, eng *engine.Engine) {
	fmt.Printf("Grid: %dx%d | Pattern: %s | Initial living cells: %d | Tick: %v\n",
		eng.Size(), eng.Size(), config.Pattern, eng.Population(), eng.Interval())
	fmt.Println("Press space to play, q to quit")
	time.Sleep(time.Second)
}

// displayFinalStats prints a summary once the UI has released the terminal
func displayFinalStats(eng *engine.Engine, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		eng.Generation(), stats.Runtime(time.Now()).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d living now\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, eng.Population())
}

// reportError prints err to stderr and returns the failing exit code
func reportError(err error) int {
	fmt.Fprintf(os.Stderr, "life: %v\n", err)
	log.Printf("exiting: %v", err)
	return 1
}
