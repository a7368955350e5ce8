package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	os.Exit(run(os.Args))
}

// run returns the process exit code so deferred cleanup always happens
// before main exits.
func run(args []string) int {
	// Load configuration: defaults, then config.json if present, then flags
	config, err := utils.FromArgs(args[0], args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return reportError(err)
	}
	if err = config.Validate(); err != nil {
		return reportError(err)
	}

	logCloser, err := setupLogging(config)
	if err != nil {
		return reportError(err)
	}
	defer logCloser.Close()

	eng, events, stats, err := initializeGame(config)
	if err != nil {
		return reportError(err)
	}
	displayGameInfo(config, eng)

	// Handle Ctrl+C and SIGTERM gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	program := tea.NewProgram(
		ui.NewModel(eng, events, stats, config),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	uiDone := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// Release the signal watcher once the UI exits on its own.
		defer stop()
		defer close(uiDone)
		_, err := program.Run()
		return errors.Wrap(err, "[main] ui exited")
	})
	eg.Go(func() error {
		<-ctx.Done()
		select {
		case <-uiDone:
		default:
			program.Quit()
		}
		return nil
	})

	err = eg.Wait()
	eng.Stop()
	displayFinalStats(eng, stats)
	if err != nil {
		return reportError(err)
	}
	return 0
}
