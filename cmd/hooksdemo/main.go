// Command hooksdemo shows five state-management primitives as interactive
// terminal panels.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/internal/config"
	"github.com/HarshaSuranjith/react-hooks-demo/internal/logging"
	"github.com/HarshaSuranjith/react-hooks-demo/internal/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "hooksdemo: %v\n", err)
		os.Exit(1)
	}
}

func interactive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func run(args []string, out *os.File) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := tui.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", zap.Error(err))
		return err
	}

	if cfg.UI.Once || !interactive(out) {
		logger.Info("rendering snapshot", zap.Bool("once", cfg.UI.Once))
		return snapshot(app, out)
	}

	logger.Info("starting")
	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out)).Run()
	app.Close()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// snapshot mounts the panels, prints one render and tears them down.
func snapshot(app *tui.App, w io.Writer) error {
	app.Init()
	defer app.Close()
	_, err := fmt.Fprintln(w, app.Render())
	return err
}
