package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/go-fern/fern/internal/termview"
)

func init() {
	RegisterCommand(&Command{
		Name:  "term",
		Short: "Run a demo interactively in the terminal",
		Long: `Run a demo in the terminal. The buffer is scaled to the window with
two pixels per cell, and mouse clicks drive the demo's buttons.
Press q or Esc to quit.

Flags:
  --demo NAME       Demo to run (default: counter; see "fern demos")
  --size WxH        Buffer size (default: the demo's own size, else fern.yaml)
  --bounds          Outline every widget's layout bounds
  --debug-addr ADDR Serve the widget tree over HTTP while running`,
		Usage: "fern term [--demo NAME] [--size WxH] [--bounds] [--debug-addr ADDR]",
		Run:   runTerm,
	})
}

func runTerm(args []string) error {
	var opts hostOptions
	for i := 0; i < len(args); i++ {
		n, err := parseHostFlag(args, i, &opts)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("unexpected argument %q", args[i])
		}
		i += n - 1
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("fern term needs an interactive terminal; use \"fern shot\" instead")
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, _, err := newHost(cfg, opts)
	if err != nil {
		return err
	}
	defer e.StopDebugServer()

	title := cfg.AppName
	if opts.demo != "" {
		title = opts.demo
	}
	model := termview.New(e, cfg.FPS, cols, rows, title)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
