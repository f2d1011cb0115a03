package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-fern/fern/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a fern.yaml with the default settings",
		Long: `Write a fern.yaml listing every setting with its default value.

The file is written to the given directory, or to the current directory.
An existing fern.yaml is left alone unless --force is given.

Examples:
  fern init
  fern init ./kiosk --force`,
		Usage: "fern init [directory] [--force]",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	dir := "."
	force := false
	for _, arg := range args {
		switch {
		case arg == "--force":
			force = true
		case dir == ".":
			dir = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Write(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
