package cmd

import (
	"fmt"

	"github.com/go-fern/fern/internal/demo"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demos",
		Short: "List the available demos",
		Long:  `List the demos that "fern shot" and "fern term" can run.`,
		Usage: "fern demos",
		Run:   runDemos,
	})
}

func runDemos(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	for _, name := range demo.Names() {
		fmt.Println(name)
	}
	return nil
}
