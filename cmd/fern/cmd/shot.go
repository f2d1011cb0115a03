package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "shot",
		Short: "Render a demo to an image file",
		Long: `Run a demo headlessly, replay scripted pointer input, and write the
final buffer to an image file. The format follows the file extension
(.png, .bmp, .tif/.tiff).

Input steps run in the order given:
  --move X,Y        Move the pointer (one frame)
  --tap X,Y         Press and release at a point (two frames)

Flags:
  --demo NAME       Demo to run (default: counter; see "fern demos")
  --out PATH        Output file (default: <demo>.png)
  --size WxH        Buffer size (default: the demo's own size, else fern.yaml)
  --frames N        Extra frames to run after the script (default: 1)
  --bounds          Outline every widget's layout bounds
  --debug-addr ADDR Serve the widget tree over HTTP while rendering`,
		Usage: "fern shot [--demo NAME] [--out PATH] [--size WxH] [--move X,Y] [--tap X,Y] [--frames N] [--bounds]",
		Run:   runShot,
	})
}

// shotStep is one scripted pointer action.
type shotStep struct {
	tap bool
	at  graphics.Offset
}

type shotOptions struct {
	host   hostOptions
	out    string
	frames int
	steps  []shotStep
}

func parseShotArgs(args []string) (shotOptions, error) {
	opts := shotOptions{frames: 1}
	for i := 0; i < len(args); i++ {
		n, err := parseHostFlag(args, i, &opts.host)
		if err != nil {
			return opts, err
		}
		if n > 0 {
			i += n - 1
			continue
		}
		if i+1 >= len(args) {
			return opts, fmt.Errorf("unexpected argument %q", args[i])
		}
		switch args[i] {
		case "--out":
			opts.out = args[i+1]
		case "--frames":
			if _, err := fmt.Sscanf(args[i+1], "%d", &opts.frames); err != nil || opts.frames < 0 {
				return opts, fmt.Errorf("invalid frame count %q", args[i+1])
			}
		case "--move", "--tap":
			p, err := parsePoint(args[i+1])
			if err != nil {
				return opts, err
			}
			opts.steps = append(opts.steps, shotStep{tap: args[i] == "--tap", at: p})
		default:
			return opts, fmt.Errorf("unexpected argument %q", args[i])
		}
		i++
	}
	if opts.out == "" {
		name := opts.host.demo
		if name == "" {
			name = "counter"
		}
		opts.out = name + ".png"
	}
	return opts, nil
}

func runShot(args []string) error {
	opts, err := parseShotArgs(args)
	if err != nil {
		return err
	}
	format, err := raster.FormatFromPath(opts.out)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, _, err := newHost(cfg, opts.host)
	if err != nil {
		return err
	}
	defer e.StopDebugServer()

	stats := replay(e, opts.steps, opts.frames)
	log.Printf("fern shot: %s", stats)

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	if err := raster.Encode(f, e.Buffer(), format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%s, %dx%d)\n", opts.out, format, e.Buffer().Width, e.Buffer().Height)
	return nil
}

// replay runs the scripted steps and then frames more frames with the pointer
// released where it last was. It returns the stats of the final frame.
func replay(e *engine.Engine, steps []shotStep, frames int) engine.Stats {
	var p input.Pointer
	var stats engine.Stats
	for _, step := range steps {
		p.X, p.Y = step.at.X, step.at.Y
		if step.tap {
			p.Down = true
			e.Step(p)
			p.Down = false
		}
		stats = e.Step(p)
	}
	for range frames {
		stats = e.Step(p)
	}
	return stats
}
