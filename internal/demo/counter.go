package demo

import (
	"fmt"
	"log"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/scene"
	"github.com/go-fern/fern/pkg/widgets"
)

// Counter is a title, a click counter and a button that increments it.
type Counter struct {
	Title  *widgets.Text
	Label  *widgets.Text
	Button *widgets.Button

	count int
}

// NewCounter builds the counter widgets. The button sits at (300, 250) and
// is 200x50; the label starts at "COUNT: 0".
func NewCounter(fontScale float64) *Counter {
	c := &Counter{
		Title: widgets.TextAt(50, 50, "BUTTON DEMO", 3*fontScale, graphics.ColorWhite),
		Label: widgets.TextAt(50, 400, "COUNT: 0", 2*fontScale, graphics.ColorWhite),
		Button: widgets.ButtonOf(widgets.ButtonConfig{
			X: 300, Y: 250, Width: 200, Height: 50,
			NormalColor: graphics.ColorGreen,
			HoverColor:  graphics.ColorLightGreen,
			PressColor:  graphics.ColorDarkGreen,
			Label:       "CLICK ME",
			TextScale:   2 * fontScale,
			TextColor:   graphics.ColorWhite,
		}),
	}
	c.Button.OnClick.Connect(c.increment)
	return c
}

func (c *Counter) increment() {
	c.count++
	c.Label.SetText(fmt.Sprintf("COUNT: %d", c.count))
	log.Printf("Clicked! Count: %d", c.count)
}

// Count returns the number of completed clicks.
func (c *Counter) Count() int { return c.count }

// Install implements Demo. The counter uses absolute positions, so size is
// ignored.
func (c *Counter) Install(sc *scene.Scene, _ graphics.Size) {
	sc.Clear()
	sc.Add(c.Title, c.Label, c.Button)
}

// ClearColor implements Demo.
func (c *Counter) ClearColor() graphics.Color { return graphics.ColorDarkGray }
