// Package termview shows a fern engine's buffer in a terminal. Each cell
// holds two vertically stacked pixels drawn as an upper half block, and mouse
// events are fed back to the engine as pointer samples.
package termview

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
)

const halfBlock = "▀"

var (
	statusStyle = lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("252"))
	keyStyle    = lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("81")).Bold(true)
)

type tickMsg time.Time

// Model is a bubbletea model that runs one engine frame per tick.
type Model struct {
	engine   *engine.Engine
	interval time.Duration
	title    string

	cols, rows int
	scaled     *image.RGBA
	last       engine.Stats
}

// New returns a model ticking at fps frames per second. cols and rows are
// the initial terminal size; WindowSizeMsg updates them.
func New(e *engine.Engine, fps, cols, rows int, title string) *Model {
	if fps <= 0 {
		fps = 30
	}
	m := &Model{
		engine:   e,
		interval: time.Second / time.Duration(fps),
		title:    title,
	}
	m.resize(cols, rows)
	return m
}

// Stats returns the stats of the last frame run by the model.
func (m *Model) Stats() engine.Stats { return m.last }

// Init starts the frame ticker.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles terminal input and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.pointer(tea.MouseEvent(msg))
	case tickMsg:
		m.last = m.engine.Frame()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	m.cols = max(cols, 1)
	m.rows = max(rows, 2)
	m.scaled = image.NewRGBA(image.Rect(0, 0, m.cols, 2*m.viewRows()))
}

// viewRows is the number of rows showing the buffer; the last row is the
// status line.
func (m *Model) viewRows() int {
	return m.rows - 1
}

// bufferPoint maps a terminal cell to the buffer pixel at its center.
func (m *Model) bufferPoint(col, row int) (graphics.Offset, bool) {
	if col < 0 || row < 0 || col >= m.cols || row >= m.viewRows() {
		return graphics.Offset{}, false
	}
	size := m.engine.Buffer().Size()
	return graphics.Offset{
		X: (float64(col) + 0.5) * size.Width / float64(m.cols),
		Y: (float64(row) + 0.5) * size.Height / float64(m.viewRows()),
	}, true
}

func (m *Model) pointer(ev tea.MouseEvent) {
	pos, ok := m.bufferPoint(ev.X, ev.Y)
	if !ok {
		return
	}
	feed := m.engine.Input()
	feed.Move(pos.X, pos.Y)
	if ev.Button != tea.MouseButtonLeft {
		return
	}
	switch ev.Action {
	case tea.MouseActionPress:
		feed.Press(true)
	case tea.MouseActionRelease:
		feed.Press(false)
	}
}

// View downsamples the buffer to the terminal and appends a status line.
func (m *Model) View() string {
	buf := m.engine.Buffer()
	xdraw.NearestNeighbor.Scale(m.scaled, m.scaled.Bounds(), buf, buf.Bounds(), xdraw.Src, nil)

	var b strings.Builder
	for row := range m.viewRows() {
		writeRow(&b, m.scaled, row, m.cols)
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

// writeRow renders one terminal row, styling runs of identical cells once.
func writeRow(b *strings.Builder, img *image.RGBA, row, cols int) {
	var run int
	var runTop, runBottom color.RGBA
	flush := func() {
		if run == 0 {
			return
		}
		style := lipgloss.NewStyle().Foreground(hex(runTop)).Background(hex(runBottom))
		b.WriteString(style.Render(strings.Repeat(halfBlock, run)))
		run = 0
	}
	for col := range cols {
		top := img.RGBAAt(col, 2*row)
		bottom := img.RGBAAt(col, 2*row+1)
		if run > 0 && (top != runTop || bottom != runBottom) {
			flush()
		}
		runTop, runBottom = top, bottom
		run++
	}
	flush()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (m *Model) statusLine() string {
	line := keyStyle.Render(" "+m.title+" ") + statusStyle.Render(fmt.Sprintf(" %s  q quit ", m.last))
	return lipgloss.NewStyle().MaxWidth(m.cols).Render(line)
}
