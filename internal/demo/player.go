package demo

import (
	"fmt"
	"log"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/scene"
	"github.com/go-fern/fern/pkg/widgets"
)

// The player is a portrait layout; smaller buffers overflow vertically.
const (
	PlayerWidth  = 400
	PlayerHeight = 800
)

const playerPadding = 20

// Track is one entry in the player's queue.
type Track struct {
	Title    string
	Artist   string
	Length   string
	Progress float64
}

// Tracks is the player's queue.
var Tracks = []Track{
	{Title: "COSMIC WAVES", Artist: "STELLAR ORCHESTRA", Length: "5:30", Progress: 0.35},
	{Title: "LUNAR ECLIPSE", Artist: "STELLAR ORCHESTRA", Length: "4:12", Progress: 0.1},
	{Title: "SOLAR WIND", Artist: "NEBULA QUARTET", Length: "6:05", Progress: 0.6},
}

// Player is a nested flex layout of a music player: album art, track info,
// a progress bar, transport controls and a "next up" bar.
type Player struct {
	fontScale float64
	track     int
	playing   bool
	liked     map[int]bool
	sc        *scene.Scene
	size      graphics.Size

	// Widgets of the last Install.
	Title     *widgets.Text
	Artist    *widgets.Text
	NextUp    *widgets.Text
	PlayPause *widgets.Button
	Prev      *widgets.Button
	Next      *widgets.Button
	Like      *widgets.Button
}

// NewPlayer returns a player positioned on the first track, paused.
func NewPlayer(fontScale float64) *Player {
	return &Player{fontScale: fontScale, liked: make(map[int]bool)}
}

// Track returns the index of the current track.
func (p *Player) Track() int { return p.track }

// Playing reports whether playback is on.
func (p *Player) Playing() bool { return p.playing }

// ClearColor implements Demo.
func (p *Player) ClearColor() graphics.Color { return graphics.ColorBlack }

// PreferredSize is the portrait surface the player is laid out for.
func (p *Player) PreferredSize() graphics.Size {
	return graphics.Size{Width: PlayerWidth, Height: PlayerHeight}
}

// Install implements Demo. The tree is rebuilt on every call so it always
// fills size.
func (p *Player) Install(sc *scene.Scene, size graphics.Size) {
	p.sc, p.size = sc, size
	p.rebuild()
}

func (p *Player) rebuild() {
	sc, size := p.sc, p.size
	cur := Tracks[p.track]
	s := p.fontScale

	p.Title = widgets.TextOf(cur.Title, 2.5*s, graphics.ColorWhite)
	p.Artist = widgets.TextOf(cur.Artist, 1.2*s, graphics.ColorLightGray)
	p.NextUp = widgets.TextOf("NEXT: "+Tracks[p.nextIndex()].Title, 1.2*s, graphics.ColorWhite)
	p.Prev = p.control("PREV", 1.5, graphics.ColorLightGray)
	p.PlayPause = p.control(p.playLabel(), 1.8, graphics.ColorWhite)
	p.Next = p.control("NEXT", 1.5, graphics.ColorLightGray)
	p.Like = p.control(p.likeLabel(), 1.2, graphics.ColorLightGray)

	p.Prev.OnClick.Connect(func() { p.skip(-1) })
	p.Next.OnClick.Connect(func() { p.skip(1) })
	p.PlayPause.OnClick.Connect(p.toggle)
	p.Like.OnClick.Connect(p.toggleLike)

	skipBar := p.control("NEXT", 1, graphics.ColorWhite)
	skipBar.OnClick.Connect(func() { p.skip(1) })

	albumArt := widgets.Centered(&widgets.Container{
		Color:     graphics.ColorDarkBlue,
		Width:     280,
		Height:    280,
		Alignment: widgets.AlignmentCenter,
		Child:     widgets.TextOf("MUSIC", 6*s, graphics.ColorSkyBlue),
	})

	info := widgets.ColumnOf(
		widgets.Centered(p.Title),
		widgets.VSpace(8),
		widgets.Centered(p.Artist),
	)

	progress := widgets.ColumnOf(
		widgets.ContainerOf(graphics.ColorDarkGray, 0, 4, widgets.RowOf(
			widgets.ContainerOf(graphics.ColorSkyBlue, max(1, (size.Width-2*playerPadding)*cur.Progress), 4, nil),
		)),
		widgets.VSpace(8),
		&widgets.Row{
			Children: []widgets.Widget{
				widgets.TextOf(elapsed(cur), s, graphics.ColorGray),
				widgets.Spacer(),
				widgets.TextOf(cur.Length, s, graphics.ColorGray),
			},
			MainAxisAlignment: widgets.MainAxisAlignmentSpaceBetween,
		},
	)

	controls := widgets.Centered(widgets.RowOf(
		p.Prev,
		widgets.HSpace(25),
		p.PlayPause,
		widgets.HSpace(25),
		p.Next,
	))

	volume := widgets.ContainerOf(graphics.ColorDarkGray, 100, 4, widgets.RowOf(
		widgets.ContainerOf(graphics.ColorWhite, 65, 4, nil),
	))
	extras := &widgets.Row{
		Children: []widgets.Widget{
			p.control("UP", 1.2, graphics.ColorLightGray),
			volume,
			widgets.Spacer(),
			p.control("REFRESH", 1.2, graphics.ColorLightGray),
			p.Like,
		},
		MainAxisAlignment: widgets.MainAxisAlignmentSpaceBetween,
	}

	nowPlaying := widgets.ContainerOf(graphics.ColorCharcoal, 0, 60, widgets.PaddingAll(10, widgets.RowOf(
		widgets.ContainerOf(graphics.ColorDarkBlue, 40, 40, nil),
		widgets.HSpace(15),
		widgets.ColumnOf(
			p.NextUp,
			widgets.VSpace(4),
			widgets.TextOf(Tracks[p.nextIndex()].Artist, s, graphics.ColorGray),
		),
		widgets.Spacer(),
		skipBar,
	)))

	root := &widgets.Container{
		Color:  graphics.ColorBlack,
		Width:  size.Width,
		Height: size.Height,
		Child: widgets.PaddingAll(playerPadding, widgets.ColumnOf(
			widgets.VSpace(30),
			albumArt,
			widgets.VSpace(25),
			info,
			widgets.VSpace(25),
			progress,
			widgets.VSpace(25),
			controls,
			widgets.VSpace(25),
			extras,
			widgets.Spacer(),
			nowPlaying,
		)),
	}

	sc.Clear()
	sc.Add(root)
}

// control is a transparent 80x50 button with a text label.
func (p *Player) control(label string, scale float64, color graphics.Color) *widgets.Button {
	return widgets.ButtonOf(widgets.ButtonConfig{
		Width:       80,
		Height:      50,
		NormalColor: graphics.ColorTransparent,
		HoverColor:  graphics.ColorCharcoal,
		PressColor:  graphics.ColorDarkGray,
		Label:       label,
		TextScale:   scale * p.fontScale,
		TextColor:   color,
	})
}

func (p *Player) nextIndex() int {
	return (p.track + 1) % len(Tracks)
}

func (p *Player) playLabel() string {
	if p.playing {
		return "II"
	}
	return ">"
}

func (p *Player) likeLabel() string {
	if p.liked[p.track] {
		return "LIKED"
	}
	return "LIKE"
}

func (p *Player) skip(delta int) {
	p.track = (p.track + delta + len(Tracks)) % len(Tracks)
	log.Printf("player: track %d %q", p.track, Tracks[p.track].Title)
	p.rebuild()
}

func (p *Player) toggle() {
	p.playing = !p.playing
	p.PlayPause.SetLabel(p.playLabel())
}

func (p *Player) toggleLike() {
	p.liked[p.track] = !p.liked[p.track]
	p.Like.SetLabel(p.likeLabel())
}

// elapsed formats the played portion of the track as m:ss.
func elapsed(t Track) string {
	var m, sec int
	if _, err := fmt.Sscanf(t.Length, "%d:%d", &m, &sec); err != nil {
		return "0:00"
	}
	total := int(float64(m*60+sec) * t.Progress)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
