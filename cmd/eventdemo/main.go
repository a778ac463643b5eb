// Package main is an interactive demonstration of the eventsys dispatcher.
//
// A marker moves around a terminal grid. Every state change is published
// through the event system and the screen is painted exclusively by
// subscribed callbacks, so what you see is what was dispatched.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/eventsys"
)

// Event kinds accepted by the demo's system.
const (
	kindPlayerMoved eventsys.Kind = "player.moved"
	kindItemDropped eventsys.Kind = "item.dropped"
)

// PlayerMoved is published when the marker changes position.
type PlayerMoved struct {
	X, Y         int
	PrevX, PrevY int
}

func (PlayerMoved) Kind() eventsys.Kind { return kindPlayerMoved }

// ItemDropped is published when an item is left at the marker's position.
type ItemDropped struct {
	X, Y int
}

func (ItemDropped) Kind() eventsys.Kind { return kindItemDropped }

// demoTag is the closed tag enumeration for the demo's subscriptions.
type demoTag int

const (
	tagMarker demoTag = iota
	tagStatus
	tagDrops
)

func main() {
	os.Exit(run())
}

func run() int {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("eventdemo dev")
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	sys := eventsys.NewSystem(kindPlayerMoved, kindItemDropped)

	// Teardown order: manager before the system it subscribes into.
	mgr := eventsys.NewManager[demoTag](sys.Subscriber())
	defer mgr.Close()

	d := &demo{screen: screen, x: 2, y: 2}
	d.subscribe(mgr)
	d.drawFrame()
	d.drawMarker(d.x, d.y)
	screen.Show()

	pub := sys.Publisher()

	for {
		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
			continue
		}

		switch {
		case key.Key() == tcell.KeyEscape, key.Key() == tcell.KeyCtrlC, key.Rune() == 'q':
			return 0
		case key.Key() == tcell.KeyUp, key.Rune() == 'k':
			d.move(pub, 0, -1)
		case key.Key() == tcell.KeyDown, key.Rune() == 'j':
			d.move(pub, 0, 1)
		case key.Key() == tcell.KeyLeft, key.Rune() == 'h':
			d.move(pub, -1, 0)
		case key.Key() == tcell.KeyRight, key.Rune() == 'l':
			d.move(pub, 1, 0)
		case key.Rune() == 'd', key.Rune() == ' ':
			pub.Publish(ItemDropped{X: d.x, Y: d.y})
		case key.Rune() == 's':
			d.toggleStatus(mgr)
		}
		screen.Show()
	}
}

// demo holds the marker position and paints via event callbacks.
type demo struct {
	screen tcell.Screen
	x, y   int
	moves  int
	drops  int
}

const (
	gridWidth  = 40
	gridHeight = 12
)

// subscribe registers the demo's callbacks. Each callback owns one layer of
// the display; nothing outside these callbacks paints grid contents.
func (d *demo) subscribe(mgr *eventsys.Manager[demoTag]) {
	eventsys.SubscribeTag(mgr, tagMarker, func(m PlayerMoved) {
		d.screen.SetContent(m.PrevX, m.PrevY, ' ', nil, tcell.StyleDefault)
		d.drawMarker(m.X, m.Y)
	})
	eventsys.SubscribeTag(mgr, tagDrops, func(drop ItemDropped) {
		d.drops++
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		d.screen.SetContent(drop.X, drop.Y, '*', nil, style)
	})
	eventsys.SubscribeTag(mgr, tagStatus, d.onStatusMove)
	d.drawStatus("status: on")
}

func (d *demo) onStatusMove(m PlayerMoved) {
	d.drawStatus(fmt.Sprintf("status: on  pos=%d,%d moves=%d drops=%d", m.X, m.Y, d.moves, d.drops))
}

// move clamps the marker to the grid and publishes the change. The marker
// repaints through its subscription, never directly.
func (d *demo) move(pub *eventsys.Publisher, dx, dy int) {
	nx, ny := d.x+dx, d.y+dy
	if nx < 1 || nx > gridWidth || ny < 1 || ny > gridHeight {
		return
	}
	prevX, prevY := d.x, d.y
	d.x, d.y = nx, ny
	d.moves++
	pub.Publish(PlayerMoved{X: nx, Y: ny, PrevX: prevX, PrevY: prevY})
}

// toggleStatus unsubscribes or resubscribes the status line, showing tag
// reuse after unregistration.
func (d *demo) toggleStatus(mgr *eventsys.Manager[demoTag]) {
	if mgr.Registered(tagStatus) {
		mgr.Unsubscribe(tagStatus)
		d.drawStatus("status: off (press s to resubscribe)")
		return
	}
	eventsys.SubscribeTag(mgr, tagStatus, d.onStatusMove)
	d.drawStatus("status: on")
}

func (d *demo) drawMarker(x, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	d.screen.SetContent(x, y, '@', nil, style)
}

func (d *demo) drawFrame() {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x <= gridWidth+1; x++ {
		d.screen.SetContent(x, 0, '-', nil, style)
		d.screen.SetContent(x, gridHeight+1, '-', nil, style)
	}
	for y := 1; y <= gridHeight; y++ {
		d.screen.SetContent(0, y, '|', nil, style)
		d.screen.SetContent(gridWidth+1, y, '|', nil, style)
	}
	d.drawText(0, gridHeight+3, "arrows/hjkl move  d drop  s toggle status  q quit")
}

func (d *demo) drawStatus(text string) {
	for x := 0; x <= gridWidth+1; x++ {
		d.screen.SetContent(x, gridHeight+2, ' ', nil, tcell.StyleDefault)
	}
	d.drawText(0, gridHeight+2, text)
}

func (d *demo) drawText(x, y int, text string) {
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
