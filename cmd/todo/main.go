package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"snakeloop/todo"
)

const (
	listTop    = 2 // first item row
	trashWidth = 3 // " x " column on the left of every row
	textLeft   = trashWidth + 1
)

type app struct {
	screen  tcell.Screen
	list    *todo.List
	input   []rune
	buttons tcell.ButtonMask
}

func main() {
	flag.Parse()

	items := flag.Args()
	if len(items) == 0 {
		items = []string{"Buy groceries", "Walk the dog", "Water the plants"}
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := s.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.Clear()

	a := &app{screen: s, list: todo.NewList(items...)}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			events <- s.PollEvent()
		}
	}()

	// Drives the fade-out redraw
	tick := time.NewTicker(time.Second / 30)
	defer tick.Stop()

	a.render(time.Now())
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if handleQuit(e) {
					return
				}
				a.handleKey(e)
			case *tcell.EventMouse:
				a.handleMouse(e, time.Now())
			}
			a.render(time.Now())
		case now := <-tick.C:
			if a.list.Fading() {
				a.list.Sweep(now)
				a.render(now)
			}
		}
	}
}

func handleQuit(e *tcell.EventKey) bool {
	return e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC
}

func (a *app) handleKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEnter:
		if a.list.Add(string(a.input)) {
			a.input = a.input[:0]
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.input = append(a.input, e.Rune())
	}
}

// handleMouse acts on button-down edges only, so holding the button is one click
func (a *app) handleMouse(e *tcell.EventMouse, now time.Time) {
	buttons := e.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = buttons
	if !pressed {
		return
	}

	x, y := e.Position()
	i, trash, ok := hitTest(x, y, a.list.Len())
	if !ok {
		return
	}
	if trash {
		a.list.Remove(i, now)
	} else {
		a.list.Toggle(i)
	}
}

// hitTest maps a cell to an item row; trash is true on the remove icon
func hitTest(x, y, n int) (index int, trash bool, ok bool) {
	index = y - listTop
	if index < 0 || index >= n || x < 0 {
		return 0, false, false
	}
	return index, x < trashWidth, true
}

// fade scales a color toward black by opacity
func fade(r, g, b int32, opacity float64) tcell.Color {
	return tcell.NewRGBColor(int32(float64(r)*opacity), int32(float64(g)*opacity), int32(float64(b)*opacity))
}

func (a *app) render(now time.Time) {
	s := a.screen
	s.Clear()

	drawText(s, 0, 0, "TO-DO LIST", tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	items := a.list.Items()
	for i, it := range items {
		y := listTop + i
		opacity := a.list.Opacity(i, now)

		trash := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(fade(231, 76, 60, opacity))
		drawText(s, 0, y, " x ", trash)

		st := tcell.StyleDefault.Foreground(fade(255, 255, 255, opacity))
		if it.Done {
			st = tcell.StyleDefault.Foreground(fade(128, 128, 128, opacity)).StrikeThrough(true)
		}
		drawText(s, textLeft, y, it.Text, st)
	}

	inputY := listTop + len(items) + 1
	prompt := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	drawText(s, 0, inputY, "Add New Todo: ", prompt)
	drawText(s, 14, inputY, string(a.input), tcell.StyleDefault)
	s.ShowCursor(14+len(a.input), inputY)

	help := "click: toggle  x: remove  enter: add  esc: quit"
	drawText(s, 0, inputY+2, help, tcell.StyleDefault.Foreground(tcell.ColorGray))

	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
