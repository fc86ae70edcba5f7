// Package main is an interactive demonstration of the rebind engine. It
// binds movement keys and the mouse to a small action set and shows the
// translated action stream in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rebind"
	"github.com/dshills/rebind/button"
	"github.com/dshills/rebind/tcelldriver"
)

// Version information (set via ldflags during build).
var version = "dev"

type demoAction int

const (
	actMoveUp demoAction = iota
	actMoveDown
	actMoveLeft
	actMoveRight
	actJump
	actFire
	actQuit
)

func (a demoAction) String() string {
	switch a {
	case actMoveUp:
		return "move-up"
	case actMoveDown:
		return "move-down"
	case actMoveLeft:
		return "move-left"
	case actMoveRight:
		return "move-right"
	case actJump:
		return "jump"
	case actFire:
		return "fire"
	case actQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	var modeName string
	var showVersion bool

	flag.StringVar(&modeName, "mouse", "absolute", "Mouse mode (absolute, relative)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("rebind-demo %s\n", version)
		return 0
	}

	mode := rebind.MouseAbsolute
	switch modeName {
	case "absolute":
	case "relative":
		mode = rebind.MouseRelative
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid mouse mode %q (must be absolute or relative)\n", modeName)
		return 1
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
	screen.EnableMouse()

	width, height := screen.Size()
	translator, err := rebind.NewBuilder[demoAction](width, height).
		WithActionMapping(button.Keyboard(button.KeyW), actMoveUp).
		WithActionMapping(button.Keyboard(button.KeyUp), actMoveUp).
		WithActionMapping(button.Keyboard(button.KeyS), actMoveDown).
		WithActionMapping(button.Keyboard(button.KeyDown), actMoveDown).
		WithActionMapping(button.Keyboard(button.KeyA), actMoveLeft).
		WithActionMapping(button.Keyboard(button.KeyLeft), actMoveLeft).
		WithActionMapping(button.Keyboard(button.KeyD), actMoveRight).
		WithActionMapping(button.Keyboard(button.KeyRight), actMoveRight).
		WithActionMapping(button.Keyboard(button.KeySpace), actJump).
		WithActionMapping(button.Mouse(button.MouseLeft), actFire).
		WithActionMapping(button.Keyboard(button.KeyQ), actQuit).
		WithActionMapping(button.Keyboard(button.KeyEscape), actQuit).
		WithMouseMode(mode).
		BuildTranslator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build translator: %v\n", err)
		return 1
	}

	driver := tcelldriver.New()
	var log []string

	for {
		drawFrame(screen, modeName, log)

		ev := screen.PollEvent()
		if ev == nil {
			return 0
		}
		if resize, ok := ev.(*tcell.EventResize); ok {
			w, h := resize.Size()
			translator.SetSize(w, h)
			screen.Sync()
			continue
		}
		if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyCtrlC {
			return 0
		}

		for _, raw := range driver.Translate(ev) {
			out, ok := translator.Translate(raw)
			if !ok {
				continue
			}
			switch out.Kind {
			case rebind.TranslatedPress:
				if out.Action == actQuit {
					return 0
				}
				log = appendLine(log, fmt.Sprintf("press   %s", out.Action))
			case rebind.TranslatedRelease:
				log = appendLine(log, fmt.Sprintf("release %s", out.Action))
			case rebind.TranslatedMotion:
				log = appendLine(log, fmt.Sprintf("motion  %.0f,%.0f", out.X, out.Y))
			case rebind.TranslatedScroll:
				log = appendLine(log, fmt.Sprintf("scroll  %.0f,%.0f", out.X, out.Y))
			}
		}
	}
}

// maxLogLines is how many translated events the demo keeps on screen.
const maxLogLines = 20

func appendLine(log []string, line string) []string {
	log = append(log, line)
	if len(log) > maxLogLines {
		log = log[len(log)-maxLogLines:]
	}
	return log
}

func drawFrame(screen tcell.Screen, modeName string, log []string) {
	screen.Clear()
	drawText(screen, 0, 0, "rebind-demo: WASD/arrows move, Space jumps, left click fires, Q quits")
	drawText(screen, 0, 1, fmt.Sprintf("mouse mode: %s", modeName))
	for i, line := range log {
		drawText(screen, 2, 3+i, line)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
