// Example runs the menu demo in a terminal using tcell, with a short tone
// for every clicked button.
//
//	go run ./example/terminal/
//
// Quit with Esc, Ctrl+C or the Exit button.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/geomagika/gui"
	"github.com/geomagika/gui/backend/terminal"
	"github.com/geomagika/gui/example/menu"
)

const (
	frameInterval = 33 * time.Millisecond
	sampleRate    = beep.SampleRate(44100)
	clickTone     = 880 // Hz
	clickLength   = 50 * time.Millisecond
)

func main() {
	verbose := flag.Bool("verbose", false, "log interaction transitions")
	logPath := flag.String("log", "", "write logs to this file instead of stderr")
	flag.Parse()

	gui.SetVerbose(*verbose)

	if err := run(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	// stderr is the terminal we draw on, so logs go to a file or nowhere.
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		gui.SetLogger(slog.New(slog.NewTextHandler(f, nil)))
	} else {
		gui.SetLogger(slog.New(slog.DiscardHandler))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	input := terminal.NewInputAdapter(screen)
	ui := gui.New(terminal.NewRenderer(screen))

	audio := initAudio()
	m := menu.New()
	m.FontScale = 0.2
	m.MinFontSize = 1
	m.WholeCells = true
	m.OnClick = func(string) {
		if audio {
			playClick()
		}
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				ui.Resize(w, h)
			default:
				input.HandleEvent(ev)
			}
			continue
		case <-ticker.C:
		}

		ctx := ui.Begin(input.Pointer())
		page := m.Frame(ctx)
		ctx.AddGlyph(menu.PointerMarker(ctx))
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.Refresh()

		if page == menu.PageExit {
			return nil
		}
	}
}

// initAudio opens the speaker. The demo runs silently when it fails.
func initAudio() bool {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		gui.Logger().Warn("audio init failed, running silent", "err", err)
		return false
	}
	return true
}

func playClick() {
	sine, err := generators.SineTone(sampleRate, clickTone)
	if err != nil {
		gui.Logger().Warn("click tone", "err", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLength), sine))
}
