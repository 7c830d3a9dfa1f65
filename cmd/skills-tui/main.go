// Command skills-tui shows the skill spiral in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/browser"

	"github.com/Sunil5411/portfolio/internal/host"
	"github.com/Sunil5411/portfolio/internal/skills"
)

func main() {
	hz := flag.Int("hz", 60, "frames per second")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	if err := run(*hz, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(hz int, logFile string) error {
	// The terminal belongs to the UI, so logs are discarded unless redirected.
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, nil))
	}

	// xdg-open chatter would land on the UI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	t := newTUI(screen, skills.Browser{}, logger)
	defer t.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	err = host.Run(ctx, t.win, host.DriverConfig{Hz: hz}, func(uint64) error {
	drain:
		for {
			select {
			case ev := <-events:
				if !t.handle(ev) {
					cancel()
					return nil
				}
			default:
				break drain
			}
		}
		t.draw()
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
