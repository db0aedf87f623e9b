package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/badu/fbinput/applog"
	"github.com/badu/fbinput/core"
)

var seconds = flag.Int("seconds", 10, "how long to poll for input before exiting")

func main() {
	flag.Parse()

	logger, closeLog, err := applog.NewFileLogger("demo")
	if err != nil {
		log.Fatalf("fbinputdemo: %v", err)
	}
	defer closeLog()

	handler, err := core.Init(80, 24, core.WithLogger(logger))
	if err != nil {
		log.Fatalf("fbinputdemo: init: %v", err)
	}
	defer func() {
		if err := handler.Deinit(); err != nil {
			logger.Warn().Err(err).Msg("deinit")
		}
	}()

	logger.Info().
		Str("keyboard_mode", handler.KeyboardMode().String()).
		Str("mouse_mode", handler.MouseMode().String()).
		Msg("fbinputdemo started")

	deadline := time.Now().Add(time.Duration(*seconds) * time.Second)
	for time.Now().Before(deadline) {
		handler.Poll()

		for _, ev := range handler.DrainKeyEvents() {
			fmt.Printf("key code=%d pressed=%v modifiers=%s\n", ev.KeyCode, ev.Pressed, ev.Modifiers)
		}
		for _, ev := range handler.DrainMouseEvents() {
			fmt.Printf("mouse x=%d y=%d button=%d kind=%d\n", ev.X, ev.Y, ev.Button, ev.Kind)
		}

		time.Sleep(16 * time.Millisecond)
	}

	os.Exit(0)
}
