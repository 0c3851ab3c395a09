// Package app implements the interactive terminal frontends: the
// forest walk and the model viewer. Each app owns its per-frame
// logic; the shared run loop and all terminal plumbing stay here and
// in internal/term.
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/term"
)

const (
	// keyTimeout is how long a key counts as held after its last
	// repeat event. Terminal typematic repeat only repeats the most
	// recent key, so the tracker refreshes every live key on any
	// input; a key expires only after all input stops this long.
	keyTimeout = 250 * time.Millisecond

	snapshotDir = "snapshots"
)

// runLoop owns raw mode, the screen and the frame ticker, calling
// step once per frame with the keys received since the last frame.
// It returns when step reports done or a SIGINT/SIGTERM arrives.
func runLoop(fps int, step func(now time.Time, keys []term.Key, scr *term.Screen) (bool, error)) error {
	in, err := term.Open()
	if err != nil {
		return fmt.Errorf("opening terminal input: %w", err)
	}
	defer in.Close()

	scr := term.NewScreen(os.Stdout)
	if err := scr.Start(); err != nil {
		return err
	}
	defer scr.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	for {
		done, err := step(time.Now(), in.Keys(), scr)
		if err != nil || done {
			return err
		}
		select {
		case <-sig:
			return nil
		case <-tick.C:
		}
	}
}

func isQuit(k term.Key) bool {
	return k == term.Rune('q') || k == term.Rune('Q') ||
		k.Code == term.CodeCtrlC || k.Code == term.CodeEsc
}

func isModeToggle(k term.Key) bool {
	return k.Code == term.CodeTab || k == term.Rune('m') || k == term.Rune('M')
}

func isSnapshot(k term.Key) bool {
	return k == term.Rune('p') || k == term.Rune('P')
}

// applyHeld drives the camera from the currently held movement keys.
// Forward/back ignore pitch so walking speed is constant on slopes.
func applyHeld(h *term.HeldTracker, now time.Time, cam *camera.Camera, moveSpeed, turnSpeed float64) {
	if h.Held(now, term.Key{Code: term.CodeUp}, term.Rune('w'), term.Rune('W')) {
		cam.MoveForward(moveSpeed)
	}
	if h.Held(now, term.Key{Code: term.CodeDown}, term.Rune('s'), term.Rune('S')) {
		cam.MoveForward(-moveSpeed)
	}
	if h.Held(now, term.Key{Code: term.CodeLeft}) {
		cam.Turn(-turnSpeed, 0)
	}
	if h.Held(now, term.Key{Code: term.CodeRight}) {
		cam.Turn(turnSpeed, 0)
	}
	if h.Held(now, term.Rune('a'), term.Rune('A')) {
		cam.MoveRight(-moveSpeed)
	}
	if h.Held(now, term.Rune('d'), term.Rune('D')) {
		cam.MoveRight(moveSpeed)
	}
	if h.Held(now, term.Rune('r'), term.Rune('R'), term.Key{Code: term.CodeSpace}) {
		cam.MoveUp(moveSpeed)
	}
	if h.Held(now, term.Rune('f'), term.Rune('F')) {
		cam.MoveUp(-moveSpeed)
	}
	if h.Held(now, term.Rune('e'), term.Rune('E')) {
		cam.Turn(0, turnSpeed)
	}
	if h.Held(now, term.Rune('c'), term.Rune('C')) {
		cam.Turn(0, -turnSpeed)
	}
}
