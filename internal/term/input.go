// Package term owns the interactive terminal: raw-mode keyboard
// input with escape-sequence parsing, held-key tracking that bridges
// the typematic repeat delay, and the ANSI frame writer.
package term

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Code identifies a parsed key.
type Code uint8

const (
	CodeRune Code = iota
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeEsc
	CodeTab
	CodeSpace
	CodeCtrlC
)

// Key is one decoded keypress. Rune is set only for CodeRune.
type Key struct {
	Code Code
	Rune rune
}

// Rune builds the Key for a plain character press.
func Rune(r rune) Key { return Key{Code: CodeRune, Rune: r} }

// escWait is how long a lone ESC byte waits for the rest of an
// arrow-key sequence before it is reported as a bare escape.
const escWait = 20 * time.Millisecond

// Input decodes keypresses from a raw-mode terminal. A reader
// goroutine pumps bytes into a channel so Keys never blocks the
// frame loop.
type Input struct {
	bytes   chan byte
	restore func() error
}

// Open puts stdin into raw mode and starts decoding. The caller must
// Close to restore the terminal, also on panic paths.
func Open() (*Input, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	in := newInput(os.Stdin)
	in.restore = func() error { return term.Restore(fd, state) }
	return in, nil
}

func newInput(r io.Reader) *Input {
	in := &Input{bytes: make(chan byte, 64)}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for i := 0; i < n; i++ {
				in.bytes <- buf[i]
			}
			if err != nil {
				close(in.bytes)
				return
			}
		}
	}()
	return in
}

// Close restores the terminal state.
func (in *Input) Close() error {
	if in.restore == nil {
		return nil
	}
	return in.restore()
}

// Keys returns every keypress that arrived since the last call,
// without blocking when there are none.
func (in *Input) Keys() []Key {
	var keys []Key
	for {
		select {
		case b, ok := <-in.bytes:
			if !ok {
				return keys
			}
			if k, valid := in.parse(b); valid {
				keys = append(keys, k)
			}
		default:
			return keys
		}
	}
}

// parse decodes one byte, pulling in the rest of an escape sequence
// when the byte opens one. Arrow keys arrive as ESC [ A..D; a lone
// ESC that is not followed by more bytes within escWait is a real
// escape press.
func (in *Input) parse(b byte) (Key, bool) {
	switch {
	case b == 0x1b:
		b2, ok := in.readByte(escWait)
		if !ok || b2 != '[' {
			return Key{Code: CodeEsc}, true
		}
		b3, ok := in.readByte(escWait)
		if !ok {
			return Key{Code: CodeEsc}, true
		}
		switch b3 {
		case 'A':
			return Key{Code: CodeUp}, true
		case 'B':
			return Key{Code: CodeDown}, true
		case 'C':
			return Key{Code: CodeRight}, true
		case 'D':
			return Key{Code: CodeLeft}, true
		}
		return Key{}, false
	case b == 0x03:
		return Key{Code: CodeCtrlC}, true
	case b == 0x09:
		return Key{Code: CodeTab}, true
	case b == 0x20:
		return Key{Code: CodeSpace}, true
	case b >= 0x21 && b < 0x7f:
		return Rune(rune(b)), true
	}
	return Key{}, false
}

func (in *Input) readByte(timeout time.Duration) (byte, bool) {
	select {
	case b, ok := <-in.bytes:
		return b, ok
	case <-time.After(timeout):
		return 0, false
	}
}

// HeldTracker turns discrete key events into continuous held state.
// Terminal typematic repeat only repeats the most recent key, so
// while ANY input is arriving every recently pressed key is kept
// alive; a key expires only after all input pauses for the timeout.
type HeldTracker struct {
	timeout time.Duration
	state   map[Key]time.Time
}

// NewHeldTracker creates a tracker. The timeout must cover the OS
// repeat delay or held keys stutter on the first press.
func NewHeldTracker(timeout time.Duration) *HeldTracker {
	return &HeldTracker{timeout: timeout, state: make(map[Key]time.Time)}
}

// Track records this frame's key events.
func (t *HeldTracker) Track(pressed []Key, now time.Time) {
	for _, k := range pressed {
		t.state[k] = now
	}
	if len(pressed) == 0 {
		return
	}
	for k, ts := range t.state {
		if now.Sub(ts) < t.timeout {
			t.state[k] = now
		}
	}
}

// Held reports whether any of the given keys is currently held.
func (t *HeldTracker) Held(now time.Time, keys ...Key) bool {
	for _, k := range keys {
		if ts, ok := t.state[k]; ok && now.Sub(ts) < t.timeout {
			return true
		}
	}
	return false
}
