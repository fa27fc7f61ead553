package interaction

import (
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	oldState *unix.Termios
	in       io.Reader
	input    chan KeyEvent
	stop     chan struct{}
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// KeyCtrlC is delivered as a KeyChar since raw mode may swallow SIGINT
const KeyCtrlC rune = 3

// NewKeyboardReader puts stdin into raw mode and starts reading it
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := newReader(os.Stdin)

	// Set terminal to raw mode
	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}

	// Start reading keyboard input
	go kr.readInput()

	return kr, nil
}

func newReader(in io.Reader) *KeyboardReader {
	return &KeyboardReader{
		in:    in,
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}
}

// readInput reads keyboard input in a goroutine
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 16)

	for {
		select {
		case <-kr.stop:
			return
		default:
			n, err := kr.in.Read(buf)
			if err != nil {
				if err == io.EOF {
					return
				}
				continue
			}

			for _, event := range parseInput(buf[:n]) {
				select {
				case kr.input <- event:
				case <-kr.stop:
					return
				}
			}
		}
	}
}

// parseInput splits one read into key events. A read can hold several
// keystrokes when the user types fast or pastes.
func parseInput(buf []byte) []KeyEvent {
	var events []KeyEvent

	for len(buf) > 0 {
		switch b := buf[0]; {
		case b == 27:
			if len(buf) >= 3 && buf[1] == '[' {
				if ev, ok := arrowKey(buf[2]); ok {
					events = append(events, ev)
				}
				buf = buf[3:]
				continue
			}
			events = append(events, KeyEvent{Key: 27, Type: KeyEscape})
			buf = buf[1:]

		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Key: '\n', Type: KeyEnter})
			buf = buf[1:]

		case b == 127 || b == 8:
			events = append(events, KeyEvent{Key: rune(b), Type: KeyBackspace})
			buf = buf[1:]

		default:
			r, size := utf8.DecodeRune(buf)
			events = append(events, KeyEvent{Key: r, Type: KeyChar})
			buf = buf[size:]
		}
	}

	return events
}

func arrowKey(b byte) (KeyEvent, bool) {
	switch b {
	case 'A':
		return KeyEvent{Type: KeyUp}, true
	case 'B':
		return KeyEvent{Type: KeyDown}, true
	case 'C':
		return KeyEvent{Type: KeyRight}, true
	case 'D':
		return KeyEvent{Type: KeyLeft}, true
	default:
		return KeyEvent{}, false
	}
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	return kr.disableRawMode()
}
