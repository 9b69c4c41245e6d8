// Package terminal provides raw-mode single-key input for the interactive
// client.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// KeyReader reads one key at a time from an input stream.
type KeyReader struct {
	br      *bufio.Reader
	fd      int
	oldMode *term.State
}

// NewKeyReader wraps r for single-key reads. When r is an interactive
// terminal the caller should use Open instead so raw mode is engaged.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{br: bufio.NewReader(r), fd: -1}
}

// Open puts stdin into raw mode and returns a reader for it. Close must be
// called to restore the terminal.
//
// Postcondition: Returns a reader with the terminal in raw mode, or an
// error with the terminal untouched.
func Open() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	oldMode, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &KeyReader{br: bufio.NewReader(os.Stdin), fd: fd, oldMode: oldMode}, nil
}

// ReadKey returns the next key pressed. Ctrl-C and Ctrl-D are reported as
// io.EOF so the driver loop ends cleanly.
func (k *KeyReader) ReadKey() (rune, error) {
	r, _, err := k.br.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == 0x03 || r == 0x04 {
		return 0, io.EOF
	}
	return r, nil
}

// Close restores the terminal mode. Safe to call on a reader created with
// NewKeyReader.
func (k *KeyReader) Close() error {
	if k.oldMode == nil {
		return nil
	}
	return term.Restore(k.fd, k.oldMode)
}
