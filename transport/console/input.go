package console

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	keyInterrupt = 0x03 // Ctrl-C in raw mode
	keyEOT       = 0x04 // Ctrl-D in raw mode
)

// KeySource yields one key press at a time
type KeySource interface {
	ReadKey() (rune, error)
}

// KeyReader reads single key presses. When its input is a terminal it is
// switched to raw mode so keys arrive without waiting for Enter.
type KeyReader struct {
	in      *bufio.Reader
	input   io.Closer
	fd      int
	restore *term.State
	closed  bool
}

// NewKeyReader wraps in. Terminal input is put in raw mode until Close.
func NewKeyReader(in io.Reader) (*KeyReader, error) {
	kr := &KeyReader{in: bufio.NewReader(in), fd: -1}
	if c, ok := in.(io.Closer); ok {
		kr.input = c
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		kr.fd = int(f.Fd())
		state, err := term.MakeRaw(kr.fd)
		if err != nil {
			return nil, err
		}
		kr.restore = state
	}
	return kr, nil
}

// Raw reports whether the terminal is in raw mode
func (k *KeyReader) Raw() bool {
	return k.restore != nil
}

// ReadKey returns the next key. Ctrl-C and Ctrl-D end input with io.EOF.
func (k *KeyReader) ReadKey() (rune, error) {
	r, _, err := k.in.ReadRune()
	if err != nil {
		return 0, err
	}
	if r == keyInterrupt || r == keyEOT {
		return 0, io.EOF
	}
	return r, nil
}

// Close restores the terminal state and closes the input when it is
// closable. It is safe to call more than once.
func (k *KeyReader) Close() error {
	if k.closed {
		return nil
	}
	k.closed = true

	var err error
	if k.restore != nil {
		err = term.Restore(k.fd, k.restore)
		k.restore = nil
	}
	if k.input != nil {
		if cerr := k.input.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
