// Package hostio provides a reference transport adapter binding an
// embedcli.Engine to a real POSIX/Windows terminal. This is deliberately
// outside the engine's core: the spec treats the transport itself as an
// external collaborator (the engine only knows about the WriteChar/
// WriteString hooks and ReceiveChar), so hostio is the concrete host
// program a caller would actually link against stdio.
package hostio

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Transport abstracts raw-mode byte I/O so a real TTY and a scripted mock
// can both drive an engine through the same Pump.
type Transport interface {
	SetRaw() error                // enter raw mode for immediate byte delivery
	Restore() error               // restore original terminal settings
	ReadByte() (byte, error)      // read a single input byte
	Write(p []byte) (int, error)  // write output bytes, colorable where supported
	Close() error                 // release the underlying file descriptor
}

// realTransport implements Transport over go-tty, golang.org/x/term and
// go-colorable — the same three libraries the teacher repo wires for its
// own terminal handling, rehomed here to drive a byte-oriented engine
// instead of a rune-oriented line editor.
type realTransport struct {
	tty           *tty.TTY
	output        io.Writer
	closed        bool
	stdinFd       int
	originalState *term.State
}

// Open acquires the controlling terminal and prepares a colorable output
// writer (needed on Windows for ANSI passthrough; a no-op elsewhere).
func Open() (Transport, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTransport{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTransport) SetRaw() error {
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTransport) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

// ReadByte reads one input byte. The engine's input alphabet is strictly
// 7-bit ASCII (spec.md §1 Non-goals: no Unicode input), so a rune above
// 0x7F is folded down to its low byte rather than UTF-8 decoded — this
// keeps the hostio boundary simple without pretending the core engine
// understands multi-byte input.
func (t *realTransport) ReadByte() (byte, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, err
	}
	return byte(r), nil
}

func (t *realTransport) Write(p []byte) (int, error) {
	return t.output.Write(p)
}

func (t *realTransport) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
