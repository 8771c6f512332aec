package hostio

import (
	"context"
	"errors"
	"io"

	"github.com/embedcli/embedcli"
)

// WriteCharOption returns an embedcli.Option that wires an engine's
// mandatory per-byte output hook to t. Pass it to embedcli.New alongside
// any other options before handing the resulting engine to Pump.
func WriteCharOption(t Transport) embedcli.Option {
	return embedcli.WithWriteChar(func(_ *embedcli.Engine, b byte) {
		t.Write([]byte{b})
	})
}

// Pump turns a Transport into a live session for engine. It puts the
// terminal into raw mode, then runs two loops concurrently: an ingest
// loop that reads one byte at a time from t and feeds it to
// engine.ReceiveChar, and a process loop, on this goroutine, that calls
// engine.Process once per byte the ingest loop signals as available.
// This mirrors the split spec.md §5/§9 describes for the ring buffer —
// one producer, one consumer, no shared state beyond the ring itself —
// with the ingest side running as a goroutine instead of an interrupt
// handler. The transport is always restored and closed on return.
func Pump(ctx context.Context, t Transport, engine *embedcli.Engine, handle any) error {
	if err := t.SetRaw(); err != nil {
		return err
	}
	defer t.Restore()
	defer t.Close()

	byteReady := make(chan struct{}, 64)
	readErr := make(chan error, 1)

	go func() {
		defer close(byteReady)
		for {
			b, err := t.ReadByte()
			if err != nil {
				readErr <- err
				return
			}
			engine.ReceiveChar(b)
			select {
			case byteReady <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-byteReady:
			if !ok {
				select {
				case err := <-readErr:
					if errors.Is(err, io.EOF) {
						return nil
					}
					return err
				default:
					return nil
				}
			}
			engine.Process(handle)
		}
	}
}
