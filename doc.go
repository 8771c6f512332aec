// Package embedcli implements a byte-oriented command-line engine for
// constrained targets that expose a simple duplex transport (a UART, a
// pipe, a socket). It receives keystrokes one byte at a time, maintains
// an editable input line with live echo and autocompletion, recognizes a
// small set of VT100-like control sequences, dispatches finalized
// command lines to registered handlers, and interleaves asynchronous
// host output with the in-progress input line so the prompt is always
// restored after interruption.
//
// The engine owns no transport of its own: the host drives ingestion by
// calling ReceiveChar for every byte received and Process to advance the
// state machine, and supplies output via the WriteChar/WriteString hooks
// on Config. See the hostio subpackage for a reference adapter wiring a
// real terminal (go-tty, golang.org/x/term, go-colorable) to an Engine.
//
// Quick Start:
//
//	e, err := embedcli.New(embedcli.Config{},
//		embedcli.WithWriteChar(func(_ *embedcli.Engine, b byte) {
//			os.Stdout.Write([]byte{b})
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer e.Free()
//
//	e.AddBinding(embedcli.Binding{
//		Name: "get-led",
//		Help: "report LED state",
//		Handler: func(handle any, args string) int {
//			fmt.Println("led: off")
//			return 0
//		},
//	})
//
//	for {
//		b := readOneByteFromStdin()
//		e.ReceiveChar(b)
//		e.Process(nil)
//	}
//
// Arena Sizing:
//
// An Engine's buffers — the ingest ring, the command line, and history —
// are carved from a single arena, sized once at construction. Call
// RequiredSize(cfg) to learn how large a caller-supplied buffer
// (Config.Buffer) must be; omit it and New allocates one for you.
//
// Argument Tokenization:
//
// A Binding may opt into TokenizeArgs so its handler receives a
// double-NUL-terminated token stream instead of a raw string, readable
// with CountTokens, GetToken, and FindToken:
//
//	embedcli.Binding{
//		Name:         "set",
//		TokenizeArgs: true,
//		Handler: func(handle any, args string) int {
//			name, _ := embedcli.GetToken([]byte(args), 1)
//			value, _ := embedcli.GetToken([]byte(args), 2)
//			_ = name
//			_ = value
//			return 0
//		},
//	}
//
// Direct Dispatch:
//
// ParseDirectCommand runs the same name/args/tokenize/invoke pipeline as
// the line editor, for hosts that already have a complete line from
// elsewhere (a script, a socket) and don't want history insertion or the
// unknown-command fallback. A miss returns ResultNoMatchDirect rather
// than silently behaving like a match.
//
// Concurrency:
//
// The only concurrency this engine permits is one goroutine calling
// ReceiveChar (an ingest reader) while another calls Process (the main
// loop) — the ring buffer is built for exactly that handoff. Every other
// method is main-context only.
package embedcli
