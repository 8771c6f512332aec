package embedcli

// Engine is the terminal line-editing and command-dispatch core (C6). It
// owns an ingest ring buffer, an editable command line, a binding table,
// and a history, and drives all of them from a single per-byte state
// machine walked by Process.
//
// An Engine is not safe for concurrent use except across the documented
// ReceiveChar / Process split: ReceiveChar may be called from one
// goroutine (an input reader) while Process runs on another, because the
// ring buffer is the only data they share and it is built for exactly
// that handoff. Every other method — AddBinding, Print,
// ParseDirectCommand, Free — is main-context-only, matching spec.md's
// single-threaded engine invocation boundary.
type Engine struct {
	cfg        Config
	invitation string

	ring     *ringBuffer
	cmd      []byte
	cmdSize  int
	bindings *bindingTable
	hist     *history

	inputLineLength int
	lastByte        byte

	flagOverflow      bool
	flagInitDone      bool
	flagInEscape      bool
	flagDirectPrint   bool
	flagAutocomplete  bool
	flagSelfAllocated bool
	closed            bool
}

// ReceiveChar enqueues a single ingested byte. It is the only Engine
// method meant to be called from an interrupt-like ingest context; a
// dropped byte (buffer full) is recorded and silently discarded, not
// reported, matching the C1 ring buffer's contract.
func (e *Engine) ReceiveChar(b byte) {
	if e.closed {
		return
	}
	if !e.ring.push(b) {
		e.flagOverflow = true
	}
}

// Process drains every byte currently queued in the ring buffer through
// the editor state machine. If no WriteChar hook is configured, Process
// is a no-op — output is the one thing this engine cannot synthesize on
// its own.
func (e *Engine) Process(handle any) {
	if e.closed || e.cfg.WriteChar == nil {
		return
	}

	if !e.flagInitDone {
		e.emitString(e.invitation)
		e.flagInitDone = true
	}

	for e.ring.available() > 0 {
		e.consumeByte(e.ring.pop(), handle)
	}

	if e.flagOverflow {
		e.cmdSize = 0
		e.nulTerminate()
		e.flagOverflow = false
	}
}

// consumeByte classifies and handles a single ingested byte per
// spec.md §4.6, then refreshes the live autocompletion display.
func (e *Engine) consumeByte(b byte, handle any) {
	switch {
	case e.flagInEscape:
		if b >= 0x40 && b <= 0x7E {
			e.flagInEscape = false
			switch b {
			case 'A':
				e.historyNavigate(true)
			case 'B':
				e.historyNavigate(false)
			}
		}
	case b == 0x1B:
		// Recorded via lastByte below; no visible effect on its own.
	case b == '[' && e.lastByte == 0x1B:
		e.flagInEscape = true
	case isControlChar(b):
		e.handleControl(b, handle)
	case b >= 0x20 && b <= 0x7E:
		if e.cmdSize+2 < len(e.cmd) {
			e.cmd[e.cmdSize] = b
			e.cmdSize++
			e.nulTerminate()
			e.emitChar(b)
			if e.cmdSize > e.inputLineLength {
				e.inputLineLength = e.cmdSize
			}
		}
	}
	e.lastByte = b
	e.printLiveAutocompletion()
}

func isControlChar(b byte) bool {
	switch b {
	case '\r', '\n', '\b', 0x7F, '\t':
		return true
	default:
		return false
	}
}

// handleControl implements the control-character sub-machine: CR/LF line
// submission (with adjacent-pair collapsing so CRLF and LFCR each count
// once), backspace/DEL, and Tab-triggered autocompletion.
func (e *Engine) handleControl(b byte, handle any) {
	switch b {
	case '\r', '\n':
		if (b == '\r' && e.lastByte == '\n') || (b == '\n' && e.lastByte == '\r') {
			return
		}
		e.onAutocompleteRequest()
		e.emitString("\r\n")
		if e.cmdSize > 0 {
			e.dispatchLine(handle)
		}
		e.cmdSize = 0
		e.nulTerminate()
		e.hist.resetCursor()
		e.inputLineLength = 0
		e.emitString(e.invitation)
	case '\b', 0x7F:
		if e.cmdSize > 0 {
			e.cmdSize--
			e.nulTerminate()
			e.emitString("\b \b")
		}
	case '\t':
		if e.flagAutocomplete {
			e.onAutocompleteRequest()
		}
	}
}

// printLiveAutocompletion recomputes the completion for the current
// command-buffer prefix and, when it resolves to exactly one candidate,
// echoes the missing suffix. It also erases any previously displayed
// suffix that no longer applies. A no-op when autocompletion is disabled.
func (e *Engine) printLiveAutocompletion() {
	if !e.flagAutocomplete {
		return
	}

	prefix := string(e.cmd[:e.cmdSize])
	res := e.bindings.autocomplete(prefix)

	newLen := e.cmdSize
	if res.CandidateCount == 1 {
		e.emitString(res.FirstCandidate[e.cmdSize:])
		newLen = res.AutocompletedLen
	}

	if e.inputLineLength > newLen {
		e.emitString(spaces(e.inputLineLength - newLen))
	}
	e.inputLineLength = newLen
	e.emitString("\r")
	e.emitString(e.invitation)
	e.emitString(string(e.cmd[:e.cmdSize]))
}

// onAutocompleteRequest implements Tab-style completion: it either
// extends the command buffer to the longest unambiguous match (appending
// a trailing space when the match is unique), or — when nothing can be
// extended and more than one binding matches — lists every candidate
// name on its own line before repainting the prompt.
func (e *Engine) onAutocompleteRequest() {
	prefix := string(e.cmd[:e.cmdSize])
	res := e.bindings.autocomplete(prefix)

	if res.CandidateCount == 0 {
		return
	}

	if res.CandidateCount == 1 || res.AutocompletedLen > e.cmdSize {
		suffix := res.FirstCandidate[e.cmdSize:res.AutocompletedLen]
		if e.cmdSize+len(suffix)+2 >= len(e.cmd) {
			return
		}
		copy(e.cmd[e.cmdSize:], suffix)
		e.cmdSize += len(suffix)

		if res.CandidateCount == 1 && e.cmdSize+2 < len(e.cmd) {
			e.cmd[e.cmdSize] = ' '
			e.cmdSize++
			suffix += " "
		}

		e.nulTerminate()
		e.emitString(suffix)
		e.inputLineLength = e.cmdSize
		return
	}

	e.clearLine()
	for _, name := range e.bindings.candidateNames() {
		e.emitString(name)
		e.emitString("\r\n")
	}
	e.emitString(e.invitation)
	e.emitString(string(e.cmd[:e.cmdSize]))
	e.inputLineLength = e.cmdSize
}

// historyNavigate moves the history cursor and repaints the command line
// with the item found there, or does nothing when navigation is already
// at an end.
func (e *Engine) historyNavigate(up bool) {
	s, ok := e.hist.navigate(up)
	if !ok {
		return
	}
	e.clearLine()
	e.emitString(e.invitation)
	copy(e.cmd, s)
	e.cmdSize = len(s)
	e.nulTerminate()
	e.emitString(s)
	e.inputLineLength = e.cmdSize
	e.printLiveAutocompletion()
}

func (e *Engine) nulTerminate() { e.cmd[e.cmdSize] = 0 }

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// AddBinding registers a command binding. It returns false when the
// binding table is already at capacity.
func (e *Engine) AddBinding(b Binding) bool {
	return e.bindings.add(b)
}

// Free marks the engine closed. ReceiveChar and Process become no-ops
// afterward. Go's garbage collector reclaims the arena on its own
// schedule regardless of whether the engine allocated it itself
// (flagSelfAllocated); Free exists for API symmetry with the source
// design's explicit teardown, not because anything must be released by
// hand.
func (e *Engine) Free() {
	e.closed = true
}
