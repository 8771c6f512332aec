package embedcli

import (
	"fmt"
	"strings"
)

// dispatchLine is the REPL-mode entry point: it records the submitted
// line in history (unless it is empty or all whitespace) and runs it
// through the shared dispatch pipeline.
func (e *Engine) dispatchLine(handle any) {
	line := string(e.cmd[:e.cmdSize])
	if strings.TrimSpace(line) == "" {
		return
	}
	e.hist.put(line)
	e.dispatch(line, handle, false)
}

// ParseDirectCommand runs line through the same name/args/tokenize/
// invoke pipeline used by the line editor, but without touching history
// and without falling back to OnCommand on a miss — a bare unbound name
// resolves to ResultNoMatchDirect instead. This is the entry point for
// hosts that already have a complete line from elsewhere (a socket, a
// script file) and want the dispatcher's behavior without also running
// the byte-at-a-time editor.
func (e *Engine) ParseDirectCommand(line string, handle any) int {
	if strings.TrimSpace(line) == "" {
		return 0
	}
	return e.dispatch(line, handle, true)
}

// dispatch splits line into a command name and argument string, looks
// the name up in the binding table, and invokes its handler. When direct
// is true, a miss returns ResultNoMatchDirect instead of going through
// OnCommand / the "unknown command" message.
func (e *Engine) dispatch(line string, handle any, direct bool) int {
	name, args := splitNameArgs(line)

	if b, ok := e.bindings.lookup(name); ok && b.Handler != nil {
		argStr := args
		if b.TokenizeArgs {
			buf := make([]byte, len(args)+2)
			copy(buf, args)
			argStr = string(TokenizeArgs(buf, len(args)))
		}

		if !direct {
			prevDirect := e.flagDirectPrint
			e.flagDirectPrint = true
			defer func() { e.flagDirectPrint = prevDirect }()
		}

		result := b.Handler(handle, argStr)
		if e.cfg.PostCommand != nil {
			e.cfg.PostCommand(handle, result)
		}
		return result
	}

	if direct {
		return ResultNoMatchDirect
	}

	if e.cfg.OnCommand != nil {
		prevDirect := e.flagDirectPrint
		e.flagDirectPrint = true
		e.cfg.OnCommand(e, name, args)
		e.flagDirectPrint = prevDirect
		return 0
	}

	e.Print(fmt.Sprintf(`Unknown command: %q. Write "help" for a list of available commands`, name))
	if e.cfg.PostCommand != nil {
		e.cfg.PostCommand(handle, 1)
	}
	return 1
}

// splitNameArgs splits line at its first run of spaces into a command
// name and the remainder of the line (with any further leading spaces
// stripped). A line with no spaces is entirely the name, with empty args.
func splitNameArgs(line string) (name, args string) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return line, ""
	}
	j := i
	for j < len(line) && line[j] == ' ' {
		j++
	}
	return line[:i], line[j:]
}
