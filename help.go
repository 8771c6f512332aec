package embedcli

import (
	"fmt"
	"strings"
)

// handleHelp is the internal "help" binding installed by New on every
// Engine. It closes over e instead of relying on the opaque handle/
// Context mechanism the rest of the dispatch pipeline uses — see
// DESIGN.md for why a bound method replaces the source design's cast
// trick here.
func (e *Engine) handleHelp(handle any, args string) int {
	switch n := CountTokens([]byte(args)); {
	case n == 0:
		var sb strings.Builder
		for i := range e.bindings.entries {
			b := &e.bindings.entries[i]
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(" * " + b.Name)
			if b.Help != "" {
				sb.WriteByte('\n')
				sb.WriteString("\t" + b.Help)
			}
		}
		e.Print(sb.String())
		return 0

	case n == 1:
		name, _ := GetToken([]byte(args), 1)
		b, ok := e.bindings.lookup(name)
		if !ok {
			e.Print(fmt.Sprintf(`Unknown command: %q. Write "help" for a list of available commands`, name))
			return 1
		}
		if b.Help == "" {
			e.Print("Help is not available")
			return 1
		}
		e.Print(b.Help)
		return 0

	default:
		e.Print(`Command "help" receives one or zero arguments`)
		return 0
	}
}
