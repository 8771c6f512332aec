package embedcli

// HandlerFunc is invoked by the dispatcher (C7) when a submitted command
// line's name matches a Binding. handle is the opaque pointer passed to
// Process/ParseDirectCommand; args is the (possibly tokenized) argument
// string. The 8-bit result code is surfaced verbatim to any registered
// PostCommand hook — the engine never interprets it.
type HandlerFunc func(handle any, args string) int

// Binding associates a command name with a handler, optional help text,
// a tokenize-args switch, and an opaque context value forwarded to
// nothing in the handler signature directly — Go closures make the C
// design's "context" pointer redundant, so Context is carried purely for
// callers that want to stash per-binding data and recover it themselves;
// see SPEC_FULL.md / DESIGN.md for why this sidesteps the source's cast
// trick for the internal help handler.
type Binding struct {
	Name         string
	Help         string
	TokenizeArgs bool
	Context      any
	Handler      HandlerFunc
}

// bindingTable is the fixed-capacity registry of named command handlers
// (C4). The internal "help" binding is installed first, at construction.
type bindingTable struct {
	entries   []Binding
	candidate []bool // transient autocomplete-candidate scratch, cleared at the start of every computation
	capacity  int
}

func newBindingTable(maxUserBindings int) *bindingTable {
	capacity := maxUserBindings + 1 // +1 for the internal "help" binding
	return &bindingTable{
		entries:   make([]Binding, 0, capacity),
		candidate: make([]bool, capacity),
		capacity:  capacity,
	}
}

// add appends a binding. It returns false when the table is already at
// capacity.
func (t *bindingTable) add(b Binding) bool {
	if len(t.entries) >= t.capacity {
		return false
	}
	t.entries = append(t.entries, b)
	return true
}

// lookup performs a linear, case-sensitive search by name.
func (t *bindingTable) lookup(name string) (*Binding, bool) {
	for i := range t.entries {
		if t.entries[i].Name == name {
			return &t.entries[i], true
		}
	}
	return nil, false
}

func (t *bindingTable) clearCandidates() {
	for i := range t.candidate {
		t.candidate[i] = false
	}
}
