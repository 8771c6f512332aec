package embedcli

// history is a compact, MRU-ordered command history backed by a single
// byte arena (C2). Items are NUL-separated strings; the newest item
// occupies offset 0 and older items follow, so the concatenation of all
// live items plus their terminating NULs is always a contiguous prefix of
// arena. current is a 1-based navigation cursor; 0 means "no navigation in
// progress, editing a fresh line".
//
// History is intentionally memory-only: it does not survive process
// restarts (spec.md Non-goals), so there is no load/save path here.
type history struct {
	arena      []byte
	itemsCount int
	current    int
}

func newHistory(capacity int) *history {
	return &history{arena: make([]byte, 0, capacity)}
}

func (h *history) capBytes() int { return cap(h.arena) }

// put inserts s as the newest item, deduplicating an existing equal entry
// and evicting the oldest items until there is room.
func (h *history) put(s string) {
	need := len(s) + 1
	if need > h.capBytes() {
		return
	}

	if h.find(s) {
		h.remove(s)
	}

	for len(h.arena)+need > h.capBytes() && h.itemsCount > 0 {
		h.evictOldest()
	}

	// Shift the live region right by `need` to make room at offset 0.
	h.arena = h.arena[:len(h.arena)+need]
	copy(h.arena[need:], h.arena[:len(h.arena)-need])
	copy(h.arena, s)
	h.arena[len(s)] = 0
	h.itemsCount++
}

// get returns the 1-based i-th item (1 = newest), or ("", false) when i is
// out of range.
func (h *history) get(i int) (string, bool) {
	if i <= 0 || i > h.itemsCount {
		return "", false
	}
	offset := 0
	for n := 1; n < i; n++ {
		offset += itemLen(h.arena[offset:]) + 1
	}
	end := offset + itemLen(h.arena[offset:])
	return string(h.arena[offset:end]), true
}

// find reports whether s is already present in the arena.
func (h *history) find(s string) bool {
	offset := 0
	for n := 0; n < h.itemsCount; n++ {
		l := itemLen(h.arena[offset:])
		if string(h.arena[offset:offset+l]) == s {
			return true
		}
		offset += l + 1
	}
	return false
}

// remove deletes the first occurrence of s, shifting later items left.
// Order of the remaining items (MRU-first) is preserved.
func (h *history) remove(s string) {
	offset := 0
	for n := 0; n < h.itemsCount; n++ {
		l := itemLen(h.arena[offset:])
		if string(h.arena[offset:offset+l]) == s {
			shift := l + 1
			copy(h.arena[offset:], h.arena[offset+shift:])
			h.arena = h.arena[:len(h.arena)-shift]
			h.itemsCount--
			return
		}
		offset += l + 1
	}
}

// evictOldest drops the single oldest (last) item in the arena.
func (h *history) evictOldest() {
	offset := 0
	lastStart := 0
	for n := 0; n < h.itemsCount; n++ {
		l := itemLen(h.arena[offset:])
		if n == h.itemsCount-1 {
			lastStart = offset
		}
		offset += l + 1
	}
	h.arena = h.arena[:lastStart]
	h.itemsCount--
}

// itemLen returns the length of the NUL-terminated string starting at the
// front of b.
func itemLen(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}

// navigate moves the history cursor up (toward older items) or down
// (toward the fresh line) and returns the item that should be displayed,
// or ("", false) when the navigation is a no-op (past either end).
func (h *history) navigate(up bool) (string, bool) {
	if h.itemsCount == 0 {
		return "", false
	}
	if up && h.current == h.itemsCount {
		return "", false
	}
	if !up && h.current == 0 {
		return "", false
	}

	if up {
		h.current++
	} else {
		h.current--
	}

	if h.current == 0 {
		return "", true
	}
	s, _ := h.get(h.current)
	return s, true
}

// resetCursor returns the navigation cursor to "fresh line", done after
// every successful command submission.
func (h *history) resetCursor() { h.current = 0 }
