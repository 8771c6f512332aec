package embedcli

// autocompleteResult is the outcome of matching a prefix against the
// binding table (C5). When CandidateCount == 1, AutocompletedLen equals
// the full length of the matched name; when > 1, it is the length of the
// longest common prefix shared by every candidate.
type autocompleteResult struct {
	FirstCandidate   string
	AutocompletedLen int
	CandidateCount   int
}

// autocomplete computes the longest-common-prefix completion for prefix
// over t's bindings, per spec.md §4.5. An empty prefix always yields zero
// candidates: the engine never offers to complete "nothing" into every
// binding name.
func (t *bindingTable) autocomplete(prefix string) autocompleteResult {
	t.clearCandidates()

	if prefix == "" {
		return autocompleteResult{}
	}

	var res autocompleteResult
	for i := range t.entries {
		name := t.entries[i].Name
		if len(name) < len(prefix) || name[:len(prefix)] != prefix {
			continue
		}
		t.candidate[i] = true

		if res.CandidateCount == 0 {
			res.FirstCandidate = name
			res.AutocompletedLen = len(name)
		} else {
			if len(name) < res.AutocompletedLen {
				res.AutocompletedLen = len(name)
			}
			res.AutocompletedLen = commonPrefixLen(res.FirstCandidate, name, len(prefix), res.AutocompletedLen)
		}
		res.CandidateCount++
	}
	return res
}

// commonPrefixLen returns the length of the longest common prefix of a and
// b, starting the comparison at index `from` (the caller already knows
// the first `from` bytes match) and never exceeding `limit`.
func commonPrefixLen(a, b string, from, limit int) int {
	i := from
	for i < limit && i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

// candidateNames returns, in insertion order, the names of every binding
// flagged as a candidate by the most recent autocomplete call.
func (t *bindingTable) candidateNames() []string {
	names := make([]string, 0, len(t.entries))
	for i := range t.entries {
		if t.candidate[i] {
			names = append(names, t.entries[i].Name)
		}
	}
	return names
}
