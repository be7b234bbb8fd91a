package intern

import (
	"fmt"
	"strings"
)

// dnsLiteral is the case-insensitive arm identifier that is always
// coerced to index 0, the control arm.
const dnsLiteral = "dns"

// Table is a dense, zero-based, bidirectional mapping between opaque
// string identifiers and integer indices. It is built once by
// InternUnits or InternArms and is read-only for the remainder of a
// Fit call, the same "build once, read forever" discipline core.Graph
// applies to its adjacency list.
type Table struct {
	// index maps an opaque id to its dense index.
	index map[string]int
	// ids is the inverse mapping: ids[i] is the opaque id for index i.
	ids []string
	// foldDNS is set only on arm tables: any id that case-insensitively
	// equals the dns literal resolves to index 0 even if its casing
	// doesn't match the spelling interned into ids[0]. This lets
	// downstream record lookups (ingest.Build) use whatever casing of
	// "dns" a given record happens to carry, matching the
	// "case-insensitive dns -> control" contract at resolution time,
	// not just at vocabulary-build time.
	foldDNS bool
}

// Len returns the number of distinct identifiers interned, i.e. the
// dense index space [0, Len()).
func (t *Table) Len() int { return len(t.ids) }

// IndexOf returns the dense index for id and true if id was interned,
// or (0, false) if it was not. On arm tables, any casing of "dns"
// resolves to index 0 regardless of which spelling was canonicalized
// at intern time.
func (t *Table) IndexOf(id string) (int, bool) {
	if idx, ok := t.index[id]; ok {
		return idx, ok
	}
	if t.foldDNS && strings.EqualFold(id, dnsLiteral) {
		return 0, true
	}
	return 0, false
}

// IDAt returns the opaque identifier originally interned at index i.
// Panics if i is out of range, matching slice-index semantics — this
// is only ever called with indices this package itself produced.
func (t *Table) IDAt(i int) string { return t.ids[i] }

// IDs returns the inverse mapping index -> id, ordered by index. The
// returned slice is owned by the Table and must not be mutated.
func (t *Table) IDs() []string { return t.ids }

// InternUnits assigns dense indices [0, N) to the given opaque unit
// ids in first-seen (stable) order. Fails with ErrInvalidInput on any
// empty or duplicate id, naming the offending id and its position.
func InternUnits(ids []string) (*Table, error) {
	t := &Table{
		index: make(map[string]int, len(ids)),
		ids:   make([]string, 0, len(ids)),
	}
	for i, id := range ids {
		if id == "" {
			return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: empty unit id at position %d", i)}
		}
		if _, dup := t.index[id]; dup {
			return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: duplicate unit id %q at position %d", id, i)}
		}
		t.index[id] = len(t.ids)
		t.ids = append(t.ids, id)
	}
	return t, nil
}

// InternArms assigns dense indices [0, K) to the given opaque arm ids.
// The literal "dns" (case-insensitive), wherever it appears in ids, is
// coerced to index 0; all other arms receive a dense rank in
// first-seen order starting at 1. Fails with ErrInvalidInput on any
// empty or duplicate (case-sensitive, excluding the dns coercion) id.
func InternArms(ids []string) (*Table, error) {
	// Find the dns literal first, if present, so it can claim index 0
	// before any other arm is assigned.
	dnsID := ""
	for i, id := range ids {
		if id == "" {
			return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: empty arm id at position %d", i)}
		}
		if strings.EqualFold(id, dnsLiteral) {
			dnsID = id
			break
		}
	}

	t := &Table{
		index:   make(map[string]int, len(ids)+1),
		ids:     make([]string, 0, len(ids)+1),
		foldDNS: true,
	}

	// Reserve index 0 for control, under whichever casing of "dns" the
	// caller used (or the canonical lowercase if dns was never listed
	// explicitly — the control arm is always implicitly present).
	if dnsID == "" {
		dnsID = dnsLiteral
	}
	t.index[dnsID] = 0
	t.ids = append(t.ids, dnsID)

	dnsSeen := false
	for i, id := range ids {
		if id == "" {
			return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: empty arm id at position %d", i)}
		}
		if strings.EqualFold(id, dnsLiteral) {
			// Already accounted for as index 0. A later dns entry is an
			// error: a differently-cased spelling conflicts with the one
			// at index 0, and a second occurrence of the same spelling is
			// a duplicate.
			if id != dnsID {
				return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: conflicting dns spelling %q at position %d (already %q)", id, i, dnsID)}
			}
			if dnsSeen {
				return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: duplicate arm id %q at position %d", id, i)}
			}
			dnsSeen = true
			continue
		}
		if _, dup := t.index[id]; dup {
			return nil, &FieldError{ID: id, Message: fmt.Sprintf("intern: invalid input: duplicate arm id %q at position %d", id, i)}
		}
		t.index[id] = len(t.ids)
		t.ids = append(t.ids, id)
	}

	return t, nil
}
