// Package fragment implements the URL-fragment wire format for table tokens
// and the merge-preserving gateway all keepers write through. The fragment is
// structurally `id1=token1&id2=token2`; tokens belonging to other tables are
// carried as opaque strings and never re-parsed or re-encoded.
package fragment

import "strings"

// Placeholder replaces an otherwise empty fragment. Clearing the fragment
// outright makes browsers scroll to the top of the page; a one-character
// placeholder does not.
const Placeholder = "_"

// Entry is a single id=token pair in encounter order.
type Entry struct {
	ID    string
	Token string
}

// Values maps a table identifier to every token encountered for it. A
// well-formed fragment has exactly one token per identifier; duplicates
// accumulate in encounter order and callers collapse them with First.
type Values map[string][]string

// First returns the first token recorded for the identifier.
func (v Values) First(id string) (string, bool) {
	toks, ok := v[id]
	if !ok || len(toks) == 0 {
		return "", false
	}
	return toks[0], true
}

// Duplicated reports whether more than one token was recorded for the
// identifier.
func (v Values) Duplicated(id string) bool {
	return len(v[id]) > 1
}

// Decode parses a raw fragment into per-identifier tokens. A leading '#' is
// tolerated. The bare placeholder decodes to no entries. Entries without '='
// decode to an empty token for their identifier.
func Decode(raw string) Values {
	vals := Values{}
	for _, e := range DecodeEntries(raw) {
		vals[e.ID] = append(vals[e.ID], e.Token)
	}
	return vals
}

// DecodeEntries parses a raw fragment into its entries, preserving encounter
// order and duplicates. Writers use this form so that unrelated entries
// survive byte-for-byte in their original positions.
func DecodeEntries(raw string) []Entry {
	raw = strings.TrimPrefix(raw, "#")
	if raw == "" || raw == Placeholder {
		return nil
	}

	var entries []Entry
	for part := range strings.SplitSeq(raw, "&") {
		if part == "" {
			continue
		}
		id, token, _ := strings.Cut(part, "=")
		entries = append(entries, Entry{ID: id, Token: token})
	}
	return entries
}

// Encode serializes entries back into a fragment string. Entries with empty
// tokens are dropped; if nothing survives the placeholder is returned so the
// fragment is never empty.
func Encode(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Token == "" {
			continue
		}
		parts = append(parts, e.ID+"="+e.Token)
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, "&")
}
