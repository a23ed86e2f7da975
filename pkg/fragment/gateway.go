package fragment

import "github.com/rs/zerolog"

// Gateway is the single point through which keepers read and write tokens.
// Every operation re-reads the location, modifies only the caller's entry,
// and leaves every other table's token untouched. One gateway is shared by
// all keepers on a page.
type Gateway struct {
	loc Location
	log zerolog.Logger
}

// NewGateway creates a gateway over the given location. Logging is off until
// SetLogger is called.
func NewGateway(loc Location) *Gateway {
	return &Gateway{loc: loc, log: zerolog.Nop()}
}

// SetLogger routes anomaly warnings to the given logger.
func (g *Gateway) SetLogger(log zerolog.Logger) {
	g.log = log
}

// Raw returns the current raw fragment.
func (g *Gateway) Raw() string {
	return g.loc.Fragment()
}

// Address returns the full shareable address with the current fragment.
func (g *Gateway) Address() string {
	return g.loc.String()
}

// Read returns the token stored for the given table identifier. When the
// fragment carries more than one entry for the identifier the first wins and
// the anomaly is logged.
func (g *Gateway) Read(id string) (string, bool) {
	vals := Decode(g.loc.Fragment())
	if vals.Duplicated(id) {
		g.log.Warn().
			Str("table", id).
			Int("entries", len(vals[id])).
			Msg("fragment carries duplicate entries for table, using first")
	}
	return vals.First(id)
}

// Write stores a token for the given table identifier, preserving all other
// entries byte-for-byte and in place. An existing entry is updated at its
// original position; a new one is appended. An empty token removes the entry.
func (g *Gateway) Write(id, token string) {
	entries := DecodeEntries(g.loc.Fragment())

	out := make([]Entry, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if e.ID == id {
			if !replaced {
				out = append(out, Entry{ID: id, Token: token})
				replaced = true
			}
			// Later duplicates for this id are dropped.
			continue
		}
		out = append(out, e)
	}
	if !replaced && token != "" {
		out = append(out, Entry{ID: id, Token: token})
	}

	g.loc.SetFragment(Encode(out))
}

// Remove deletes the entry for the given table identifier.
func (g *Gateway) Remove(id string) {
	g.Write(id, "")
}
