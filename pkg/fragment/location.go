package fragment

import "net/url"

// Location abstracts whatever owns the URL the fragment lives in. The gateway
// reads the fragment fresh through it on every operation; nothing caches the
// string across calls.
type Location interface {
	// Fragment returns the raw fragment without the leading '#'.
	Fragment() string
	// SetFragment replaces the raw fragment.
	SetFragment(raw string)
	// String returns the full shareable address including the fragment.
	String() string
}

// MemoryLocation is a Location backed by a plain string. It stands in for a
// browser location in tests and in hosts that manage the address bar
// themselves.
type MemoryLocation struct {
	raw string
}

// NewMemoryLocation creates a MemoryLocation holding the given raw fragment.
func NewMemoryLocation(raw string) *MemoryLocation {
	return &MemoryLocation{raw: raw}
}

func (m *MemoryLocation) Fragment() string       { return m.raw }
func (m *MemoryLocation) SetFragment(raw string) { m.raw = raw }

func (m *MemoryLocation) String() string {
	if m.raw == "" {
		return ""
	}
	return "#" + m.raw
}

// URLLocation is a Location over a parsed URL. The raw fragment is kept as-is
// so foreign tokens round-trip byte-for-byte through String.
type URLLocation struct {
	u *url.URL
}

// NewURLLocation wraps an already parsed URL.
func NewURLLocation(u *url.URL) *URLLocation {
	return &URLLocation{u: u}
}

// ParseURLLocation parses an address and wraps it.
func ParseURLLocation(address string) (*URLLocation, error) {
	u, err := url.Parse(address)
	if err != nil {
		return nil, err
	}
	return &URLLocation{u: u}, nil
}

func (l *URLLocation) Fragment() string {
	return l.u.EscapedFragment()
}

func (l *URLLocation) SetFragment(raw string) {
	l.u.RawFragment = raw
	if dec, err := url.PathUnescape(raw); err == nil {
		l.u.Fragment = dec
	} else {
		l.u.Fragment = raw
	}
}

func (l *URLLocation) String() string { return l.u.String() }

// URL exposes the wrapped URL.
func (l *URLLocation) URL() *url.URL { return l.u }
