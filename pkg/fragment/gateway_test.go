package fragment

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayWritePreservesOtherTables(t *testing.T) {
	// The foreign token is deliberately odd; it must pass through untouched.
	foreign := "x%3Dy:c9-5.0:zzz"
	loc := NewMemoryLocation("orders=" + foreign + "&users=p1")
	gw := NewGateway(loc)

	gw.Write("users", "oa3:p2")

	assert.Contains(t, loc.Fragment(), "orders="+foreign)
	assert.Equal(t, "orders="+foreign+"&users=oa3:p2", loc.Fragment())
}

func TestGatewayWriteKeepsEntryPosition(t *testing.T) {
	loc := NewMemoryLocation("a=p1&b=p2&c=p3")
	gw := NewGateway(loc)

	gw.Write("b", "l50")

	assert.Equal(t, "a=p1&b=l50&c=p3", loc.Fragment())
}

func TestGatewayWriteAppendsNewEntry(t *testing.T) {
	loc := NewMemoryLocation("a=p1")
	gw := NewGateway(loc)

	gw.Write("b", "oa0")

	assert.Equal(t, "a=p1&b=oa0", loc.Fragment())
}

func TestGatewayWriteCollapsesDuplicates(t *testing.T) {
	loc := NewMemoryLocation("a=p1&b=x&a=p2&a=p3")
	gw := NewGateway(loc)

	gw.Write("a", "p9")

	assert.Equal(t, "a=p9&b=x", loc.Fragment())
}

func TestGatewayRemoveLastEntryLeavesPlaceholder(t *testing.T) {
	loc := NewMemoryLocation("users=p1")
	gw := NewGateway(loc)

	gw.Remove("users")

	// Clearing the fragment outright would scroll the page to top.
	assert.Equal(t, Placeholder, loc.Fragment())
}

func TestGatewayWriteEmptyTokenRemoves(t *testing.T) {
	loc := NewMemoryLocation("users=p1&orders=l25")
	gw := NewGateway(loc)

	gw.Write("users", "")

	assert.Equal(t, "orders=l25", loc.Fragment())
}

func TestGatewayReadFirstWinsOnDuplicates(t *testing.T) {
	loc := NewMemoryLocation("users=p1&users=p2")
	gw := NewGateway(loc)

	token, ok := gw.Read("users")
	assert.True(t, ok)
	assert.Equal(t, "p1", token)
}

func TestGatewayReadRereadsLocation(t *testing.T) {
	loc := NewMemoryLocation("users=p1")
	gw := NewGateway(loc)

	// Another writer changes the fragment between calls.
	loc.SetFragment("users=p7")

	token, ok := gw.Read("users")
	assert.True(t, ok)
	assert.Equal(t, "p7", token)
}

func TestURLLocationRoundTrip(t *testing.T) {
	u, err := url.Parse("https://example.com/report?tab=2#users=sfoo%20bar:p1&orders=l25")
	require.NoError(t, err)
	loc := NewURLLocation(u)
	gw := NewGateway(loc)

	gw.Write("users", "sfoo%20bar:p2")

	addr := gw.Address()
	assert.True(t, strings.HasPrefix(addr, "https://example.com/report?tab=2#"), addr)
	assert.Contains(t, addr, "orders=l25")
	assert.Contains(t, addr, "users=sfoo%20bar:p2")
}

func TestMemoryLocationString(t *testing.T) {
	assert.Equal(t, "", NewMemoryLocation("").String())
	assert.Equal(t, "#users=p1", NewMemoryLocation("users=p1").String())
}
