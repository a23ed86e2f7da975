package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

func TestDefaultRegistryCatalog(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{
		NameSearch, NameOrder, NamePage, NameLength,
		NameColVis, NameColOrder, NameScroller, NameSelect,
	}, r.Names())

	wantKeys := map[string]byte{
		NameSearch:   'f',
		NameOrder:    'o',
		NamePage:     'p',
		NameLength:   'l',
		NameColVis:   'v',
		NameColOrder: 'c',
		NameScroller: 's',
		NameSelect:   'e',
	}
	for name, key := range wantKeys {
		c, ok := r.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, key, c.Key(), name)
	}
}

func TestRegistryRejectsDuplicateKey(t *testing.T) {
	all := All()
	// Register the search condition twice: same name, same key.
	_, err := New(append(all, all[0])...)
	assert.ErrorIs(t, err, types.ErrDuplicateKey)
}

type clashCondition struct{ Condition }

func (clashCondition) Name() string { return "clash" }
func (clashCondition) Key() byte    { return KeySearch }

func TestRegistryRejectsClashingKeyAcrossNames(t *testing.T) {
	_, err := New(append(All(), clashCondition{})...)
	assert.ErrorIs(t, err, types.ErrDuplicateKey)
}

func TestRegistryLookup(t *testing.T) {
	r := Default()

	byName, ok := r.Lookup("colorder")
	require.True(t, ok)
	assert.Equal(t, NameColOrder, byName.Name())

	byKey, ok := r.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, NameColOrder, byKey.Name())

	_, ok = r.Lookup("bogus")
	assert.False(t, ok)
	_, ok = r.Lookup("z")
	assert.False(t, ok)

	// ByKey directly.
	c, ok := r.ByKey('e')
	require.True(t, ok)
	assert.Equal(t, NameSelect, c.Name())
}

func TestEveryConditionHasTriggerEvents(t *testing.T) {
	for _, c := range All() {
		assert.NotEmpty(t, c.Events(), c.Name())
	}
}
