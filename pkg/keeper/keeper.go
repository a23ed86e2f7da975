// Package keeper implements the per-table controller. A Keeper owns the
// enabled-condition set for one table instance, restores state from the
// fragment on construction, and re-serializes the table's token whenever a
// tracked change event fires.
package keeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/tablekeep/pkg/conditions"
	"github.com/mesh-intelligence/tablekeep/pkg/fragment"
	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// Keeper tracks one table for its lifetime. All methods run on the host's
// event goroutine; Keeper does no locking of its own.
type Keeper struct {
	table    types.Table
	gateway  *fragment.Gateway
	registry *conditions.Registry
	defaults types.Defaults
	log      zerolog.Logger

	enabled map[string]bool
	subs    map[string][]types.Subscription
}

// Option configures a Keeper at construction.
type Option func(*Keeper)

// WithRegistry substitutes a custom condition registry for the stock catalog.
func WithRegistry(r *conditions.Registry) Option {
	return func(k *Keeper) { k.registry = r }
}

// WithLogger routes anomaly warnings to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(k *Keeper) { k.log = log }
}

// New attaches a keeper to a table. It resolves the table's baselines,
// collects the enabled set (every wanted condition whose feature is
// applicable), attaches change listeners unless the settings say otherwise,
// then restores state from the table's token in the fragment, drawing once
// if any applied entry asked for it.
func New(tbl types.Table, gw *fragment.Gateway, settings types.Settings, opts ...Option) (*Keeper, error) {
	if tbl == nil {
		return nil, types.ErrNotTable
	}
	if gw == nil {
		return nil, errors.New("fragment gateway must not be nil")
	}

	k := &Keeper{
		table:    tbl,
		gateway:  gw,
		registry: conditions.Default(),
		log:      zerolog.Nop(),
		enabled:  make(map[string]bool),
		subs:     make(map[string][]types.Subscription),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.defaults = types.ResolveDefaults(tbl)

	if !settings.Enabled {
		return k, nil
	}

	wanted, err := k.resolveWanted(settings.Conditions)
	if err != nil {
		return nil, err
	}
	for _, c := range wanted {
		if c.Applicable(tbl) {
			k.enabled[c.Name()] = true
		}
	}

	if settings.AttachEvents {
		for _, c := range k.enabledConditions() {
			k.attachCondition(c)
		}
	}

	k.restore()
	return k, nil
}

// resolveWanted maps setting entries (names or key characters) to conditions.
// A nil list means the full catalog.
func (k *Keeper) resolveWanted(refs []string) ([]conditions.Condition, error) {
	if refs == nil {
		return k.registry.Conditions(), nil
	}
	out := make([]conditions.Condition, 0, len(refs))
	for _, ref := range refs {
		c, ok := k.registry.Lookup(ref)
		if !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownCondition, ref)
		}
		out = append(out, c)
	}
	return out, nil
}

// restore decodes this table's token and applies each entry through its
// condition. Entries with no matching condition, entries for conditions not
// under management, and entries that fail to apply are skipped; the rest of
// the token still applies. At most one draw is issued.
func (k *Keeper) restore() {
	token, ok := k.gateway.Read(k.table.ID())
	if !ok || token == "" {
		return
	}

	redraw := false
	for entry := range strings.SplitSeq(token, ":") {
		if entry == "" {
			continue
		}
		key, raw := entry[0], entry[1:]

		c, ok := k.registry.ByKey(key)
		if !ok {
			k.log.Warn().
				Str("table", k.table.ID()).
				Str("key", string(key)).
				Msg("token entry has no matching condition, skipping")
			continue
		}
		if !k.enabled[c.Name()] {
			continue
		}

		needsDraw, err := c.Deserialize(k.table, k.defaults, raw)
		if err != nil {
			k.log.Warn().
				Str("table", k.table.ID()).
				Str("condition", c.Name()).
				Err(err).
				Msg("token entry failed to apply, skipping")
			continue
		}
		redraw = redraw || needsDraw
	}

	if redraw {
		k.table.Draw()
	}
}

// Token composes this table's token from the current live state: every
// enabled, applicable, non-default condition contributes key+value in
// registry order. All defaults yields an empty token.
func (k *Keeper) Token() string {
	var parts []string
	for _, c := range k.enabledConditions() {
		if !c.Applicable(k.table) || !c.NonDefault(k.table, k.defaults) {
			continue
		}
		val, ok := c.Serialize(k.table, k.defaults)
		if !ok {
			continue
		}
		parts = append(parts, string(c.Key())+val)
	}
	return strings.Join(parts, ":")
}

// Store composes the token and writes it through the gateway, leaving every
// other table's entry untouched. An all-default state removes this table's
// entry.
func (k *Keeper) Store() {
	k.gateway.Write(k.table.ID(), k.Token())
}

// ShareURL stores the freshly composed token and returns the full address,
// ready for a copy affordance to hand out.
func (k *Keeper) ShareURL() string {
	k.Store()
	return k.gateway.Address()
}

// Enable adds conditions (by name or key character) to the enabled set. All
// references are resolved before any mutation, so an unknown reference leaves
// the set unchanged. Listeners are not attached here; that stays an explicit
// separate operation.
func (k *Keeper) Enable(refs ...string) error {
	conds, err := k.resolveRefs(refs)
	if err != nil {
		return err
	}
	for _, c := range conds {
		k.enabled[c.Name()] = true
	}
	return nil
}

// Disable removes conditions (by name or key character) from the enabled set.
// Attached listeners stay attached; their events simply recompose a token
// that no longer includes the condition.
func (k *Keeper) Disable(refs ...string) error {
	conds, err := k.resolveRefs(refs)
	if err != nil {
		return err
	}
	for _, c := range conds {
		delete(k.enabled, c.Name())
	}
	return nil
}

func (k *Keeper) resolveRefs(refs []string) ([]conditions.Condition, error) {
	out := make([]conditions.Condition, 0, len(refs))
	for _, ref := range refs {
		c, ok := k.registry.Lookup(ref)
		if !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownCondition, ref)
		}
		out = append(out, c)
	}
	return out, nil
}

// AttachEvents attaches change listeners for every enabled condition. Calling
// it with nothing enabled is a configuration mistake and fails rather than
// silently doing nothing.
func (k *Keeper) AttachEvents() error {
	conds := k.enabledConditions()
	if len(conds) == 0 {
		return types.ErrNoConditions
	}
	for _, c := range conds {
		k.attachCondition(c)
	}
	return nil
}

// DetachEvents removes every attached listener. Like AttachEvents, an empty
// enabled set fails.
func (k *Keeper) DetachEvents() error {
	if len(k.enabledConditions()) == 0 {
		return types.ErrNoConditions
	}
	for name := range k.subs {
		k.detachByName(name)
	}
	return nil
}

// AttachEvent attaches listeners for a single condition, referenced by name
// or key character.
func (k *Keeper) AttachEvent(ref string) error {
	c, ok := k.registry.Lookup(ref)
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownCondition, ref)
	}
	k.attachCondition(c)
	return nil
}

// DetachEvent removes the listeners of a single condition.
func (k *Keeper) DetachEvent(ref string) error {
	c, ok := k.registry.Lookup(ref)
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownCondition, ref)
	}
	k.detachByName(c.Name())
	return nil
}

// Enabled returns the enabled condition names in registry order.
func (k *Keeper) Enabled() []string {
	names := []string{}
	for _, c := range k.enabledConditions() {
		names = append(names, c.Name())
	}
	return names
}

// attachCondition subscribes to a condition's trigger events. Attaching twice
// would duplicate notifications, so any existing handles are released first.
func (k *Keeper) attachCondition(c conditions.Condition) {
	k.detachByName(c.Name())
	for _, event := range c.Events() {
		sub := k.table.On(event, k.Store)
		k.subs[c.Name()] = append(k.subs[c.Name()], sub)
	}
}

// detachByName releases the stored subscription handles for a condition.
func (k *Keeper) detachByName(name string) {
	for _, sub := range k.subs[name] {
		sub.Unsubscribe()
	}
	delete(k.subs, name)
}

// enabledConditions returns the enabled subset in registry order.
func (k *Keeper) enabledConditions() []conditions.Condition {
	var out []conditions.Condition
	for _, c := range k.registry.Conditions() {
		if k.enabled[c.Name()] {
			out = append(out, c)
		}
	}
	return out
}
