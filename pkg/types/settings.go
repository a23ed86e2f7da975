package types

import "fmt"

// Settings is the resolved form of the conditions setting a host passes
// in its table options. A nil Conditions slice means "every applicable
// condition"; entries may be condition names or single-character keys.
type Settings struct {
	Enabled      bool
	Conditions   []string
	AttachEvents bool
}

// DefaultSettings enables every applicable condition with listeners attached.
func DefaultSettings() Settings {
	return Settings{Enabled: true, AttachEvents: true}
}

// ParseSetting interprets the polymorphic setting value a host table carries
// in its init options:
//
//   - bool: true enables everything, false disables the keeper entirely
//   - string: shorthand for a set of single-character condition keys ("fop")
//   - []string (or []any of strings): a list of condition names
//   - map: optional "conditions" (any of the above shapes) and
//     "attachEvents" / "attach_events" (bool, default true)
//
// Unknown shapes return ErrInvalidSetting. Name/key validity is checked later
// against the registry, not here.
func ParseSetting(v any) (Settings, error) {
	switch val := v.(type) {
	case nil:
		return Settings{}, nil
	case bool:
		if !val {
			return Settings{}, nil
		}
		return DefaultSettings(), nil
	case string:
		return Settings{Enabled: true, Conditions: splitKeys(val), AttachEvents: true}, nil
	case []string:
		return Settings{Enabled: true, Conditions: append([]string(nil), val...), AttachEvents: true}, nil
	case []any:
		names, err := stringSlice(val)
		if err != nil {
			return Settings{}, err
		}
		return Settings{Enabled: true, Conditions: names, AttachEvents: true}, nil
	case map[string]any:
		return parseSettingMap(val)
	default:
		return Settings{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidSetting, v)
	}
}

func parseSettingMap(m map[string]any) (Settings, error) {
	s := DefaultSettings()

	if raw, ok := mapKey(m, "conditions"); ok {
		switch val := raw.(type) {
		case string:
			s.Conditions = splitKeys(val)
		case []string:
			s.Conditions = append([]string(nil), val...)
		case []any:
			names, err := stringSlice(val)
			if err != nil {
				return Settings{}, err
			}
			s.Conditions = names
		default:
			return Settings{}, fmt.Errorf("%w: conditions must be a string or list, got %T", ErrInvalidSetting, raw)
		}
	}

	if raw, ok := mapKey(m, "attachEvents", "attach_events"); ok {
		b, ok := raw.(bool)
		if !ok {
			return Settings{}, fmt.Errorf("%w: attachEvents must be a bool, got %T", ErrInvalidSetting, raw)
		}
		s.AttachEvents = b
	}

	return s, nil
}

// mapKey returns the first present key among the given aliases.
func mapKey(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// splitKeys turns a key-character string into one entry per character.
func splitKeys(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func stringSlice(vals []any) ([]string, error) {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: condition entries must be strings, got %T", ErrInvalidSetting, v)
		}
		out = append(out, s)
	}
	return out, nil
}
