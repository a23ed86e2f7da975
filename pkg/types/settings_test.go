package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetting(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    Settings
		wantErr error
	}{
		{
			name:  "true enables everything",
			input: true,
			want:  Settings{Enabled: true, AttachEvents: true},
		},
		{
			name:  "false disables",
			input: false,
			want:  Settings{},
		},
		{
			name:  "nil disables",
			input: nil,
			want:  Settings{},
		},
		{
			name:  "key character string",
			input: "fop",
			want:  Settings{Enabled: true, Conditions: []string{"f", "o", "p"}, AttachEvents: true},
		},
		{
			name:  "name list",
			input: []string{"search", "order"},
			want:  Settings{Enabled: true, Conditions: []string{"search", "order"}, AttachEvents: true},
		},
		{
			name:  "any list from config decoding",
			input: []any{"page", "length"},
			want:  Settings{Enabled: true, Conditions: []string{"page", "length"}, AttachEvents: true},
		},
		{
			name: "map with conditions and attachEvents",
			input: map[string]any{
				"conditions":   []any{"search"},
				"attachEvents": false,
			},
			want: Settings{Enabled: true, Conditions: []string{"search"}, AttachEvents: false},
		},
		{
			name: "map with snake_case attach flag",
			input: map[string]any{
				"attach_events": false,
			},
			want: Settings{Enabled: true, AttachEvents: false},
		},
		{
			name: "map with key string conditions",
			input: map[string]any{
				"conditions": "vc",
			},
			want: Settings{Enabled: true, Conditions: []string{"v", "c"}, AttachEvents: true},
		},
		{
			name:  "empty map keeps defaults",
			input: map[string]any{},
			want:  Settings{Enabled: true, AttachEvents: true},
		},
		{
			name:    "unsupported type",
			input:   42,
			wantErr: ErrInvalidSetting,
		},
		{
			name:    "non-string list entry",
			input:   []any{"search", 7},
			wantErr: ErrInvalidSetting,
		},
		{
			name: "map with bad conditions type",
			input: map[string]any{
				"conditions": 7,
			},
			wantErr: ErrInvalidSetting,
		},
		{
			name: "map with bad attach type",
			input: map[string]any{
				"attachEvents": "yes",
			},
			wantErr: ErrInvalidSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetting(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.True(t, s.Enabled)
	assert.True(t, s.AttachEvents)
	assert.Nil(t, s.Conditions)
}
