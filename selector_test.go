package stylecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Selector
		wantErr bool
	}{
		{
			name: "base only",
			text: "button",
			want: Selector{Base: "button"},
		},
		{
			name: "base and class",
			text: "button.start-button",
			want: Selector{Base: "button", Class: "start-button"},
		},
		{
			name: "base class and state",
			text: "button.navigation-button:hover",
			want: Selector{Base: "button", Class: "navigation-button", State: StateHover},
		},
		{
			name: "base and state without class",
			text: "button:disabled",
			want: Selector{Base: "button", State: StateDisabled},
		},
		{
			name: "surrounding whitespace",
			text: "  button.mask-button  ",
			want: Selector{Base: "button", Class: "mask-button"},
		},
		{
			name:    "empty",
			text:    "",
			wantErr: true,
		},
		{
			name:    "unknown state",
			text:    "button.start-button:focus",
			wantErr: true,
		},
		{
			name:    "missing base",
			text:    ".start-button",
			wantErr: true,
		},
		{
			name:    "empty class",
			text:    "button.:hover",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelector(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectorString(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		want string
	}{
		{name: "base", sel: Selector{Base: "button"}, want: "button"},
		{name: "class", sel: Selector{Base: "button", Class: "finish-button"}, want: "button.finish-button"},
		{name: "state", sel: Selector{Base: "button", State: StateDisabled}, want: "button:disabled"},
		{
			name: "full",
			sel:  Selector{Base: "button", Class: "switch-on-button", State: StateHover},
			want: "button.switch-on-button:hover",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.String())

			// String and ParseSelector round-trip
			back, err := ParseSelector(tt.sel.String())
			require.NoError(t, err)
			assert.Equal(t, tt.sel, back)
		})
	}
}

func TestParseState(t *testing.T) {
	hover, err := ParseState("hover")
	require.NoError(t, err)
	assert.Equal(t, StateHover, hover)

	disabled, err := ParseState("disabled")
	require.NoError(t, err)
	assert.Equal(t, StateDisabled, disabled)

	_, err = ParseState("pressed")
	require.Error(t, err)
}
