// internal/mention/scanner_test.go
package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanHandles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no handles",
			text: "Just a plain comment without any mentions",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "single handle",
			text: "Test Comment @testuser",
			want: []string{"testuser"},
		},
		{
			name: "handle at start of string",
			text: "@alice please take a look",
			want: []string{"alice"},
		},
		{
			name: "multiple handles",
			text: "@alice and @bob should review this",
			want: []string{"alice", "bob"},
		},
		{
			name: "duplicate handles preserved",
			text: "@alice ping, @alice again",
			want: []string{"alice", "alice"},
		},
		{
			name: "maximal run swallows trailing word characters",
			text: "Hello @user1world",
			want: []string{"user1world"},
		},
		{
			name: "underscores and digits are word characters",
			text: "cc @dev_ops_2",
			want: []string{"dev_ops_2"},
		},
		{
			name: "punctuation terminates the handle",
			text: "thanks, @carol!",
			want: []string{"carol"},
		},
		{
			name: "bare at sign",
			text: "meet @ noon",
			want: nil,
		},
		{
			name: "case preserved",
			text: "ask @CamelCase",
			want: []string{"CamelCase"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanHandles(tt.text))
		})
	}
}
