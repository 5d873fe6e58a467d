package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		code string
		ok   bool
	}{
		{
			name: "airport with city prefix",
			text: "Los Angeles / LAX International (LAX/KLAX)",
			code: "LAX",
			ok:   true,
		},
		{
			name: "airport without city",
			text: "Frankfurt (FRA/EDDF)",
			code: "FRA",
			ok:   true,
		},
		{
			name: "lowercase code is uppercased",
			text: "Berlin Brandenburg (ber/eddb)",
			code: "BER",
			ok:   true,
		},
		{
			name: "airline pair",
			text: "Lufthansa (LH/DLH)",
			code: "LH",
			ok:   true,
		},
		{
			name: "no parenthesized pair",
			text: "Unknown Field",
			code: "",
			ok:   false,
		},
		{
			name: "parentheses without slash",
			text: "Somewhere (remote)",
			code: "",
			ok:   false,
		},
		{
			name: "empty input",
			text: "",
			code: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ExtractCode(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

// The extractor must never fall back to truncating the free text; a missing
// pair is unknown, not a fabricated code.
func TestExtractCode_NoTruncationFallback(t *testing.T) {
	code, ok := ExtractCode("Franklin Municipal Airfield")
	assert.False(t, ok)
	assert.Empty(t, code)
}
