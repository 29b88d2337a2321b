package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// The dictionary avoids short words that would collide inside others ("he" in "The").
func TestModerator_Censor(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"scam", "wire transfer", "lemon"}, '*', log)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "single word keeps spacing",
			input:    "This car is a scam for sure",
			expected: "This car is a **** for sure",
			words:    []string{"scam"},
		},
		{
			name:     "multi word pattern",
			input:    "Pay by wire transfer only",
			expected: "Pay by ************* only",
			words:    []string{"wiretransfer"},
		},
		{
			name:     "leet and inner punctuation",
			input:    "Total l.3.m.0.n !",
			expected: "Total ********* !",
			words:    []string{"lemon"},
		},
		{
			name:     "uppercase and repeats",
			input:    "SCAM scam",
			expected: "**** ****",
			words:    []string{"scam", "scam"},
		},
		{
			name:     "accents are left alone",
			input:    "Une voiture très propre",
			expected: "Une voiture très propre",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_EmptyDictionaryIsNoop(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given only noise words
	mod, err := NewModerator([]string{"...", "", "  "}, 0, log)
	req.NoError(err)

	content, words := mod.Censor("Hello ... scam")
	req.Equal("Hello ... scam", content)
	req.Nil(words)
}

func TestModerator_DefaultReplacement(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	mod, err := NewModerator([]string{"scam"}, 0, log)
	req.NoError(err)

	content, _ := mod.Censor("scam")
	req.Equal("****", content)
}
