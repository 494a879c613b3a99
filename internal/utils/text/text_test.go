package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"videonews-feed/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "hello", 5},
		{"accented french", "économie et santé", 17},
		{"emoji", "Flash 🇫🇷", 8},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.CountRunes(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than max", "bonjour", 10, "bonjour"},
		{"exact length", "bonjour", 7, "bonjour"},
		{"cut ascii", "bonjour", 3, "bon"},
		{"cut accented without splitting", "éléction", 3, "élé"},
		{"zero max", "bonjour", 0, ""},
		{"negative max", "bonjour", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Truncate(tt.input, tt.max))
		})
	}
}
