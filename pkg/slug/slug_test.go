package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		clinic   string
		placeID  string
		expected string
	}{
		{
			name:     "punctuation collapses to single dashes",
			clinic:   "Dr. Smith's Clinic!!",
			placeID:  "abcdefgh1234",
			expected: "dr-smith-s-clinic-abcdefgh",
		},
		{
			name:     "plain name",
			clinic:   "Ace Vet",
			placeID:  "ChIJabcd1234efgh",
			expected: "ace-vet-ChIJabcd",
		},
		{
			name:     "short place ID is kept whole",
			clinic:   "Best Pets",
			placeID:  "abc",
			expected: "best-pets-abc",
		},
		{
			name:     "name cleans to empty",
			clinic:   "!!!",
			placeID:  "abcdefgh1234",
			expected: "-abcdefgh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.clinic, tt.placeID))
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	a := Make("Healthy Paws Veterinary", "ChIJN1t_tDeuEmsRUsoyG83frY4")
	b := Make("Healthy Paws Veterinary", "ChIJN1t_tDeuEmsRUsoyG83frY4")
	assert.Equal(t, a, b)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcdefgh", ShortID("dr-smith-s-clinic-abcdefgh"))
	assert.Equal(t, "abc", ShortID("best-pets-abc"))
	// no dash at all: the whole string is the prefix
	assert.Equal(t, "abcdefgh", ShortID("abcdefgh"))
}

func TestRoundTrip(t *testing.T) {
	placeID := "ChIJN1t_tDeuEmsRUsoyG83frY4"
	s := Make("Ace Vet", placeID)
	short := ShortID(s)
	assert.Len(t, short, 8)
	assert.Equal(t, placeID[:8], short)
}
