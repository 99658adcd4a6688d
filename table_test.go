package cctype

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestPOSIXClassification(t *testing.T) {
	// Sweep the full byte domain against the POSIX range definitions.
	for i := 0; i < 256; i++ {
		c := byte(i)
		ascii := c < 0x80

		assert.Equal(t, ascii && (c < 0x20 || c == 0x7F), POSIX.IsCntrl(c), "IsCntrl(%#x)", c)
		assert.Equal(t, c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r',
			POSIX.IsSpace(c), "IsSpace(%#x)", c)
		assert.Equal(t, c >= '0' && c <= '9', POSIX.IsDigit(c), "IsDigit(%#x)", c)
		assert.Equal(t, (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'),
			POSIX.IsAlpha(c), "IsAlpha(%#x)", c)
		assert.Equal(t, POSIX.IsAlpha(c) || POSIX.IsDigit(c), POSIX.IsAlnum(c), "IsAlnum(%#x)", c)
		assert.Equal(t, isHexByte(c), POSIX.IsXDigit(c), "IsXDigit(%#x)", c)
		assert.Equal(t, ascii && c >= 0x20 && c <= 0x7E, POSIX.IsPrint(c), "IsPrint(%#x)", c)
		assert.Equal(t, ascii && c > 0x20 && c <= 0x7E, POSIX.IsGraph(c), "IsGraph(%#x)", c)
		assert.Equal(t, POSIX.IsGraph(c) && !POSIX.IsAlnum(c), POSIX.IsPunct(c), "IsPunct(%#x)", c)
	}
}

func TestLatin1MatchesWidenedUnicode(t *testing.T) {
	// Every Latin1 lookup must agree with the unicode package called on
	// the byte widened to a rune.
	for i := 0; i < 256; i++ {
		c := byte(i)
		r := rune(i)

		assert.Equal(t, unicode.IsControl(r), Latin1.IsCntrl(c), "IsCntrl(%#x)", c)
		assert.Equal(t, unicode.IsSpace(r), Latin1.IsSpace(c), "IsSpace(%#x)", c)
		assert.Equal(t, unicode.IsDigit(r), Latin1.IsDigit(c), "IsDigit(%#x)", c)
		assert.Equal(t, unicode.IsLetter(r), Latin1.IsAlpha(c), "IsAlpha(%#x)", c)
		assert.Equal(t, unicode.IsLetter(r) || unicode.IsDigit(r), Latin1.IsAlnum(c), "IsAlnum(%#x)", c)
		assert.Equal(t, unicode.IsPunct(r) || unicode.IsSymbol(r), Latin1.IsPunct(c), "IsPunct(%#x)", c)
		assert.Equal(t, unicode.IsPrint(r) || r == ' ', Latin1.IsPrint(c), "IsPrint(%#x)", c)
	}
}

func TestCaseMappingIdempotent(t *testing.T) {
	tables := map[string]*Table{
		"POSIX":  POSIX,
		"Latin1": Latin1,
	}

	for name, tab := range tables {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 256; i++ {
				c := byte(i)
				assert.Equal(t, tab.ToUpper(c), tab.ToUpper(tab.ToUpper(c)), "ToUpper(%#x) not idempotent", c)
				assert.Equal(t, tab.ToLower(c), tab.ToLower(tab.ToLower(c)), "ToLower(%#x) not idempotent", c)
			}
		})
	}
}

func TestPOSIXRoundTrip(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		assert.Equal(t, POSIX.ToLower(c), POSIX.ToLower(POSIX.ToUpper(c)))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		assert.Equal(t, POSIX.ToUpper(c), POSIX.ToUpper(POSIX.ToLower(c)))
	}
}

func TestPOSIXNonLettersAreFixedPoints(t *testing.T) {
	for i := 0; i < 256; i++ {
		c := byte(i)
		if POSIX.IsAlpha(c) {
			continue
		}
		assert.Equal(t, c, POSIX.ToUpper(c), "ToUpper(%#x)", c)
		assert.Equal(t, c, POSIX.ToLower(c), "ToLower(%#x)", c)
	}
}

func TestLatin1CaseMapping(t *testing.T) {
	tests := []struct {
		name  string
		in    byte
		upper byte
		lower byte
	}{
		{
			name:  "ASCII letter",
			in:    'q',
			upper: 'Q',
			lower: 'q',
		},
		{
			name:  "e acute",
			in:    0xE9, // é
			upper: 0xC9, // É
			lower: 0xE9,
		},
		{
			name:  "Thorn",
			in:    0xDE, // Þ
			upper: 0xDE,
			lower: 0xFE, // þ
		},
		{
			name:  "micro sign maps outside the byte domain",
			in:    0xB5, // µ, upper case is Greek Mu
			upper: 0xB5,
			lower: 0xB5,
		},
		{
			name:  "y diaeresis maps outside the byte domain",
			in:    0xFF, // ÿ, upper case is U+0178
			upper: 0xFF,
			lower: 0xFF,
		},
		{
			name:  "sharp s has no single-byte upper case",
			in:    0xDF, // ß
			upper: 0xDF,
			lower: 0xDF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.upper, Latin1.ToUpper(tt.in))
			assert.Equal(t, tt.lower, Latin1.ToLower(tt.in))
		})
	}
}

func TestSetTable(t *testing.T) {
	prev := SetTable(Latin1)
	defer SetTable(prev)

	assert.Same(t, POSIX, prev)
	assert.Same(t, Latin1, CurrentTable())

	// A second swap hands back what we installed.
	assert.Same(t, Latin1, SetTable(POSIX))
	assert.Same(t, POSIX, CurrentTable())
}

func TestSetTableNilRestoresPOSIX(t *testing.T) {
	prev := SetTable(Latin1)
	defer SetTable(prev)

	SetTable(nil)
	assert.Same(t, POSIX, CurrentTable())
}
