package cctype

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports range markers that do not delimit a sub-range
// of the sequence they were given.
var ErrInvalidRange = errors.New("cctype: invalid range markers")

// ToUpperInPlace rewrites every byte of b with its upper-case mapping
// under the current table.
func ToUpperInPlace(b []byte) {
	t := current.Load()
	for i := range b {
		b[i] = t.upper[b[i]]
	}
}

// ToLowerInPlace rewrites every byte of b with its lower-case mapping
// under the current table.
func ToLowerInPlace(b []byte) {
	t := current.Load()
	for i := range b {
		b[i] = t.lower[b[i]]
	}
}

// ToUpperRange upper-cases b[lo:hi] in place under the current table.
// Markers outside 0 <= lo <= hi <= len(b) return an error wrapping
// ErrInvalidRange before any byte is touched.
func ToUpperRange(b []byte, lo, hi int) error {
	if err := checkRange(b, lo, hi); err != nil {
		return err
	}
	ToUpperInPlace(b[lo:hi])
	return nil
}

// ToLowerRange lower-cases b[lo:hi] in place under the current table.
// Markers outside 0 <= lo <= hi <= len(b) return an error wrapping
// ErrInvalidRange before any byte is touched.
func ToLowerRange(b []byte, lo, hi int) error {
	if err := checkRange(b, lo, hi); err != nil {
		return err
	}
	ToLowerInPlace(b[lo:hi])
	return nil
}

func checkRange(b []byte, lo, hi int) error {
	if lo < 0 || hi < lo || hi > len(b) {
		return fmt.Errorf("%w: [%d:%d) over %d bytes", ErrInvalidRange, lo, hi, len(b))
	}
	return nil
}

// ToUpperCopy returns s with every byte upper-cased under the current
// table. s is not modified; the result is a single new allocation of
// the same length.
func ToUpperCopy(s string) string {
	if len(s) == 0 {
		return ""
	}
	t := current.Load()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = t.upper[s[i]]
	}
	return bytesToString(out)
}

// ToLowerCopy returns s with every byte lower-cased under the current
// table. s is not modified; the result is a single new allocation of
// the same length.
func ToLowerCopy(s string) string {
	if len(s) == 0 {
		return ""
	}
	t := current.Load()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = t.lower[s[i]]
	}
	return bytesToString(out)
}

// UpperMapper is the single-byte upper-case transform in the shape
// strings.Map and bytes.Map expect. Runes outside the unsigned-byte
// domain pass through unchanged.
func UpperMapper(r rune) rune {
	if r < 0 || r > 0xFF {
		return r
	}
	return rune(current.Load().upper[byte(r)])
}

// LowerMapper is the single-byte lower-case transform in the shape
// strings.Map and bytes.Map expect. Runes outside the unsigned-byte
// domain pass through unchanged.
func LowerMapper(r rune) rune {
	if r < 0 || r > 0xFF {
		return r
	}
	return rune(current.Load().lower[byte(r)])
}
