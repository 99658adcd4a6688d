package cctype

import (
	"sync/atomic"
	"unicode"
)

// Property bits for each byte, for fast lookup. One mask per byte beats
// chains of range comparisons on every call.
const (
	pC  uint16 = 1 << iota // control byte
	pZ                     // whitespace
	pN                     // decimal digit
	pLu                    // upper-case letter
	pLl                    // lower-case letter
	pLo                    // letter without a case
	pP                     // punctuation or symbol
	pX                     // hexadecimal digit
	pPr                    // printable, space included
	pG                     // graphical (printable, space excluded)

	pL = pLu | pLl | pLo // any letter
)

// Table is an immutable per-byte classification and case-mapping table.
// It plays the role of a classification locale: every byte value has a
// property mask and an upper/lower mapping, so lookups are defined for
// the whole 0-255 domain by construction.
type Table struct {
	props [256]uint16
	upper [256]byte
	lower [256]byte
}

// POSIX classifies bytes the way the "C" locale does: ASCII rules only.
// Bytes 0x80-0xFF have no properties and map to themselves.
var POSIX = newPOSIXTable()

// Latin1 classifies bytes as ISO 8859-1 text. It is derived by widening
// each byte to a rune and consulting the unicode package; case mappings
// whose result does not fit back into a single byte are dropped, leaving
// the byte a fixed point.
var Latin1 = newLatin1Table()

// current is the table consulted by the package-level functions. It
// stands in for the process's active classification locale: swapping it
// changes the behavior of every subsequent package-level call. The
// atomic pointer keeps concurrent swap+lookup memory safe; no stronger
// ordering is promised.
var current atomic.Pointer[Table]

func init() {
	current.Store(POSIX)
}

// SetTable installs t as the table used by the package-level functions
// and returns the previously installed table. A nil t restores POSIX.
func SetTable(t *Table) *Table {
	if t == nil {
		t = POSIX
	}
	return current.Swap(t)
}

// CurrentTable returns the table currently used by the package-level
// functions.
func CurrentTable() *Table {
	return current.Load()
}

// ToUpper maps c to upper case according to t. Bytes without an
// upper-case mapping are returned unchanged.
func (t *Table) ToUpper(c byte) byte { return t.upper[c] }

// ToLower maps c to lower case according to t. Bytes without a
// lower-case mapping are returned unchanged.
func (t *Table) ToLower(c byte) byte { return t.lower[c] }

// IsAlpha reports whether c is a letter according to t.
func (t *Table) IsAlpha(c byte) bool { return t.props[c]&pL != 0 }

// IsDigit reports whether c is a decimal digit according to t.
func (t *Table) IsDigit(c byte) bool { return t.props[c]&pN != 0 }

// IsAlnum reports whether c is a letter or a decimal digit according to t.
func (t *Table) IsAlnum(c byte) bool { return t.props[c]&(pL|pN) != 0 }

// IsSpace reports whether c is whitespace according to t.
func (t *Table) IsSpace(c byte) bool { return t.props[c]&pZ != 0 }

// IsCntrl reports whether c is a control byte according to t.
func (t *Table) IsCntrl(c byte) bool { return t.props[c]&pC != 0 }

// IsPunct reports whether c is punctuation or a symbol according to t.
func (t *Table) IsPunct(c byte) bool { return t.props[c]&pP != 0 }

// IsPrint reports whether c is printable according to t. Space is
// printable; control bytes are not.
func (t *Table) IsPrint(c byte) bool { return t.props[c]&pPr != 0 }

// IsGraph reports whether c is graphical according to t: printable and
// not whitespace.
func (t *Table) IsGraph(c byte) bool { return t.props[c]&pG != 0 }

// IsXDigit reports whether c is a hexadecimal digit.
func (t *Table) IsXDigit(c byte) bool { return t.props[c]&pX != 0 }

func isHexByte(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

// newPOSIXTable builds the "C" locale table from the POSIX byte ranges.
func newPOSIXTable() *Table {
	t := &Table{}
	for i := 0; i < 256; i++ {
		c := byte(i)
		t.upper[i] = c
		t.lower[i] = c
		if c >= 0x80 {
			continue // ASCII rules only
		}

		var p uint16
		if c < 0x20 || c == 0x7F {
			p |= pC
		}
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			p |= pZ
		}
		switch {
		case '0' <= c && c <= '9':
			p |= pN
		case 'A' <= c && c <= 'Z':
			p |= pLu
			t.lower[i] = c + ('a' - 'A')
		case 'a' <= c && c <= 'z':
			p |= pLl
			t.upper[i] = c - ('a' - 'A')
		}
		if isHexByte(c) {
			p |= pX
		}
		if 0x20 <= c && c <= 0x7E {
			p |= pPr
			if c != ' ' {
				p |= pG
				if p&(pL|pN) == 0 {
					p |= pP
				}
			}
		}
		t.props[i] = p
	}
	return t
}

// newLatin1Table builds the ISO 8859-1 table. Each byte is widened to a
// rune before any unicode call, which keeps every lookup inside the
// domain the unicode package defines.
func newLatin1Table() *Table {
	t := &Table{}
	for i := 0; i < 256; i++ {
		r := rune(i)

		var p uint16
		if unicode.IsControl(r) {
			p |= pC
		}
		if unicode.IsSpace(r) {
			p |= pZ
		}
		if unicode.IsDigit(r) {
			p |= pN
		}
		switch {
		case unicode.IsUpper(r):
			p |= pLu
		case unicode.IsLower(r):
			p |= pLl
		case unicode.IsLetter(r):
			p |= pLo
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			p |= pP
		}
		if isHexByte(byte(i)) {
			p |= pX
		}
		if unicode.IsPrint(r) || r == ' ' {
			p |= pPr
			if p&pZ == 0 {
				p |= pG
			}
		}
		t.props[i] = p

		// Keep a case mapping only when the mapped rune narrows back
		// into a single byte. µ and ÿ upper-case outside Latin-1 and
		// stay fixed points.
		t.upper[i] = narrowOr(unicode.ToUpper(r), byte(i))
		t.lower[i] = narrowOr(unicode.ToLower(r), byte(i))
	}
	return t
}

// narrowOr returns r as a byte when it fits the unsigned-byte domain,
// otherwise fallback.
func narrowOr(r rune, fallback byte) byte {
	if r >= 0 && r <= 0xFF {
		return byte(r)
	}
	return fallback
}
